package catalog

import "regexp"

// Block kinds reported by the default catalog.
const (
	BlockIf     = "if"
	BlockRepeat = "repeat"
	BlockFor    = "for"
	BlockWhile  = "while"
	BlockFetch  = "fetch"
	BlockAsync  = "async"
)

func defaultCarriers() []ExtractionRule {
	return []ExtractionRule{
		{Name: "attr-double", Pattern: regexp.MustCompile(`_="([^"]*)"`), Group: 1},
		{Name: "attr-single", Pattern: regexp.MustCompile(`_='([^']*)'`), Group: 1},
		{Name: "attr-backtick", Pattern: regexp.MustCompile("_=`([^`]*)`"), Group: 1},

		// JSX-style expression attributes (Vue, Svelte, React)
		{Name: "jsx-template", Pattern: regexp.MustCompile("_=\\{`([^`]+)`\\}"), Group: 1},
		{Name: "jsx-string", Pattern: regexp.MustCompile(`_=\{['"]([^'"]+)['"]\}`), Group: 1},

		{Name: "data-hs-double", Pattern: regexp.MustCompile(`data-hs="([^"]*)"`), Group: 1},
		{Name: "data-hs-single", Pattern: regexp.MustCompile(`data-hs='([^']*)'`), Group: 1},

		// {% hs %} ... {% endhs %}
		{Name: "tag-block", Pattern: regexp.MustCompile(`(?s)\{%\s*hs\s*%\}(.*?)\{%\s*endhs\s*%\}`), Group: 1},

		{Name: "tag-attr-double", Pattern: regexp.MustCompile(`\{%\s*hs_attr\s+"([^"]+)"\s*%\}`), Group: 1},
		{Name: "tag-attr-single", Pattern: regexp.MustCompile(`\{%\s*hs_attr\s+'([^']+)'\s*%\}`), Group: 1},
		{Name: "tag-script-double", Pattern: regexp.MustCompile(`\{%\s*hs_script\s+"([^"]+)"\s*%\}`), Group: 1},
		{Name: "tag-script-single", Pattern: regexp.MustCompile(`\{%\s*hs_script\s+'([^']+)'\s*%\}`), Group: 1},

		{
			Name:    "script-element",
			Pattern: regexp.MustCompile(`(?is)<script[^>]*type=["']?text/hyperscript["']?[^>]*>(.*?)</script>`),
			Group:   1,
		},
	}
}

func defaultCommands() []string {
	return []string{
		"toggle", "add", "remove", "removeClass", "show", "hide", "set", "get",
		"put", "append", "take", "increment", "decrement", "log", "send",
		"trigger", "wait", "transition", "go", "call", "focus", "blur", "return",
	}
}

func defaultBlocks() []BlockRule {
	return []BlockRule{
		{Name: "if", Kind: BlockIf, Pattern: regexp.MustCompile(`(?i)\bif\b`)},
		// unless is sugar for if in the runtime
		{Name: "unless", Kind: BlockIf, Pattern: regexp.MustCompile(`(?i)\bunless\b`)},
		{Name: "repeat", Kind: BlockRepeat, Pattern: regexp.MustCompile(`(?i)\brepeat\s+(\d+|:\w+|\$\w+|[\w.]+)\s+times?\b`)},
		{Name: "for", Kind: BlockFor, Pattern: regexp.MustCompile(`(?i)\bfor\s+(each|every)\b`)},
		{Name: "while", Kind: BlockWhile, Pattern: regexp.MustCompile(`(?i)\bwhile\b`)},
		{Name: "fetch", Kind: BlockFetch, Pattern: regexp.MustCompile(`(?i)\bfetch\b`)},
		{Name: "async", Kind: BlockAsync, Pattern: regexp.MustCompile(`(?i)\basync\b`)},
	}
}

func defaultPositional() []string {
	return []string{"first", "last", "next", "previous", "closest", "parent"}
}

var defaultCatalog = MustNew(defaultCarriers(), defaultCommands(), defaultBlocks(), defaultPositional())

// Default returns the built-in catalog. The same instance is returned on
// every call; catalogs are immutable.
func Default() *Catalog {
	return defaultCatalog
}
