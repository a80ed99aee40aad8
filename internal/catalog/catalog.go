package catalog

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vvka-141/hsscan/internal/checksum"
	"github.com/vvka-141/hsscan/pkg/hsscan"
)

// ExtractionRule finds one carrier syntax in file content. Group is the index
// of the capture group holding the snippet.
type ExtractionRule struct {
	Name    string
	Pattern *regexp.Regexp
	Group   int
}

// BlockRule detects one block syntax. Kind is the canonical name reported
// when Pattern matches; Name identifies the rule itself and differs from Kind
// for aliases.
type BlockRule struct {
	Name    string
	Kind    string
	Pattern *regexp.Regexp
}

// Catalog is an immutable set of extraction and classification rules.
type Catalog struct {
	carriers          []ExtractionRule
	commands          []string
	commandSet        map[string]struct{}
	commandPattern    *regexp.Regexp
	blocks            []BlockRule
	blockKinds        []string
	positional        []string
	positionalPattern *regexp.Regexp
	fingerprint       string
}

// New validates the rules and builds a catalog. Commands and positional
// keywords are matched as whole words, ignoring case; duplicates (compared
// case-insensitively) are dropped.
func New(carriers []ExtractionRule, commands []string, blocks []BlockRule, positional []string) (*Catalog, error) {
	for _, r := range carriers {
		if r.Pattern == nil {
			return nil, fmt.Errorf("carrier %q has no pattern: %w", r.Name, hsscan.ErrInvalidPattern)
		}
		if r.Group < 0 || r.Group > r.Pattern.NumSubexp() {
			return nil, fmt.Errorf("carrier %q uses group %d but pattern has %d: %w",
				r.Name, r.Group, r.Pattern.NumSubexp(), hsscan.ErrInvalidPattern)
		}
	}
	for _, b := range blocks {
		if b.Pattern == nil {
			return nil, fmt.Errorf("block rule %q has no pattern: %w", b.Name, hsscan.ErrInvalidPattern)
		}
		if b.Kind == "" {
			return nil, fmt.Errorf("block rule %q has no kind: %w", b.Name, hsscan.ErrInvalidPattern)
		}
	}

	c := &Catalog{
		carriers: append([]ExtractionRule(nil), carriers...),
		blocks:   append([]BlockRule(nil), blocks...),
	}

	c.commands = dedupeFold(commands)
	c.commandSet = make(map[string]struct{}, len(c.commands))
	for _, cmd := range c.commands {
		c.commandSet[strings.ToLower(cmd)] = struct{}{}
	}
	c.positional = dedupeFold(positional)

	var err error
	if c.commandPattern, err = wordPattern(c.commands); err != nil {
		return nil, fmt.Errorf("command vocabulary: %w", err)
	}
	if c.positionalPattern, err = wordPattern(c.positional); err != nil {
		return nil, fmt.Errorf("positional vocabulary: %w", err)
	}

	seen := make(map[string]struct{})
	for _, b := range c.blocks {
		if _, ok := seen[b.Kind]; ok {
			continue
		}
		seen[b.Kind] = struct{}{}
		c.blockKinds = append(c.blockKinds, b.Kind)
	}

	c.fingerprint = c.computeFingerprint()
	return c, nil
}

// MustNew is like New but panics on error. Intended for package-level catalogs.
func MustNew(carriers []ExtractionRule, commands []string, blocks []BlockRule, positional []string) *Catalog {
	c, err := New(carriers, commands, blocks, positional)
	if err != nil {
		panic(err)
	}
	return c
}

// Carriers returns the extraction rules in application order.
func (c *Catalog) Carriers() []ExtractionRule {
	return append([]ExtractionRule(nil), c.carriers...)
}

// Commands returns the command vocabulary as declared.
func (c *Catalog) Commands() []string {
	return append([]string(nil), c.commands...)
}

// CommandPattern matches any command keyword; group 1 holds the keyword.
// Nil when the vocabulary is empty.
func (c *Catalog) CommandPattern() *regexp.Regexp { return c.commandPattern }

// Blocks returns the block rules in declaration order.
func (c *Catalog) Blocks() []BlockRule {
	return append([]BlockRule(nil), c.blocks...)
}

// BlockKinds returns the canonical block kinds, without aliases, in
// declaration order.
func (c *Catalog) BlockKinds() []string {
	return append([]string(nil), c.blockKinds...)
}

// PositionalKeywords returns the positional vocabulary.
func (c *Catalog) PositionalKeywords() []string {
	return append([]string(nil), c.positional...)
}

// PositionalPattern matches any positional keyword. Nil when the vocabulary is empty.
func (c *Catalog) PositionalPattern() *regexp.Regexp { return c.positionalPattern }

// Fingerprint identifies the catalog's rules. Catalogs built from the same
// rules in the same order share a fingerprint.
func (c *Catalog) Fingerprint() string { return c.fingerprint }

// KnownCommand reports whether name is in the command vocabulary, ignoring case.
func (c *Catalog) KnownCommand(name string) bool {
	_, ok := c.commandSet[strings.ToLower(name)]
	return ok
}

// KnownBlock reports whether kind is a canonical block kind. Alias rule
// names such as unless are not kinds.
func (c *Catalog) KnownBlock(kind string) bool {
	for _, k := range c.blockKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (c *Catalog) computeFingerprint() string {
	var b strings.Builder
	for _, r := range c.carriers {
		fmt.Fprintf(&b, "carrier\x00%s\x00%s\x00%d\n", r.Name, r.Pattern.String(), r.Group)
	}
	for _, cmd := range c.commands {
		fmt.Fprintf(&b, "command\x00%s\n", strings.ToLower(cmd))
	}
	for _, r := range c.blocks {
		fmt.Fprintf(&b, "block\x00%s\x00%s\x00%s\n", r.Name, r.Kind, r.Pattern.String())
	}
	for _, w := range c.positional {
		fmt.Fprintf(&b, "positional\x00%s\n", strings.ToLower(w))
	}
	return checksum.New().Sum([]byte(b.String()))
}

// wordPattern builds a case-insensitive, word-bounded alternation. Longer
// words come first so a keyword that prefixes another never shadows it.
func wordPattern(words []string) (*regexp.Regexp, error) {
	if len(words) == 0 {
		return nil, nil
	}
	ordered := append([]string(nil), words...)
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i]) > len(ordered[j]) })

	quoted := make([]string, len(ordered))
	for i, w := range ordered {
		quoted[i] = regexp.QuoteMeta(w)
	}
	re, err := regexp.Compile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, hsscan.ErrInvalidPattern)
	}
	return re, nil
}

func dedupeFold(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		key := strings.ToLower(w)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, w)
	}
	return out
}
