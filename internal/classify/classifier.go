// Package classify labels a hyperscript snippet with the commands, block
// kinds and positional references it uses.
package classify

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vvka-141/hsscan/internal/catalog"
	"github.com/vvka-141/hsscan/pkg/hsscan"
)

// Classifier runs a catalog's classification rules over snippets.
// Classifier holds no mutable state and is safe for concurrent use.
type Classifier struct {
	catalog *catalog.Catalog
}

// New creates a classifier for the given catalog.
// Panics if c is nil.
func New(c *catalog.Catalog) *Classifier {
	if c == nil {
		panic("catalog cannot be nil")
	}
	return &Classifier{catalog: c}
}

// Classify returns a fresh usage for snippet. The command, block and
// positional passes are independent and always all run.
//
// Word boundaries are Unicode-aware: a match whose edge touches a letter,
// digit or mark from any script, as in "éshow", does not count.
func (c *Classifier) Classify(snippet string) hsscan.FileUsage {
	var usage hsscan.FileUsage

	if re := c.catalog.CommandPattern(); re != nil {
		for _, m := range re.FindAllStringSubmatchIndex(snippet, -1) {
			if wordBounded(snippet, m[0], m[1]) {
				usage.AddCommand(strings.ToLower(snippet[m[2]:m[3]]))
			}
		}
	}

	// aliases such as unless report their canonical kind
	for _, rule := range c.catalog.Blocks() {
		if matchesBounded(rule.Pattern, snippet) {
			usage.AddBlock(rule.Kind)
		}
	}

	if re := c.catalog.PositionalPattern(); re != nil && matchesBounded(re, snippet) {
		usage.Positional = true
	}

	return usage
}

func matchesBounded(re *regexp.Regexp, s string) bool {
	for _, m := range re.FindAllStringIndex(s, -1) {
		if wordBounded(s, m[0], m[1]) {
			return true
		}
	}
	return false
}

// wordBounded reports whether s[start:end] does not continue a word on
// either side.
func wordBounded(s string, start, end int) bool {
	if start > 0 && start < len(s) {
		first, _ := utf8.DecodeRuneInString(s[start:])
		prev, _ := utf8.DecodeLastRuneInString(s[:start])
		if isWordRune(first) && isWordRune(prev) {
			return false
		}
	}
	if end > start && end < len(s) {
		last, _ := utf8.DecodeLastRuneInString(s[:end])
		next, _ := utf8.DecodeRuneInString(s[end:])
		if isWordRune(last) && isWordRune(next) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// ClassifyAll folds the classification of every snippet into one usage.
func (c *Classifier) ClassifyAll(snippets []string) hsscan.FileUsage {
	var usage hsscan.FileUsage
	for _, s := range snippets {
		usage.Merge(c.Classify(s))
	}
	return usage
}
