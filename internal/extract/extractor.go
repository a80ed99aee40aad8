// Package extract pulls raw hyperscript snippets out of template content.
package extract

import (
	"strings"

	"github.com/vvka-141/hsscan/internal/catalog"
)

// Extractor applies a catalog's carrier rules to content.
// Extractor is safe for concurrent use.
type Extractor struct {
	catalog *catalog.Catalog
}

// New creates an extractor for the given catalog.
// Panics if c is nil.
func New(c *catalog.Catalog) *Extractor {
	if c == nil {
		panic("catalog cannot be nil")
	}
	return &Extractor{catalog: c}
}

// Extract returns every snippet found in content. Rules are applied in
// catalog order and matches within a rule in left-to-right order. Snippets are
// trimmed and empty ones dropped. No deduplication is performed; a snippet
// held by two overlapping carriers appears twice.
func (e *Extractor) Extract(content string) []string {
	matches := e.ExtractMatches(content)
	if len(matches) == 0 {
		return nil
	}
	snippets := make([]string, len(matches))
	for i, m := range matches {
		snippets[i] = m.Snippet
	}
	return snippets
}

// Match is a snippet together with the carrier that held it.
type Match struct {
	Carrier string
	Snippet string
	// Offset is the byte offset of the untrimmed snippet in the content.
	Offset int
}

// ExtractMatches is like Extract but reports which carrier produced each
// snippet and where it starts.
func (e *Extractor) ExtractMatches(content string) []Match {
	var matches []Match
	for _, rule := range e.catalog.Carriers() {
		for _, m := range rule.Pattern.FindAllStringSubmatchIndex(content, -1) {
			start, end := m[2*rule.Group], m[2*rule.Group+1]
			if start < 0 {
				continue
			}
			if s := strings.TrimSpace(content[start:end]); s != "" {
				matches = append(matches, Match{Carrier: rule.Name, Snippet: s, Offset: start})
			}
		}
	}
	return matches
}
