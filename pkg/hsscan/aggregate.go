package hsscan

import (
	"encoding/json"
	"sort"
)

// AggregatedUsage is the union of usages across many files, together with
// the per-file breakdown.
//
// Commands, Blocks and Positional always equal the union of the entries in
// Files. Use Add or Aggregate to keep that invariant; do not edit the fields
// directly.
type AggregatedUsage struct {
	Commands   map[string]struct{}
	Blocks     map[string]struct{}
	Positional bool

	// Files maps a path to its usage. Only non-empty usages are present.
	Files map[string]FileUsage
}

// NewAggregatedUsage returns an empty aggregate.
func NewAggregatedUsage() *AggregatedUsage {
	return &AggregatedUsage{
		Commands: make(map[string]struct{}),
		Blocks:   make(map[string]struct{}),
		Files:    make(map[string]FileUsage),
	}
}

// Aggregate builds an aggregate from a path -> usage mapping such as the one
// returned by a directory scan. Empty usages are dropped.
func Aggregate(results map[string]FileUsage) *AggregatedUsage {
	agg := NewAggregatedUsage()
	for path, usage := range results {
		agg.Add(path, usage)
	}
	return agg
}

// Add records usage for path. Empty usages are ignored. When path is already
// present its entry is replaced and the union recomputed.
func (a *AggregatedUsage) Add(path string, usage FileUsage) {
	if usage.IsEmpty() {
		return
	}
	if a.Files == nil {
		a.Files = make(map[string]FileUsage)
	}
	_, replaced := a.Files[path]
	a.Files[path] = usage
	if replaced {
		a.recompute()
		return
	}
	u := a.Usage()
	u.Merge(usage)
	a.Commands, a.Blocks, a.Positional = u.Commands, u.Blocks, u.Positional
}

func (a *AggregatedUsage) recompute() {
	var u FileUsage
	for _, fu := range a.Files {
		u.Merge(fu)
	}
	a.Commands, a.Blocks, a.Positional = u.Commands, u.Blocks, u.Positional
}

// Usage returns the union as a FileUsage sharing the aggregate's sets.
func (a *AggregatedUsage) Usage() FileUsage {
	return FileUsage{Commands: a.Commands, Blocks: a.Blocks, Positional: a.Positional}
}

// FileCount returns the number of files with non-empty usage.
func (a *AggregatedUsage) FileCount() int { return len(a.Files) }

// Paths returns the recorded file paths in sorted order.
func (a *AggregatedUsage) Paths() []string {
	paths := make([]string, 0, len(a.Files))
	for p := range a.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// AggregateSummary is the serialized shape of an AggregatedUsage.
type AggregateSummary struct {
	Commands   []string `json:"commands" yaml:"commands"`
	Blocks     []string `json:"blocks" yaml:"blocks"`
	Positional bool     `json:"positional" yaml:"positional"`
	FileCount  int      `json:"file_count" yaml:"file_count"`
}

// Summary returns the serialized shape with sorted lists.
func (a *AggregatedUsage) Summary() AggregateSummary {
	return AggregateSummary{
		Commands:   sortedKeys(a.Commands),
		Blocks:     sortedKeys(a.Blocks),
		Positional: a.Positional,
		FileCount:  a.FileCount(),
	}
}

func (a *AggregatedUsage) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Summary())
}

func (a *AggregatedUsage) MarshalYAML() (interface{}, error) {
	return a.Summary(), nil
}
