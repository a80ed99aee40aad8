package hsscan

import (
	"encoding/json"
	"sort"
)

// FileUsage is the set of language features detected in one file, or in one
// snippet before it is folded into its file.
//
// The zero value is an empty usage and is ready to use. Values placed into an
// AggregatedUsage or a scan result map must be treated as read-only.
type FileUsage struct {
	Commands   map[string]struct{}
	Blocks     map[string]struct{}
	Positional bool
}

// NewFileUsage builds a usage from explicit command and block names.
// Names are stored as given; classification lower-cases before calling it.
func NewFileUsage(commands, blocks []string, positional bool) FileUsage {
	var u FileUsage
	for _, c := range commands {
		u.AddCommand(c)
	}
	for _, b := range blocks {
		u.AddBlock(b)
	}
	u.Positional = positional
	return u
}

// AddCommand records a command name.
func (u *FileUsage) AddCommand(name string) {
	if u.Commands == nil {
		u.Commands = make(map[string]struct{})
	}
	u.Commands[name] = struct{}{}
}

// AddBlock records a block kind.
func (u *FileUsage) AddBlock(kind string) {
	if u.Blocks == nil {
		u.Blocks = make(map[string]struct{})
	}
	u.Blocks[kind] = struct{}{}
}

// HasCommand reports whether name was detected.
func (u FileUsage) HasCommand(name string) bool {
	_, ok := u.Commands[name]
	return ok
}

// HasBlock reports whether kind was detected.
func (u FileUsage) HasBlock(kind string) bool {
	_, ok := u.Blocks[kind]
	return ok
}

// IsEmpty reports whether no command, no block and no positional reference
// was detected. Empty usages are never recorded in scan results.
func (u FileUsage) IsEmpty() bool {
	return len(u.Commands) == 0 && len(u.Blocks) == 0 && !u.Positional
}

// Merge folds other into u in place: set union for commands and blocks,
// logical OR for the positional flag.
func (u *FileUsage) Merge(other FileUsage) {
	for c := range other.Commands {
		u.AddCommand(c)
	}
	for b := range other.Blocks {
		u.AddBlock(b)
	}
	if other.Positional {
		u.Positional = true
	}
}

// Merge returns a fresh usage holding the union of a and b. Neither argument
// is modified. The operation is commutative, associative and idempotent, so
// results do not depend on the order files or snippets are processed in.
func Merge(a, b FileUsage) FileUsage {
	out := a.Clone()
	out.Merge(b)
	return out
}

// Clone returns a deep copy of u.
func (u FileUsage) Clone() FileUsage {
	var out FileUsage
	out.Merge(u)
	return out
}

// Equal reports whether u and other hold the same detections.
// Nil and empty sets compare equal.
func (u FileUsage) Equal(other FileUsage) bool {
	return u.Positional == other.Positional &&
		sameSet(u.Commands, other.Commands) &&
		sameSet(u.Blocks, other.Blocks)
}

// SortedCommands returns the command names in alphabetical order.
// The result is never nil.
func (u FileUsage) SortedCommands() []string { return sortedKeys(u.Commands) }

// SortedBlocks returns the block kinds in alphabetical order.
// The result is never nil.
func (u FileUsage) SortedBlocks() []string { return sortedKeys(u.Blocks) }

// UsageSummary is the serialized shape of a FileUsage.
type UsageSummary struct {
	Commands   []string `json:"commands" yaml:"commands"`
	Blocks     []string `json:"blocks" yaml:"blocks"`
	Positional bool     `json:"positional" yaml:"positional"`
}

// Summary returns the serialized shape with sorted lists.
func (u FileUsage) Summary() UsageSummary {
	return UsageSummary{
		Commands:   u.SortedCommands(),
		Blocks:     u.SortedBlocks(),
		Positional: u.Positional,
	}
}

func (u FileUsage) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Summary())
}

func (u FileUsage) MarshalYAML() (interface{}, error) {
	return u.Summary(), nil
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
