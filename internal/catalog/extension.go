package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/hsscan/pkg/hsscan"
)

// Extension describes rules layered on top of a base catalog.
type Extension struct {
	Carriers   []CarrierSpec `yaml:"carriers,omitempty"`
	Commands   []string      `yaml:"commands,omitempty"`
	Blocks     []BlockSpec   `yaml:"blocks,omitempty"`
	Positional []string      `yaml:"positional,omitempty"`
}

// CarrierSpec is the textual form of an ExtractionRule. Group defaults to 1.
type CarrierSpec struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Group   *int   `yaml:"group,omitempty"`
}

// BlockSpec is the textual form of a BlockRule. Patterns are compiled
// case-insensitively. Name defaults to Kind.
type BlockSpec struct {
	Name    string `yaml:"name,omitempty"`
	Kind    string `yaml:"kind"`
	Pattern string `yaml:"pattern"`
}

// IsZero reports whether the extension adds nothing.
func (e Extension) IsZero() bool {
	return len(e.Carriers) == 0 && len(e.Commands) == 0 && len(e.Blocks) == 0 && len(e.Positional) == 0
}

// ParseExtension decodes a YAML extension document. Unknown fields are rejected.
func ParseExtension(data []byte) (Extension, error) {
	var ext Extension
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ext); err != nil {
		if errors.Is(err, io.EOF) {
			return Extension{}, nil
		}
		return Extension{}, fmt.Errorf("failed to parse catalog extension: %v: %w", err, hsscan.ErrInvalidPattern)
	}
	return ext, nil
}

// LoadExtensionFile reads and decodes an extension file.
func LoadExtensionFile(path string) (Extension, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Extension{}, fmt.Errorf("failed to read catalog extension: %w", err)
	}
	return ParseExtension(data)
}

// Extend returns a new catalog holding base's rules followed by ext's rules.
// base is not modified. Commands and positional keywords already present are
// skipped.
func Extend(base *Catalog, ext Extension) (*Catalog, error) {
	if ext.IsZero() {
		return base, nil
	}

	carriers := base.Carriers()
	for _, spec := range ext.Carriers {
		rule, err := spec.compile()
		if err != nil {
			return nil, err
		}
		carriers = append(carriers, rule)
	}

	blocks := base.Blocks()
	for _, spec := range ext.Blocks {
		rule, err := spec.compile()
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, rule)
	}

	commands := append(base.Commands(), ext.Commands...)
	positional := append(base.PositionalKeywords(), ext.Positional...)

	return New(carriers, commands, blocks, positional)
}

func (s CarrierSpec) compile() (ExtractionRule, error) {
	if s.Name == "" {
		return ExtractionRule{}, fmt.Errorf("carrier with pattern %q has no name: %w", s.Pattern, hsscan.ErrInvalidPattern)
	}
	re, err := regexp.Compile(s.Pattern)
	if err != nil {
		return ExtractionRule{}, fmt.Errorf("carrier %q: %v: %w", s.Name, err, hsscan.ErrInvalidPattern)
	}
	group := 1
	if s.Group != nil {
		group = *s.Group
	}
	if group < 0 || group > re.NumSubexp() {
		return ExtractionRule{}, fmt.Errorf("carrier %q uses group %d but pattern has %d: %w",
			s.Name, group, re.NumSubexp(), hsscan.ErrInvalidPattern)
	}
	return ExtractionRule{Name: s.Name, Pattern: re, Group: group}, nil
}

func (s BlockSpec) compile() (BlockRule, error) {
	kind := strings.ToLower(strings.TrimSpace(s.Kind))
	if kind == "" {
		return BlockRule{}, fmt.Errorf("block rule %q has no kind: %w", s.Name, hsscan.ErrInvalidPattern)
	}
	name := s.Name
	if name == "" {
		name = kind
	}
	re, err := regexp.Compile("(?i)" + s.Pattern)
	if err != nil {
		return BlockRule{}, fmt.Errorf("block rule %q: %v: %w", name, err, hsscan.ErrInvalidPattern)
	}
	return BlockRule{Name: name, Kind: kind, Pattern: re}, nil
}
