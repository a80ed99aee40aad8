package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/hsscan/internal/catalog"
	"github.com/vvka-141/hsscan/pkg/hsscan"
)

// Format selects an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// Formats lists the supported formats in display order.
func Formats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatText)}
}

// ParseFormat converts a flag value into a Format. Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want one of %s): %w", s, strings.Join(Formats(), ", "), hsscan.ErrInvalidConfig)
	}
}

// Options tune rendering.
type Options struct {
	// PerFile adds each file's usage, keyed by path.
	PerFile bool

	// Color enables lipgloss styling of text output. See ColorEnabled.
	Color bool
}

type aggregateDocument struct {
	hsscan.AggregateSummary `yaml:",inline"`
	Files                   map[string]hsscan.UsageSummary `json:"files,omitempty" yaml:"files,omitempty"`
}

// Render writes agg to w in the requested format.
func Render(w io.Writer, format Format, agg *hsscan.AggregatedUsage, opts Options) error {
	if agg == nil {
		agg = hsscan.NewAggregatedUsage()
	}

	switch format {
	case FormatJSON, FormatYAML:
		doc := aggregateDocument{AggregateSummary: agg.Summary()}
		if opts.PerFile {
			doc.Files = make(map[string]hsscan.UsageSummary, agg.FileCount())
			for path, usage := range agg.Files {
				doc.Files[path] = usage.Summary()
			}
		}
		return encode(w, format, doc)
	case FormatText:
		return renderText(w, agg, opts)
	default:
		return fmt.Errorf("unknown format %q: %w", format, hsscan.ErrInvalidConfig)
	}
}

// RenderUsage writes a single file's usage to w.
func RenderUsage(w io.Writer, format Format, label string, usage hsscan.FileUsage, opts Options) error {
	switch format {
	case FormatJSON, FormatYAML:
		return encode(w, format, usage.Summary())
	case FormatText:
		st := newStyles(w, opts.Color)
		var b strings.Builder
		b.WriteString(st.path(label))
		b.WriteString("\n")
		writeUsageLines(&b, st, "  ", usage.Summary())
		_, err := io.WriteString(w, b.String())
		return err
	default:
		return fmt.Errorf("unknown format %q: %w", format, hsscan.ErrInvalidConfig)
	}
}

func encode(w io.Writer, format Format, v interface{}) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func renderText(w io.Writer, agg *hsscan.AggregatedUsage, opts Options) error {
	st := newStyles(w, opts.Color)
	summary := agg.Summary()

	var b strings.Builder
	b.WriteString(st.title(fmt.Sprintf("Hyperscript usage in %d %s", summary.FileCount, plural(summary.FileCount, "file", "files"))))
	b.WriteString("\n")
	writeUsageLines(&b, st, "  ", hsscan.UsageSummary{
		Commands:   summary.Commands,
		Blocks:     summary.Blocks,
		Positional: summary.Positional,
	})

	if opts.PerFile && summary.FileCount > 0 {
		b.WriteString("\n")
		for _, path := range agg.Paths() {
			b.WriteString(st.path(path))
			b.WriteString("\n")
			writeUsageLines(&b, st, "  ", agg.Files[path].Summary())
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeUsageLines(b *strings.Builder, st styles, indent string, s hsscan.UsageSummary) {
	fmt.Fprintf(b, "%s%s %s\n", indent, st.label("commands:  "), list(st, s.Commands))
	fmt.Fprintf(b, "%s%s %s\n", indent, st.label("blocks:    "), list(st, s.Blocks))
	flag := SymbolCross
	if s.Positional {
		flag = SymbolCheck
	}
	if !st.enabled {
		flag = fmt.Sprintf("%t", s.Positional)
	}
	fmt.Fprintf(b, "%s%s %s\n", indent, st.label("positional:"), st.value(flag))
}

func list(st styles, items []string) string {
	if len(items) == 0 {
		return st.muted("(none)")
	}
	return st.value(strings.Join(items, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// CatalogSummary is the serialized shape of a pattern catalog.
type CatalogSummary struct {
	Carriers   []CarrierSummary `json:"carriers" yaml:"carriers"`
	Commands   []string         `json:"commands" yaml:"commands"`
	Blocks     []BlockSummary   `json:"blocks" yaml:"blocks"`
	Positional []string         `json:"positional" yaml:"positional"`
}

type CarrierSummary struct {
	Name    string `json:"name" yaml:"name"`
	Pattern string `json:"pattern" yaml:"pattern"`
	Group   int    `json:"group" yaml:"group"`
}

type BlockSummary struct {
	Name    string `json:"name" yaml:"name"`
	Kind    string `json:"kind" yaml:"kind"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

// SummarizeCatalog returns the serialized shape of c.
func SummarizeCatalog(c *catalog.Catalog) CatalogSummary {
	out := CatalogSummary{
		Commands:   c.Commands(),
		Positional: c.PositionalKeywords(),
	}
	for _, rule := range c.Carriers() {
		out.Carriers = append(out.Carriers, CarrierSummary{Name: rule.Name, Pattern: rule.Pattern.String(), Group: rule.Group})
	}
	for _, rule := range c.Blocks() {
		out.Blocks = append(out.Blocks, BlockSummary{Name: rule.Name, Kind: rule.Kind, Pattern: rule.Pattern.String()})
	}
	return out
}

// RenderCatalog writes the rules of c to w.
func RenderCatalog(w io.Writer, format Format, c *catalog.Catalog, opts Options) error {
	summary := SummarizeCatalog(c)

	switch format {
	case FormatJSON, FormatYAML:
		return encode(w, format, summary)
	case FormatText:
		st := newStyles(w, opts.Color)
		var b strings.Builder

		b.WriteString(st.title("Carriers"))
		b.WriteString("\n")
		for _, carrier := range summary.Carriers {
			fmt.Fprintf(&b, "  %s %s %s\n", SymbolBullet, st.path(carrier.Name), st.muted(carrier.Pattern))
		}

		b.WriteString("\n")
		b.WriteString(st.title("Commands"))
		b.WriteString("\n  ")
		b.WriteString(list(st, summary.Commands))
		b.WriteString("\n\n")

		b.WriteString(st.title("Blocks"))
		b.WriteString("\n")
		for _, block := range summary.Blocks {
			name := block.Name
			if block.Name != block.Kind {
				name = block.Name + " -> " + block.Kind
			}
			fmt.Fprintf(&b, "  %s %s %s\n", SymbolBullet, st.path(name), st.muted(block.Pattern))
		}

		b.WriteString("\n")
		b.WriteString(st.title("Positional"))
		b.WriteString("\n  ")
		b.WriteString(list(st, summary.Positional))
		b.WriteString("\n")

		_, err := io.WriteString(w, b.String())
		return err
	default:
		return fmt.Errorf("unknown format %q: %w", format, hsscan.ErrInvalidConfig)
	}
}
