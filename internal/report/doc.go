// Package report renders scan results and catalogs as JSON, YAML or text.
//
// JSON and YAML output use the serialized shapes from pkg/hsscan: sorted
// commands and blocks, the positional flag and, for aggregates, file_count.
// Text output is meant for people and is styled with lipgloss when the
// destination is a color-capable terminal.
package report
