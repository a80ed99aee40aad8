package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/hsscan/internal/catalog"
	"github.com/vvka-141/hsscan/pkg/hsscan"
)

func newDefault() *Classifier { return New(catalog.Default()) }

func TestNew_NilCatalog(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil catalog")
		}
	}()
	New(nil)
}

func TestClassify_Commands(t *testing.T) {
	tests := []struct {
		snippet string
		want    []string
	}{
		{"on click toggle .foo", []string{"toggle"}},
		{"on click TOGGLE .foo then Hide me", []string{"hide", "toggle"}},
		{"on click removeClass .a from me", []string{"removeclass"}},
		{"on click remove me", []string{"remove"}},
		{"on click put 'x' into #out then increment :count", []string{"increment", "put"}},
		{"on load wait 2s then transition opacity to 0 then send done", []string{"send", "transition", "wait"}},
		{"on click go to url /home", []string{"go"}},
		{"on keyup call validate() then focus #next then blur me", []string{"blur", "call", "focus"}},
		{"def f() return 1 end", []string{"return"}},
		{"on click settings showcase", []string{}},
	}

	c := newDefault()
	for _, tt := range tests {
		t.Run(tt.snippet, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.snippet).SortedCommands())
		})
	}
}

func TestClassify_Blocks(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		want    []string
	}{
		{"if", "on click if I match .on remove .on end", []string{"if"}},
		{"unless maps to if", "on click unless x is true log x end", []string{"if"}},
		{"if and unless", "if a log 1 end unless b log 2 end", []string{"if"}},
		{"repeat with count", "repeat 3 times log 'x' end", []string{"repeat"}},
		{"repeat with single time", "repeat 1 time log 'x' end", []string{"repeat"}},
		{"repeat with colon var", "repeat :n times log 'x' end", []string{"repeat"}},
		{"repeat with dollar var", "repeat $count times log 'x' end", []string{"repeat"}},
		{"repeat with dotted path", "repeat my.count times log 'x' end", []string{"repeat"}},
		{"repeat without count", "repeat times log 'x' end", []string{}},
		{"bare repeat", "repeat forever log 'x' end", []string{}},
		{"for each", "for each item in .list log item end", []string{"for"}},
		{"for every", "for every x in y log x end", []string{"for"}},
		{"bare for", "for i = 0", []string{}},
		{"while", "repeat while x < 10 increment x end", []string{"while"}},
		{"fetch", "on click fetch /api then put it into me", []string{"fetch"}},
		{"async", "async do wait 1s end", []string{"async"}},
		{"case insensitive", "IF x LOG y END", []string{"if"}},
	}

	c := newDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.snippet)
			assert.Equal(t, tt.want, got.SortedBlocks())
			assert.False(t, got.HasBlock("unless"))
		})
	}
}

func TestClassify_Positional(t *testing.T) {
	tests := []struct {
		snippet string
		want    bool
	}{
		{"on click add .x to the first <li/>", true},
		{"on click remove the closest .card", true},
		{"on click toggle .open on next .panel", true},
		{"on click log PARENT", true},
		{"on click toggle .foo", false},
		{"on click log 'firstly'", false},
	}

	c := newDefault()
	for _, tt := range tests {
		t.Run(tt.snippet, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.snippet).Positional)
		})
	}
}

func TestClassify_UnicodeWordBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		snippet    string
		commands   []string
		blocks     []string
		positional bool
	}{
		{name: "accented prefix", snippet: "éshow", commands: []string{}, blocks: []string{}},
		{name: "accented suffix", snippet: "showé me", commands: []string{}, blocks: []string{}},
		{name: "cyrillic neighbour", snippet: "toggleж", commands: []string{}, blocks: []string{}},
		{name: "combining mark", snippet: "hide\u0301 me", commands: []string{}, blocks: []string{}},
		{name: "block keyword", snippet: "éif x log y end", commands: []string{"log"}, blocks: []string{}},
		{name: "positional keyword", snippet: "put 1 into ñfirst", commands: []string{"put"}, blocks: []string{}},
		{name: "punctuation still bounds", snippet: "«show» ¡hide!", commands: []string{"hide", "show"}, blocks: []string{}},
		{name: "later match counts", snippet: "éif a end if b end", commands: []string{}, blocks: []string{"if"}},
		{name: "accent away from keyword", snippet: "on click toggle .café then first", commands: []string{"toggle"}, blocks: []string{}, positional: true},
	}

	c := newDefault()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.snippet)
			assert.Equal(t, tt.commands, got.SortedCommands())
			assert.Equal(t, tt.blocks, got.SortedBlocks())
			assert.Equal(t, tt.positional, got.Positional)
		})
	}
}

func TestClassify_AllPassesRun(t *testing.T) {
	got := newDefault().Classify("on click for each li in the first .list if li matches .x toggle .y on li end end")

	assert.Equal(t, []string{"toggle"}, got.SortedCommands())
	assert.Equal(t, []string{"for", "if"}, got.SortedBlocks())
	assert.True(t, got.Positional)
}

func TestClassify_Empty(t *testing.T) {
	assert.True(t, newDefault().Classify("").IsEmpty())
	assert.True(t, newDefault().Classify("on click").IsEmpty())
}

func TestClassify_ReturnsFreshValue(t *testing.T) {
	c := newDefault()
	a := c.Classify("toggle .a")
	a.AddCommand("mutated")

	b := c.Classify("toggle .a")
	assert.False(t, b.HasCommand("mutated"))
}

func TestClassifyAll_UnionsSnippets(t *testing.T) {
	got := newDefault().ClassifyAll([]string{"on click show #a", "if x log y end", "on click show #a"})

	want := hsscan.NewFileUsage([]string{"show", "log"}, []string{"if"}, false)
	assert.True(t, want.Equal(got), "got %+v", got.Summary())
}
