package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/hsscan/pkg/hsscan"
)

const sampleExtension = `
carriers:
  - name: x-hs
    pattern: 'x-hs="([^"]*)"'
commands: [morph, toggle]
blocks:
  - kind: tell
    pattern: '\btell\b'
  - name: until
    kind: repeat
    pattern: '\brepeat\s+until\b'
positional: [random]
`

func TestParseExtension(t *testing.T) {
	ext, err := ParseExtension([]byte(sampleExtension))
	require.NoError(t, err)

	require.Len(t, ext.Carriers, 1)
	assert.Equal(t, "x-hs", ext.Carriers[0].Name)
	assert.Nil(t, ext.Carriers[0].Group)
	assert.Equal(t, []string{"morph", "toggle"}, ext.Commands)
	assert.Len(t, ext.Blocks, 2)
	assert.Equal(t, []string{"random"}, ext.Positional)
}

func TestParseExtension_Empty(t *testing.T) {
	ext, err := ParseExtension(nil)
	require.NoError(t, err)
	assert.True(t, ext.IsZero())
}

func TestParseExtension_UnknownField(t *testing.T) {
	_, err := ParseExtension([]byte("comands: [x]\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, hsscan.ErrInvalidPattern))
}

func TestExtend(t *testing.T) {
	ext, err := ParseExtension([]byte(sampleExtension))
	require.NoError(t, err)

	base := Default()
	c, err := Extend(base, ext)
	require.NoError(t, err)

	assert.Len(t, c.Carriers(), len(base.Carriers())+1)
	assert.Equal(t, "x-hs", c.Carriers()[len(c.Carriers())-1].Name)
	assert.Equal(t, 1, c.Carriers()[len(c.Carriers())-1].Group)

	assert.True(t, c.KnownCommand("morph"))
	assert.Len(t, c.Commands(), len(base.Commands())+1, "toggle is already known")

	assert.True(t, c.KnownBlock("tell"))
	assert.Equal(t, len(base.BlockKinds())+1, len(c.BlockKinds()), "until aliases repeat")
	assert.True(t, c.PositionalPattern().MatchString("pick random item"))

	assert.False(t, base.KnownCommand("morph"), "base must not change")
}

func TestExtend_ZeroReturnsBase(t *testing.T) {
	c, err := Extend(Default(), Extension{})
	require.NoError(t, err)
	assert.Same(t, Default(), c)
}

func TestExtend_InvalidRules(t *testing.T) {
	two := 2
	tests := []struct {
		name string
		ext  Extension
	}{
		{"bad carrier regex", Extension{Carriers: []CarrierSpec{{Name: "x", Pattern: "("}}}},
		{"carrier without name", Extension{Carriers: []CarrierSpec{{Pattern: `a="(.*)"`}}}},
		{"group out of range", Extension{Carriers: []CarrierSpec{{Name: "x", Pattern: `a="(.*)"`, Group: &two}}}},
		{"carrier without group", Extension{Carriers: []CarrierSpec{{Name: "x", Pattern: `a=".*"`}}}},
		{"bad block regex", Extension{Blocks: []BlockSpec{{Kind: "x", Pattern: "["}}}},
		{"block without kind", Extension{Blocks: []BlockSpec{{Pattern: "x"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extend(Default(), tt.ext)
			require.Error(t, err)
			assert.True(t, errors.Is(err, hsscan.ErrInvalidPattern), "got %v", err)
		})
	}
}

func TestLoadExtensionFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleExtension), 0644))

	ext, err := LoadExtensionFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"random"}, ext.Positional)

	_, err = LoadExtensionFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestExtend_ChangesFingerprint(t *testing.T) {
	base := Default()

	withCommand, err := Extend(base, Extension{Commands: []string{"morph"}})
	require.NoError(t, err)
	assert.NotEqual(t, base.Fingerprint(), withCommand.Fingerprint())

	withBlock, err := Extend(base, Extension{Blocks: []BlockSpec{{Kind: "tell", Pattern: `\btell\b`}}})
	require.NoError(t, err)
	assert.NotEqual(t, base.Fingerprint(), withBlock.Fingerprint())
	assert.NotEqual(t, withCommand.Fingerprint(), withBlock.Fingerprint())

	again, err := Extend(base, Extension{Commands: []string{"MORPH"}})
	require.NoError(t, err)
	assert.Equal(t, withCommand.Fingerprint(), again.Fingerprint(), "command case does not change the rules")
}
