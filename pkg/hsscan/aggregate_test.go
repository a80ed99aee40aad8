package hsscan_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/hsscan/pkg/hsscan"
)

func TestAggregate_UnionAndFileCount(t *testing.T) {
	results := map[string]hsscan.FileUsage{
		"a.html": hsscan.NewFileUsage([]string{"toggle"}, nil, false),
		"b.html": hsscan.NewFileUsage([]string{"show"}, []string{"if"}, false),
		"c.html": hsscan.NewFileUsage(nil, nil, true),
		"d.html": {},
	}

	agg := hsscan.Aggregate(results)

	assert.Equal(t, 3, agg.FileCount(), "empty usage must not be recorded")
	assert.Equal(t, []string{"a.html", "b.html", "c.html"}, agg.Paths())
	assert.ElementsMatch(t, []string{"show", "toggle"}, agg.Usage().SortedCommands())
	assert.ElementsMatch(t, []string{"if"}, agg.Usage().SortedBlocks())
	assert.True(t, agg.Positional)
}

func TestAggregate_ReplaceRecomputesUnion(t *testing.T) {
	agg := hsscan.NewAggregatedUsage()
	agg.Add("page.html", hsscan.NewFileUsage([]string{"toggle"}, []string{"repeat"}, true))
	agg.Add("other.html", hsscan.NewFileUsage([]string{"log"}, nil, false))

	agg.Add("page.html", hsscan.NewFileUsage([]string{"send"}, nil, false))

	assert.Equal(t, []string{"log", "send"}, agg.Usage().SortedCommands())
	assert.Empty(t, agg.Blocks)
	assert.False(t, agg.Positional)
	assert.Equal(t, 2, agg.FileCount())
}

func TestAggregate_InvariantHolds(t *testing.T) {
	agg := hsscan.NewAggregatedUsage()
	for i, u := range sampleUsages() {
		agg.Add(string(rune('a'+i))+".html", u)
	}

	var want hsscan.FileUsage
	for _, u := range agg.Files {
		want.Merge(u)
	}
	assert.True(t, want.Equal(agg.Usage()))
}

func TestAggregate_JSONShape(t *testing.T) {
	agg := hsscan.Aggregate(map[string]hsscan.FileUsage{
		"x.html": hsscan.NewFileUsage([]string{"wait", "add"}, []string{"async"}, false),
		"y.html": hsscan.NewFileUsage([]string{"call"}, nil, true),
	})

	data, err := json.Marshal(agg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"commands":["add","call","wait"],"blocks":["async"],"positional":true,"file_count":2}`, string(data))
}

func TestAggregate_Empty(t *testing.T) {
	data, err := json.Marshal(hsscan.Aggregate(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"commands":[],"blocks":[],"positional":false,"file_count":0}`, string(data))
}
