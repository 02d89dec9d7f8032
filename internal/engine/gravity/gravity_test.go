package gravity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gravity/internal/core/domain"
	"go.trai.ch/gravity/internal/engine/gravity"
)

func TestCompile(t *testing.T) {
	a := []string{"ads.example.com", "track.example.com"}
	b := []string{"track.example.com", "spy.example.net"}

	set := gravity.Compile(a, b)

	assert.Equal(t, 4, set.Raw)
	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"ads.example.com", "spy.example.net", "track.example.com"}, set.Sorted())
}

func TestCompile_CaseSensitive(t *testing.T) {
	set := gravity.Compile([]string{"Ads.example.com"}, []string{"ads.example.com"})
	assert.Equal(t, 2, set.Len())
}

func TestCompile_Empty(t *testing.T) {
	set := gravity.Compile()
	assert.Equal(t, 0, set.Raw)
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Sorted())

	set = gravity.Compile(nil, []string{})
	assert.Equal(t, 0, set.Len())
}

func TestCompile_DistinctCount(t *testing.T) {
	tests := []struct {
		name   string
		lists  [][]string
		raw    int
		unique int
	}{
		{name: "single list with repeats", lists: [][]string{{"a", "a", "b"}}, raw: 3, unique: 2},
		{name: "disjoint", lists: [][]string{{"a"}, {"b"}, {"c"}}, raw: 3, unique: 3},
		{name: "identical", lists: [][]string{{"a", "b"}, {"b", "a"}}, raw: 4, unique: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := gravity.Compile(tt.lists...)
			assert.Equal(t, tt.raw, set.Raw)
			assert.Equal(t, tt.unique, set.Len())
		})
	}
}

func TestCompileSources(t *testing.T) {
	sources := []domain.Source{
		{Location: "a", Entries: []string{"ads.example.com", "track.example.com"}},
		{Location: "b"},
		{Location: "c", Entries: []string{"track.example.com", "spy.example.net"}},
	}

	set := gravity.CompileSources(sources)
	assert.Equal(t, 4, set.Raw)
	assert.Equal(t, 3, set.Len())
}
