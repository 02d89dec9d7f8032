package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gravity/internal/core/domain"
)

func TestLayoutPaths(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "DefaultGravityPath", got: domain.DefaultGravityPath(), expected: ".gravity"},
		{name: "DefaultStorePath", got: domain.DefaultStorePath(), expected: filepath.Join(".gravity", "store")},
		{name: "DefaultHostsPath", got: domain.DefaultHostsPath(), expected: filepath.Join(".gravity", "gravity.list")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestSource_Accessors(t *testing.T) {
	var empty domain.Source
	assert.False(t, empty.Fetched())
	assert.Empty(t, empty.Validator())

	src := domain.Source{
		Location: "https://Lists.Example.org/hosts.txt",
		Entries:  []string{"ads.example.com"},
		ETag:     `"abc"`,
	}
	assert.True(t, src.Fetched())
	assert.Equal(t, "https://Lists.Example.org/hosts.txt", src.URI())
	assert.Equal(t, []string{"ads.example.com"}, src.Domains())
	assert.Equal(t, `"abc"`, src.Validator())
	assert.Equal(t, "lists.example.org", src.Host())
}

func TestHostOf_Unparseable(t *testing.T) {
	assert.Equal(t, "not a uri", domain.HostOf("not a uri"))
}

func TestCompiledSet(t *testing.T) {
	var set domain.CompiledSet
	set.Add("b.example.com")
	set.Add("a.example.com")
	set.Add("b.example.com")

	assert.Equal(t, 3, set.Raw)
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, set.Sorted())

	assert.True(t, set.Remove("a.example.com"))
	assert.False(t, set.Remove("a.example.com"))
	assert.True(t, set.Insert("c.example.com"))
	assert.False(t, set.Insert("c.example.com"))
	assert.True(t, set.Contains("c.example.com"))
	assert.Equal(t, 3, set.Raw)
}

func TestRunSummary_Failed(t *testing.T) {
	summary := domain.RunSummary{
		Outcomes: []domain.SourceOutcome{
			{URI: "a", Status: domain.StatusSkipped},
			{URI: "b", Status: domain.StatusFailed, Err: errors.New("boom")},
			{URI: "c", Status: domain.StatusUpdated},
		},
	}

	failed := summary.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].URI)
	assert.Equal(t, 1, summary.Fetched())
}

func TestParseError_Message(t *testing.T) {
	err := &domain.ParseError{Line: 3, Text: "localhost", Reason: "missing domain"}
	assert.Equal(t, `line 3: missing domain: "localhost"`, err.Error())

	var target *domain.ParseError
	require.ErrorAs(t, errors.Join(domain.ErrParse, err), &target)
	assert.Equal(t, 3, target.Line)
}

func TestDecision_Constructors(t *testing.T) {
	d := domain.Update(domain.ReasonETagChanged, `"v2"`)
	assert.Equal(t, domain.ActionUpdate, d.Action)
	assert.Equal(t, "update", d.Action.String())
	assert.Equal(t, `"v2"`, d.ETag)

	s := domain.Skip(domain.ReasonETagUnchanged)
	assert.Equal(t, domain.ActionSkip, s.Action)
	assert.Equal(t, "skip", s.Action.String())
}
