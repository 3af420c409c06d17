package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoRef(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RepoRef
	}{
		{"bare pair", "golang/go", RepoRef{Owner: "golang", Name: "go"}},
		{"https url", "https://github.com/facebook/react", RepoRef{Owner: "facebook", Name: "react"}},
		{"url with git suffix", "https://github.com/golang/go.git", RepoRef{Owner: "golang", Name: "go"}},
		{"url with trailing path", "https://github.com/golang/go/tree/master/src", RepoRef{Owner: "golang", Name: "go"}},
		{"no scheme", "github.com/torvalds/linux", RepoRef{Owner: "torvalds", Name: "linux"}},
		{"surrounding whitespace", "  golang/go  ", RepoRef{Owner: "golang", Name: "go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepoRef(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRepoRef_Invalid(t *testing.T) {
	tests := []string{"", "   ", "justaname", "/repo", "owner/", "owner/.git"}

	for _, input := range tests {
		_, err := ParseRepoRef(input)
		assert.ErrorIs(t, err, ErrInvalidRepoRef, "input %q", input)
	}
}

func TestRepoRef_String(t *testing.T) {
	ref := RepoRef{Owner: "golang", Name: "go"}
	assert.Equal(t, "golang/go", ref.String())
}
