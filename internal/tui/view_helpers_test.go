package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "shorter than max", in: "office", max: 24, want: "office"},
		{name: "exactly max", in: "abcd", max: 4, want: "abcd"},
		{name: "truncated with ellipsis", in: "a-very-long-profile-name", max: 10, want: "a-very-..."},
		{name: "tiny max hard-cuts", in: "abcdef", max: 3, want: "abc"},
		{name: "zero max passes through", in: "abcdef", max: 0, want: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitText(tt.in, tt.max))
		})
	}
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "******", maskSecret("s3cret"))
	assert.Equal(t, "******", maskSecret("пароль")) // runes, not bytes
}

func TestRenderPage(t *testing.T) {
	page := renderPage("REMOTE DESKTOP KEEPER", "body text", "q: quit")

	assert.Contains(t, page, "REMOTE DESKTOP KEEPER")
	assert.Contains(t, page, "body text")
	assert.Contains(t, page, "q: quit")
	assert.Contains(t, page, "ctrl+c: quit")
	assert.Equal(t, 2, strings.Count(page, uiDivider))
}
