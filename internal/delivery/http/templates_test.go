package http

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bulbasaur", "Bulbasaur"},
		{"", ""},
		{"éclair", "Éclair"},
		{"ñ", "Ñ"},
		{"already", "Already"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := upperFirst(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestTitleTemplateFunc(t *testing.T) {
	tmpl := mustParseTemplates()

	view, err := tmpl.New("title-check").Parse(`{{title .}}`)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, view.Execute(&out, "ömega"))
	assert.Equal(t, "Ömega", out.String())
}
