package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Parse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup("index.tmpl"))
}

func TestPercent(t *testing.T) {
	percent := Funcs()["percent"].(func(float64) string)
	assert.Equal(t, "90%", percent(90))
	assert.Equal(t, "87.5%", percent(87.5))
}

func TestTemplates_LoadingPage(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "index.tmpl", map[string]any{
		"Status": "loading",
		"Hero":   map[string]any{"Name": ""},
		"Footer": map[string]any{"Year": 2026, "Name": ""},
	}))
	assert.Contains(t, buf.String(), `http-equiv="refresh"`)
}
