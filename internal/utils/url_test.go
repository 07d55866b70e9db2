package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"http://example.test/data.json", true},
		{"https://example.test/data.json", true},
		{"ftp://example.test/data.json", true},
		{"http://", true},
		{"demos/src/data.json", false},
		{"./data.json", false},
		{"/abs/data.json", false},
		{"C:\\demos\\data.json", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, LooksLikeURL(tt.input))
		})
	}
}

func TestValidateHTTPURL(t *testing.T) {
	valid := []string{
		"http://example.test/data.json",
		"https://example.test:8443/a/b?c=d",
		"http://127.0.0.1:9000/data.json",
	}
	for _, raw := range valid {
		t.Run("valid "+raw, func(t *testing.T) {
			u, err := ValidateHTTPURL(raw)
			assert.NoError(t, err)
			assert.NotNil(t, u)
		})
	}

	invalid := []string{
		"http://",
		"http:///data.json",
		"ftp://example.test/data.json",
		"http://exa mple.test/data.json",
		"http://[::1/data.json",
	}
	for _, raw := range invalid {
		t.Run("invalid "+raw, func(t *testing.T) {
			_, err := ValidateHTTPURL(raw)
			assert.Error(t, err)
		})
	}
}

func TestAppendQuery(t *testing.T) {
	assert.Equal(t, "https://x.test/p", AppendQuery("https://x.test/p", ""))
	assert.Equal(t, "https://x.test/p?a=1", AppendQuery("https://x.test/p", "a=1"))
	assert.Equal(t, "https://x.test/p?v=2&a=1", AppendQuery("https://x.test/p?v=2", "a=1"))
}
