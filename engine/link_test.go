package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLink(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain link", "http://example.com/video", "http://example.com/video"},
		{"https link", "https://example.com/video", "https://example.com/video"},
		{"link with text", "check this out https://x.com/post/1 please", "https://x.com/post/1"},
		{"first of several", "http://a.com http://b.com", "http://a.com"},
		{"no link", "hello everyone", ""},
		{"scheme only elsewhere", "ftp://example.com/file", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLink(tt.content))
		})
	}
}

func TestValidateLink(t *testing.T) {
	valid := []string{
		"http://example.com",
		"https://example.com/path?query=1",
		"https://x.com/post/123",
	}
	for _, link := range valid {
		assert.NoError(t, ValidateLink(link), "link %q", link)
	}

	invalid := []string{
		"",
		"example.com",
		"ftp://example.com",
		"http://",
		"https:// example.com",
		"//example.com/path",
	}
	for _, link := range invalid {
		assert.ErrorIs(t, ValidateLink(link), ErrInvalidLink, "link %q", link)
	}
}
