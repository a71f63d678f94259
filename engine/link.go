package engine

import (
	"net/url"
	"regexp"
)

var linkPattern = regexp.MustCompile(`https?://\S+`)

// ExtractLink returns the first http(s) URL found in the message content,
// or "" if the content contains none.
func ExtractLink(content string) string {
	return linkPattern.FindString(content)
}

// ValidateLink checks that link is a well-formed absolute http(s) URL.
func ValidateLink(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return ErrInvalidLink
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidLink
	}
	return nil
}
