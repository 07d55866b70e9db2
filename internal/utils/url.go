package utils

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// schemeRegex matches a leading URL scheme such as "http://"
var schemeRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// LooksLikeURL reports whether s carries a URL scheme.
// Strings without one are treated as project-relative paths.
func LooksLikeURL(s string) bool {
	return schemeRegex.MatchString(strings.TrimSpace(s))
}

// ValidateHTTPURL checks that rawURL is a well-formed absolute http(s) URL
func ValidateHTTPURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if u.Hostname() == "" {
		return nil, errors.New("missing host")
	}
	if strings.ContainsAny(u.Host, " \t") {
		return nil, errors.New("host contains whitespace")
	}

	return u, nil
}

// AppendQuery joins base and an already encoded query string
func AppendQuery(base, query string) string {
	if query == "" {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + query
}
