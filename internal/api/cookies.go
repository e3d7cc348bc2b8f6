package api

import (
	"net/url"
	"strings"
)

// Cookie handling constants
const (
	// CSRFCookieName is the cookie the backend issues its anti-forgery token in.
	CSRFCookieName = "csrftoken"

	// CSRFHeader carries the token back on mutating requests.
	CSRFHeader = "X-CSRFToken"
)

// TokenFromCookies parses a `;`-delimited cookie string (entries optionally
// space-padded, name=value pairs) and returns the URL-decoded value for name.
// Absence is not an error: the second return is false when the name is not
// present or the string is empty. The first matching entry wins. Values with
// malformed percent escapes are returned verbatim.
func TokenFromCookies(cookies, name string) (string, bool) {
	if cookies == "" {
		return "", false
	}
	prefix := name + "="
	for _, entry := range strings.Split(cookies, ";") {
		entry = strings.TrimSpace(entry)
		if !strings.HasPrefix(entry, prefix) {
			continue
		}
		raw := entry[len(prefix):]
		value, err := url.PathUnescape(raw)
		if err != nil {
			return raw, true
		}
		return value, true
	}
	return "", false
}
