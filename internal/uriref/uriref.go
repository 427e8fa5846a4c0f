// Package uriref provides string-level helpers for URI references: fragment
// splitting, percent-decoding, and legacy anchor extraction.
package uriref

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// SplitFragment splits a URI reference at the first '#' into the
// pre-fragment part and the raw fragment. The '#' itself belongs to neither;
// a reference without '#' has an empty fragment.
func SplitFragment(ref string) (string, string) {
	if i := strings.IndexByte(ref, '#'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// PathUnescape percent-decodes s without treating '+' specially.
func PathUnescape(s string) (string, error) {
	return url.PathUnescape(s)
}

// FragmentToAnchor converts a raw URI fragment to the anchor name it
// declares. Empty fragments and JSON Pointer fragments carry no anchor; the
// second result reports whether an anchor is present. Fragments that do not
// decode to valid UTF-8 are an error.
func FragmentToAnchor(fragment string) (string, bool, error) {
	if fragment == "" || strings.HasPrefix(fragment, "/") {
		return "", false, nil
	}
	decoded, err := url.PathUnescape(fragment)
	if err != nil {
		return "", false, fmt.Errorf("decode fragment %q: %w", fragment, err)
	}
	if !utf8.ValidString(decoded) {
		return "", false, fmt.Errorf("decode fragment %q: not valid UTF-8", fragment)
	}
	return decoded, true, nil
}
