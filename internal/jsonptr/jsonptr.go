// Package jsonptr implements RFC 6901 JSON Pointer token escaping, pointer
// construction, and evaluation over parsed JSON documents.
package jsonptr

import (
	"fmt"
	"strconv"
	"strings"
)

// EscapeToken escapes a raw reference token for use as a pointer segment:
// '~' becomes "~0" and '/' becomes "~1".
func EscapeToken(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}

// UnescapeToken reverses EscapeToken. A '~' not followed by '0' or '1' is
// an error.
func UnescapeToken(token string) (string, error) {
	if !strings.ContainsRune(token, '~') {
		return token, nil
	}
	var b strings.Builder
	b.Grow(len(token))
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c != '~' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(token) {
			return "", fmt.Errorf("invalid token %q: trailing '~'", token)
		}
		switch token[i] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("invalid token %q: unknown escape '~%c'", token, token[i])
		}
	}
	return b.String(), nil
}

// AppendToken extends ptr with one escaped reference token.
func AppendToken(ptr, token string) string {
	return ptr + "/" + EscapeToken(token)
}

// AppendIndex extends ptr with an array index segment.
func AppendIndex(ptr string, i int) string {
	return ptr + "/" + strconv.Itoa(i)
}

// Eval walks doc along ptr and returns the referenced value. The empty
// pointer refers to doc itself. Lookup fails on missing properties, bad
// indices, and scalar intermediates.
func Eval(doc any, ptr string) (any, bool) {
	if ptr == "" {
		return doc, true
	}
	if !strings.HasPrefix(ptr, "/") {
		return nil, false
	}
	for _, token := range strings.Split(ptr[1:], "/") {
		raw, err := UnescapeToken(token)
		if err != nil {
			return nil, false
		}
		switch v := doc.(type) {
		case map[string]any:
			child, ok := v[raw]
			if !ok {
				return nil, false
			}
			doc = child
		case []any:
			i, ok := parseIndex(raw)
			if !ok || i >= len(v) {
				return nil, false
			}
			doc = v[i]
		default:
			return nil, false
		}
	}
	return doc, true
}

// parseIndex parses an array index token: decimal digits, no leading zeros.
func parseIndex(token string) (int, bool) {
	if token == "" || (len(token) > 1 && token[0] == '0') {
		return 0, false
	}
	i, err := strconv.Atoi(token)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}
