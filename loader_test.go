package boon

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/V02460/boon/errors"
)

type memoryLoader map[string]any

func (l memoryLoader) Load(url string) (any, error) {
	doc, ok := l[url]
	if !ok {
		return nil, fmt.Errorf("load %s: not found", url)
	}
	return doc, nil
}

func TestSchemeURLLoader(t *testing.T) {
	loader := SchemeURLLoader{
		"http": memoryLoader{
			"http://a.com/s.json": map[string]any{"type": "string"},
		},
	}

	doc, err := loader.Load("http://a.com/s.json")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	obj, ok := doc.(map[string]any)
	if !ok || obj["type"] != "string" {
		t.Fatalf("Load() = %v, want schema object", doc)
	}
}

func TestSchemeURLLoaderUnknownScheme(t *testing.T) {
	loader := SchemeURLLoader{"http": memoryLoader{}}

	_, err := loader.Load("ftp://a.com/s.json")
	if err == nil {
		t.Fatal("Load() error = nil, want error")
	}
	res, ok := errors.AsResolution(err)
	if !ok || res.Code != string(errors.ErrLoaderScheme) {
		t.Fatalf("Load() error = %v, want loader-scheme resolution error", err)
	}
}

func TestSchemeURLLoaderInvalidURL(t *testing.T) {
	loader := SchemeURLLoader{}
	if _, err := loader.Load("http://a.com/%gh"); err == nil {
		t.Fatal("Load() error = nil, want error")
	}
}

func TestDecodeJSON(t *testing.T) {
	doc, err := DecodeJSON(strings.NewReader(`{"n": 9007199254740993}`))
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("DecodeJSON() = %T, want map[string]any", doc)
	}
	n, ok := obj["n"].(json.Number)
	if !ok {
		t.Fatalf("number decoded as %T, want json.Number", obj["n"])
	}
	if n.String() != "9007199254740993" {
		t.Fatalf("number = %s, want 9007199254740993", n)
	}
}

func TestDecodeJSONInvalid(t *testing.T) {
	for _, raw := range []string{"{", `{"a": }`, ""} {
		if _, err := DecodeJSON(strings.NewReader(raw)); err == nil {
			t.Fatalf("DecodeJSON(%q) error = nil, want error", raw)
		}
	}
}

func TestDecodeJSONTrailingContent(t *testing.T) {
	_, err := DecodeJSON(strings.NewReader(`{} {}`))
	if err == nil {
		t.Fatal("DecodeJSON() error = nil, want error")
	}
	res, ok := errors.AsResolution(err)
	if !ok || res.Code != string(errors.ErrDocumentParse) {
		t.Fatalf("DecodeJSON() error = %v, want document-parse resolution error", err)
	}
}
