package boon

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/V02460/boon/errors"
)

// URLLoader supplies the parsed JSON document at an absolute URL. The core
// performs no I/O itself; implementations may read files, issue HTTP
// requests, or serve from memory.
type URLLoader interface {
	Load(url string) (any, error)
}

// SchemeURLLoader dispatches document loading to a registered loader by URL
// scheme.
type SchemeURLLoader map[string]URLLoader

// Load parses rawURL and delegates to the loader registered for its scheme.
func (l SchemeURLLoader) Load(rawURL string) (any, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", rawURL, err)
	}
	loader, ok := l[u.Scheme]
	if !ok {
		return nil, errors.NewResolutionf(errors.ErrLoaderScheme, "",
			"load %s: no loader registered for scheme %q", rawURL, u.Scheme)
	}
	return loader.Load(rawURL)
}

// DecodeJSON parses one JSON document from r, preserving number precision
// as json.Number. Trailing content after the document is an error.
func DecodeJSON(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.NewResolutionf(errors.ErrDocumentParse, "",
			"decode document: %v", err)
	}
	if dec.More() {
		return nil, errors.NewResolution(errors.ErrDocumentParse,
			"decode document: trailing content", "")
	}
	return doc, nil
}
