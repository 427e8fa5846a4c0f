package boon

import (
	"net/url"

	"github.com/V02460/boon/errors"
	"github.com/V02460/boon/internal/jsonptr"
	"github.com/V02460/boon/internal/uriref"
)

// Resource identifies one addressable scope within a schema document: a
// canonical, fragment-free absolute URI.
type Resource struct {
	ID *url.URL
}

// CollectResources walks doc and records one Resource per location that
// opens a new scope, keyed by JSON Pointer within doc. base is the absolute
// URI of doc and ptr the pointer of doc within the original document (empty
// for a top-level call). The document root is always a resource, with its
// declared identifier when present or base otherwise.
//
// An identifier that cannot be resolved against its base aborts the walk
// with a *errors.Resolution carrying the offending node's pointer; the map
// then holds a partial collection and should be discarded. Keyword
// iteration order is unspecified, so which of several invalid identifiers
// is reported first is too.
func (d *Draft) CollectResources(doc any, base *url.URL, ptr string, resources map[string]*Resource) error {
	obj, ok := doc.(map[string]any)
	if !ok {
		// Boolean and other non-object schemas are not resources and
		// contain none.
		return nil
	}

	if id, ok := obj[d.IDKeyword].(string); ok {
		raw, _ := uriref.SplitFragment(id)
		ref, err := url.Parse(raw)
		if err != nil {
			return errors.NewResolutionf(errors.ErrIdentifierUnresolvable, ptr,
				"cannot resolve %q against %s", id, base)
		}
		resolved := base.ResolveReference(ref)
		resources[ptr] = &Resource{ID: resolved}
		base = resolved
	} else if ptr == "" {
		root := *base
		resources[ptr] = &Resource{ID: &root}
	}

	for kw, pos := range d.subschemas {
		v, ok := obj[kw]
		if !ok {
			continue
		}
		if pos.has(posSelf) {
			if err := d.CollectResources(v, base, jsonptr.AppendToken(ptr, kw), resources); err != nil {
				return err
			}
		}
		if pos.has(posItem) {
			if arr, ok := v.([]any); ok {
				for i, item := range arr {
					childPtr := jsonptr.AppendIndex(jsonptr.AppendToken(ptr, kw), i)
					if err := d.CollectResources(item, base, childPtr, resources); err != nil {
						return err
					}
				}
			}
		}
		if pos.has(posProp) {
			if m, ok := v.(map[string]any); ok {
				for name, pv := range m {
					childPtr := jsonptr.AppendToken(jsonptr.AppendToken(ptr, kw), name)
					if err := d.CollectResources(pv, base, childPtr, resources); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
