package boon

import (
	"github.com/V02460/boon/errors"
	"github.com/V02460/boon/internal/uriref"
)

// HasAnchor reports whether node declares anchor under d's rules. Before
// 2019-09 an anchor is spelled as the fragment of the identifier keyword's
// value; from 2019-09 on it is an explicit "$anchor" or "$dynamicAnchor"
// property. Nodes that declare no matching anchor answer false; only a
// legacy fragment that fails percent-decoding to UTF-8 is an error.
func (d *Draft) HasAnchor(node any, anchor string) (bool, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return false, nil
	}

	if d.Version < 2019 {
		id, ok := obj[d.IDKeyword].(string)
		if !ok {
			return false, nil
		}
		_, fragment := uriref.SplitFragment(id)
		got, ok, err := uriref.FragmentToAnchor(fragment)
		if err != nil {
			return false, errors.NewResolutionf(errors.ErrAnchorEncoding, "",
				"invalid anchor in %q: %v", id, err)
		}
		return ok && got == anchor, nil
	}

	if s, ok := obj["$anchor"].(string); ok && s == anchor {
		return true, nil
	}
	if s, ok := obj["$dynamicAnchor"].(string); ok && s == anchor {
		return true, nil
	}
	return false, nil
}
