package boon

import (
	"maps"
	"strings"
	"sync"

	"github.com/V02460/boon/internal/uriref"
)

// position marks where a keyword nests subschemas. A keyword may carry more
// than one position; "items" holds either a single schema or a tuple of
// schemas in every supported draft.
type position uint8

const (
	// posSelf: the keyword value is itself a schema.
	posSelf position = 1 << iota
	// posProp: every property value of an object-valued keyword is a schema.
	posProp
	// posItem: every element of an array-valued keyword is a schema.
	posItem
)

func (p position) has(flag position) bool {
	return p&flag != 0
}

// Draft describes one versioned dialect of the JSON Schema specification:
// the keyword that declares a schema's own identifier, whether bare boolean
// schemas are legal, and where each applicator keyword nests subschemas.
//
// Draft values are built once, are immutable, and are safe for concurrent
// use.
type Draft struct {
	// Version orders dialects by specification release: 4, 6, 7, 2019, 2020.
	Version int
	// IDKeyword is the property declaring a schema's canonical identifier:
	// "id" in draft-04, "$id" from draft-06 on.
	IDKeyword string
	// BoolSchema reports whether a bare boolean literal is a legal schema.
	BoolSchema bool

	subschemas map[string]position
}

var draft4 = sync.OnceValue(func() *Draft {
	return &Draft{
		Version:    4,
		IDKeyword:  "id",
		BoolSchema: false,
		subschemas: map[string]position{
			// core
			"definitions": posProp,
			"not":         posSelf,
			"allOf":       posItem,
			"anyOf":       posItem,
			"oneOf":       posItem,
			// object
			"properties":           posProp,
			"additionalProperties": posSelf,
			"patternProperties":    posProp,
			// array
			"items":           posSelf | posItem,
			"additionalItems": posSelf,
			"dependencies":    posProp,
		},
	}
})

var draft6 = sync.OnceValue(func() *Draft {
	subschemas := maps.Clone(draft4().subschemas)
	subschemas["propertyNames"] = posSelf
	subschemas["contains"] = posSelf
	return &Draft{
		Version:    6,
		IDKeyword:  "$id",
		BoolSchema: true,
		subschemas: subschemas,
	}
})

var draft7 = sync.OnceValue(func() *Draft {
	subschemas := maps.Clone(draft6().subschemas)
	subschemas["if"] = posSelf
	subschemas["then"] = posSelf
	subschemas["else"] = posSelf
	return &Draft{
		Version:    7,
		IDKeyword:  "$id",
		BoolSchema: true,
		subschemas: subschemas,
	}
})

var draft2019 = sync.OnceValue(func() *Draft {
	subschemas := maps.Clone(draft7().subschemas)
	subschemas["$defs"] = posProp
	subschemas["dependentSchemas"] = posProp
	subschemas["unevaluatedProperties"] = posSelf
	subschemas["unevaluatedItems"] = posSelf
	return &Draft{
		Version:    2019,
		IDKeyword:  "$id",
		BoolSchema: true,
		subschemas: subschemas,
	}
})

var draft2020 = sync.OnceValue(func() *Draft {
	subschemas := maps.Clone(draft2019().subschemas)
	subschemas["prefixItems"] = posItem
	return &Draft{
		Version:    2020,
		IDKeyword:  "$id",
		BoolSchema: true,
		subschemas: subschemas,
	}
})

// Draft4 returns the draft-04 dialect.
func Draft4() *Draft { return draft4() }

// Draft6 returns the draft-06 dialect.
func Draft6() *Draft { return draft6() }

// Draft7 returns the draft-07 dialect.
func Draft7() *Draft { return draft7() }

// Draft2019 returns the 2019-09 dialect.
func Draft2019() *Draft { return draft2019() }

// Draft2020 returns the 2020-12 dialect.
func Draft2020() *Draft { return draft2020() }

// Latest returns the most recent supported dialect.
func Latest() *Draft { return draft2020() }

// Canonical meta-schema locations, matched after scheme stripping and
// percent-decoding.
const (
	metaLatest = "json-schema.org/schema"
	meta2020   = "json-schema.org/draft/2020-12/schema"
	meta2019   = "json-schema.org/draft/2019-09/schema"
	meta7      = "json-schema.org/draft-07/schema"
	meta6      = "json-schema.org/draft-06/schema"
	meta4      = "json-schema.org/draft-04/schema"
)

// DraftFromURL resolves a dialect from its canonical meta-schema URL.
// Matching ignores an http or https scheme and percent-encoding in the
// path; a reference carrying a non-empty fragment never matches. Callers
// fall back to a default dialect when the lookup reports no match.
func DraftFromURL(ref string) (*Draft, bool) {
	u, fragment := uriref.SplitFragment(ref)
	if fragment != "" {
		return nil, false
	}
	u = strings.TrimPrefix(u, "http://")
	u = strings.TrimPrefix(u, "https://")
	decoded, err := uriref.PathUnescape(u)
	if err != nil {
		return nil, false
	}
	switch decoded {
	case metaLatest:
		return Latest(), true
	case meta2020:
		return Draft2020(), true
	case meta2019:
		return Draft2019(), true
	case meta7:
		return Draft7(), true
	case meta6:
		return Draft6(), true
	case meta4:
		return Draft4(), true
	}
	return nil, false
}
