// Package boon resolves the identifier and scoping rules of JSON Schema
// documents across drafts 04, 06, 07, 2019-09, and 2020-12.
//
// The package answers three questions a schema toolchain has to get right
// before it can compile or validate anything:
//
//   - which dialect governs a document, looked up from its declared
//     meta-schema URL ([DraftFromURL]);
//   - where the document's resource scopes begin and what canonical URI
//     identifies each one ([Draft.CollectResources]);
//   - whether a given node declares a named anchor under the dialect's
//     rules ([Draft.HasAnchor]).
//
// Parsed documents are plain decoded JSON ([DecodeJSON]): objects are
// map[string]any, arrays []any. The package performs no I/O; callers that
// need externally referenced documents supply them through a [URLLoader].
package boon
