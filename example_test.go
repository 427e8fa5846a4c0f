package boon_test

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/V02460/boon"
)

func ExampleDraftFromURL() {
	schemaJSON := `{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object"
	}`

	doc, err := boon.DecodeJSON(strings.NewReader(schemaJSON))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	draft := boon.Latest()
	if obj, ok := doc.(map[string]any); ok {
		if meta, ok := obj["$schema"].(string); ok {
			if d, ok := boon.DraftFromURL(meta); ok {
				draft = d
			}
		}
	}

	fmt.Println(draft.Version)
	// Output: 2020
}

func ExampleDraft_CollectResources() {
	schemaJSON := `{
		"$id": "http://example.com/schemas/person.json",
		"$defs": {
			"name": { "$id": "../name.json" }
		}
	}`

	doc, err := boon.DecodeJSON(strings.NewReader(schemaJSON))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	base, err := url.Parse("http://example.com/person.json")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	resources := make(map[string]*boon.Resource)
	if err := boon.Draft2020().CollectResources(doc, base, "", resources); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	ptrs := make([]string, 0, len(resources))
	for ptr := range resources {
		ptrs = append(ptrs, ptr)
	}
	sort.Strings(ptrs)
	for _, ptr := range ptrs {
		fmt.Printf("%q -> %s\n", ptr, resources[ptr].ID)
	}
	// Output:
	// "" -> http://example.com/schemas/person.json
	// "/$defs/name" -> http://example.com/name.json
}
