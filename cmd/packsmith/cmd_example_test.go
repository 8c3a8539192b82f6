package main

import (
	"strings"
	"testing"

	"packsmith/cmd/packsmith/mc"
	"packsmith/cmd/packsmith/mcyaml"
)

// The embedded reference source must always build: it is the document the
// example command hands to users as a known-good starting point.
func TestExamplePackBuilds(t *testing.T) {
	pack, reg, err := mcyaml.BuildMany(examplePackYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pack.Name != "reference" || pack.Namespace != "reference" {
		t.Fatalf("unexpected pack block: %+v", pack)
	}
	if reg.Len() != 9 {
		t.Fatalf("expected 9 resources, got %d", reg.Len())
	}

	t.Run("selector references substituted", func(t *testing.T) {
		for _, res := range reg.Resources() {
			if res.Kind() != mc.KindFunction || res.ID().String() != "reference:sweep" {
				continue
			}
			cmd := res.Commands()[0]
			if strings.Contains(cmd, "{{") {
				t.Fatalf("unsubstituted reference in %q", cmd)
			}
			for _, want := range []string{"tp @e[scores={anger=10..}", "tag=stray, tag=hostile", "limit=10"} {
				if !strings.Contains(cmd, want) {
					t.Fatalf("expected %q to contain %q", cmd, want)
				}
			}
			return
		}
		t.Fatal("function reference:sweep not found")
	})

	t.Run("every declared kind present", func(t *testing.T) {
		seen := map[mc.Kind]bool{}
		for _, res := range reg.Resources() {
			seen[res.Kind()] = true
		}
		for _, kind := range []mc.Kind{
			mc.KindFunction, mc.KindAdvancement, mc.KindLootTable,
			mc.KindPredicate, mc.KindRecipe, mc.KindTag,
		} {
			if !seen[kind] {
				t.Fatalf("no %s resource in the reference source", kind)
			}
		}
	})
}
