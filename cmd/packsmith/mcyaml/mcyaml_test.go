package mcyaml

import (
	"errors"
	"strings"
	"testing"

	"packsmith/cmd/packsmith/mc"
)

func mustContain(t *testing.T, got string, subs ...string) {
	t.Helper()
	for _, sub := range subs {
		if !strings.Contains(got, sub) {
			t.Fatalf("expected %q to contain %q", got, sub)
		}
	}
}

const sampleSource = `
pack:
  name: demo
  description: Demo pack
  format: 48
  namespace: demo

functions:
  greet:
    commands:
      - say hello
      - tp {{ sel.members }} 0 64 0
    selectors:
      members:
        target: "@a"
        tag: [member]
        distance: "..10"
  boot:
    - say booting

tags:
  function:
    load:
      values: [demo:boot]

advancements:
  story/start:
    criteria:
      joined:
        trigger: tick

predicates:
  always:
    condition: value_check
`

func TestBuildMany_Sample(t *testing.T) {
	pack, reg, err := BuildMany([]byte(sampleSource))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pack.Name != "demo" || pack.Format != 48 {
		t.Fatalf("unexpected pack block: %+v", pack)
	}
	if reg.Len() != 5 {
		t.Fatalf("expected 5 resources, got %d", reg.Len())
	}

	t.Run("selector reference substituted", func(t *testing.T) {
		fn := findResource(t, reg, mc.KindFunction, "demo:greet")
		if got := fn.Commands()[1]; got != "tp @a[tag=member, distance=..10] 0 64 0" {
			t.Fatalf("unexpected command %q", got)
		}
	})

	t.Run("shorthand function form", func(t *testing.T) {
		fn := findResource(t, reg, mc.KindFunction, "demo:boot")
		if got := fn.Commands()[0]; got != "say booting" {
			t.Fatalf("unexpected command %q", got)
		}
	})

	t.Run("tag file", func(t *testing.T) {
		tag := findResource(t, reg, mc.KindTag, "demo:load")
		if got := tag.File(); got != "data/demo/tags/function/load.json" {
			t.Fatalf("unexpected file %q", got)
		}
	})

	t.Run("opaque body carried through", func(t *testing.T) {
		adv := findResource(t, reg, mc.KindAdvancement, "demo:story/start")
		body, err := adv.Render()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mustContain(t, string(body), `"trigger": "tick"`)
	})
}

func findResource(t *testing.T, reg *mc.Registry, kind mc.Kind, id string) *mc.Resource {
	t.Helper()
	for _, res := range reg.Resources() {
		if res.Kind() == kind && res.ID().String() == id {
			return res
		}
	}
	t.Fatalf("resource %s %s not found", kind, id)
	return nil
}

func TestBuildMany_PackBlockRules(t *testing.T) {
	t.Run("missing pack block", func(t *testing.T) {
		_, _, err := BuildMany([]byte("functions:\n  f:\n    - say hi\n"))
		if !errors.Is(err, ErrMissingPackBlock) {
			t.Fatalf("expected ErrMissingPackBlock, got %v", err)
		}
	})

	t.Run("duplicate pack block", func(t *testing.T) {
		one := []byte("pack:\n  name: a\n  namespace: a\n")
		two := []byte("pack:\n  name: b\n  namespace: b\n")
		_, _, err := BuildMany(one, two)
		if !errors.Is(err, ErrDuplicatePackBlock) {
			t.Fatalf("expected ErrDuplicatePackBlock, got %v", err)
		}
	})

	t.Run("resources from extra files share the context", func(t *testing.T) {
		one := []byte("pack:\n  name: a\n  namespace: shared\n")
		two := []byte("functions:\n  extra:\n    - say hi\n")
		_, reg, err := BuildMany(one, two)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		findResource(t, reg, mc.KindFunction, "shared:extra")
	})
}

func TestParse_Errors(t *testing.T) {
	t.Run("function without commands", func(t *testing.T) {
		_, err := Parse([]byte("functions:\n  empty: []\n"))
		if err == nil {
			t.Fatal("expected error")
		}
		mustContain(t, err.Error(), "phase=parse", "path=functions.empty", "no commands")
	})

	t.Run("bad gamemode", func(t *testing.T) {
		src := "functions:\n  f:\n    commands: [say hi]\n    selectors:\n      s:\n        gamemode: flying\n"
		_, err := Parse([]byte(src))
		if err == nil {
			t.Fatal("expected error")
		}
		mustContain(t, err.Error(), "phase=parse", "path=functions.f.selectors.s.gamemode", "flying")
	})

	t.Run("selector capability violation carries path", func(t *testing.T) {
		src := "functions:\n  f:\n    commands: [say hi]\n    selectors:\n      s:\n        target: \"@a\"\n        type: creeper\n"
		_, err := Parse([]byte(src))
		if !errors.Is(err, mc.ErrNonPlayerType) {
			t.Fatalf("expected ErrNonPlayerType, got %v", err)
		}
		mustContain(t, err.Error(), "path=functions.f.selectors.s")
	})

	t.Run("single selector requires limit", func(t *testing.T) {
		src := "functions:\n  f:\n    commands: [say hi]\n    selectors:\n      s:\n        single: true\n"
		_, err := Parse([]byte(src))
		if !errors.Is(err, mc.ErrLimitRequired) {
			t.Fatalf("expected ErrLimitRequired, got %v", err)
		}
	})
}

func TestBuild_Errors(t *testing.T) {
	t.Run("unknown selector reference", func(t *testing.T) {
		src := "pack:\n  name: p\n  namespace: p\nfunctions:\n  f:\n    - say {{ sel.ghost }}\n"
		_, _, err := BuildMany([]byte(src))
		if !errors.Is(err, ErrUnknownSelectorRef) {
			t.Fatalf("expected ErrUnknownSelectorRef, got %v", err)
		}
		mustContain(t, err.Error(), "path=functions.f.commands[0]", "ghost")
	})

	t.Run("explicit namespace under fixed-namespace pack", func(t *testing.T) {
		src := "pack:\n  name: p\n  namespace: p\nfunctions:\n  \"other:f\":\n    - say hi\n"
		_, _, err := BuildMany([]byte(src))
		if !errors.Is(err, mc.ErrNamespaceUnderBasePath) {
			t.Fatalf("expected ErrNamespaceUnderBasePath, got %v", err)
		}
	})

	t.Run("duplicate resource", func(t *testing.T) {
		one := []byte("pack:\n  name: p\n  namespace: p\nfunctions:\n  f:\n    - say a\n")
		two := []byte("functions:\n  f:\n    - say b\n")
		_, _, err := BuildMany(one, two)
		if !errors.Is(err, mc.ErrDuplicateResource) {
			t.Fatalf("expected ErrDuplicateResource, got %v", err)
		}
	})
}

func TestParse_IntervalForms(t *testing.T) {
	src := `
functions:
  f:
    commands: ["say {{ sel.s }}"]
    selectors:
      s:
        distance: [2, null]
        level: "1..3"
        x_rotation: 45
`
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sel := doc.Functions[0].Selectors[0].Sel
	want := "@e[distance=2.., level=1..3, x_rotation=45]"
	if got := sel.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
