// Package mcyaml loads YAML pack sources and builds the resources they
// declare. Parsing is strict: structural problems surface immediately with
// phase=parse/path context rather than producing a half-built pack.
package mcyaml

import (
	"errors"
	"fmt"
	"regexp"

	"packsmith/cmd/packsmith/mc"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingPackBlock   = errors.New("no pack block defined")
	ErrDuplicatePackBlock = errors.New("pack block defined more than once")
	ErrUnknownSelectorRef = errors.New("unknown selector reference")
)

// Pack is the pack-wide metadata block. Namespace and Dir seed the naming
// context every resource in the pack is resolved under.
type Pack struct {
	Name        string
	Description string
	Format      int
	Namespace   string
	Dir         string
}

// Document is a parsed pack source file. Selectors are already built (and
// therefore validated); resource names are not resolved until Build, when
// the pack-wide naming context is known.
type Document struct {
	Pack      *Pack
	Functions []FunctionDef
	Tags      []TagDef
	Bodies    []BodyDef
}

// FunctionDef is a named function: its command lines plus the named
// selectors those lines may reference via {{ sel.name }}.
type FunctionDef struct {
	Name      string
	Commands  []string
	Selectors []NamedSelector
}

// NamedSelector pairs a reference name with a built selector.
type NamedSelector struct {
	Name string
	Sel  mc.Selector
}

// TagDef is a tag entry under a target registry ("function", "block", …).
type TagDef struct {
	Registry string
	Name     string
	Values   []string
	Replace  bool
}

// BodyDef is any JSON-bodied resource: advancement, loot table, predicate,
// or recipe. The body is opaque — this layer never validates its semantics.
type BodyDef struct {
	Kind mc.Kind
	Name string
	Body map[string]any
}

// ---- Internal YAML parsing structs ----------------------------------------

// yamlPack mirrors the pack block with YAML tags.
type yamlPack struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Format      int    `yaml:"format,omitempty"`
	Namespace   string `yaml:"namespace,omitempty"`
	Dir         string `yaml:"dir,omitempty"`
}

// yamlDocument is the top-level file shape. Functions and the JSON-bodied
// sections are held as yaml.Node for polymorphic decoding (a function is
// either a bare command list or a mapping; bodies are opaque mappings).
type yamlDocument struct {
	Pack         *yamlPack `yaml:"pack,omitempty"`
	Functions    yaml.Node `yaml:"functions,omitempty"`
	Tags         yaml.Node `yaml:"tags,omitempty"`
	Advancements yaml.Node `yaml:"advancements,omitempty"`
	LootTables   yaml.Node `yaml:"loot_tables,omitempty"`
	Predicates   yaml.Node `yaml:"predicates,omitempty"`
	Recipes      yaml.Node `yaml:"recipes,omitempty"`
}

// defaultFormat is the pack format written when the pack block omits one.
const defaultFormat = 48

// ---- Parse -----------------------------------------------------------------

// Parse parses a single pack source file.
func Parse(in []byte) (Document, error) {
	var yd yamlDocument
	if err := yaml.Unmarshal(in, &yd); err != nil {
		return Document{}, fmt.Errorf("phase=parse path=<doc>: %w", err)
	}

	var doc Document
	if yd.Pack != nil {
		pack := Pack(*yd.Pack)
		if pack.Format == 0 {
			pack.Format = defaultFormat
		}
		doc.Pack = &pack
	}

	if err := eachMapping(&yd.Functions, "functions", func(name string, val *yaml.Node, path string) error {
		fn, err := parseFunction(name, val, path)
		if err != nil {
			return err
		}
		doc.Functions = append(doc.Functions, fn)
		return nil
	}); err != nil {
		return Document{}, err
	}

	if err := eachMapping(&yd.Tags, "tags", func(registry string, val *yaml.Node, path string) error {
		return eachMapping(val, path, func(name string, entry *yaml.Node, entryPath string) error {
			tag, err := parseTag(registry, name, entry, entryPath)
			if err != nil {
				return err
			}
			doc.Tags = append(doc.Tags, tag)
			return nil
		})
	}); err != nil {
		return Document{}, err
	}

	bodySections := []struct {
		node *yaml.Node
		path string
		kind mc.Kind
	}{
		{&yd.Advancements, "advancements", mc.KindAdvancement},
		{&yd.LootTables, "loot_tables", mc.KindLootTable},
		{&yd.Predicates, "predicates", mc.KindPredicate},
		{&yd.Recipes, "recipes", mc.KindRecipe},
	}
	for _, section := range bodySections {
		kind := section.kind
		if err := eachMapping(section.node, section.path, func(name string, val *yaml.Node, path string) error {
			var body map[string]any
			if err := val.Decode(&body); err != nil {
				return fmt.Errorf("phase=parse path=%s: %w", path, err)
			}
			doc.Bodies = append(doc.Bodies, BodyDef{Kind: kind, Name: name, Body: body})
			return nil
		}); err != nil {
			return Document{}, err
		}
	}

	return doc, nil
}

// eachMapping walks a mapping node in document order. A zero node (absent
// key) is skipped silently; a present non-mapping node is an error.
func eachMapping(node *yaml.Node, path string, fn func(key string, val *yaml.Node, path string) error) error {
	if node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("phase=parse path=%s: expected a mapping", path)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if err := fn(key, node.Content[i+1], path+"."+key); err != nil {
			return err
		}
	}
	return nil
}

// parseFunction accepts either a bare sequence of command strings or a
// mapping with "commands" and optional "selectors".
func parseFunction(name string, node *yaml.Node, path string) (FunctionDef, error) {
	fn := FunctionDef{Name: name}

	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&fn.Commands); err != nil {
			return FunctionDef{}, fmt.Errorf("phase=parse path=%s: %w", path, err)
		}

	case yaml.MappingNode:
		var raw struct {
			Commands  []string  `yaml:"commands"`
			Selectors yaml.Node `yaml:"selectors,omitempty"`
		}
		if err := node.Decode(&raw); err != nil {
			return FunctionDef{}, fmt.Errorf("phase=parse path=%s: %w", path, err)
		}
		fn.Commands = raw.Commands
		if err := eachMapping(&raw.Selectors, path+".selectors", func(selName string, val *yaml.Node, selPath string) error {
			sel, err := parseSelector(val, selPath)
			if err != nil {
				return err
			}
			fn.Selectors = append(fn.Selectors, NamedSelector{Name: selName, Sel: sel})
			return nil
		}); err != nil {
			return FunctionDef{}, err
		}

	default:
		return FunctionDef{}, fmt.Errorf("phase=parse path=%s: function must be a command list or a mapping", path)
	}

	if len(fn.Commands) == 0 {
		return FunctionDef{}, fmt.Errorf("phase=parse path=%s: function has no commands", path)
	}
	return fn, nil
}

// parseTag reads one tag entry: a mapping with "values" and optional
// "replace", or a bare sequence of values.
func parseTag(registry, name string, node *yaml.Node, path string) (TagDef, error) {
	tag := TagDef{Registry: registry, Name: name}

	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&tag.Values); err != nil {
			return TagDef{}, fmt.Errorf("phase=parse path=%s: %w", path, err)
		}
	case yaml.MappingNode:
		var raw struct {
			Values  []string `yaml:"values"`
			Replace bool     `yaml:"replace,omitempty"`
		}
		if err := node.Decode(&raw); err != nil {
			return TagDef{}, fmt.Errorf("phase=parse path=%s: %w", path, err)
		}
		tag.Values = raw.Values
		tag.Replace = raw.Replace
	default:
		return TagDef{}, fmt.Errorf("phase=parse path=%s: tag must be a value list or a mapping", path)
	}
	return tag, nil
}

// ---- Build -----------------------------------------------------------------

// selRefRe matches a named selector reference inside a command string:
// {{ sel.<name> }}. References are substituted with the encoded selector
// before the command line is stored on the function resource.
var selRefRe = regexp.MustCompile(`\{\{\s*sel\.([A-Za-z0-9_][A-Za-z0-9_-]*)\s*\}\}`)

// BuildMany parses all inputs, requires exactly one pack block among them,
// and builds every declared resource into one registry.
func BuildMany(inputs ...[]byte) (Pack, *mc.Registry, error) {
	docs := make([]Document, 0, len(inputs))
	var pack *Pack
	for n, in := range inputs {
		doc, err := Parse(in)
		if err != nil {
			return Pack{}, nil, err
		}
		if doc.Pack != nil {
			if pack != nil {
				return Pack{}, nil, fmt.Errorf("phase=build path=<doc %d>: %w", n, ErrDuplicatePackBlock)
			}
			pack = doc.Pack
		}
		docs = append(docs, doc)
	}
	if pack == nil {
		return Pack{}, nil, ErrMissingPackBlock
	}

	ctx := mc.NewContext(pack.Namespace, pack.Dir)
	reg := mc.NewRegistry()
	for _, doc := range docs {
		if err := buildDocument(doc, ctx, reg); err != nil {
			return Pack{}, nil, err
		}
	}
	return *pack, reg, nil
}

// buildDocument resolves and registers one document's resources under ctx.
func buildDocument(doc Document, ctx mc.Context, reg *mc.Registry) error {
	for _, fn := range doc.Functions {
		commands, err := substituteSelectors(fn)
		if err != nil {
			return err
		}
		res, err := mc.NewFunction(ctx, fn.Name, commands...)
		if err != nil {
			return fmt.Errorf("phase=build path=functions.%s: %w", fn.Name, err)
		}
		if err := reg.Add(res); err != nil {
			return fmt.Errorf("phase=build path=functions.%s: %w", fn.Name, err)
		}
	}

	for _, tag := range doc.Tags {
		res, err := mc.NewTag(ctx, tag.Registry, tag.Name, tag.Values, tag.Replace)
		if err != nil {
			return fmt.Errorf("phase=build path=tags.%s.%s: %w", tag.Registry, tag.Name, err)
		}
		if err := reg.Add(res); err != nil {
			return fmt.Errorf("phase=build path=tags.%s.%s: %w", tag.Registry, tag.Name, err)
		}
	}

	for _, def := range doc.Bodies {
		res, err := buildBody(def, ctx)
		if err != nil {
			return err
		}
		if err := reg.Add(res); err != nil {
			return fmt.Errorf("phase=build path=%s.%s: %w", def.Kind, def.Name, err)
		}
	}
	return nil
}

func buildBody(def BodyDef, ctx mc.Context) (*mc.Resource, error) {
	var (
		res *mc.Resource
		err error
	)
	switch def.Kind {
	case mc.KindAdvancement:
		res, err = mc.NewAdvancement(ctx, def.Name, def.Body)
	case mc.KindLootTable:
		res, err = mc.NewLootTable(ctx, def.Name, def.Body)
	case mc.KindPredicate:
		res, err = mc.NewPredicate(ctx, def.Name, def.Body)
	case mc.KindRecipe:
		res, err = mc.NewRecipe(ctx, def.Name, def.Body)
	default:
		err = fmt.Errorf("unsupported resource kind %s", def.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("phase=build path=%s.%s: %w", def.Kind, def.Name, err)
	}
	return res, nil
}

// substituteSelectors replaces every {{ sel.name }} reference in the
// function's command lines with the named selector's encoded form.
func substituteSelectors(fn FunctionDef) ([]string, error) {
	byName := make(map[string]mc.Selector, len(fn.Selectors))
	for _, ns := range fn.Selectors {
		byName[ns.Name] = ns.Sel
	}

	out := make([]string, len(fn.Commands))
	for i, line := range fn.Commands {
		var refErr error
		out[i] = selRefRe.ReplaceAllStringFunc(line, func(match string) string {
			name := selRefRe.FindStringSubmatch(match)[1]
			sel, ok := byName[name]
			if !ok {
				refErr = fmt.Errorf("phase=build path=functions.%s.commands[%d]: %w: %q", fn.Name, i, ErrUnknownSelectorRef, name)
				return match
			}
			return sel.String()
		})
		if refErr != nil {
			return nil, refErr
		}
	}
	return out, nil
}
