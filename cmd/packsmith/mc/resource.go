package mc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the data-resource category a pack file belongs to.
type Kind int

const (
	KindFunction Kind = iota
	KindAdvancement
	KindLootTable
	KindPredicate
	KindRecipe
	KindTag
)

var kindNames = [...]string{"function", "advancement", "loot_table", "predicate", "recipe", "tag"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// dataDir returns the directory the game loads this kind from.
func (k Kind) dataDir() string {
	if k == KindTag {
		return "tags"
	}
	return k.String()
}

// ext returns the file extension for this kind.
func (k Kind) ext() string {
	if k == KindFunction {
		return ".mcfunction"
	}
	return ".json"
}

// Resource pairs a resolved identifier with an opaque payload. The
// identifier was validated exactly once, when the resource was created;
// nothing downstream re-validates it.
type Resource struct {
	kind   Kind
	id     Identifier
	subdir string   // tag target registry, empty for other kinds
	body   any      // JSON body for .json kinds
	lines  []string // command lines for functions
}

func (r *Resource) Kind() Kind     { return r.kind }
func (r *Resource) ID() Identifier { return r.id }

// File returns the pack-relative file path for this resource. Identifiers
// with a deferred namespace land in the game's default "minecraft" data
// directory — a packaging decision, applied only here, never in Resolve.
func (r *Resource) File() string {
	ns := r.id.Namespace()
	if ns == "" {
		ns = "minecraft"
	}
	dir := r.kind.dataDir()
	if r.subdir != "" {
		dir += "/" + r.subdir
	}
	return "data/" + ns + "/" + dir + "/" + r.id.Path() + r.kind.ext()
}

// Render returns the file body: newline-joined command lines for
// functions, indented JSON for everything else.
func (r *Resource) Render() ([]byte, error) {
	if r.kind == KindFunction {
		if len(r.lines) == 0 {
			return []byte{}, nil
		}
		return []byte(strings.Join(r.lines, "\n") + "\n"), nil
	}
	data, err := json.MarshalIndent(r.body, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("resource %s: %w", r.id, err)
	}
	return append(data, '\n'), nil
}

// Commands returns a function's command lines (nil for other kinds).
func (r *Resource) Commands() []string { return r.lines }

// NewFunction creates a function resource: name resolved under ctx, one
// command per line.
func NewFunction(ctx Context, name string, commands ...string) (*Resource, error) {
	id, err := ctx.Resolve(name)
	if err != nil {
		return nil, err
	}
	return &Resource{kind: KindFunction, id: id, lines: commands}, nil
}

// NewAdvancement creates an advancement resource with an opaque JSON body.
func NewAdvancement(ctx Context, name string, body any) (*Resource, error) {
	return newJSONResource(KindAdvancement, ctx, name, body)
}

// NewLootTable creates a loot table resource with an opaque JSON body.
func NewLootTable(ctx Context, name string, body any) (*Resource, error) {
	return newJSONResource(KindLootTable, ctx, name, body)
}

// NewPredicate creates a predicate resource with an opaque JSON body.
func NewPredicate(ctx Context, name string, body any) (*Resource, error) {
	return newJSONResource(KindPredicate, ctx, name, body)
}

// NewRecipe creates a recipe resource with an opaque JSON body.
func NewRecipe(ctx Context, name string, body any) (*Resource, error) {
	return newJSONResource(KindRecipe, ctx, name, body)
}

// NewTag creates a tag resource for the given target registry (e.g.
// "function", "block", "item").
func NewTag(ctx Context, registry, name string, values []string, replace bool) (*Resource, error) {
	id, err := ctx.Resolve(name)
	if err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	body := map[string]any{"replace": replace, "values": values}
	return &Resource{kind: KindTag, id: id, subdir: registry, body: body}, nil
}

func newJSONResource(kind Kind, ctx Context, name string, body any) (*Resource, error) {
	id, err := ctx.Resolve(name)
	if err != nil {
		return nil, err
	}
	return &Resource{kind: kind, id: id, body: body}, nil
}
