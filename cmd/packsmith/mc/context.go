package mc

import (
	"fmt"
	"strings"
)

// Context is the naming context a resource name is resolved under: an
// optional fixed namespace plus an accumulated directory prefix.
//
// Contexts are immutable values. A child context inherits its parent's
// namespace (it can never override it) and extends the directory prefix.
// No validation happens at construction or derivation — prefixes are not
// independently meaningful identifiers, so all checks are deferred to
// Resolve.
type Context struct {
	namespace string // "" means no fixed namespace
	dirs      []string
}

// NewContext returns a context with an optional fixed namespace and an
// initial directory prefix. Pass "" for namespace to leave it open.
func NewContext(namespace string, dirs ...string) Context {
	ctx := Context{namespace: namespace}
	for _, d := range dirs {
		ctx.dirs = append(ctx.dirs, splitDir(d)...)
	}
	return ctx
}

// Child derives a context with the same namespace and the directory prefix
// extended by dir. Leading/trailing slashes and empty segments are stripped,
// so the prefix never carries empty segments.
func (c Context) Child(dir string) Context {
	child := Context{namespace: c.namespace}
	child.dirs = append(child.dirs, c.dirs...)
	child.dirs = append(child.dirs, splitDir(dir)...)
	return child
}

// Namespace returns the fixed namespace, or "" when none is set.
func (c Context) Namespace() string { return c.namespace }

// Dir returns the slash-joined directory prefix, or "" when empty.
func (c Context) Dir() string { return strings.Join(c.dirs, "/") }

// Resolve turns a user-supplied name into a validated Identifier.
//
// The name may carry an explicit namespace ("ns:path") only when the
// context has no fixed namespace. The final path is the context's directory
// prefix followed by the name's segments, slash-joined with no empty
// segments. When neither a fixed nor an explicit namespace is present the
// namespace stays deferred (see Identifier).
func (c Context) Resolve(name string) (Identifier, error) {
	if c.namespace != "" && strings.Contains(name, ":") {
		return Identifier{}, fmt.Errorf("name %q: %w (context namespace is %q)", name, ErrNamespaceUnderBasePath, c.namespace)
	}

	explicit := ""
	bare := name
	if i := strings.Index(name, ":"); i >= 0 {
		explicit = name[:i]
		bare = name[i+1:]
	}

	segments := append(append([]string(nil), c.dirs...), splitDir(bare)...)
	path := strings.Join(segments, "/")

	namespace := c.namespace
	if namespace == "" {
		namespace = explicit
	}
	if (c.namespace != "" || strings.Contains(name, ":")) && !namespaceRe.MatchString(namespace) {
		return Identifier{}, fmt.Errorf("name %q: %w: %q", name, ErrInvalidNamespace, namespace)
	}

	if path == "" {
		return Identifier{}, fmt.Errorf("name %q: %w", name, ErrEmptyName)
	}
	if err := validatePath(path); err != nil {
		return Identifier{}, fmt.Errorf("name %q: %w", name, err)
	}

	return Identifier{namespace: namespace, path: path}, nil
}

// splitDir splits a directory string on "/", dropping empty segments.
func splitDir(dir string) []string {
	if dir == "" {
		return nil
	}
	parts := strings.Split(dir, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
