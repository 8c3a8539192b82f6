package mc

import (
	"fmt"
	"regexp"
	"strings"
)

// Identifier is a resolved, validated resource identifier.
//
// It is immutable once produced: validation happens exactly once, in
// Context.Resolve or ParseIdentifier, and downstream consumers never
// re-validate. An Identifier with an empty namespace renders as its bare
// path — the game resolves the default namespace at load time, so the
// authoring layer never invents one.
type Identifier struct {
	namespace string // empty means deferred to the game's default
	path      string
}

var (
	namespaceRe = regexp.MustCompile(`^[0-9a-z_-]+$`)
	pathRe      = regexp.MustCompile(`^[0-9a-z_\-/.]+$`)
)

// Namespace returns the namespace, or "" when deferred to the game default.
func (id Identifier) Namespace() string { return id.namespace }

// Path returns the slash-joined resource path.
func (id Identifier) Path() string { return id.path }

// String returns the canonical textual form: "namespace:path", or the bare
// path when the namespace is deferred.
func (id Identifier) String() string {
	if id.namespace == "" {
		return id.path
	}
	return id.namespace + ":" + id.path
}

// IsZero reports whether the identifier is the zero value (no path).
func (id Identifier) IsZero() bool { return id.path == "" }

// ParseIdentifier parses and validates a textual identifier.
//
// "ns:some/path" yields a namespaced identifier; a bare "some/path" yields
// one with a deferred namespace. This is the round-trip inverse of
// Identifier.String.
func ParseIdentifier(s string) (Identifier, error) {
	namespace := ""
	path := s
	if i := strings.Index(s, ":"); i >= 0 {
		namespace = s[:i]
		path = s[i+1:]
	}
	if namespace != "" && !namespaceRe.MatchString(namespace) {
		return Identifier{}, fmt.Errorf("identifier %q: %w: %q", s, ErrInvalidNamespace, namespace)
	}
	if strings.Contains(s, ":") && namespace == "" {
		return Identifier{}, fmt.Errorf("identifier %q: %w: namespace is empty", s, ErrInvalidNamespace)
	}
	if err := validatePath(path); err != nil {
		return Identifier{}, fmt.Errorf("identifier %q: %w", s, err)
	}
	return Identifier{namespace: namespace, path: path}, nil
}

// validatePath checks the shared path rules: non-empty, allowed character
// set, and no ".." anywhere (the game's loader treats ".." as directory
// traversal and rejects the whole pack).
func validatePath(path string) error {
	if path == "" {
		return ErrEmptyName
	}
	if !pathRe.MatchString(path) {
		return fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	if strings.Contains(path, "..") {
		return fmt.Errorf("%w: %q", ErrDoubleDot, path)
	}
	return nil
}
