// Package emit persists a built registry as an on-disk datapack tree.
// It is the only layer that touches the filesystem: the core resource
// types stay free of I/O.
package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"packsmith/cmd/packsmith/mc"
)

// Meta is the pack.mcmeta content.
type Meta struct {
	Name        string
	Description string
	Format      int
}

// mcmeta is the JSON shape the game reads.
type mcmeta struct {
	Pack struct {
		Format      int    `json:"pack_format"`
		Description string `json:"description"`
	} `json:"pack"`
}

// Artifact records one written (or would-be-written) file.
type Artifact struct {
	Path string
	Size int
}

// Write renders the registry into root: pack.mcmeta first, then one file
// per resource under data/. Existing files are refused unless force is set,
// so a stale tree never gets silently half-overwritten.
func Write(root string, meta Meta, reg *mc.Registry, force bool) ([]Artifact, error) {
	artifacts := make([]Artifact, 0, reg.Len()+1)

	metaBytes, err := renderMeta(meta)
	if err != nil {
		return nil, err
	}
	metaPath := filepath.Join(root, "pack.mcmeta")
	if err := writeFile(metaPath, metaBytes, force); err != nil {
		return nil, err
	}
	artifacts = append(artifacts, Artifact{Path: metaPath, Size: len(metaBytes)})

	for _, res := range reg.Resources() {
		body, err := res.Render()
		if err != nil {
			return nil, err
		}
		path := filepath.Join(root, filepath.FromSlash(res.File()))
		if err := writeFile(path, body, force); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, Artifact{Path: path, Size: len(body)})
	}

	return artifacts, nil
}

// DryRun prints what Write would create, without touching the filesystem.
func DryRun(w io.Writer, root string, meta Meta, reg *mc.Registry) error {
	metaBytes, err := renderMeta(meta)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "[dry-run] pack %q → %s\n", meta.Name, root)
	fmt.Fprintf(w, "  %s (%d bytes)\n", filepath.Join(root, "pack.mcmeta"), len(metaBytes))
	for _, res := range reg.Resources() {
		body, err := res.Render()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %s (%d bytes)\n", filepath.Join(root, filepath.FromSlash(res.File())), len(body))
	}
	return nil
}

func renderMeta(meta Meta) ([]byte, error) {
	var m mcmeta
	m.Pack.Format = meta.Format
	m.Pack.Description = meta.Description
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// writeFile creates path (and its parents), refusing to clobber an
// existing file unless force is set.
func writeFile(path string, content []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
