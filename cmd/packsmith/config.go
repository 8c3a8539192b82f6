package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"packsmith/cmd/packsmith/mc"
	"packsmith/cmd/packsmith/mcyaml"

	"github.com/bmatcuk/doublestar/v4"
)

// appName is the single source of truth for the application name.
// All derived identifiers (env vars, config paths, error messages) are
// computed from it.
const appName = "packsmith"

// Derived env var names — computed once at init from appName.
var (
	envConfigDir = strings.ToUpper(appName) + "_CONFIG_DIR"
	envSources   = strings.ToUpper(appName) + "_SOURCES"
)

// resolveConfigDir returns the base config directory for the application.
// Priority: $PACKSMITH_CONFIG_DIR > $XDG_CONFIG_HOME/packsmith > ~/.config/packsmith
func resolveConfigDir() (string, error) {
	if v := os.Getenv(envConfigDir); v != "" {
		return v, nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// resolveSources returns all pack source files to load.
// Order: configDir/packs/*.yml, then $PACKSMITH_SOURCES, then --file flags,
// then --include glob matches. Include patterns support doublestar globs
// ("packs/**/*.yml"); a pattern that matches nothing is an error, since a
// silently empty pack is worse than a loud one.
func resolveSources(configDir string, flagFiles, flagIncludes []string) ([]string, error) {
	files, err := globYAML(filepath.Join(configDir, "packs"))
	if err != nil {
		return nil, err
	}
	files = append(files, splitColon(os.Getenv(envSources))...)
	files = append(files, flagFiles...)

	for _, pattern := range flagIncludes {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("include pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("include pattern %q matched no files", pattern)
		}
		files = append(files, matches...)
	}
	return files, nil
}

// globYAML returns sorted *.yml / *.yaml files in dir.
// Returns nil without error if dir does not exist.
func globYAML(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	return files, nil
}

// splitColon splits a colon-separated string, filtering empty parts.
func splitColon(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ":")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// load reads all resolved pack sources and builds the registry.
func load(flagFiles, flagIncludes []string) (mcyaml.Pack, *mc.Registry, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return mcyaml.Pack{}, nil, err
	}
	files, err := resolveSources(configDir, flagFiles, flagIncludes)
	if err != nil {
		return mcyaml.Pack{}, nil, err
	}
	if len(files) == 0 {
		return mcyaml.Pack{}, nil, fmt.Errorf(
			"no pack sources found: add *.yml files to %s/packs/, set $%s, or use --file",
			configDir, envSources,
		)
	}

	inputs := make([][]byte, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return mcyaml.Pack{}, nil, fmt.Errorf("pack source %s: %w", f, err)
		}
		inputs = append(inputs, data)
	}
	return mcyaml.BuildMany(inputs...)
}
