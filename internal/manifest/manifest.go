// Package manifest builds the package.json descriptor for a generated
// project from its Configuration.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/simonhull/firebird-suite/raph/internal/config"
)

// ErrConflict is returned when two features pin the same package to
// different version ranges.
var ErrConflict = errors.New("dependency conflict")

// Manifest is the generated package.json.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// Feature is a fixed, versioned set of packages contributed by one option.
type Feature struct {
	Name            string
	Dependencies    map[string]string
	DevDependencies map[string]string
}

// New returns a manifest seeded with the framework runtime and the default
// scripts.
func New(name string) *Manifest {
	return &Manifest{
		Name:    name,
		Version: "0.1.0",
		Private: true,
		Scripts: map[string]string{
			"dev":   "next dev",
			"build": "next build",
			"start": "next start",
		},
		Dependencies: map[string]string{
			"next":      NextVersion,
			"react":     ReactVersion,
			"react-dom": ReactVersion,
		},
		DevDependencies: map[string]string{},
	}
}

// Build returns the manifest for cfg.
func Build(cfg config.Configuration) (*Manifest, error) {
	m := New(cfg.ProjectName)

	for _, f := range FeaturesFor(cfg) {
		if err := m.Merge(f); err != nil {
			return nil, err
		}
	}

	switch cfg.Linter {
	case config.ESLint:
		m.Scripts["lint"] = "next lint"
	case config.Biome:
		m.Scripts["lint"] = "biome check ."
	default:
		return nil, fmt.Errorf("%w: unsupported linter %q", config.ErrInvalidConfiguration, cfg.Linter)
	}

	return m, nil
}

// Merge adds the packages of f. Merging is idempotent and order-independent:
// a package already present with the same range is left untouched, and a
// package present with a different range yields ErrConflict without
// modifying the manifest.
func (m *Manifest) Merge(f Feature) error {
	if err := checkFeature(m.Dependencies, f.Name, f.Dependencies); err != nil {
		return err
	}
	if err := checkFeature(m.DevDependencies, f.Name, f.DevDependencies); err != nil {
		return err
	}

	if m.Dependencies == nil {
		m.Dependencies = make(map[string]string, len(f.Dependencies))
	}
	if m.DevDependencies == nil {
		m.DevDependencies = make(map[string]string, len(f.DevDependencies))
	}

	for pkg, rng := range f.Dependencies {
		m.Dependencies[pkg] = rng
	}
	for pkg, rng := range f.DevDependencies {
		m.DevDependencies[pkg] = rng
	}
	return nil
}

func checkFeature(existing map[string]string, feature string, add map[string]string) error {
	for pkg, rng := range add {
		if _, err := semver.NewConstraint(rng); err != nil {
			return fmt.Errorf("feature %s: invalid range %q for %s: %w", feature, rng, pkg, err)
		}
		if cur, ok := existing[pkg]; ok && cur != rng {
			return fmt.Errorf("%w: feature %s wants %s@%s, already %s", ErrConflict, feature, pkg, rng, cur)
		}
	}
	return nil
}

// JSON renders the manifest as two-space indented JSON with a trailing
// newline. Map keys are emitted in sorted order, so output is stable.
func (m *Manifest) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encoding package.json: %w", err)
	}
	return buf.Bytes(), nil
}
