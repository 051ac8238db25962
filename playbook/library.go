package playbook

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed concepts.yaml
var builtinLibrary []byte

type libraryFile struct {
	Concepts []ConceptTemplate `yaml:"concepts"`
}

// Library holds the loaded concept templates. Templates are immutable
// after load; fit conditions are compiled here so a bad expression
// fails at load time, never during a build or score call.
type Library struct {
	concepts []ConceptTemplate
	byID     map[string]int
}

// NewLibrary loads the built-in concept set. The embedded library is
// validated at init in tests, so a failure here is a packaging bug.
func NewLibrary() (*Library, error) {
	l := &Library{byID: make(map[string]int)}
	concepts, err := parseLibrary(builtinLibrary)
	if err != nil {
		return nil, fmt.Errorf("builtin library: %w", err)
	}
	if err := l.add(concepts); err != nil {
		return nil, fmt.Errorf("builtin library: %w", err)
	}
	return l, nil
}

// LoadDir adds every .yaml/.yml concept file in dir. File order is the
// directory's lexical order, so load results are deterministic.
func (l *Library) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read library dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("read library file %s: %w", e.Name(), err)
		}
		concepts, err := parseLibrary(data)
		if err != nil {
			return fmt.Errorf("library file %s: %w", e.Name(), err)
		}
		if err := l.add(concepts); err != nil {
			return fmt.Errorf("library file %s: %w", e.Name(), err)
		}
		slog.Info("concept library loaded", "file", e.Name(), "concepts", len(concepts))
	}
	return nil
}

func (l *Library) add(concepts []ConceptTemplate) error {
	for _, c := range concepts {
		if _, dup := l.byID[c.ID]; dup {
			return fmt.Errorf("duplicate concept id %q", c.ID)
		}
		l.byID[c.ID] = len(l.concepts)
		l.concepts = append(l.concepts, c)
	}
	return nil
}

// Concepts returns the loaded templates in load order.
func (l *Library) Concepts() []ConceptTemplate {
	return l.concepts
}

// Get looks a concept up by id.
func (l *Library) Get(id string) (ConceptTemplate, bool) {
	i, ok := l.byID[id]
	if !ok {
		return ConceptTemplate{}, false
	}
	return l.concepts[i], true
}

// parseLibrary decodes and validates one library document, compiling
// every fit condition.
func parseLibrary(data []byte) ([]ConceptTemplate, error) {
	var file libraryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	for i := range file.Concepts {
		c := &file.Concepts[i]
		if c.ID == "" {
			return nil, fmt.Errorf("concept %d: missing id", i)
		}
		if c.Type != ConceptPass && c.Type != ConceptRun {
			return nil, fmt.Errorf("concept %q: type must be pass or run, got %q", c.ID, c.Type)
		}
		if len(c.Roles) == 0 {
			return nil, fmt.Errorf("concept %q: no roles", c.ID)
		}
		for j, r := range c.Roles {
			if len(r.AppliesTo) == 0 {
				return nil, fmt.Errorf("concept %q role %d: empty appliesTo", c.ID, j)
			}
			if r.Route == nil && r.Block == nil {
				return nil, fmt.Errorf("concept %q role %d: neither route nor block", c.ID, j)
			}
		}
		if c.Fit.When != "" {
			prog, err := compileFit(c.Fit.When)
			if err != nil {
				return nil, fmt.Errorf("concept %q: %w", c.ID, err)
			}
			c.whenProgram = prog
		}
	}
	return file.Concepts, nil
}
