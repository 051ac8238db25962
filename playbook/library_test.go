package playbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltinLibraryLoads(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}
	if got := len(lib.Concepts()); got != 15 {
		t.Errorf("builtin library has %d concepts, want 15", got)
	}
	var pass, run int
	for _, c := range lib.Concepts() {
		switch c.Type {
		case ConceptPass:
			pass++
		case ConceptRun:
			run++
		default:
			t.Errorf("concept %s has type %q", c.ID, c.Type)
		}
	}
	if pass != 8 || run != 7 {
		t.Errorf("builtin split = %d pass / %d run, want 8/7", pass, run)
	}
}

func TestLibraryGet(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}
	c, ok := lib.Get("smash")
	if !ok || c.Name != "Smash" || c.Type != ConceptPass {
		t.Fatalf("Get(smash) = %+v, %v", c, ok)
	}
	if c.whenProgram == nil {
		t.Error("smash declares a fit condition; it should be compiled at load")
	}
	if _, ok := lib.Get("wishbone_triple"); ok {
		t.Error("Get should miss on an unknown id")
	}
}

func TestBuiltinConceptsBuildCleanly(t *testing.T) {
	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}
	players := elevenPersonnel()
	for _, c := range lib.Concepts() {
		res := Build(c, players)
		if !res.Success {
			t.Errorf("%s: build failed", c.ID)
		}
		for _, p := range players {
			if !Eligible(p) {
				continue
			}
			n := 0
			for _, a := range res.Actions {
				if a.FromPlayerID == p.ID {
					n++
				}
			}
			if n == 0 {
				t.Errorf("%s: player %s left without an action", c.ID, p.ID)
			}
		}
	}
}

func writeLibraryFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeLibraryFile(t, dir, "custom.yaml", `
concepts:
  - id: yankee
    name: Yankee
    type: pass
    roles:
      - appliesTo: [X]
        route: {pattern: post, depth: 18}
      - appliesTo: [Z]
        route: {pattern: dig, depth: 14}
`)
	writeLibraryFile(t, dir, "notes.txt", "ignored")

	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}
	before := len(lib.Concepts())
	if err := lib.LoadDir(dir); err != nil {
		t.Fatal(err)
	}
	if got := len(lib.Concepts()); got != before+1 {
		t.Errorf("library grew by %d, want 1", got-before)
	}
	if _, ok := lib.Get("yankee"); !ok {
		t.Error("loaded concept not retrievable")
	}
}

func TestLoadDirRejectsDuplicateID(t *testing.T) {
	dir := t.TempDir()
	writeLibraryFile(t, dir, "dup.yaml", `
concepts:
  - id: smash
    name: Smash Again
    type: pass
    roles:
      - appliesTo: [X]
        route: {pattern: hitch, depth: 6}
`)
	lib, err := NewLibrary()
	if err != nil {
		t.Fatal(err)
	}
	err = lib.LoadDir(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate concept id") {
		t.Errorf("want a duplicate id error, got %v", err)
	}
}

func TestParseLibraryValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			"missing id",
			"concepts:\n  - name: Nameless\n    type: pass\n    roles:\n      - appliesTo: [X]\n        route: {pattern: go}\n",
			"missing id",
		},
		{
			"bad type",
			"concepts:\n  - id: bad\n    type: screen\n    roles:\n      - appliesTo: [X]\n        route: {pattern: go}\n",
			"type must be pass or run",
		},
		{
			"no roles",
			"concepts:\n  - id: empty\n    type: pass\n",
			"no roles",
		},
		{
			"role without intent",
			"concepts:\n  - id: idle\n    type: pass\n    roles:\n      - appliesTo: [X]\n",
			"neither route nor block",
		},
		{
			"bad fit condition",
			"concepts:\n  - id: broken\n    type: pass\n    roles:\n      - appliesTo: [X]\n        route: {pattern: go}\n    fit:\n      when: 'ReceiverCount() >>> 3'\n",
			"compile fit condition",
		},
	}
	for _, tc := range tests {
		_, err := parseLibrary([]byte(tc.doc))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error = %v, want %q", tc.name, err, tc.want)
		}
	}
}
