package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Directory names inside the dataset root. Each data directory holds one
// JSON file per set code plus a reserved base.json with the seed data.
const (
	ArchetypesDir      = "archetypes"
	CollectionsDir     = "collections"
	CardsDir           = "cards"
	CollectionCardsDir = "collection-cards"

	baseFile     = "base.json"
	manifestFile = "manifest.json"
)

// Store gives access to the on-disk dataset rooted at one directory.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string { return s.root }

// Path returns the location of one data file inside the store.
func (s *Store) Path(dir, code string) string {
	return filepath.Join(s.root, dir, code+".json")
}

func (s *Store) ManifestPath() string {
	return filepath.Join(s.root, manifestFile)
}

// KnownSetCodes scans the archetype, collection and card directories and
// returns every set code that already has a data file, case-folded.
// base.json is seed data, not a set.
func (s *Store) KnownSetCodes() map[string]struct{} {
	known := make(map[string]struct{})
	for _, dir := range []string{ArchetypesDir, CollectionsDir, CardsDir} {
		entries, err := os.ReadDir(filepath.Join(s.root, dir))
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".json") || name == baseFile {
				continue
			}
			known[strings.ToLower(strings.TrimSuffix(name, ".json"))] = struct{}{}
		}
	}
	return known
}

// MaxArchetypeID returns the highest archetype id used anywhere in the
// archetypes directory, base.json included. Unreadable files are skipped.
func (s *Store) MaxArchetypeID() int {
	maxID := 0
	dir := filepath.Join(s.root, ArchetypesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		var archetypes []Archetype
		if err := readJSON(path, &archetypes); err != nil {
			log.Printf("Warning: skipping %s: %v", path, err)
			continue
		}
		for _, a := range archetypes {
			if a.ID > maxID {
				maxID = a.ID
			}
		}
	}
	return maxID
}

// ArchetypeNames returns every archetype nameEn present on disk, across
// all archetype files including base.json.
func (s *Store) ArchetypeNames() map[string]struct{} {
	names := make(map[string]struct{})
	dir := filepath.Join(s.root, ArchetypesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return names
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		var archetypes []Archetype
		if err := readJSON(filepath.Join(dir, e.Name()), &archetypes); err != nil {
			continue
		}
		for _, a := range archetypes {
			if a.NameEn != "" {
				names[a.NameEn] = struct{}{}
			}
		}
	}
	return names
}

// WriteJSON writes v as indented UTF-8 JSON, creating parent directories
// as needed. Accented card text must survive a round trip, so HTML
// escaping is off and non-ASCII stays literal.
func WriteJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func readJSON(path string, v any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
