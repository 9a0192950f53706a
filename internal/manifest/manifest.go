package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ygofr/ygosync/internal/dataset"
)

// timeLayout matches the dataset's historical timestamps: ISO8601 with
// microseconds and a literal Z.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// Entry records one data-file update.
type Entry struct {
	File string `json:"file"`
	Date string `json:"date"`
}

// Section tracks one entity type: its shipped base file and every update
// file published since. Updates are unique by file and never pruned.
type Section struct {
	BaseFile string  `json:"baseFile"`
	Updates  []Entry `json:"updates"`
}

type Data struct {
	Cards           *Section `json:"cards"`
	Collections     *Section `json:"collections"`
	CollectionCards *Section `json:"collectionCards"`
	Archetypes      *Section `json:"archetypes"`
}

// Manifest is the version document downstream clients poll to decide what
// to re-fetch.
type Manifest struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`
	Data        Data   `json:"data"`
}

// Default returns the skeleton used when no manifest exists yet.
func Default() *Manifest {
	m := &Manifest{Version: "1.0.0"}
	m.ensure()
	return m
}

// Load reads the manifest at path, synthesizing the skeleton when the file
// does not exist and filling in any missing section. A corrupt manifest is
// an error, not a reset.
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	m.ensure()
	return &m, nil
}

func (m *Manifest) ensure() {
	if m.Version == "" {
		m.Version = "1.0.0"
	}
	if m.Data.Cards == nil {
		m.Data.Cards = &Section{BaseFile: dataset.CardsDir + "/base.json"}
	}
	if m.Data.Collections == nil {
		m.Data.Collections = &Section{BaseFile: dataset.CollectionsDir + "/base.json"}
	}
	if m.Data.CollectionCards == nil {
		m.Data.CollectionCards = &Section{BaseFile: dataset.CollectionCardsDir + "/base.json"}
	}
	if m.Data.Archetypes == nil {
		m.Data.Archetypes = &Section{BaseFile: dataset.ArchetypesDir + "/base.json"}
	}
	for _, s := range []*Section{m.Data.Cards, m.Data.Collections, m.Data.CollectionCards, m.Data.Archetypes} {
		if s.Updates == nil {
			s.Updates = []Entry{}
		}
	}
}

// Apply records one sync run: every processed set code gets an update
// entry in the cards, collections and collection-cards sections, the sets
// in withArchetypes additionally in archetypes. The patch version is
// bumped and lastUpdated stamped exactly once however many sets are
// passed.
func (m *Manifest) Apply(processed, withArchetypes []string, now time.Time) {
	stamp := now.UTC().Format(timeLayout)
	m.bumpPatch()
	m.LastUpdated = stamp

	flagged := make(map[string]struct{}, len(withArchetypes))
	for _, code := range withArchetypes {
		flagged[code] = struct{}{}
	}

	for _, code := range processed {
		m.Data.Cards.add(dataset.CardsDir+"/"+code+".json", stamp)
		m.Data.Collections.add(dataset.CollectionsDir+"/"+code+".json", stamp)
		m.Data.CollectionCards.add(dataset.CollectionCardsDir+"/"+code+".json", stamp)
		if _, ok := flagged[code]; ok {
			m.Data.Archetypes.add(dataset.ArchetypesDir+"/"+code+".json", stamp)
		}
	}
}

// add appends an update entry unless the file is already listed.
func (s *Section) add(file, date string) {
	for _, e := range s.Updates {
		if e.File == file {
			return
		}
	}
	s.Updates = append(s.Updates, Entry{File: file, Date: date})
}

// bumpPatch increments the version's patch component. Malformed versions
// are repaired rather than rejected: an unparsable patch restarts at 1, a
// version that is not three dot-separated parts resets entirely.
func (m *Manifest) bumpPatch() {
	parts := strings.Split(m.Version, ".")
	if len(parts) != 3 {
		m.Version = "1.0.1"
		return
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		patch = 0
	}
	parts[2] = strconv.Itoa(patch + 1)
	m.Version = strings.Join(parts, ".")
}

// Save writes the manifest next to the dataset files.
func (m *Manifest) Save(path string) error {
	return dataset.WriteJSON(path, m)
}
