// Copyright 2026 Namankura Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package corpus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/namankura/namankura/core"
)

// nameEntry is the JSON boundary representation of a corpus record.
// It is kept separate from core.NameRecord so the file format can evolve
// without touching the domain model.
type nameEntry struct {
	Name          string            `json:"name"`
	Gender        string            `json:"gender"`
	Spellings     map[string]string `json:"spellings,omitempty"`
	Syllables     int               `json:"syllables"`
	PhoneticStart string            `json:"phonetic_start"`
	Deity         string            `json:"deity,omitempty"`
	Sources       []string          `json:"sources,omitempty"`
	Meaning       string            `json:"meaning"`
	Language      string            `json:"language"`
	Regions       []string          `json:"regions,omitempty"`
	Modernity     int               `json:"modernity,omitempty"`
	GlobalEase    int               `json:"global_ease,omitempty"`
	Nicknames     []string          `json:"nicknames,omitempty"`
	Related       []string          `json:"related,omitempty"`
	Popularity    string            `json:"popularity,omitempty"`
}

// LoadFile reads a JSON corpus file and returns its records in file order.
// The file holds a single JSON array of name entries. Every record is
// validated; the first invalid entry aborts the load.
func LoadFile(path string) ([]*core.NameRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads a JSON array of name entries from r in order.
func Load(r io.Reader) ([]*core.NameRecord, error) {
	var entries []nameEntry
	dec := json.NewDecoder(r)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}

	records := make([]*core.NameRecord, 0, len(entries))
	for i, e := range entries {
		record := e.toRecord()
		if err := core.ValidateNameRecord(record); err != nil {
			return nil, fmt.Errorf("corpus entry %d (%q): %w", i, e.Name, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (e *nameEntry) toRecord() *core.NameRecord {
	deity := e.Deity
	if deity == "" {
		deity = core.DeityNone
	}
	// Omitted ratings default to the middle of the 1-5 scale.
	if e.Modernity == 0 {
		e.Modernity = 3
	}
	if e.GlobalEase == 0 {
		e.GlobalEase = 3
	}
	return &core.NameRecord{
		Name:          e.Name,
		Gender:        core.Gender(e.Gender),
		Spellings:     e.Spellings,
		Syllables:     e.Syllables,
		PhoneticStart: e.PhoneticStart,
		Deity:         deity,
		Sources:       e.Sources,
		Meaning:       e.Meaning,
		Language:      e.Language,
		Regions:       e.Regions,
		Modernity:     e.Modernity,
		GlobalEase:    e.GlobalEase,
		Nicknames:     e.Nicknames,
		Related:       e.Related,
		Popularity:    core.PopularityTier(e.Popularity),
	}
}
