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


package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/namankura/namankura/core"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the profile file name inside the config directory.
const FileName = "profile.toml"

// Profile holds a family's saved preferences: where the corpus lives, which
// AI endpoints to use, and the default filters applied to every search.
type Profile struct {
	// DatabasePath is the corpus database directory.
	DatabasePath string `toml:"database_path,omitempty"`

	AI      AISettings     `toml:"ai,omitempty"`
	Filters FilterDefaults `toml:"filters,omitempty"`
}

// AISettings selects the endpoints and models for parsing and embeddings.
type AISettings struct {
	Host           string `toml:"host,omitempty"`
	EmbeddingModel string `toml:"embedding_model,omitempty"`
	ParserModel    string `toml:"parser_model,omitempty"`
}

// FilterDefaults seeds the baseline filter set for every search.
type FilterDefaults struct {
	Gender     string   `toml:"gender,omitempty"`
	Syllables  int      `toml:"syllables,omitempty"`
	Sources    []string `toml:"sources,omitempty"`
	VedicMode  bool     `toml:"vedic_mode,omitempty"`
	BirthDate  string   `toml:"birth_date,omitempty"`
	BirthTime  string   `toml:"birth_time,omitempty"`
	BirthPlace string   `toml:"birth_place,omitempty"`
}

// Default returns a profile with built-in defaults. The gender default is
// left unset so a fresh profile constrains nothing.
func Default() *Profile {
	return &Profile{}
}

// DefaultPath returns the default profile path, ~/.namankura/profile.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".namankura", FileName), nil
}

// Load reads a profile from the given path. A missing file yields the
// default profile rather than an error.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	p := Default()
	if err := toml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	return p, nil
}

// Save writes the profile to the given path, creating the directory if
// needed.
func (p *Profile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// BaseFilters builds the baseline filter set from the saved defaults.
func (p *Profile) BaseFilters() *core.WishFilters {
	filters := &core.WishFilters{
		Gender:    core.Gender(p.Filters.Gender),
		VedicMode: p.Filters.VedicMode,
	}
	if p.Filters.Syllables > 0 {
		v := p.Filters.Syllables
		filters.Syllables = &v
	}
	if len(p.Filters.Sources) > 0 {
		filters.Sources = append([]string(nil), p.Filters.Sources...)
	}
	if p.Filters.BirthDate != "" || p.Filters.BirthTime != "" || p.Filters.BirthPlace != "" {
		filters.Birth = &core.BirthDetails{
			Date:  p.Filters.BirthDate,
			Time:  p.Filters.BirthTime,
			Place: p.Filters.BirthPlace,
		}
	}
	return filters
}
