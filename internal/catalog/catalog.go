// Package catalog holds the static draft reference data. Drafts are defined
// at deploy time, loaded once at startup and never mutated.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/Sohamlkulk1122/E-consultaion/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed drafts.yaml
var defaultDrafts []byte

type Catalog struct {
	drafts []domain.Draft
	byID   map[int]domain.Draft
}

// Load builds the catalog from the YAML file at path, or from the embedded
// default set when path is empty.
func Load(path string) (*Catalog, error) {
	data := defaultDrafts
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read drafts file: %w", err)
		}
		data = fileData
	}

	var drafts []domain.Draft
	if err := yaml.Unmarshal(data, &drafts); err != nil {
		return nil, fmt.Errorf("failed to parse drafts: %w", err)
	}

	byID := make(map[int]domain.Draft, len(drafts))
	for _, draft := range drafts {
		if _, dup := byID[draft.ID]; dup {
			return nil, fmt.Errorf("duplicate draft id %d", draft.ID)
		}
		byID[draft.ID] = draft
	}

	return &Catalog{drafts: drafts, byID: byID}, nil
}

// All returns the drafts in file order.
func (c *Catalog) All() []domain.Draft {
	out := make([]domain.Draft, len(c.drafts))
	copy(out, c.drafts)
	return out
}

// Get looks up one draft by id.
func (c *Catalog) Get(id int) (*domain.Draft, error) {
	draft, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	return &draft, nil
}
