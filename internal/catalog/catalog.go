package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/tindercoin/tindercoin-backend/internal/domain"
)

//go:embed characters.json
var charactersJSON []byte

// Catalog is the read-only set of swipeable characters, loaded once from
// the bundled data file.
type Catalog struct {
	characters []domain.Character
	byID       map[string]*domain.Character
}

// Load parses the embedded character data.
func Load() (*Catalog, error) {
	var characters []domain.Character
	if err := json.Unmarshal(charactersJSON, &characters); err != nil {
		return nil, fmt.Errorf("failed to parse character data: %w", err)
	}

	byID := make(map[string]*domain.Character, len(characters))
	for i := range characters {
		byID[characters[i].ID] = &characters[i]
	}

	return &Catalog{
		characters: characters,
		byID:       byID,
	}, nil
}

// List returns every character in catalog order.
func (c *Catalog) List() []domain.Character {
	return c.characters
}

// GetByID looks up a character. Callers tolerate a miss by substituting
// placeholder content, so a missing id is not an error.
func (c *Catalog) GetByID(id string) (*domain.Character, bool) {
	ch, ok := c.byID[id]
	return ch, ok
}

// Persona returns the chat persona for a character id, falling back to a
// generic degen when the id is unknown.
func (c *Catalog) Persona(id string) domain.Persona {
	if ch, ok := c.byID[id]; ok {
		return domain.Persona{Name: ch.Name, Trait: ch.Trait, Bio: ch.Bio}
	}
	return domain.Persona{
		Name:  "Mystery Degen",
		Trait: "DIAMOND HANDS",
		Bio:   "Just a humble degen looking for connection 🚀",
	}
}
