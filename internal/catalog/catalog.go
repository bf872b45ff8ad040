// Package catalog holds the static reference list of parts per animal type.
package catalog

import (
	"fmt"

	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/pkg/entity"
)

type Catalog struct {
	animals []entity.AnimalType
	parts   map[entity.AnimalType][]entity.Part
	byID    map[string]entity.Part
	total   int
}

// New builds a catalog from parts grouped by animal type. Animal order
// follows the order of entity.AnimalType constants; part order is kept.
// Animal fields of the given parts are overwritten by their map key.
func New(parts map[entity.AnimalType][]entity.Part) *Catalog {
	c := &Catalog{
		animals: []entity.AnimalType{entity.AnimalBeef, entity.AnimalPork, entity.AnimalChicken},
		parts:   make(map[entity.AnimalType][]entity.Part, 3),
		byID:    make(map[string]entity.Part),
	}
	for _, animal := range c.animals {
		list := make([]entity.Part, 0, len(parts[animal]))
		for _, p := range parts[animal] {
			p.Animal = animal
			list = append(list, p)
			c.byID[p.ID] = p
		}
		c.parts[animal] = list
		c.total += len(list)
	}
	return c
}

// Default returns the catalog shipped with the app.
func Default() *Catalog {
	return New(defaultParts)
}

func (c *Catalog) AnimalTypes() []entity.AnimalType {
	out := make([]entity.AnimalType, len(c.animals))
	copy(out, c.animals)
	return out
}

func (c *Catalog) ListParts(animal entity.AnimalType) ([]entity.Part, error) {
	if !animal.Valid() {
		return nil, fmt.Errorf("%w: unknown animal type %q", errorvalues.ErrInvalidArgument, animal)
	}
	out := make([]entity.Part, len(c.parts[animal]))
	copy(out, c.parts[animal])
	return out, nil
}

// ListPartsByCategory narrows ListParts to one category. Empty category means all.
func (c *Catalog) ListPartsByCategory(animal entity.AnimalType, category entity.PartCategory) ([]entity.Part, error) {
	parts, err := c.ListParts(animal)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return parts, nil
	}
	if category != entity.CategoryMeat && category != entity.CategoryOffal {
		return nil, fmt.Errorf("%w: unknown part category %q", errorvalues.ErrInvalidArgument, category)
	}
	filtered := parts[:0]
	for _, p := range parts {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (c *Catalog) AllParts() []entity.Part {
	out := make([]entity.Part, 0, c.total)
	for _, animal := range c.animals {
		out = append(out, c.parts[animal]...)
	}
	return out
}

func (c *Catalog) Part(id string) (entity.Part, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Count returns the number of parts of one animal type, 0 for unknown types.
func (c *Catalog) Count(animal entity.AnimalType) int {
	return len(c.parts[animal])
}

func (c *Catalog) Total() int {
	return c.total
}
