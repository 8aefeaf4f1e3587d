// Package categories resolves human-readable category names against a
// bundled snapshot of the two-level Marktplaats taxonomy.
package categories

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"marktplaats/client/internal/domain"
)

// ErrCategoryNotFound is returned when a name matches neither taxonomy level.
var ErrCategoryNotFound = errors.New("category not found")

//go:embed l1_categories.json
var l1Data []byte

//go:embed l2_categories.json
var l2Data []byte

type l1Record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type l2Record struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Parent string `json:"parent"`
}

// The tables are loaded once, on first use, and never mutated afterwards.
var (
	loadOnce sync.Once
	loadErr  error
	l1Table  map[string]l1Record
	l2Table  map[string]l2Record
)

func load() error {
	loadOnce.Do(func() {
		if err := json.Unmarshal(l1Data, &l1Table); err != nil {
			loadErr = fmt.Errorf("failed to decode l1 category table: %w", err)
			return
		}
		if err := json.Unmarshal(l2Data, &l2Table); err != nil {
			loadErr = fmt.Errorf("failed to decode l2 category table: %w", err)
			return
		}
		// Every L2 record must reference an existing L1 record. A miss here
		// is corrupt bundled data, not a user error.
		for name, rec := range l2Table {
			if _, ok := l1Table[strings.ToLower(rec.Parent)]; !ok {
				loadErr = fmt.Errorf("corrupt category data: l2 category %q references unknown parent %q", name, rec.Parent)
				return
			}
		}
	})
	return loadErr
}

// FromName resolves a category name case-insensitively, trying the top-level
// table first and the subcategory table second. A subcategory comes back with
// its parent resolved and attached.
func FromName(name string) (domain.Category, error) {
	if err := load(); err != nil {
		return nil, err
	}

	key := strings.ToLower(name)
	if rec, ok := l1Table[key]; ok {
		return domain.L1Category{ID: rec.ID, Name: rec.Name}, nil
	}
	if rec, ok := l2Table[key]; ok {
		parent := l1Table[strings.ToLower(rec.Parent)]
		return domain.L2Category{
			ID:   rec.ID,
			Name: rec.Name,
			Parent: domain.L1Category{
				ID:   parent.ID,
				Name: parent.Name,
			},
		}, nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrCategoryNotFound)
}

// L1Categories lists all top-level categories, sorted by ID.
func L1Categories() ([]domain.L1Category, error) {
	if err := load(); err != nil {
		return nil, err
	}

	cats := make([]domain.L1Category, 0, len(l1Table))
	for _, rec := range l1Table {
		cats = append(cats, domain.L1Category{ID: rec.ID, Name: rec.Name})
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].ID < cats[j].ID })
	return cats, nil
}

// L2Categories lists all subcategories, sorted by ID, each with its parent
// resolved.
func L2Categories() ([]domain.L2Category, error) {
	if err := load(); err != nil {
		return nil, err
	}

	cats := make([]domain.L2Category, 0, len(l2Table))
	for _, rec := range l2Table {
		parent := l1Table[strings.ToLower(rec.Parent)]
		cats = append(cats, domain.L2Category{
			ID:     rec.ID,
			Name:   rec.Name,
			Parent: domain.L1Category{ID: parent.ID, Name: parent.Name},
		})
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].ID < cats[j].ID })
	return cats, nil
}

// L2CategoriesByParent lists the subcategories under the given top-level
// category, matching by parent ID.
func L2CategoriesByParent(parent domain.L1Category) ([]domain.L2Category, error) {
	all, err := L2Categories()
	if err != nil {
		return nil, err
	}

	cats := make([]domain.L2Category, 0)
	for _, cat := range all {
		if cat.Parent.ID == parent.ID {
			cats = append(cats, cat)
		}
	}
	return cats, nil
}
