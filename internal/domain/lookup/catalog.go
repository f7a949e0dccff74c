package lookup

import (
	"fmt"
	"slices"

	"sakatsuku04/internal/domain"
)

type tableKey struct {
	category Category
	locale   domain.Locale
}

// Catalog holds the loaded tables, one per (category, locale). It is filled
// once at startup and read-only afterwards.
type Catalog struct {
	tables map[tableKey]*Table
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{tables: make(map[tableKey]*Table)}
}

// Add registers t. A second table for the same category and locale is an error.
func (c *Catalog) Add(t *Table) error {
	k := tableKey{category: t.Category(), locale: t.Locale()}
	if _, dup := c.tables[k]; dup {
		return fmt.Errorf("catalog: duplicate table %s/%s", k.category, k.locale)
	}
	c.tables[k] = t
	return nil
}

// Table returns the table of category in locale.
func (c *Catalog) Table(category Category, locale domain.Locale) (*Table, bool) {
	t, ok := c.tables[tableKey{category: category, locale: locale}]
	return t, ok
}

// Categories lists the categories that have at least one table, in the order
// of Categories().
func (c *Catalog) Categories() []Category {
	var out []Category
	for _, cat := range Categories() {
		for _, l := range domain.Locales {
			if _, ok := c.tables[tableKey{category: cat, locale: l}]; ok {
				out = append(out, cat)
				break
			}
		}
	}
	return slices.Clip(out)
}
