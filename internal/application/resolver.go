package application

import (
	"fmt"
	"sync/atomic"

	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/domain/lookup"
	"sakatsuku04/internal/ports/input"
)

var _ input.LookupUseCase = (*Resolver)(nil)

// Resolver turns codes into display text in the selected language. The
// language is read on every call, so SetLanguage affects the next call
// without touching the loaded tables.
type Resolver struct {
	catalog *lookup.Catalog
	locale  atomic.Value
}

func NewResolver(catalog *lookup.Catalog, locale domain.Locale) *Resolver {
	if !locale.Valid() {
		locale = domain.DefaultLocale
	}
	r := &Resolver{catalog: catalog}
	r.locale.Store(locale)
	return r
}

func (r *Resolver) Language() domain.Locale {
	return r.locale.Load().(domain.Locale)
}

func (r *Resolver) SetLanguage(locale domain.Locale) error {
	if !locale.Valid() {
		return fmt.Errorf("set language %q: %w", locale, domain.ErrUnsupportedLocale)
	}
	r.locale.Store(locale)
	return nil
}

func (r *Resolver) table(category lookup.Category) (*lookup.Table, bool) {
	return r.catalog.Table(category, r.Language())
}

// Resolve returns the text of code in category, or "" when the category or
// the code is unknown.
func (r *Resolver) Resolve(category lookup.Category, code int) string {
	t, ok := r.table(category)
	if !ok {
		return ""
	}
	return t.Text(code)
}

// ResolveOptional is Resolve for a code that may be absent.
func (r *Resolver) ResolveOptional(category lookup.Category, code *int) string {
	if code == nil {
		return ""
	}
	return r.Resolve(category, *code)
}

// ResolveOrdered lists the entries of category ordered by encoded key, as
// strings. It is nil for an unknown category.
func (r *Resolver) ResolveOrdered(category lookup.Category) []lookup.Entry {
	t, ok := r.table(category)
	if !ok {
		return nil
	}
	return t.Entries()
}

func (r *Resolver) Categories() []lookup.Category {
	return r.catalog.Categories()
}
