package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"

	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/domain/lookup"
)

var unmarshalFuncs = map[string]i18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
}

// LoadCatalog reads <category>.<locale>.toml for every category and locale
// from fsys and validates each file into a lookup table. A missing file only
// leaves that table out; a malformed one fails the whole load.
func LoadCatalog(fsys fs.FS) (*lookup.Catalog, error) {
	catalog := lookup.NewCatalog()
	for _, category := range lookup.Categories() {
		for _, locale := range domain.Locales {
			path := string(category) + "." + string(locale) + ".toml"
			table, err := loadTable(fsys, path, category, locale)
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("i18n: no %s table for %s", category, locale)
				continue
			}
			if err != nil {
				return nil, err
			}
			if err := catalog.Add(table); err != nil {
				return nil, err
			}
		}
	}
	return catalog, nil
}

func loadTable(fsys fs.FS, path string, category lookup.Category, locale domain.Locale) (*lookup.Table, error) {
	buf, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	mf, err := i18n.ParseMessageFileBytes(buf, path, unmarshalFuncs)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	got, _ := mf.Tag.Base()
	want, _ := locale.Tag().Base()
	if got != want {
		return nil, fmt.Errorf("parse %s: language %s: %w", path, mf.Tag, domain.ErrUnsupportedLocale)
	}

	raw := make(map[string]string, len(mf.Messages))
	for _, m := range mf.Messages {
		raw[m.ID] = m.Other
	}
	table, err := lookup.NewTable(category, locale, raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return table, nil
}
