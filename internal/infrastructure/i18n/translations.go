package i18n

import (
	"embed"
	"io/fs"
	"log"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"

	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/ports/output"
)

//go:embed locales/*.toml
var embeddedFS embed.FS

// LocaleFS returns the embedded locale files, rooted at the locales directory.
func LocaleFS() fs.FS {
	sub, err := fs.Sub(embeddedFS, "locales")
	if err != nil {
		panic("i18n: embedded locales: " + err.Error())
	}
	return sub
}

var _ output.T = (*Translator)(nil)

// Translator serves interface labels (tabs, modes, error messages) from a
// go-i18n bundle. Every supported locale gets one localizer that falls back
// to the default locale.
type Translator struct {
	fallback   domain.Locale
	localizers map[domain.Locale]*i18n.Localizer
}

// NewTranslator loads ui.<locale>.toml for every supported locale from fsys.
// A missing file is logged; its labels then come from the default locale.
func NewTranslator(defaultLocale domain.Locale, fsys fs.FS) *Translator {
	if !defaultLocale.Valid() {
		defaultLocale = domain.DefaultLocale
	}
	bundle := i18n.NewBundle(defaultLocale.Tag())
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	t := &Translator{
		fallback:   defaultLocale,
		localizers: make(map[domain.Locale]*i18n.Localizer, len(domain.Locales)),
	}
	for _, l := range domain.Locales {
		file := "ui." + string(l) + ".toml"
		if _, err := bundle.LoadMessageFileFS(fsys, file); err != nil {
			log.Printf("i18n: failed to load %s: %v", file, err)
		}
	}
	for _, l := range domain.Locales {
		t.localizers[l] = i18n.NewLocalizer(bundle, l.Tag().String(), defaultLocale.Tag().String())
	}
	return t
}

// T renders the label key in locale, falling back to the default locale.
// Unknown locales use the default one. A label missing from both yields "",
// leaving the caller to pick its own placeholder.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	localizer, ok := t.localizers[domain.Locale(locale)]
	if !ok {
		localizer = t.localizers[t.fallback]
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: no label %s for %s", key, locale)
		return ""
	}
	return msg
}
