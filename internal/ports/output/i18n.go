package output

// T exposes a minimal i18n contract for user-facing labels.
type T interface {
	// T renders the label identified by key for the given locale, or "" when
	// no locale has it. data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
}
