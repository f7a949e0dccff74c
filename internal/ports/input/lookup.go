package input

import (
	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/domain/lookup"
)

type LookupUseCase interface {
	Resolve(category lookup.Category, code int) string
	ResolveOptional(category lookup.Category, code *int) string
	ResolveOrdered(category lookup.Category) []lookup.Entry
	Categories() []lookup.Category
	SetLanguage(locale domain.Locale) error
	Language() domain.Locale
}
