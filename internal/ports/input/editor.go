package input

import (
	"context"

	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/domain/entities"
)

type EditorStateUseCase interface {
	Mode() domain.Mode
	SetMode(mode domain.Mode) error
	SelectedTab() domain.Tab
	SetSelectedTab(tab domain.Tab) error
	SetDefaultTab()
	Tabs() []domain.Tab
	Loaded() entities.Loaded
	SetLoaded(loaded entities.Loaded)
	SaveList() []string
	SetSaveList(list []string)
	IsLoading() bool
	SetIsLoading(flag bool)
	RefreshRequested() bool
	SetRefreshRequested(flag bool)
}

type LoaderUseCase interface {
	OpenSave(ctx context.Context, path string) ([]string, error)
	SelectGame(ctx context.Context, game string) error
	ConnectMemory(ctx context.Context) (bool, error)
	Load(ctx context.Context, kind entities.Kind, method string, args ...any) (entities.Loaded, error)
	LoadList(ctx context.Context, kind entities.Kind, method string, args ...any) ([]entities.Entity, error)
	Save(ctx context.Context, method string, entity entities.Entity, args ...any) error
	ServiceRefresh(ctx context.Context) error
	Reset(ctx context.Context) error
}
