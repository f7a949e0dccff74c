package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"sync"

	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/domain/entities"
	"sakatsuku04/internal/ports/input"
	"sakatsuku04/internal/ports/output"
)

// Backend method names.
const (
	MethodPickFile          = "pick_file"
	MethodConnectPCSX2      = "connect_pcsx2"
	MethodReset             = "reset"
	MethodSelectGame        = "select_game"
	MethodFetchClubData     = "fetch_club_data"
	MethodSaveClubData      = "save_club_data"
	MethodFetchMyTeam       = "fetch_my_team"
	MethodFetchMyPlayer     = "fetch_my_player"
	MethodSaveMyPlayer      = "save_my_player"
	MethodFetchTeamPlayer   = "fetch_team_player"
	MethodFetchTeamFriendly = "fetch_team_friendly"
	MethodSaveTeamFriendly  = "save_team_friendly"
	MethodSearchPlayer      = "search_player"
	MethodFetchMyTown       = "fetch_my_town"
	MethodSaveMyTown        = "save_my_town"
)

var _ input.LoaderUseCase = (*Loader)(nil)

type loadRequest struct {
	kind   entities.Kind
	method string
	args   []any
}

// Loader runs backend requests on behalf of the views and writes their
// results into the Store. Every request gets a generation from the Store;
// only the latest one may change the loaded record or the busy flag.
type Loader struct {
	bridge output.Bridge
	store  *Store

	mu   sync.Mutex
	last *loadRequest
}

func NewLoader(bridge output.Bridge, store *Store) *Loader {
	return &Loader{
		bridge: bridge,
		store:  store,
	}
}

// Load fetches one record through method and makes it the loaded record.
// A result that was overtaken by a newer request is returned together with
// domain.ErrStaleLoad and is not stored.
func (l *Loader) Load(ctx context.Context, kind entities.Kind, method string, args ...any) (entities.Loaded, error) {
	if _, err := entities.New(kind); err != nil {
		return entities.Loaded{}, err
	}
	l.remember(kind, method, args)

	gen := l.store.beginLoad()
	defer l.store.endLoad(gen)

	raw, err := l.bridge.Invoke(ctx, method, args...)
	if err != nil {
		log.Printf("❌ loader: %s failed: %v", method, err)
		return entities.Loaded{}, fmt.Errorf("load %s: %w", kind, err)
	}
	e, err := entities.Decode(kind, raw)
	if err != nil {
		return entities.Loaded{}, err
	}

	loaded := entities.Complete(e)
	if !l.store.finishLoad(gen, loaded) {
		log.Printf("loader: discarded %s result of request %d", method, gen)
		return loaded, fmt.Errorf("load %s: %w", kind, domain.ErrStaleLoad)
	}
	return loaded, nil
}

// LoadList fetches a list of rows. Rows are partial records; they are
// returned to the caller and never become the loaded record, so a list fetch
// never supersedes a record load.
func (l *Loader) LoadList(ctx context.Context, kind entities.Kind, method string, args ...any) ([]entities.Entity, error) {
	if _, err := entities.New(kind); err != nil {
		return nil, err
	}

	gen := l.store.beginList()
	defer l.store.endList(gen)

	raw, err := l.bridge.Invoke(ctx, method, args...)
	if err != nil {
		log.Printf("❌ loader: %s failed: %v", method, err)
		return nil, fmt.Errorf("load %s list: %w", kind, err)
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("load %s list: %w", kind, err)
	}
	out := make([]entities.Entity, 0, len(items))
	for _, item := range items {
		e, err := entities.Decode(kind, item)
		if err != nil {
			return nil, fmt.Errorf("load %s list: %w", kind, err)
		}
		out = append(out, e)
	}
	if !l.store.listCurrent(gen) {
		return out, fmt.Errorf("load %s list: %w", kind, domain.ErrStaleLoad)
	}
	return out, nil
}

// Save sends the whole record to the backend and, once accepted, makes it
// the loaded record. A save overtaken by a newer request is still written by
// the backend but leaves the loaded record alone and reports
// domain.ErrStaleLoad.
func (l *Loader) Save(ctx context.Context, method string, entity entities.Entity, args ...any) error {
	if entity == nil {
		return fmt.Errorf("save: %w", domain.ErrUnknownKind)
	}

	gen := l.store.beginLoad()
	defer l.store.endLoad(gen)

	callArgs := append([]any{entity}, args...)
	if _, err := l.bridge.Invoke(ctx, method, callArgs...); err != nil {
		log.Printf("❌ loader: %s failed: %v", method, err)
		return fmt.Errorf("save %s: %w", entity.Kind(), err)
	}
	if !l.store.finishLoad(gen, entities.Complete(entity)) {
		log.Printf("loader: %s accepted, request %d superseded", method, gen)
		return fmt.Errorf("save %s: %w", entity.Kind(), domain.ErrStaleLoad)
	}
	return nil
}

// OpenSave opens a save file on the backend and publishes the games found in
// it as the save list. A null answer means the user cancelled the file
// dialog; the save list is then left unchanged and nil is returned.
func (l *Loader) OpenSave(ctx context.Context, path string) ([]string, error) {
	gen := l.store.beginList()
	defer l.store.endList(gen)

	raw, err := l.bridge.Invoke(ctx, MethodPickFile, path)
	if err != nil {
		return nil, fmt.Errorf("open save: %w", err)
	}
	var games []string
	if err := json.Unmarshal(raw, &games); err != nil {
		return nil, fmt.Errorf("open save: %w", err)
	}
	if games == nil {
		log.Println("open save: cancelled")
		return nil, nil
	}
	if !l.store.listCurrent(gen) {
		return games, fmt.Errorf("open save: %w", domain.ErrStaleLoad)
	}
	l.store.SetSaveList(games)
	log.Printf("✅ save opened: %d game(s)", len(games))
	return games, nil
}

// SelectGame picks one game of the open save and enters the save editor.
// Record loads still running against the previous game are dropped.
func (l *Loader) SelectGame(ctx context.Context, game string) error {
	gen := l.store.beginList()
	defer l.store.endList(gen)

	if _, err := l.bridge.Invoke(ctx, MethodSelectGame, game); err != nil {
		return fmt.Errorf("select game %q: %w", game, err)
	}
	if err := l.store.SetMode(domain.ModeSaveEdit); err != nil {
		return err
	}
	l.store.SetSelectedGame(game)
	l.store.dropLoaded()
	l.forget()
	return nil
}

// ConnectMemory attaches to a running emulator and, on success, enters the
// memory editor, dropping record loads still running against the save.
func (l *Loader) ConnectMemory(ctx context.Context) (bool, error) {
	gen := l.store.beginList()
	defer l.store.endList(gen)

	raw, err := l.bridge.Invoke(ctx, MethodConnectPCSX2)
	if err != nil {
		return false, fmt.Errorf("connect memory: %w", err)
	}
	var ok bool
	if err := json.Unmarshal(raw, &ok); err != nil {
		return false, fmt.Errorf("connect memory: %w", err)
	}
	if !ok {
		return false, nil
	}
	if err := l.store.SetMode(domain.ModeMemoryEdit); err != nil {
		return false, err
	}
	l.store.dropLoaded()
	l.forget()
	return true, nil
}

// ServiceRefresh reloads the last loaded record when a view asked for it.
// The request flag is cleared before the reload starts, so a request raised
// while it runs is kept for the next call.
func (l *Loader) ServiceRefresh(ctx context.Context) error {
	if !l.store.takeRefresh() {
		return nil
	}

	l.mu.Lock()
	last := l.last
	l.mu.Unlock()
	if last == nil {
		return fmt.Errorf("refresh: %w", domain.ErrNoPendingRequest)
	}
	_, err := l.Load(ctx, last.kind, last.method, last.args...)
	return err
}

// Reset drops the backend reader and returns the store to its defaults.
func (l *Loader) Reset(ctx context.Context) error {
	l.forget()
	l.store.Reset()
	if _, err := l.bridge.Invoke(ctx, MethodReset); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	return nil
}

func (l *Loader) remember(kind entities.Kind, method string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = &loadRequest{kind: kind, method: method, args: slices.Clone(args)}
}

// forget drops the remembered request so a refresh cannot replay it against
// another game.
func (l *Loader) forget() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.last = nil
}
