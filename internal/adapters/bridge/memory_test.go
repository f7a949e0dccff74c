package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"sakatsuku04/internal/application"
	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/domain/entities"
)

func TestMemoryBridge(t *testing.T) {
	b := NewMemoryBridge()
	b.Handle("echo", func(_ context.Context, args []json.RawMessage) (any, error) {
		return args, nil
	})
	b.Handle("fail", func(context.Context, []json.RawMessage) (any, error) {
		return nil, errors.New("boom")
	})

	raw, err := b.Invoke(context.Background(), "echo", 1, "a")
	if err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if string(raw) != `[1,"a"]` {
		t.Errorf("echo = %s", raw)
	}

	if _, err := b.Invoke(context.Background(), "fail"); !errors.Is(err, domain.ErrBridgeRejected) {
		t.Errorf("handler error = %v, want ErrBridgeRejected", err)
	}
	if _, err := b.Invoke(context.Background(), "missing"); !errors.Is(err, domain.ErrBridgeRejected) {
		t.Errorf("unknown method error = %v, want ErrBridgeRejected", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.Invoke(ctx, "echo"); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled error = %v", err)
	}
}

func demo() (*application.Store, *application.Loader) {
	b := NewMemoryBridge()
	NewDemoBackend().Register(b)
	store := application.NewStore(application.WithTransitionGuard())
	return store, application.NewLoader(b, store)
}

func TestDemoBackendSession(t *testing.T) {
	ctx := context.Background()
	store, loader := demo()

	games, err := loader.OpenSave(ctx, "demo.bin")
	if err != nil || len(games) != 2 {
		t.Fatalf("OpenSave = %v, %v", games, err)
	}
	if err := loader.SelectGame(ctx, "missing"); !errors.Is(err, domain.ErrBridgeRejected) {
		t.Errorf("SelectGame(missing) error = %v", err)
	}
	if err := loader.SelectGame(ctx, games[0]); err != nil {
		t.Fatalf("SelectGame failed: %v", err)
	}
	if store.Mode() != domain.ModeSaveEdit {
		t.Errorf("Mode() = %q", store.Mode())
	}

	rows, err := loader.LoadList(ctx, entities.KindMyTeamPlayer, application.MethodFetchMyTeam)
	if err != nil || len(rows) != 4 {
		t.Fatalf("LoadList = %d rows, %v", len(rows), err)
	}
	id := rows[2].(*entities.MyTeamPlayer).ID

	loaded, err := loader.Load(ctx, entities.KindMyPlayer, application.MethodFetchMyPlayer, id)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	player := loaded.Entity().(*entities.MyPlayer)
	if player.Name != "Endo" || player.Pos != 3 {
		t.Errorf("player = %+v", player)
	}

	edited := *player
	edited.Number = 8
	if err := loader.Save(ctx, application.MethodSaveMyPlayer, &edited); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	again, err := loader.Load(ctx, entities.KindMyPlayer, application.MethodFetchMyPlayer, id)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if again.Entity().(*entities.MyPlayer).Number != 8 {
		t.Error("saved edit not visible on reload")
	}

	if ok, err := loader.ConnectMemory(ctx); err != nil || ok {
		t.Errorf("ConnectMemory = %v, %v; demo has no emulator", ok, err)
	}

	if err := loader.Reset(ctx); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if store.Mode() != domain.ModeNone || !store.Loaded().IsEmpty() {
		t.Error("Reset left state behind")
	}
}

func TestDemoBackendFriendlyAndSearch(t *testing.T) {
	ctx := context.Background()
	b := NewMemoryBridge()
	NewDemoBackend().Register(b)

	if _, err := b.Invoke(ctx, application.MethodSaveTeamFriendly, 1, 75); err != nil {
		t.Fatalf("save friendly failed: %v", err)
	}
	raw, err := b.Invoke(ctx, application.MethodFetchTeamFriendly, 1)
	if err != nil || string(raw) != "75" {
		t.Errorf("friendly = %s, %v", raw, err)
	}

	pos := 5
	raw, err = b.Invoke(ctx, application.MethodSearchPlayer, entities.Search{Pos: &pos})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	var found []entities.TeamPlayer
	if err := json.Unmarshal(raw, &found); err != nil {
		t.Fatalf("decode search: %v", err)
	}
	if len(found) != 2 || found[0].ID != 0x0201 || found[1].ID != 0x0301 {
		t.Errorf("search = %+v", found)
	}

	if _, err := b.Invoke(ctx, application.MethodFetchMyPlayer); !errors.Is(err, domain.ErrBridgeRejected) {
		t.Errorf("missing argument error = %v", err)
	}
}
