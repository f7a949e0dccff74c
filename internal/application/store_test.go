package application

import (
	"errors"
	"testing"

	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/domain/entities"
)

func TestStoreDefaults(t *testing.T) {
	s := NewStore()
	if s.Mode() != domain.ModeNone {
		t.Errorf("Mode() = %q, want none", s.Mode())
	}
	if s.SelectedTab() != domain.TabGame {
		t.Errorf("SelectedTab() = %q, want Game", s.SelectedTab())
	}
	if !s.Loaded().IsEmpty() {
		t.Error("Loaded() should be empty")
	}
	if list := s.SaveList(); list == nil || len(list) != 0 {
		t.Errorf("SaveList() = %#v, want empty non-nil", list)
	}
	if s.IsLoading() || s.RefreshRequested() {
		t.Error("flags should start cleared")
	}
	if s.GameYear() != 1 || s.GameVersion() != 1 || s.SelectedGame() != "" {
		t.Errorf("game = %q year %d version %d", s.SelectedGame(), s.GameYear(), s.GameVersion())
	}
}

func TestStoreMode(t *testing.T) {
	t.Run("permissive", func(t *testing.T) {
		s := NewStore()
		for _, m := range []domain.Mode{domain.ModeSaveEdit, domain.ModeMemoryEdit, domain.ModeBookScout, domain.ModeNone} {
			if err := s.SetMode(m); err != nil {
				t.Fatalf("SetMode(%q) failed: %v", m, err)
			}
			if s.Mode() != m {
				t.Fatalf("Mode() = %q, want %q", s.Mode(), m)
			}
		}
		if err := s.SetMode("clubEditor"); !errors.Is(err, domain.ErrUnknownMode) {
			t.Errorf("SetMode(clubEditor) error = %v", err)
		}
	})

	t.Run("guarded", func(t *testing.T) {
		s := NewStore(WithTransitionGuard())
		if err := s.SetMode(domain.ModeSaveEdit); err != nil {
			t.Fatalf("none -> save failed: %v", err)
		}
		if err := s.SetMode(domain.ModeSaveEdit); err != nil {
			t.Errorf("save -> save failed: %v", err)
		}
		if err := s.SetMode(domain.ModeMemoryEdit); !errors.Is(err, domain.ErrInvalidTransition) {
			t.Errorf("save -> memory error = %v, want ErrInvalidTransition", err)
		}
		if s.Mode() != domain.ModeSaveEdit {
			t.Errorf("rejected transition changed the mode to %q", s.Mode())
		}
		if err := s.SetMode(domain.ModeNone); err != nil {
			t.Errorf("save -> none failed: %v", err)
		}
		if err := s.SetMode(domain.ModeBookPlayer); err != nil {
			t.Errorf("none -> book failed: %v", err)
		}
		if err := s.SetMode(domain.ModeBookCoach); err != nil {
			t.Errorf("book -> book failed: %v", err)
		}
	})
}

func TestStoreTabs(t *testing.T) {
	s := NewStore()
	if err := s.SetSelectedTab(domain.TabTown); err != nil {
		t.Fatalf("SetSelectedTab(Town) failed: %v", err)
	}
	if err := s.SetSelectedTab(domain.TabProfile); !errors.Is(err, domain.ErrUnknownTab) {
		t.Errorf("SetSelectedTab(Profile) error = %v, want ErrUnknownTab", err)
	}
	if s.SelectedTab() != domain.TabTown {
		t.Errorf("rejected tab changed the selection to %q", s.SelectedTab())
	}

	s.SetLoaded(entities.Complete(&entities.BookPlayer{}))
	tabs := s.Tabs()
	if len(tabs) != len(domain.BookTabs) || tabs[0] != domain.TabProfile {
		t.Errorf("Tabs() = %v, want book tabs", tabs)
	}
	s.SetDefaultTab()
	if s.SelectedTab() != domain.TabProfile {
		t.Errorf("default tab = %q, want Profile", s.SelectedTab())
	}

	s.SetLoaded(entities.Complete(&entities.Club{}))
	s.SetDefaultTab()
	if s.SelectedTab() != domain.TabGame {
		t.Errorf("default tab = %q, want Game", s.SelectedTab())
	}

	tabs = s.Tabs()
	tabs[0] = "changed"
	if s.Tabs()[0] != domain.TabGame {
		t.Error("Tabs() exposed the shared slice")
	}
}

func TestStoreLoadedIsReplaced(t *testing.T) {
	s := NewStore()
	first := &entities.MyPlayer{ID: 1, Name: "first", Pos: 3}
	s.SetLoaded(entities.Complete(first))
	if s.Loaded().Entity() != entities.Entity(first) {
		t.Fatal("SetLoaded must keep the record identity")
	}

	second := &entities.MyTeamPlayer{ID: 2, Name: "second"}
	s.SetLoaded(entities.Partial(second))
	loaded := s.Loaded()
	if loaded.Entity() != entities.Entity(second) || loaded.IsComplete() {
		t.Errorf("Loaded() = %+v, want the partial second record", loaded)
	}

	s.SetLoaded(entities.Loaded{})
	if !s.Loaded().IsEmpty() {
		t.Error("clearing the loaded record failed")
	}
}

func TestStoreSaveList(t *testing.T) {
	s := NewStore()
	list := []string{"a", "b"}
	s.SetSaveList(list)
	list[0] = "changed"
	if got := s.SaveList(); got[0] != "a" {
		t.Errorf("SaveList shares the caller's slice: %v", got)
	}
	got := s.SaveList()
	got[1] = "changed"
	if s.SaveList()[1] != "b" {
		t.Error("SaveList() exposed the stored slice")
	}
	s.SetSaveList(nil)
	if l := s.SaveList(); l == nil || len(l) != 0 {
		t.Errorf("SetSaveList(nil) = %#v, want empty", l)
	}
}

func TestStoreFlags(t *testing.T) {
	s := NewStore()
	s.SetRefreshRequested(true)
	s.SetIsLoading(true)
	if !s.RefreshRequested() || !s.IsLoading() {
		t.Fatal("flags not raised")
	}
	s.SetLoaded(entities.Complete(&entities.Club{}))
	if !s.RefreshRequested() {
		t.Error("refresh request cleared by an unrelated write")
	}
	s.SetRefreshRequested(false)
	s.SetIsLoading(false)
	if s.RefreshRequested() || s.IsLoading() {
		t.Error("flags not cleared")
	}
}

func TestStoreDataLocale(t *testing.T) {
	s := NewStore()
	if s.DataLocale() != domain.LocaleZH {
		t.Errorf("DataLocale() = %q, want zh", s.DataLocale())
	}
	s.SetGameVersion(0)
	if s.DataLocale() != domain.LocaleJA {
		t.Errorf("DataLocale() = %q, want ja", s.DataLocale())
	}
}

func TestStoreGenerations(t *testing.T) {
	s := NewStore()
	first := s.beginLoad()
	second := s.beginLoad()
	if !s.IsLoading() {
		t.Fatal("beginLoad must raise isLoading")
	}

	club := entities.Complete(&entities.Club{ClubName: "old"})
	if s.finishLoad(first, club) {
		t.Error("stale request was stored")
	}
	if !s.Loaded().IsEmpty() || !s.IsLoading() {
		t.Error("stale request changed the store")
	}
	if s.endLoad(first) || !s.IsLoading() {
		t.Error("stale endLoad cleared isLoading")
	}

	town := entities.Complete(&entities.Town{})
	if !s.finishLoad(second, town) {
		t.Fatal("latest request was discarded")
	}
	if s.IsLoading() {
		t.Error("finishLoad must clear isLoading")
	}
	if kind, _ := s.Loaded().Kind(); kind != entities.KindTown {
		t.Errorf("loaded kind = %q, want town", kind)
	}

	third := s.beginLoad()
	s.Reset()
	if s.finishLoad(third, club) {
		t.Error("Reset must invalidate in-flight requests")
	}
}

func TestStoreReset(t *testing.T) {
	s := NewStore(WithTransitionGuard())
	_ = s.SetMode(domain.ModeSaveEdit)
	_ = s.SetSelectedTab(domain.TabPlayers)
	s.SetSaveList([]string{"g"})
	s.SetSelectedGame("g")
	s.SetGameYear(5)
	s.SetRefreshRequested(true)
	s.SetLoaded(entities.Complete(&entities.Club{}))

	s.Reset()
	snap := s.Snapshot()
	if snap.Mode != domain.ModeNone || snap.SelectedTab != domain.TabGame || !snap.Loaded.IsEmpty() {
		t.Errorf("snapshot after reset = %+v", snap)
	}
	if len(snap.SaveList) != 0 || snap.SelectedGame != "" || snap.GameYear != 1 || snap.RefreshRequested {
		t.Errorf("snapshot after reset = %+v", snap)
	}
	if err := s.SetMode(domain.ModeMemoryEdit); err != nil {
		t.Errorf("guard must survive Reset: none -> memory failed: %v", err)
	}
}

func TestStoreListGenerations(t *testing.T) {
	s := NewStore()
	record := s.beginLoad()
	list := s.beginList()
	if !s.endList(list) {
		t.Fatal("latest list fetch was treated as stale")
	}
	if !s.IsLoading() {
		t.Error("a finished list cleared the busy flag of a running record load")
	}
	if !s.finishLoad(record, entities.Complete(&entities.Club{})) {
		t.Error("a list fetch superseded the record load")
	}
	if s.IsLoading() {
		t.Error("isLoading left raised")
	}

	first := s.beginList()
	second := s.beginList()
	if s.listCurrent(first) || !s.listCurrent(second) {
		t.Error("only the latest list fetch is current")
	}
	if s.endList(first) || !s.IsLoading() {
		t.Error("stale endList cleared the busy flag")
	}
	s.SetIsLoading(false)
	if s.IsLoading() {
		t.Error("SetIsLoading(false) must clear both busy flags")
	}
}

func TestStoreDropLoaded(t *testing.T) {
	s := NewStore()
	s.SetLoaded(entities.Complete(&entities.BookScout{}))
	s.SetDefaultTab()
	pending := s.beginLoad()

	s.dropLoaded()
	if !s.Loaded().IsEmpty() || s.SelectedTab() != domain.TabGame || s.IsLoading() {
		t.Errorf("after dropLoaded: %+v", s.Snapshot())
	}
	if s.finishLoad(pending, entities.Complete(&entities.Club{})) {
		t.Error("dropLoaded must supersede pending record loads")
	}
}

func TestStoreTakeRefresh(t *testing.T) {
	s := NewStore()
	if s.takeRefresh() {
		t.Error("no request was raised")
	}
	s.SetRefreshRequested(true)
	if !s.takeRefresh() || s.RefreshRequested() {
		t.Error("takeRefresh must report and clear the request")
	}
}
