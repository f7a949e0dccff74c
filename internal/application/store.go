package application

import (
	"fmt"
	"slices"
	"sync"

	"sakatsuku04/internal/domain"
	"sakatsuku04/internal/domain/entities"
	"sakatsuku04/internal/ports/input"
)

var _ input.EditorStateUseCase = (*Store)(nil)

// defaultTransitions is the mode graph enforced by WithTransitionGuard.
// Switching between the save editor and the memory editor has to go through
// ModeNone, because each one owns a different backend reader.
var defaultTransitions = map[domain.Mode][]domain.Mode{
	domain.ModeNone:       {domain.ModeSaveEdit, domain.ModeMemoryEdit, domain.ModeBookPlayer, domain.ModeBookScout, domain.ModeBookCoach},
	domain.ModeSaveEdit:   {domain.ModeNone},
	domain.ModeMemoryEdit: {domain.ModeNone},
	domain.ModeBookPlayer: {domain.ModeNone, domain.ModeBookScout, domain.ModeBookCoach},
	domain.ModeBookScout:  {domain.ModeNone, domain.ModeBookPlayer, domain.ModeBookCoach},
	domain.ModeBookCoach:  {domain.ModeNone, domain.ModeBookPlayer, domain.ModeBookScout},
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTransitionGuard makes SetMode reject transitions outside the default
// mode graph. Without it every mode can follow every other mode.
func WithTransitionGuard() StoreOption {
	return func(s *Store) {
		s.transitions = defaultTransitions
	}
}

// Store holds the editor state: mode, tab, loaded record, save list and the
// transient flags. It is created once and shared by every view.
type Store struct {
	mu          sync.RWMutex
	transitions map[domain.Mode][]domain.Mode

	mode             domain.Mode
	selectedTab      domain.Tab
	loaded           entities.Loaded
	saveList         []string
	isLoading        bool
	listing          bool
	refreshRequested bool

	selectedGame string
	gameYear     int
	gameVersion  int

	// generation orders requests that write the loaded record;
	// listGeneration orders list fetches, which never do.
	generation     uint64
	listGeneration uint64
}

func NewStore(opts ...StoreOption) *Store {
	s := &Store{}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.resetLocked()
	return s
}

func (s *Store) resetLocked() {
	s.mode = domain.ModeNone
	s.loaded = entities.Loaded{}
	s.selectedTab = tabsFor(s.loaded)[0]
	s.saveList = []string{}
	s.isLoading = false
	s.listing = false
	s.refreshRequested = false
	s.selectedGame = ""
	s.gameYear = 1
	s.gameVersion = 1
}

// Reset returns every field to its startup value. Loads still in flight are
// invalidated.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.generation++
	s.listGeneration++
}

// --- mode ---

func (s *Store) Mode() domain.Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *Store) SetMode(mode domain.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("set mode %q: %w", mode, domain.ErrUnknownMode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.transitions != nil && mode != s.mode && !slices.Contains(s.transitions[s.mode], mode) {
		return fmt.Errorf("set mode %q -> %q: %w", s.mode, mode, domain.ErrInvalidTransition)
	}
	s.mode = mode
	return nil
}

// --- tabs ---

func tabsFor(loaded entities.Loaded) []domain.Tab {
	if kind, ok := loaded.Kind(); ok && kind.IsBook() {
		return domain.BookTabs
	}
	return domain.ClubTabs
}

// Tabs returns the tab set of the loaded record's kind.
func (s *Store) Tabs() []domain.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(tabsFor(s.loaded))
}

func (s *Store) SelectedTab() domain.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedTab
}

func (s *Store) SetSelectedTab(tab domain.Tab) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !domain.TabsContain(tabsFor(s.loaded), tab) {
		return fmt.Errorf("set tab %q: %w", tab, domain.ErrUnknownTab)
	}
	s.selectedTab = tab
	return nil
}

// SetDefaultTab selects the first tab of the current tab set.
func (s *Store) SetDefaultTab() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedTab = tabsFor(s.loaded)[0]
}

// --- loaded record ---

func (s *Store) Loaded() entities.Loaded {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// SetLoaded replaces the loaded record as a whole. Nothing is merged with the
// previous record.
func (s *Store) SetLoaded(loaded entities.Loaded) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = loaded
}

// --- save list ---

func (s *Store) SaveList() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.saveList)
}

func (s *Store) SetSaveList(list []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if list == nil {
		list = []string{}
	}
	s.saveList = slices.Clone(list)
}

// --- flags ---

// IsLoading reports whether a record or a list request is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading || s.listing
}

func (s *Store) SetIsLoading(flag bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = flag
	if !flag {
		s.listing = false
	}
}

func (s *Store) RefreshRequested() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshRequested
}

// SetRefreshRequested raises or clears the reload request. The store never
// clears it on its own; whoever services the request does.
func (s *Store) SetRefreshRequested(flag bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshRequested = flag
}

// takeRefresh clears the reload request and reports whether one was raised.
func (s *Store) takeRefresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	requested := s.refreshRequested
	s.refreshRequested = false
	return requested
}

// --- game selection ---

func (s *Store) SelectedGame() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedGame
}

func (s *Store) SetSelectedGame(game string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedGame = game
}

func (s *Store) GameYear() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameYear
}

func (s *Store) SetGameYear(year int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameYear = year
}

func (s *Store) GameVersion() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameVersion
}

// SetGameVersion records the backend's game version: 0 is the Japanese
// release, anything else a Chinese one.
func (s *Store) SetGameVersion(version int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameVersion = version
}

// DataLocale is the language the loaded save's own strings are written in.
func (s *Store) DataLocale() domain.Locale {
	if s.GameVersion() == 0 {
		return domain.LocaleJA
	}
	return domain.LocaleZH
}

// --- load generations ---

// Generation returns the id of the most recent request that writes the loaded
// record.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// beginLoad starts a request that will write the loaded record, superseding
// any earlier one.
func (s *Store) beginLoad() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.isLoading = true
	return s.generation
}

// finishLoad stores the result of request gen if it is still the latest.
func (s *Store) finishLoad(gen uint64, loaded entities.Loaded) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.loaded = loaded
	s.isLoading = false
	return true
}

// endLoad clears the busy flag for request gen if it is still the latest.
func (s *Store) endLoad(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.isLoading = false
	return true
}

// dropLoaded empties the loaded record, selects the default tab and
// supersedes every record request in flight.
func (s *Store) dropLoaded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.loaded = entities.Loaded{}
	s.isLoading = false
	s.selectedTab = tabsFor(s.loaded)[0]
}

// beginList starts a list fetch. List fetches only supersede each other.
func (s *Store) beginList() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listGeneration++
	s.listing = true
	return s.listGeneration
}

// endList clears the list busy flag for request gen if it is still the latest.
func (s *Store) endList(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.listGeneration {
		return false
	}
	s.listing = false
	return true
}

// listCurrent reports whether gen is still the latest list fetch.
func (s *Store) listCurrent(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return gen == s.listGeneration
}

// --- snapshot ---

// Snapshot is a consistent copy of the whole store.
type Snapshot struct {
	Mode             domain.Mode     `json:"mode"`
	SelectedTab      domain.Tab      `json:"selectedTab"`
	Tabs             []domain.Tab    `json:"tabs"`
	Loaded           entities.Loaded `json:"loaded"`
	SaveList         []string        `json:"saveList"`
	IsLoading        bool            `json:"isLoading"`
	RefreshRequested bool            `json:"refreshRequested"`
	SelectedGame     string          `json:"selectedGame"`
	GameYear         int             `json:"gameYear"`
	GameVersion      int             `json:"gameVersion"`
	Generation       uint64          `json:"generation"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Mode:             s.mode,
		SelectedTab:      s.selectedTab,
		Tabs:             slices.Clone(tabsFor(s.loaded)),
		Loaded:           s.loaded,
		SaveList:         slices.Clone(s.saveList),
		IsLoading:        s.isLoading || s.listing,
		RefreshRequested: s.refreshRequested,
		SelectedGame:     s.selectedGame,
		GameYear:         s.gameYear,
		GameVersion:      s.gameVersion,
		Generation:       s.generation,
	}
}
