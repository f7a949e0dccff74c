package domain

// Mode is the top-level editing mode of the editor.
type Mode string

const (
	ModeNone       Mode = ""
	ModeSaveEdit   Mode = "saveEditor"
	ModeMemoryEdit Mode = "memoryEditor"
	ModeBookPlayer Mode = "bPlayerView"
	ModeBookScout  Mode = "bScoutView"
	ModeBookCoach  Mode = "bCoachView"
)

// Modes lists every known mode.
var Modes = []Mode{ModeNone, ModeSaveEdit, ModeMemoryEdit, ModeBookPlayer, ModeBookScout, ModeBookCoach}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// Tab names one editing view inside a mode.
type Tab string

// Club management tabs, shown while a save (or nothing) is loaded.
const (
	TabGame     Tab = "Game"
	TabPlayers  Tab = "Players"
	TabTeams    Tab = "Teams"
	TabSearch   Tab = "Search"
	TabScouts   Tab = "Scouts"
	TabCoaches  Tab = "Coaches"
	TabTown     Tab = "Town"
	TabSponsors Tab = "Sponsors"
	TabAlbum    Tab = "Album"
	TabAbroad   Tab = "Abroad"
)

// Data book tabs, shown while a data book record is loaded.
const (
	TabProfile    Tab = "Profile"
	TabAbilities  Tab = "Abilities"
	TabGrowth     Tab = "Growth"
	TabEvaluation Tab = "Evaluation"
)

var (
	ClubTabs = []Tab{TabGame, TabPlayers, TabTeams, TabSearch, TabScouts, TabCoaches, TabTown, TabSponsors, TabAlbum, TabAbroad}
	BookTabs = []Tab{TabProfile, TabAbilities, TabGrowth, TabEvaluation}
)

// TabsContain reports whether tab is part of tabs.
func TabsContain(tabs []Tab, tab Tab) bool {
	for _, t := range tabs {
		if t == tab {
			return true
		}
	}
	return false
}
