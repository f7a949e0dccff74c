package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"sakatsuku04/internal/application"
	"sakatsuku04/internal/domain/entities"
)

// DemoBackend is a small in-memory save used when no real backend is
// available. It answers the same methods as the native backend.
type DemoBackend struct {
	mu       sync.Mutex
	games    []string
	selected string
	club     entities.Club
	town     entities.Town
	players  []entities.MyPlayer
	teams    map[int][]entities.TeamPlayer
	friendly map[int]int
}

func NewDemoBackend() *DemoBackend {
	return &DemoBackend{
		games: []string{"BESLPS-56024SAKATSUKU04-0", "BESLPS-56024SAKATSUKU04-1"},
		club: entities.Club{
			ClubName:    "Sakatsuku FC",
			ManagerName: "Kantoku",
			Year:        2004,
			Month:       4,
			Date:        1,
			FundsHigh:   12,
			FundsLow:    3456,
			Difficulty:  1,
			Seed:        7,
		},
		town: entities.Town{Living: 3, Economy: 4, Sports: 2, Population: 120000, TownType: 1},
		players: []entities.MyPlayer{
			{Index: 0, ID: 0x0101, Name: "Kawaguchi", Age: 28, Number: 1, Pos: 0, Rank: 3, GrowTypePhy: 1, ToneType: 1, CooperationType: 0, Style: 9},
			{Index: 1, ID: 0x0102, Name: "Nakazawa", Age: 26, Number: 22, Pos: 1, Rank: 3, GrowTypePhy: 2, ToneType: 0, CooperationType: 2, Style: 4},
			{Index: 2, ID: 0x0103, Name: "Endo", Age: 24, Number: 7, Pos: 3, Rank: 2, GrowTypePhy: 1, ToneType: 4, CooperationType: 0, Style: 3},
			{Index: 3, ID: 0x0104, Name: "Tamada", Age: 24, Number: 11, Pos: 6, Rank: 2, GrowTypePhy: 0, ToneType: 2, CooperationType: 1, Style: 0},
		},
		teams: map[int][]entities.TeamPlayer{
			1: {
				{ID: 0x0201, Name: "Ogasawara", Age: 25, Pos: 5, Rank: 4, Style: 3, TeamIndex: 1},
				{ID: 0x0202, Name: "Yanagisawa", Age: 27, Pos: 6, Rank: 3, Style: 0, TeamIndex: 1},
			},
			2: {
				{ID: 0x0301, Name: "Nanami", Age: 30, Pos: 5, Rank: 4, Style: 2, TeamIndex: 2},
			},
		},
		friendly: map[int]int{1: 50, 2: 30},
	}
}

// Register installs the demo handlers on b.
func (d *DemoBackend) Register(b *MemoryBridge) {
	b.Handle(application.MethodPickFile, d.pickFile)
	b.Handle(application.MethodConnectPCSX2, func(context.Context, []json.RawMessage) (any, error) { return false, nil })
	b.Handle(application.MethodReset, d.reset)
	b.Handle(application.MethodSelectGame, d.selectGame)
	b.Handle(application.MethodFetchClubData, d.fetchClub)
	b.Handle(application.MethodSaveClubData, d.saveClub)
	b.Handle(application.MethodFetchMyTeam, d.fetchMyTeam)
	b.Handle(application.MethodFetchMyPlayer, d.fetchMyPlayer)
	b.Handle(application.MethodSaveMyPlayer, d.saveMyPlayer)
	b.Handle(application.MethodFetchTeamPlayer, d.fetchTeamPlayer)
	b.Handle(application.MethodFetchTeamFriendly, d.fetchTeamFriendly)
	b.Handle(application.MethodSaveTeamFriendly, d.saveTeamFriendly)
	b.Handle(application.MethodSearchPlayer, d.searchPlayer)
	b.Handle(application.MethodFetchMyTown, d.fetchTown)
	b.Handle(application.MethodSaveMyTown, d.saveTown)
}

var success = map[string]string{"message": "success"}

func arg[T any](args []json.RawMessage, i int) (T, error) {
	var v T
	if i >= len(args) {
		return v, fmt.Errorf("missing argument %d", i)
	}
	if err := json.Unmarshal(args[i], &v); err != nil {
		return v, fmt.Errorf("argument %d: %w", i, err)
	}
	return v, nil
}

func (d *DemoBackend) pickFile(_ context.Context, args []json.RawMessage) (any, error) {
	if _, err := arg[string](args, 0); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.games), nil
}

func (d *DemoBackend) reset(context.Context, []json.RawMessage) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selected = ""
	return nil, nil
}

func (d *DemoBackend) selectGame(_ context.Context, args []json.RawMessage) (any, error) {
	game, err := arg[string](args, 0)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !slices.Contains(d.games, game) {
		return nil, fmt.Errorf("unknown game %q", game)
	}
	d.selected = game
	return nil, nil
}

func (d *DemoBackend) fetchClub(context.Context, []json.RawMessage) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.club, nil
}

func (d *DemoBackend) saveClub(_ context.Context, args []json.RawMessage) (any, error) {
	club, err := arg[entities.Club](args, 0)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.club = club
	return success, nil
}

func (d *DemoBackend) fetchMyTeam(context.Context, []json.RawMessage) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rows := make([]entities.MyTeamPlayer, 0, len(d.players))
	for _, p := range d.players {
		rows = append(rows, entities.MyTeamPlayer{ID: p.ID, Name: p.Name, Pos: p.Pos})
	}
	return rows, nil
}

func (d *DemoBackend) fetchMyPlayer(_ context.Context, args []json.RawMessage) (any, error) {
	id, err := arg[int](args, 0)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, p := range d.players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("player %d not found", id)
}

func (d *DemoBackend) saveMyPlayer(_ context.Context, args []json.RawMessage) (any, error) {
	player, err := arg[entities.MyPlayer](args, 0)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.players {
		if d.players[i].ID == player.ID {
			d.players[i] = player
			return success, nil
		}
	}
	return nil, fmt.Errorf("player %d not found", player.ID)
}

func (d *DemoBackend) fetchTeamPlayer(_ context.Context, args []json.RawMessage) (any, error) {
	team, err := arg[int](args, 0)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.teams[team]), nil
}

func (d *DemoBackend) fetchTeamFriendly(_ context.Context, args []json.RawMessage) (any, error) {
	team, err := arg[int](args, 0)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.friendly[team], nil
}

func (d *DemoBackend) saveTeamFriendly(_ context.Context, args []json.RawMessage) (any, error) {
	team, err := arg[int](args, 0)
	if err != nil {
		return nil, err
	}
	friendly, err := arg[int](args, 1)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.friendly[team] = friendly
	return success, nil
}

func (d *DemoBackend) searchPlayer(_ context.Context, args []json.RawMessage) (any, error) {
	filter, err := arg[entities.Search](args, 0)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []entities.TeamPlayer
	for _, team := range d.teams {
		for _, p := range team {
			if filter.Pos != nil && p.Pos != *filter.Pos {
				continue
			}
			if filter.Rank != nil && p.Rank != *filter.Rank {
				continue
			}
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b entities.TeamPlayer) int { return a.ID - b.ID })
	return out, nil
}

func (d *DemoBackend) fetchTown(context.Context, []json.RawMessage) (any, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.town, nil
}

func (d *DemoBackend) saveTown(_ context.Context, args []json.RawMessage) (any, error) {
	town, err := arg[entities.Town](args, 0)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.town = town
	return success, nil
}
