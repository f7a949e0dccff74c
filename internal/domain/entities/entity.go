package entities

import (
	"encoding/json"
	"fmt"

	"sakatsuku04/internal/domain"
)

// Kind identifies an entity variant.
type Kind string

const (
	KindClub         Kind = "club"
	KindTeamPlayer   Kind = "teamPlayer"
	KindMyTeamPlayer Kind = "myTeamPlayer"
	KindMyPlayer     Kind = "myPlayer"
	KindScout        Kind = "scout"
	KindCoach        Kind = "coach"
	KindTown         Kind = "town"
	KindAbroad       Kind = "abroad"
	KindSponsor      Kind = "sponsor"
	KindTrophy       Kind = "trophy"
	KindBookPlayer   Kind = "bPlayer"
	KindBookScout    Kind = "bScout"
	KindBookCoach    Kind = "bCoach"
)

// IsBook reports whether k is a data book record rather than save data.
func (k Kind) IsBook() bool {
	return k == KindBookPlayer || k == KindBookScout || k == KindBookCoach
}

// Entity is implemented by every record the editor can load. The set of
// implementations is closed to this package.
type Entity interface {
	Kind() Kind
	entity()
}

// New returns an empty record of the given kind, ready to be decoded into.
func New(kind Kind) (Entity, error) {
	switch kind {
	case KindClub:
		return &Club{}, nil
	case KindTeamPlayer:
		return &TeamPlayer{}, nil
	case KindMyTeamPlayer:
		return &MyTeamPlayer{}, nil
	case KindMyPlayer:
		return &MyPlayer{}, nil
	case KindScout:
		return &Scout{}, nil
	case KindCoach:
		return &Coach{}, nil
	case KindTown:
		return &Town{}, nil
	case KindAbroad:
		return &Abroad{}, nil
	case KindSponsor:
		return &Sponsor{}, nil
	case KindTrophy:
		return &Trophy{}, nil
	case KindBookPlayer:
		return &BookPlayer{}, nil
	case KindBookScout:
		return &BookScout{}, nil
	case KindBookCoach:
		return &BookCoach{}, nil
	}
	return nil, fmt.Errorf("new entity %q: %w", kind, domain.ErrUnknownKind)
}

// Decode builds a record of the given kind from its JSON form.
func Decode(kind Kind, data []byte) (Entity, error) {
	e, err := New(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return e, nil
}

// Loaded wraps the entity held by the editor and records whether it came from
// a full fetch. The zero value holds nothing.
type Loaded struct {
	entity   Entity
	complete bool
}

// Partial wraps a record that is known to be partially populated, such as a
// list row shown before the full record is fetched.
func Partial(e Entity) Loaded {
	return Loaded{entity: e}
}

// Complete wraps a fully fetched record.
func Complete(e Entity) Loaded {
	return Loaded{entity: e, complete: e != nil}
}

func (l Loaded) Entity() Entity { return l.entity }

func (l Loaded) IsEmpty() bool { return l.entity == nil }

func (l Loaded) IsComplete() bool { return l.complete }

// Kind returns the kind of the wrapped record; ok is false when empty.
func (l Loaded) Kind() (kind Kind, ok bool) {
	if l.entity == nil {
		return "", false
	}
	return l.entity.Kind(), true
}

func (l Loaded) MarshalJSON() ([]byte, error) {
	if l.entity == nil {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Kind     Kind   `json:"kind"`
		Complete bool   `json:"complete"`
		Entity   Entity `json:"entity"`
	}{l.entity.Kind(), l.complete, l.entity})
}
