package lookup

import (
	"errors"
	"testing"

	"sakatsuku04/internal/domain"
)

func keys(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewTable(t *testing.T) {
	t.Run("hex ordering", func(t *testing.T) {
		table, err := NewTable(Style, domain.LocaleZH, map[string]string{
			"0A": "ten",
			"02": "two",
			"0B": "eleven",
			"00": "zero",
		})
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		want := []string{"00", "02", "0A", "0B"}
		if got := keys(table.Entries()); !equalStrings(got, want) {
			t.Errorf("Entries keys = %v, want %v", got, want)
		}
		if got := table.Text(10); got != "ten" {
			t.Errorf("Text(10) = %q, want %q", got, "ten")
		}
	})

	t.Run("decimal ordering is by string", func(t *testing.T) {
		table, err := NewTable(GrowEval, domain.LocaleZH, map[string]string{
			"2":  "two",
			"10": "ten",
			"1":  "one",
			"0":  "zero",
		})
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		want := []string{"0", "1", "10", "2"}
		if got := keys(table.Entries()); !equalStrings(got, want) {
			t.Errorf("Entries keys = %v, want %v", got, want)
		}
		entries := table.Entries()
		if entries[2].Code != 10 || entries[2].Text != "ten" {
			t.Errorf("entries[2] = %+v, want code 10", entries[2])
		}
	})

	t.Run("missing code", func(t *testing.T) {
		table, err := NewTable(Position, domain.LocaleZH, map[string]string{"00": "GK", "03": "DH"})
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		for _, code := range []int{-1, 1, 2, 4, 1000} {
			if s, ok := table.Lookup(code); ok || s != "" {
				t.Errorf("Lookup(%d) = %q, %v; want empty", code, s, ok)
			}
		}
	})

	t.Run("sparse codes", func(t *testing.T) {
		table, err := NewTable(Team, domain.LocaleJA, map[string]string{"0000": "a", "FFFF": "b"})
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		if got := table.Text(0xFFFF); got != "b" {
			t.Errorf("Text(0xFFFF) = %q, want %q", got, "b")
		}
		if got := table.Text(1); got != "" {
			t.Errorf("Text(1) = %q, want empty", got)
		}
	})

	t.Run("rejects non canonical keys", func(t *testing.T) {
		for _, raw := range []map[string]string{
			{"3": "x"},
			{"0a": "x"},
			{"zz": "x"},
		} {
			if _, err := NewTable(Position, domain.LocaleZH, raw); !errors.Is(err, domain.ErrInvalidTableKey) {
				t.Errorf("NewTable(%v) error = %v, want ErrInvalidTableKey", raw, err)
			}
		}
		if _, err := NewTable(Sponsor, domain.LocaleZH, map[string]string{"01": "x"}); !errors.Is(err, domain.ErrInvalidTableKey) {
			t.Errorf("decimal key 01 error = %v, want ErrInvalidTableKey", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		if _, err := NewTable(Category("weather"), domain.LocaleZH, nil); !errors.Is(err, domain.ErrUnknownCategory) {
			t.Errorf("error = %v, want ErrUnknownCategory", err)
		}
	})

	t.Run("entries are copies", func(t *testing.T) {
		table, _ := NewTable(Foot, domain.LocaleZH, map[string]string{"00": "R"})
		entries := table.Entries()
		entries[0].Text = "changed"
		if got := table.Text(0); got != "R" {
			t.Errorf("table mutated through Entries: %q", got)
		}
	})
}

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	zh, _ := NewTable(Position, domain.LocaleZH, map[string]string{"00": "门将"})
	ja, _ := NewTable(Position, domain.LocaleJA, map[string]string{"00": "GK"})
	foot, _ := NewTable(Foot, domain.LocaleJA, map[string]string{"00": "右足"})
	for _, table := range []*Table{zh, ja, foot} {
		if err := c.Add(table); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if err := c.Add(zh); err == nil {
		t.Error("Add accepted a duplicate table")
	}
	if got, ok := c.Table(Position, domain.LocaleJA); !ok || got.Text(0) != "GK" {
		t.Errorf("Table(position, ja) = %v, %v", got, ok)
	}
	if _, ok := c.Table(Foot, domain.LocaleZH); ok {
		t.Error("Table(foot, zh) should be absent")
	}
	cats := c.Categories()
	if len(cats) != 2 || cats[0] != Foot || cats[1] != Position {
		t.Errorf("Categories() = %v, want [foot position]", cats)
	}
}

func TestPositionColor(t *testing.T) {
	if got := PositionColor(0); got != "#f87171" {
		t.Errorf("PositionColor(0) = %q", got)
	}
	if PositionColor(4) != PositionColor(5) {
		t.Error("positions 4 and 5 share a colour")
	}
	if got := PositionColor(99); got != "#e5e7eb" {
		t.Errorf("PositionColor(99) = %q", got)
	}
}
