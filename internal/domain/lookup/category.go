package lookup

import (
	"strconv"
)

// Category names one family of display strings.
type Category string

const (
	Region      Category = "region"
	Foot        Category = "foot"
	Style       Category = "style"
	Tone        Category = "tone"
	Cooperation Category = "cooperation"
	Grow        Category = "grow"
	Position    Category = "position"
	Rank        Category = "rank"
	Practice    Category = "practice"
	Team        Category = "team"
	Ability     Category = "ability"
	GrowEval    Category = "grow_eval"
	AbilEval    Category = "abil_eval"
	Sponsor     Category = "sponsor"
)

// Encoding is the key policy of a category: hex keys of a minimum width, or
// plain decimal keys when Width is zero.
type Encoding struct {
	Hex   bool
	Width int
}

var (
	hex2    = Encoding{Hex: true, Width: DefaultWidth}
	hex4    = Encoding{Hex: true, Width: 4}
	decimal = Encoding{}
)

// Key renders code as a table key.
func (e Encoding) Key(code int) string {
	if e.Hex {
		return Encode(code, e.Width)
	}
	return strconv.Itoa(code)
}

// Code parses a table key back into a code and reports whether key is the
// canonical rendering of that code.
func (e Encoding) Code(key string) (int, bool) {
	var (
		code int
		err  error
	)
	if e.Hex {
		code, err = Decode(key)
	} else {
		code, err = strconv.Atoi(key)
	}
	if err != nil {
		return 0, false
	}
	return code, e.Key(code) == key
}

func (e Encoding) String() string {
	if e.Hex {
		return "hex" + strconv.Itoa(e.Width)
	}
	return "decimal"
}

// Definitions fixes the key encoding of every category.
var Definitions = map[Category]Encoding{
	Region:      hex2,
	Foot:        hex2,
	Style:       hex2,
	Tone:        hex2,
	Cooperation: hex2,
	Grow:        hex2,
	Position:    hex2,
	Rank:        hex2,
	Practice:    hex2,
	Team:        hex4,
	Ability:     decimal,
	GrowEval:    decimal,
	AbilEval:    decimal,
	Sponsor:     decimal,
}

// Categories returns every defined category in a stable order.
func Categories() []Category {
	return []Category{
		Region, Foot, Style, Tone, Cooperation, Grow, Position, Rank,
		Practice, Team, Ability, GrowEval, AbilEval, Sponsor,
	}
}
