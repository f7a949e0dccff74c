package entities

// TeamPlayer is a player of another club, as listed on the Teams tab.
type TeamPlayer struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	AbilityGraph    int      `json:"abilityGraph"`
	Number          int      `json:"number"`
	Rank            int      `json:"rank"`
	Pos             int      `json:"pos"`
	CooperationType int      `json:"cooperationType"`
	ToneType        int      `json:"toneType"`
	Style           int      `json:"style"`
	GrowTypePhy     int      `json:"growTypePhy"`
	GrowTypeTec     int      `json:"growTypeTec"`
	GrowTypeSys     int      `json:"growTypeSys"`
	AlbumType       int      `json:"albumType"`
	TeamIndex       int      `json:"teamIndex"`
	Scouts          []string `json:"scouts,omitempty"`
	BringAbroads    []int    `json:"bringAbroads"`
}

func (*TeamPlayer) Kind() Kind { return KindTeamPlayer }
func (*TeamPlayer) entity() {}

// MyTeamPlayer is a roster row of the managed club.
type MyTeamPlayer struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Pos          int      `json:"pos"`
	IsAlbum      bool     `json:"isAlbum"`
	Scouts       []string `json:"scouts,omitempty"`
	BringAbroads []int    `json:"bringAbroads,omitempty"`
}

func (*MyTeamPlayer) Kind() Kind { return KindMyTeamPlayer }
func (*MyTeamPlayer) entity() {}

// PlayerAbility is one ability of a player at its three stages.
type PlayerAbility struct {
	Index      int `json:"index"`
	Current    int `json:"current"`
	CurrentMax int `json:"currentMax"`
	Max        int `json:"max"`
}

// MyPlayer is a fully fetched player of the managed club.
type MyPlayer struct {
	Index            int             `json:"index"`
	ID               int             `json:"id"`
	Age              int             `json:"age"`
	Number           int             `json:"number"`
	Name             string          `json:"name"`
	Born             int             `json:"born"`
	AbroadTimes      int             `json:"abroadTimes"`
	Height           int             `json:"height"`
	Foot             int             `json:"foot"`
	Rank             int             `json:"rank"`
	Pos              int             `json:"pos"`
	GrowTypePhy      int             `json:"growTypePhy"`
	GrowTypeTec      int             `json:"growTypeTec"`
	GrowTypeSys      int             `json:"growTypeSys"`
	ToneType         int             `json:"toneType"`
	CooperationType  int             `json:"cooperationType"`
	Style            int             `json:"style"`
	Abilities        []PlayerAbility `json:"abilities"`
	Desire           int             `json:"desire"`
	Pride            int             `json:"pride"`
	Ambition         int             `json:"ambition"`
	Patient          int             `json:"patient"`
	Persistence      int             `json:"persistence"`
	WaveType         int             `json:"waveType"`
	Hexagon          [18]int         `json:"hexagon"`
	ODC              [2]int          `json:"odc"`
	AbilEval         int             `json:"abilEval"`
	GrowEval         int             `json:"growEval"`
	AposEval         []int           `json:"aposEval,omitempty"`
	MaxAbilEval      int             `json:"maxAbilEval"`
	SpComment        string          `json:"spComment,omitempty"`
	BaddenPlayers    []string        `json:"baddenPlayers,omitempty"`
	SalaryHigh       int             `json:"salaryHigh"`
	SalaryLow        int             `json:"salaryLow"`
	OfferYearsPassed int             `json:"offerYearsPassed"`
	OfferYearsTotal  int             `json:"offerYearsTotal"`
	PhyGrows         []int           `json:"phyGrows,omitempty"`
	TecGrows         []int           `json:"tecGrows,omitempty"`
	SysGrows         []int           `json:"sysGrows,omitempty"`
	Power            int             `json:"power"`
	Moti             int             `json:"moti"`
	Kan              int             `json:"kan"`
	SuperSub         int             `json:"superSub"`
	WildType         int             `json:"wildType"`
	WeakType         int             `json:"weakType"`
	TiredType        int             `json:"tiredType"`
	Pop              int             `json:"pop"`
	Comp             []int           `json:"comp,omitempty"`
	Tired            int             `json:"tired"`
	Status           int             `json:"status"`
	Condition        int             `json:"condition"`
	GP               int             `json:"gp"`
}

func (*MyPlayer) Kind() Kind { return KindMyPlayer }
func (*MyPlayer) entity() {}

// Salary combines the stored salary halves in units of one hundred.
func (p *MyPlayer) Salary() int {
	return (p.SalaryHigh*10000 + p.SalaryLow) / 100
}

// Search is the filter sent to the backend player search, and the row shape
// of scout exclusive lists.
type Search struct {
	Name        string `json:"name,omitempty"`
	Pos         *int   `json:"pos,omitempty"`
	Age         *int   `json:"age,omitempty"`
	Country     *int   `json:"country,omitempty"`
	Rank        *int   `json:"rank,omitempty"`
	Cooperation *int   `json:"cooperation,omitempty"`
	Tone        *int   `json:"tone,omitempty"`
	TeamID      *int   `json:"teamId,omitempty"`
}
