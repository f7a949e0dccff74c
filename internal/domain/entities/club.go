package entities

// Club is the managed club and calendar of the current save.
type Club struct {
	ClubName    string `json:"clubName"`
	ManagerName string `json:"managerName"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	Date        int    `json:"date"`
	Day         int    `json:"day"`
	FundsHigh   int    `json:"fundsHigh"`
	FundsLow    int    `json:"fundsLow"`
	Difficulty  int    `json:"difficulty"`
	Seed        int    `json:"seed"`
	TeamStatus  int    `json:"teamStatus"`
}

func (*Club) Kind() Kind { return KindClub }
func (*Club) entity() {}

// Funds combines the two stored halves of the club balance.
func (c *Club) Funds() int {
	return c.FundsHigh*10000 + c.FundsLow
}

// Town holds the home town statistics.
type Town struct {
	Living       int `json:"living"`
	Economy      int `json:"economy"`
	Sports       int `json:"sports"`
	Env          int `json:"env"`
	Population   int `json:"population"`
	Price        int `json:"price"`
	TrafficLevel int `json:"trafficLevel"`
	SoccerPop    int `json:"soccerPop"`
	SoccerLevel  int `json:"soccerLevel"`
	TownType     int `json:"townType"`
}

func (*Town) Kind() Kind { return KindTown }
func (*Town) entity() {}

// AbrStatus is one abroad (overseas training) slot unlocked by a staff member
// or sponsor.
type AbrStatus struct {
	ID        int  `json:"id"`
	Type      int  `json:"type"`
	IsEnabled bool `json:"isEnabled"`
}

// AbroadCond is the unlock condition of an abroad destination. Cond holds
// either raw codes or preformatted strings, depending on the backend.
type AbroadCond struct {
	ID   int   `json:"id"`
	Cond []any `json:"cond"`
}

// Abroad is an overseas training destination.
type Abroad struct {
	ID        int         `json:"id"`
	IsEnabled bool        `json:"isEnabled"`
	Cond      *AbroadCond `json:"cond,omitempty"`
	AbrUp     []int       `json:"abrUp"`
	AbrUprate []int       `json:"abrUprate"`
	AbrDays   int         `json:"abrDays"`
}

func (*Abroad) Kind() Kind { return KindAbroad }
func (*Abroad) entity() {}

// SponsorCombo links a parent sponsor to its subsidiaries.
type SponsorCombo struct {
	ParentID      int   `json:"parentId"`
	SubsidiaryIDs []int `json:"subsidiaryIds"`
	Type          int   `json:"type"`
}

// Sponsor is a sponsor contract. ID is a sponsor lookup code.
type Sponsor struct {
	ID            int            `json:"id"`
	ContractYears string         `json:"contractYears"`
	OfferYears    int            `json:"offerYears"`
	AmountHigh    int            `json:"amountHigh"`
	AmountLow     int            `json:"amountLow"`
	BringAbroads  []AbrStatus    `json:"bringAbroads"`
	Combo         []SponsorCombo `json:"combo,omitempty"`
}

func (*Sponsor) Kind() Kind { return KindSponsor }
func (*Sponsor) entity() {}

// Amount combines the two stored halves of the sponsor payment.
func (s *Sponsor) Amount() int {
	return s.AmountHigh*10000 + s.AmountLow
}

// Trophy counts entries and wins of one competition.
type Trophy struct {
	Index      int `json:"index"`
	WinTimes   int `json:"winTimes"`
	EntryTimes int `json:"entryTimes"`
}

func (*Trophy) Kind() Kind { return KindTrophy }
func (*Trophy) entity() {}
