package entities

// Scout is a scout under contract or on the market.
type Scout struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Born                 int      `json:"born"`
	Age                  int      `json:"age"`
	OfferYears           int      `json:"offerYears"`
	ContractYears        int      `json:"contractYears"`
	SalaryHigh           int      `json:"salaryHigh"`
	SalaryLow            int      `json:"salaryLow"`
	Rank                 int      `json:"rank"`
	ExclusivePlayers     []Search `json:"exclusivePlayers,omitempty"`
	SimiExclusivePlayers []Search `json:"simiExclusivePlayers,omitempty"`
	Abilities            []int    `json:"abilities"`
	HasExclusive         bool     `json:"hasExclusive"`
	Hexagon              []int    `json:"hexagon,omitempty"`
	AposEval             []int    `json:"aposEval,omitempty"`
	Nati1                int      `json:"nati1"`
	Nati2                int      `json:"nati2"`
	Eval                 string   `json:"eval,omitempty"`
}

func (*Scout) Kind() Kind { return KindScout }
func (*Scout) entity() {}

// Coach is a coach under contract or on the market.
type Coach struct {
	ID               int         `json:"id"`
	Name             string      `json:"name"`
	Born             int         `json:"born"`
	Age              int         `json:"age"`
	OfferYears       int         `json:"offerYears"`
	ContractYears    int         `json:"contractYears"`
	SalaryHigh       int         `json:"salaryHigh"`
	SalaryLow        int         `json:"salaryLow"`
	Rank             int         `json:"rank"`
	SpPrac1          int         `json:"spPrac1"`
	SpPrac2          int         `json:"spPrac2"`
	BringAbroads     []AbrStatus `json:"bringAbroads"`
	Abilities        []int       `json:"abilities"`
	SpSkill          int         `json:"spSkill"`
	IsBringAbroad    bool        `json:"isBringAbroad"`
	IsTopRank        bool        `json:"isTopRank"`
	Eval             string      `json:"eval,omitempty"`
	Hexagon          []int       `json:"hexagon,omitempty"`
	ActivatePlan     int         `json:"activatePlan"`
	TrainingPlan     int         `json:"trainingPlan"`
	TrainingStrength int         `json:"trainingStrength"`
	Styles           []int       `json:"styles,omitempty"`
}

func (*Coach) Kind() Kind { return KindCoach }
func (*Coach) entity() {}
