package entities

// BookPlayer is a player entry of the game's data book.
type BookPlayer struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Born              int      `json:"born"`
	Pos               int      `json:"pos"`
	Age               int      `json:"age"`
	Rank              int      `json:"rank"`
	ToneType          int      `json:"toneType"`
	CooperationType   int      `json:"cooperationType"`
	WaveType          int      `json:"waveType"`
	GrowTypePhy       int      `json:"growTypePhy"`
	GrowTypeTec       int      `json:"growTypeTec"`
	GrowTypeSys       int      `json:"growTypeSys"`
	Abilities         []int    `json:"abilities"`
	Height            int      `json:"height"`
	Style             int      `json:"style"`
	Hexagon           [6]int   `json:"hexagon"`
	ODC               [2]int   `json:"odc"`
	AbilEval          int      `json:"abilEval"`
	AposEval          []int    `json:"aposEval,omitempty"`
	SpComment         string   `json:"spComment,omitempty"`
	BaddenPlayers     []string `json:"baddenPlayers,omitempty"`
	PhyGrows          []int    `json:"phyGrows,omitempty"`
	TecGrows          []int    `json:"tecGrows,omitempty"`
	SysGrows          []int    `json:"sysGrows,omitempty"`
	Foot              int      `json:"foot"`
	Desire            int      `json:"desire"`
	Pride             int      `json:"pride"`
	Ambition          int      `json:"ambition"`
	Patient           int      `json:"patient"`
	Persistence       int      `json:"persistence"`
	SuperSub          int      `json:"superSub"`
	WildType          int      `json:"wildType"`
	WeakType          int      `json:"weakType"`
	TiredType         int      `json:"tiredType"`
	Pop               int      `json:"pop"`
	UnlockYear        int      `json:"unlockYear"`
	SigningDifficulty int      `json:"signingDifficulty"`
	GrowEval          int      `json:"growEval"`
	GP                int      `json:"gp"`
}

func (*BookPlayer) Kind() Kind { return KindBookPlayer }
func (*BookPlayer) entity() {}

// BookScout is a scout entry of the game's data book.
type BookScout struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Born                 int      `json:"born"`
	Abilities            []int    `json:"abilities"`
	Hexagon              [6]int   `json:"hexagon"`
	AposEval             []int    `json:"aposEval,omitempty"`
	Nati1                int      `json:"nati1"`
	Nati2                int      `json:"nati2"`
	Age                  int      `json:"age"`
	Rank                 int      `json:"rank"`
	SalaryHigh           int      `json:"salaryHigh"`
	SalaryLow            int      `json:"salaryLow"`
	ExclusivePlayers     []string `json:"exclusivePlayers,omitempty"`
	SimiExclusivePlayers []string `json:"simiExclusivePlayers,omitempty"`
	SigningDifficulty    int      `json:"signingDifficulty"`
	Eval                 string   `json:"eval,omitempty"`
	Ambition             int      `json:"ambition"`
	Persistence          int      `json:"persistence"`
}

func (*BookScout) Kind() Kind { return KindBookScout }
func (*BookScout) entity() {}

// BookCoach is a coach entry of the game's data book.
type BookCoach struct {
	ID                int         `json:"id"`
	Name              string      `json:"name"`
	Born              int         `json:"born"`
	Abilities         []int       `json:"abilities"`
	Hexagon           [6]int      `json:"hexagon"`
	Age               int         `json:"age"`
	Rank              int         `json:"rank"`
	SalaryHigh        int         `json:"salaryHigh"`
	SalaryLow         int         `json:"salaryLow"`
	SigningDifficulty int         `json:"signingDifficulty"`
	Eval              string      `json:"eval,omitempty"`
	Styles            []int       `json:"styles,omitempty"`
	CoachType         int         `json:"coachType"`
	Desire            int         `json:"desire"`
	Ambition          int         `json:"ambition"`
	Persistence       int         `json:"persistence"`
	ActivatePlan      int         `json:"activatePlan"`
	TrainingPlan      int         `json:"trainingPlan"`
	TrainingStrength  int         `json:"trainingStrength"`
	AcSpPractice1     int         `json:"acSpPractice1"`
	AcSpPractice2     int         `json:"acSpPractice2"`
	SpSkill           int         `json:"spSkill"`
	CoachTypeCnv      int         `json:"coachTypeCnv"`
	BringAbroads      []AbrStatus `json:"bringAbroads,omitempty"`
}

func (*BookCoach) Kind() Kind { return KindBookCoach }
func (*BookCoach) entity() {}
