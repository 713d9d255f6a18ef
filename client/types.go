package client

// Objective is the application-facing shape. The backend speaks snake_case;
// the mapping lives in wire.go.
type Objective struct {
	ID          string
	Title       string
	Description string
	KPI         string
	Weight      int
	Target      string
	Progress    int
	Status      string
	DueDate     string
	CreatedAt   string
	UpdatedAt   string
}

type ProgressEntry struct {
	ID          string
	ObjectiveID string
	Progress    int
	Status      string
	Note        string
	CreatedAt   string
}

type Profile struct {
	ID         string
	FirstName  *string
	LastName   *string
	Position   *string
	Department *string
	Manager    *string
	AvatarURL  *string
}

type User struct {
	ID    string
	Email string
	Role  string
}

type Stats struct {
	Total       int
	Completed   int
	InProgress  int
	AtRisk      int
	Delayed     int
	WeightTotal int
	AvgProgress int
	Score       int
}

type RatingBand struct {
	Label       string `json:"label"`
	Range       string `json:"range"`
	Min         int    `json:"min"`
	Description string `json:"description"`
}

type ContractTerm struct {
	Objective string `json:"objective"`
	KPI       string `json:"kpi"`
	Weight    int    `json:"weight"`
	Target    string `json:"target"`
	Timeline  string `json:"timeline"`
}

type ContractSignatures struct {
	Employee   bool `json:"employee"`
	Supervisor bool `json:"supervisor"`
	Reviewer   bool `json:"reviewer"`
}

type Contract struct {
	Period     string
	Status     string
	Terms      []ContractTerm
	Signatures ContractSignatures
	Completion int
	Rating     string
}
