package client

// Wire records mirror the backend's snake_case row shapes.

type objectiveWire struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	KPI         string `json:"kpi"`
	Weight      int    `json:"weight"`
	Target      string `json:"target"`
	Progress    int    `json:"progress"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
	UserID      string `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func objectiveFromWire(w objectiveWire) Objective {
	return Objective{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		KPI:         w.KPI,
		Weight:      w.Weight,
		Target:      w.Target,
		Progress:    w.Progress,
		Status:      w.Status,
		DueDate:     w.DueDate,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}

type progressEntryWire struct {
	ID          string `json:"id"`
	ObjectiveID string `json:"objective_id"`
	Progress    int    `json:"progress"`
	Status      string `json:"status"`
	Note        string `json:"note"`
	CreatedAt   string `json:"created_at"`
}

func progressEntryFromWire(w progressEntryWire) ProgressEntry {
	return ProgressEntry(w)
}

type profileWire struct {
	ID         string  `json:"id"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
	Manager    *string `json:"manager"`
	AvatarURL  *string `json:"avatar_url"`
}

func profileFromWire(w profileWire) Profile {
	return Profile{
		ID:         w.ID,
		FirstName:  w.FirstName,
		LastName:   w.LastName,
		Position:   w.Position,
		Department: w.Department,
		Manager:    w.Manager,
		AvatarURL:  w.AvatarURL,
	}
}

type userWire struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type statsWire struct {
	Total       int `json:"total"`
	Completed   int `json:"completed"`
	InProgress  int `json:"in_progress"`
	AtRisk      int `json:"at_risk"`
	Delayed     int `json:"delayed"`
	WeightTotal int `json:"weight_total"`
	AvgProgress int `json:"avg_progress"`
	Score       int `json:"score"`
}

type contractWire struct {
	Contract struct {
		Period string `json:"period"`
		Status string `json:"status"`
	} `json:"contract"`
	Terms      []ContractTerm     `json:"terms"`
	Signatures ContractSignatures `json:"signatures"`
	Completion int                `json:"completion"`
	Rating     string             `json:"rating"`
}

func contractFromWire(w contractWire) Contract {
	return Contract{
		Period:     w.Contract.Period,
		Status:     w.Contract.Status,
		Terms:      w.Terms,
		Signatures: w.Signatures,
		Completion: w.Completion,
		Rating:     w.Rating,
	}
}

// createObjectiveWire is the create payload: no id, no progress. The backend
// assigns both.
type createObjectiveWire struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	KPI         string `json:"kpi"`
	Weight      int    `json:"weight"`
	Target      string `json:"target"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
}

type updateObjectiveWire struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	KPI         *string `json:"kpi,omitempty"`
	Weight      *int    `json:"weight,omitempty"`
	Target      *string `json:"target,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type progressUpdateWire struct {
	Progress int    `json:"progress"`
	Status   string `json:"status"`
	Note     string `json:"note,omitempty"`
}

type updateProfileWire struct {
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Manager    *string `json:"manager,omitempty"`
}
