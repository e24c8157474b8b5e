package handler

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type CreateTeamRequest struct {
	Name           string `json:"name"`
	WarCry         string `json:"warCry"`
	FoundationYear *int   `json:"foundationYear"`
}

type UpdateTeamRequest struct {
	Name           *string `json:"name"`
	WarCry         *string `json:"warCry"`
	FoundationYear *int    `json:"foundationYear"`
	Points         *int    `json:"points"`
}

type TeamResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	WarCry         string  `json:"warCry"`
	FoundationYear int     `json:"foundationYear"`
	Points         int     `json:"points"`
	Blots          int     `json:"blots"`
	Plifs          int     `json:"plifs"`
	Advrunghs      int     `json:"advrunghs"`
	CreatedAt      *string `json:"createdAt,omitempty"`
	UpdatedAt      *string `json:"updatedAt,omitempty"`
}

type MatchResponse struct {
	ID        string        `json:"id"`
	Slot      int           `json:"slot"`
	TeamA     *TeamResponse `json:"teamA"`
	TeamB     *TeamResponse `json:"teamB"`
	ScoreA    int           `json:"scoreA"`
	ScoreB    int           `json:"scoreB"`
	Completed bool          `json:"completed"`
	CreatedAt *string       `json:"createdAt,omitempty"`
}

type MatchActionRequest struct {
	Action string `json:"action"`
}
