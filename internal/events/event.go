package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	TypeTeamCreated      = "team.created"
	TypeTeamUpdated      = "team.updated"
	TypeTeamDeleted      = "team.deleted"
	TypeBracketGenerated = "bracket.generated"
	TypeMatchScored      = "match.scored"
	TypeMatchClosed      = "match.closed"
)

type Event struct {
	ID         uuid.UUID `json:"eventId"`
	Type       string    `json:"eventType"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// New создает событие с новым идентификатором
func New(eventType string, payload any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type TeamPayload struct {
	TeamID uuid.UUID `json:"teamId"`
	Name   string    `json:"name"`
}

type BracketPayload struct {
	MatchIDs []uuid.UUID `json:"matchIds"`
}

type MatchPayload struct {
	MatchID   uuid.UUID `json:"matchId"`
	Action    string    `json:"action,omitempty"`
	ScoreA    int       `json:"scoreA"`
	ScoreB    int       `json:"scoreB"`
	Completed bool      `json:"completed"`
}
