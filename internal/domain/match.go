package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultScore = 50

type Match struct {
	ID        uuid.UUID
	Slot      int
	TeamAID   uuid.UUID
	TeamBID   uuid.UUID
	TeamA     *Team
	TeamB     *Team
	ScoreA    int
	ScoreB    int
	Completed bool
	CreatedAt time.Time
}

// NewMatch создает открытый матч между двумя командами
func NewMatch(slot int, teamA, teamB *Team) *Match {
	return &Match{
		ID:      uuid.New(),
		Slot:    slot,
		TeamAID: teamA.ID,
		TeamBID: teamB.ID,
		TeamA:   teamA,
		TeamB:   teamB,
		ScoreA:  DefaultScore,
		ScoreB:  DefaultScore,
	}
}

type Action string

const (
	ActionTeamAPlif Action = "teamA_plif"
	ActionTeamAAdv  Action = "teamA_adv"
	ActionTeamABlot Action = "teamA_blot"
	ActionTeamBPlif Action = "teamB_plif"
	ActionTeamBAdv  Action = "teamB_adv"
	ActionTeamBBlot Action = "teamB_blot"
)

// Side - сторона матча, к которой относится действие
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

var actionDeltas = map[Action]struct {
	side  Side
	delta int
}{
	ActionTeamAPlif: {SideA, 5},
	ActionTeamAAdv:  {SideA, 3},
	ActionTeamABlot: {SideA, -2},
	ActionTeamBPlif: {SideB, 5},
	ActionTeamBAdv:  {SideB, 3},
	ActionTeamBBlot: {SideB, -2},
}

// Delta возвращает сторону и изменение счета для действия
func (a Action) Delta() (Side, int, bool) {
	d, ok := actionDeltas[a]
	return d.side, d.delta, ok
}

// Actions возвращает все известные коды действий в порядке отображения
func Actions() []Action {
	return []Action{
		ActionTeamAPlif, ActionTeamAAdv, ActionTeamABlot,
		ActionTeamBPlif, ActionTeamBAdv, ActionTeamBBlot,
	}
}
