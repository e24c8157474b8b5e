package service

import (
	"github.com/bagdasarian/championship/internal/domain"
)

// ApplyAction изменяет счет открытого матча. Счет не опускается ниже нуля.
func ApplyAction(match *domain.Match, action domain.Action) error {
	if match.Completed {
		return domain.ErrMatchCompleted
	}

	side, delta, ok := action.Delta()
	if !ok {
		return domain.NewValidationError("unknown action %q", string(action))
	}

	score := &match.ScoreA
	if side == domain.SideB {
		score = &match.ScoreB
	}
	*score = max(0, *score+delta)

	return nil
}

// Close завершает матч; повторное завершение запрещено
func Close(match *domain.Match) error {
	if match.Completed {
		return domain.ErrMatchCompleted
	}
	match.Completed = true
	return nil
}
