package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinFoundationYear = 1800
	DefaultPoints     = 50
	MinTeams          = 8
	MaxTeams          = 16
)

type Team struct {
	ID             uuid.UUID
	Name           string
	WarCry         string
	FoundationYear int
	Points         int
	Blots          int
	Plifs          int
	Advrunghs      int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// CreateTeamInput - поля регистрации команды. FoundationYear nil означает, что год не передан.
type CreateTeamInput struct {
	Name           string
	WarCry         string
	FoundationYear *int
}

// UpdateTeamInput - частичное обновление, nil поля не меняются
type UpdateTeamInput struct {
	Name           *string
	WarCry         *string
	FoundationYear *int
	Points         *int
}

// NewTeam создает команду со значениями по умолчанию
func NewTeam(name, warCry string, foundationYear int) *Team {
	return &Team{
		ID:             uuid.New(),
		Name:           name,
		WarCry:         warCry,
		FoundationYear: foundationYear,
		Points:         DefaultPoints,
	}
}
