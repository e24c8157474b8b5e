package domain

import "fmt"

// Коды ошибок предметной области
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeTeamExists   = "TEAM_EXISTS"
	CodeTeamLimit    = "TEAM_LIMIT_REACHED"
	CodeTeamInUse    = "TEAM_IN_USE"
	CodeBracketExist = "BRACKET_EXISTS"
	CodeNotFound     = "NOT_FOUND"
	CodeMatchClosed  = "MATCH_COMPLETED"
)

type DomainError struct {
	Code    string
	Message string
	Details string
}

func (e *DomainError) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrValidation - некорректные или отсутствующие поля
	ErrValidation = &DomainError{
		Code:    CodeValidation,
		Message: "validation failed",
	}

	// ErrTeamExists - команда с таким именем уже существует
	ErrTeamExists = &DomainError{
		Code:    CodeTeamExists,
		Message: "a team with this name already exists",
	}

	// ErrTeamLimit - зарегистрировано максимальное число команд
	ErrTeamLimit = &DomainError{
		Code:    CodeTeamLimit,
		Message: fmt.Sprintf("the championship already has the maximum of %d teams", MaxTeams),
	}

	// ErrTeamInUse - команда участвует в матче, удалить нельзя
	ErrTeamInUse = &DomainError{
		Code:    CodeTeamInUse,
		Message: "team is referenced by a match",
	}

	// ErrBracketExists - сетка уже сформирована
	ErrBracketExists = &DomainError{
		Code:    CodeBracketExist,
		Message: "the bracket has already been generated",
	}

	// ErrMatchCompleted - матч завершен, изменения запрещены
	ErrMatchCompleted = &DomainError{
		Code:    CodeMatchClosed,
		Message: "match is already completed",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_ERROR с описанием поля
func NewValidationError(format string, args ...any) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// IsConflict сообщает, относится ли код к конфликту состояния
func IsConflict(code string) bool {
	switch code {
	case CodeTeamExists, CodeTeamLimit, CodeTeamInUse, CodeBracketExist:
		return true
	}
	return false
}
