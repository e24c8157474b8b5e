package service

import (
	"fmt"
	"strings"

	"github.com/bagdasarian/championship/internal/domain"
)

type validationProblems []string

func (p *validationProblems) add(format string, args ...any) {
	*p = append(*p, fmt.Sprintf(format, args...))
}

func (p validationProblems) err() error {
	if len(p) == 0 {
		return nil
	}
	return &domain.DomainError{
		Code:    domain.CodeValidation,
		Message: domain.ErrValidation.Message,
		Details: strings.Join(p, "; "),
	}
}

// checkFoundationYear проверяет диапазон [1800, currentYear] включительно
func (p *validationProblems) checkFoundationYear(year, currentYear int) {
	if year < domain.MinFoundationYear || year > currentYear {
		p.add("foundationYear must be between %d and %d", domain.MinFoundationYear, currentYear)
	}
}

// validateCreate нормализует и проверяет поля новой команды
func validateCreate(in domain.CreateTeamInput, currentYear int) (name, warCry string, year int, err error) {
	var problems validationProblems

	name = strings.TrimSpace(in.Name)
	if name == "" {
		problems.add("name is required")
	}
	warCry = strings.TrimSpace(in.WarCry)
	if warCry == "" {
		problems.add("warCry is required")
	}
	if in.FoundationYear == nil {
		problems.add("foundationYear is required")
	} else {
		year = *in.FoundationYear
		problems.checkFoundationYear(year, currentYear)
	}

	return name, warCry, year, problems.err()
}
