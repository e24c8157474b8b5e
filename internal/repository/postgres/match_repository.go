package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/bagdasarian/championship/internal/repository"
	"github.com/google/uuid"
)

// Матч всегда читается вместе с обеими командами
const matchSelect = `
	SELECT m.id, m.slot, m.score_a, m.score_b, m.completed, m.created_at,
		ta.id, ta.name, ta.war_cry, ta.foundation_year, ta.points, ta.blots, ta.plifs, ta.advrunghs, ta.created_at, ta.updated_at,
		tb.id, tb.name, tb.war_cry, tb.foundation_year, tb.points, tb.blots, tb.plifs, tb.advrunghs, tb.created_at, tb.updated_at
	FROM matches m
	JOIN teams ta ON ta.id = m.team_a_id
	JOIN teams tb ON tb.id = m.team_b_id
`

type matchRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewMatchRepository(db *sql.DB) *matchRepository {
	return &matchRepository{db: db, executor: db}
}

func scanMatch(row rowScanner) (*domain.Match, error) {
	m := &domain.Match{TeamA: &domain.Team{}, TeamB: &domain.Team{}}
	var updatedA, updatedB sql.NullTime
	err := row.Scan(
		&m.ID, &m.Slot, &m.ScoreA, &m.ScoreB, &m.Completed, &m.CreatedAt,
		&m.TeamA.ID, &m.TeamA.Name, &m.TeamA.WarCry, &m.TeamA.FoundationYear, &m.TeamA.Points,
		&m.TeamA.Blots, &m.TeamA.Plifs, &m.TeamA.Advrunghs, &m.TeamA.CreatedAt, &updatedA,
		&m.TeamB.ID, &m.TeamB.Name, &m.TeamB.WarCry, &m.TeamB.FoundationYear, &m.TeamB.Points,
		&m.TeamB.Blots, &m.TeamB.Plifs, &m.TeamB.Advrunghs, &m.TeamB.CreatedAt, &updatedB,
	)
	if err != nil {
		return nil, err
	}
	if updatedA.Valid {
		m.TeamA.UpdatedAt = &updatedA.Time
	}
	if updatedB.Valid {
		m.TeamB.UpdatedAt = &updatedB.Time
	}
	m.TeamAID = m.TeamA.ID
	m.TeamBID = m.TeamB.ID
	return m, nil
}

func (r *matchRepository) CreateBatch(ctx context.Context, matches []*domain.Match) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO matches (id, slot, team_a_id, team_b_id, score_a, score_b, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	now := time.Now()
	for _, m := range matches {
		_, err := tx.ExecContext(ctx, query, m.ID, m.Slot, m.TeamAID, m.TeamBID, m.ScoreA, m.ScoreB, m.Completed, now)
		if err != nil {
			return fmt.Errorf("insert match %d: %w", m.Slot, mapError(err))
		}
		m.CreatedAt = now
	}

	return tx.Commit()
}

func (r *matchRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	m, err := scanMatch(r.executor.QueryRowContext(ctx, matchSelect+` WHERE m.id = $1`, id))
	if err != nil {
		return nil, mapError(err)
	}
	return m, nil
}

func (r *matchRepository) List(ctx context.Context) ([]*domain.Match, error) {
	rows, err := r.executor.QueryContext(ctx, matchSelect+` ORDER BY m.created_at, m.slot`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*domain.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}

	return matches, rows.Err()
}

func (r *matchRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.executor.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *matchRepository) ExistsForTeam(ctx context.Context, teamID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM matches WHERE team_a_id = $1 OR team_b_id = $1)`

	var exists bool
	if err := r.executor.QueryRowContext(ctx, query, teamID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *matchRepository) UpdateScores(ctx context.Context, m *domain.Match) error {
	query := `
		UPDATE matches
		SET score_a = $2, score_b = $3
		WHERE id = $1 AND completed = false
	`

	result, err := r.executor.ExecContext(ctx, query, m.ID, m.ScoreA, m.ScoreB)
	if err != nil {
		return err
	}
	return r.checkOpenUpdate(ctx, m.ID, result)
}

func (r *matchRepository) Complete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE matches
		SET completed = true
		WHERE id = $1 AND completed = false
	`

	result, err := r.executor.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return r.checkOpenUpdate(ctx, id, result)
}

// checkOpenUpdate различает отсутствующий и уже завершенный матч, если UPDATE не затронул строк
func (r *matchRepository) checkOpenUpdate(ctx context.Context, id uuid.UUID, result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected > 0 {
		return nil
	}

	var completed bool
	err = r.executor.QueryRowContext(ctx, `SELECT completed FROM matches WHERE id = $1`, id).Scan(&completed)
	if err != nil {
		return mapError(err)
	}
	if completed {
		return repository.ErrMatchCompleted
	}
	return fmt.Errorf("match %s was not updated", id)
}
