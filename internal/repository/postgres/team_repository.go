package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/championship/internal/domain"
	"github.com/bagdasarian/championship/internal/repository"
	"github.com/google/uuid"
)

const teamColumns = `id, name, war_cry, foundation_year, points, blots, plifs, advrunghs, created_at, updated_at`

// teamsLockKey - ключ advisory-блокировки, сериализующей регистрацию команд
const teamsLockKey = 7_341_001

type teamRepository struct {
	db       *sql.DB
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db, executor: db}
}

func scanTeam(row rowScanner) (*domain.Team, error) {
	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.WarCry,
		&team.FoundationYear,
		&team.Points,
		&team.Blots,
		&team.Plifs,
		&team.Advrunghs,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	}
	return team, nil
}

// Create добавляет команду, если их меньше maxTeams. Подсчет и вставка идут под
// транзакционной advisory-блокировкой, поэтому параллельные регистрации не превышают лимит.
func (r *teamRepository) Create(ctx context.Context, team *domain.Team, maxTeams int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, teamsLockKey); err != nil {
		return err
	}

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count); err != nil {
		return err
	}
	if count >= maxTeams {
		return repository.ErrLimitReached
	}

	query := `
		INSERT INTO teams (id, name, war_cry, foundation_year, points, blots, plifs, advrunghs, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err = tx.QueryRowContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.WarCry,
		team.FoundationYear,
		team.Points,
		team.Blots,
		team.Plifs,
		team.Advrunghs,
		time.Now(),
	).Scan(&team.CreatedAt)
	if err != nil {
		return mapError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	team.UpdatedAt = nil

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE id = $1`

	team, err := scanTeam(r.executor.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return team, nil
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams WHERE name = $1`

	team, err := scanTeam(r.executor.QueryRowContext(ctx, query, name))
	if err != nil {
		return nil, mapError(err)
	}
	return team, nil
}

func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `SELECT ` + teamColumns + ` FROM teams ORDER BY created_at, id`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	for rows.Next() {
		team, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}

func (r *teamRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.executor.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams
		SET name = $2, war_cry = $3, foundation_year = $4, points = $5, updated_at = $6
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.WarCry,
		team.FoundationYear,
		team.Points,
		time.Now(),
	).Scan(&team.CreatedAt, &updatedAt)
	if err != nil {
		return mapError(err)
	}
	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	}

	return nil
}

func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
