package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/transfer-auction/internal/domain/teamtoken"
	qb "github.com/riskibarqy/transfer-auction/internal/platform/querybuilder"
)

type TeamTokenRepository struct {
	db *sqlx.DB
}

var teamTokenSelectColumns = []string{
	"id",
	"team_name",
	"token",
	"active",
	"created_at",
}

type teamTokenTableModel struct {
	ID        int64     `db:"id"`
	TeamName  string    `db:"team_name"`
	Token     string    `db:"token"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
}

func (m teamTokenTableModel) toDomain() teamtoken.TeamToken {
	return teamtoken.TeamToken{
		ID:        m.ID,
		TeamName:  m.TeamName,
		Token:     m.Token,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
	}
}

func NewTeamTokenRepository(db *sqlx.DB) *TeamTokenRepository {
	return &TeamTokenRepository{db: db}
}

func (r *TeamTokenRepository) GetByToken(ctx context.Context, token string) (teamtoken.TeamToken, bool, error) {
	query, args, err := qb.Select(teamTokenSelectColumns...).From("team_tokens").
		Where(qb.Eq("token", token)).
		ToSQL()
	if err != nil {
		return teamtoken.TeamToken{}, false, fmt.Errorf("build select team token query: %w", err)
	}

	var row teamTokenTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamtoken.TeamToken{}, false, nil
		}
		return teamtoken.TeamToken{}, false, fmt.Errorf("get team token: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *TeamTokenRepository) List(ctx context.Context) ([]teamtoken.TeamToken, error) {
	query, args, err := qb.Select(teamTokenSelectColumns...).From("team_tokens").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select team tokens query: %w", err)
	}

	var rows []teamTokenTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select team tokens: %w", err)
	}

	out := make([]teamtoken.TeamToken, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamTokenRepository) Create(ctx context.Context, teamName, token string) (teamtoken.TeamToken, error) {
	const query = `
INSERT INTO team_tokens (team_name, token)
VALUES ($1, $2)
RETURNING id, team_name, token, active, created_at`

	var row teamTokenTableModel
	if err := r.db.GetContext(ctx, &row, query, teamName, token); err != nil {
		if isUniqueViolation(err) {
			return teamtoken.TeamToken{}, teamtoken.ErrTeamTaken
		}
		return teamtoken.TeamToken{}, fmt.Errorf("insert team token: %w", err)
	}

	return row.toDomain(), nil
}

func (r *TeamTokenRepository) SetActive(ctx context.Context, id int64, active bool) (teamtoken.TeamToken, bool, error) {
	const query = `
UPDATE team_tokens
SET active = $2
WHERE id = $1
RETURNING id, team_name, token, active, created_at`

	var row teamTokenTableModel
	if err := r.db.GetContext(ctx, &row, query, id, active); err != nil {
		if isNotFound(err) {
			return teamtoken.TeamToken{}, false, nil
		}
		return teamtoken.TeamToken{}, false, fmt.Errorf("set team token active: %w", err)
	}

	return row.toDomain(), true, nil
}
