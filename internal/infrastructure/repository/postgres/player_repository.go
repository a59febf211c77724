package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/transfer-auction/internal/domain/player"
	qb "github.com/riskibarqy/transfer-auction/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"team_out",
	"age",
	"current_ability",
	"potential_ability",
	"position",
	"secondary_position",
	"height",
	"weight",
	"min_price",
	"max_price",
	"current_bid_price",
	"current_bid_team",
	"buyout",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, page, pageSize int) ([]player.Player, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM players`); err != nil {
		return nil, 0, fmt.Errorf("count players: %w", err)
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("current_ability DESC", "id").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, 0, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, total, nil
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select all players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select all players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	const query = `
INSERT INTO players (name, team_out, age, current_ability, potential_ability,
    position, secondary_position, height, weight, min_price, max_price)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, name, team_out, age, current_ability, potential_ability,
    position, secondary_position, height, weight, min_price, max_price,
    current_bid_price, current_bid_team, buyout, created_at, updated_at`

	var row playerTableModel
	err := r.db.GetContext(ctx, &row, query,
		p.Name, p.TeamOut, p.Age, p.CurrentAbility, p.PotentialAbility,
		p.Position, p.SecondaryPosition, p.Height, p.Weight, p.MinPrice, p.MaxPrice)
	if err != nil {
		if isUniqueViolation(err) {
			return player.Player{}, player.ErrNameTaken
		}
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}

	return row.toDomain(), nil
}

func (r *PlayerRepository) BatchUpsert(ctx context.Context, players []player.Player) (int, int, error) {
	if len(players) == 0 {
		return 0, 0, nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("begin tx for player batch upsert: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// Bid state is deliberately untouched on conflict: re-importing a
	// roster must not reset an auction in progress.
	const query = `
INSERT INTO players (name, team_out, age, current_ability, potential_ability,
    position, secondary_position, height, weight, min_price, max_price)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (name)
DO UPDATE SET
    team_out = EXCLUDED.team_out,
    age = EXCLUDED.age,
    current_ability = EXCLUDED.current_ability,
    potential_ability = EXCLUDED.potential_ability,
    position = EXCLUDED.position,
    secondary_position = EXCLUDED.secondary_position,
    height = EXCLUDED.height,
    weight = EXCLUDED.weight,
    min_price = EXCLUDED.min_price,
    max_price = EXCLUDED.max_price,
    updated_at = NOW()
RETURNING (xmax = 0) AS inserted`

	var created, updated int
	for _, p := range players {
		var inserted bool
		err := tx.GetContext(ctx, &inserted, query,
			p.Name, p.TeamOut, p.Age, p.CurrentAbility, p.PotentialAbility,
			p.Position, p.SecondaryPosition, p.Height, p.Weight, p.MinPrice, p.MaxPrice)
		if err != nil {
			return 0, 0, fmt.Errorf("upsert player %q: %w", p.Name, err)
		}
		if inserted {
			created++
		} else {
			updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit player batch upsert: %w", err)
	}

	return created, updated, nil
}

// Update never touches the name column; a player keeps the name it was
// created with.
func (r *PlayerRepository) Update(ctx context.Context, id int64, u player.Update) (player.Player, bool, error) {
	const query = `
UPDATE players
SET team_out = COALESCE($2, team_out),
    age = COALESCE($3, age),
    current_ability = COALESCE($4, current_ability),
    potential_ability = COALESCE($5, potential_ability),
    position = COALESCE($6, position),
    secondary_position = COALESCE($7, secondary_position),
    height = COALESCE($8, height),
    weight = COALESCE($9, weight),
    min_price = COALESCE($10, min_price),
    max_price = COALESCE($11, max_price),
    updated_at = NOW()
WHERE id = $1
RETURNING id, name, team_out, age, current_ability, potential_ability,
    position, secondary_position, height, weight, min_price, max_price,
    current_bid_price, current_bid_team, buyout, created_at, updated_at`

	var row playerTableModel
	err := r.db.GetContext(ctx, &row, query, id,
		u.TeamOut, u.Age, u.CurrentAbility, u.PotentialAbility,
		u.Position, u.SecondaryPosition, u.Height, u.Weight, u.MinPrice, u.MaxPrice)
	if err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("update player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Unlock(ctx context.Context, id int64) (player.Player, bool, error) {
	// Only the buyout flag resets; the winning bid stays on the ledger so
	// teams can outbid it again.
	const query = `
UPDATE players
SET buyout = FALSE,
    updated_at = NOW()
WHERE id = $1
RETURNING id, name, team_out, age, current_ability, potential_ability,
    position, secondary_position, height, weight, min_price, max_price,
    current_bid_price, current_bid_team, buyout, created_at, updated_at`

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("unlock player: %w", err)
	}

	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	// bid_history rows go with the player via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM players WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}

	return affected > 0, nil
}
