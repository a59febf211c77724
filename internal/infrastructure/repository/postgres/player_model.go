package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/player"
)

type playerTableModel struct {
	ID                int64          `db:"id"`
	Name              string         `db:"name"`
	TeamOut           string         `db:"team_out"`
	Age               int            `db:"age"`
	CurrentAbility    int            `db:"current_ability"`
	PotentialAbility  int            `db:"potential_ability"`
	Position          string         `db:"position"`
	SecondaryPosition string         `db:"secondary_position"`
	Height            string         `db:"height"`
	Weight            string         `db:"weight"`
	MinPrice          int64          `db:"min_price"`
	MaxPrice          int64          `db:"max_price"`
	CurrentBidPrice   sql.NullInt64  `db:"current_bid_price"`
	CurrentBidTeam    sql.NullString `db:"current_bid_team"`
	Buyout            bool           `db:"buyout"`
	CreatedAt         time.Time      `db:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:                m.ID,
		Name:              m.Name,
		TeamOut:           m.TeamOut,
		Age:               m.Age,
		CurrentAbility:    m.CurrentAbility,
		PotentialAbility:  m.PotentialAbility,
		Position:          m.Position,
		SecondaryPosition: m.SecondaryPosition,
		Height:            m.Height,
		Weight:            m.Weight,
		MinPrice:          m.MinPrice,
		MaxPrice:          m.MaxPrice,
		CurrentBidPrice:   nullInt64ToPtr(m.CurrentBidPrice),
		CurrentBidTeam:    nullStringToPtr(m.CurrentBidTeam),
		Buyout:            m.Buyout,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func nullInt64ToPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	out := v.Int64
	return &out
}

func nullStringToPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	out := v.String
	return &out
}
