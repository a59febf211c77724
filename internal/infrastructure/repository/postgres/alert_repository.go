package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/transfer-auction/internal/domain/alert"
)

type AlertRepository struct {
	db *sqlx.DB
}

func NewAlertRepository(db *sqlx.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) Record(ctx context.Context, a alert.Alert) error {
	payloadJSON, err := marshalPayload(a.Payload)
	if err != nil {
		return fmt.Errorf("marshal alert payload: %w", err)
	}

	const query = `
INSERT INTO token_alerts (team_id, team_name, token, module, payload, message)
VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.ExecContext(ctx, query,
		a.TeamID, a.TeamName, a.Token, a.Module, payloadJSON, a.Message); err != nil {
		return fmt.Errorf("insert token alert: %w", err)
	}

	return nil
}

func marshalPayload(payload map[string]any) (string, error) {
	if len(payload) == 0 {
		return "{}", nil
	}
	raw, err := jsoniter.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
