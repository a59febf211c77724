package teamtoken

import (
	"context"
	"errors"
)

// ErrTeamTaken reports a create that collides with an existing team name
// or token value.
var ErrTeamTaken = errors.New("team token already taken")

// Repository describes team token persistence needs from use cases.
type Repository interface {
	GetByToken(ctx context.Context, token string) (TeamToken, bool, error)
	List(ctx context.Context) ([]TeamToken, error)
	Create(ctx context.Context, teamName, token string) (TeamToken, error)
	SetActive(ctx context.Context, id int64, active bool) (TeamToken, bool, error)
}
