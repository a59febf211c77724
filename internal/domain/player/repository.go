package player

import (
	"context"
	"errors"
)

// ErrNameTaken reports a create that collides with an existing player name.
var ErrNameTaken = errors.New("player name already taken")

// Repository describes player persistence needs from use cases.
// Current bid state is read-only through this interface; it is mutated
// exclusively by the bid acceptance transaction in the bid repository,
// except for Unlock which clears the buyout flag and nothing else.
type Repository interface {
	List(ctx context.Context, page, pageSize int) ([]Player, int, error)
	ListAll(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	Create(ctx context.Context, p Player) (Player, error)
	BatchUpsert(ctx context.Context, players []Player) (created, updated int, err error)
	Update(ctx context.Context, id int64, u Update) (Player, bool, error)
	Unlock(ctx context.Context, id int64) (Player, bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
