// Package cache decorates repositories with a short-TTL read cache for the
// endpoints the auction page polls: the public player list and the
// deadline. Writes go straight through and invalidate the affected keys,
// so a bid is visible on the next poll even within the TTL.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/bid"
	"github.com/riskibarqy/transfer-auction/internal/domain/deadline"
	"github.com/riskibarqy/transfer-auction/internal/domain/player"
	basecache "github.com/riskibarqy/transfer-auction/internal/platform/cache"
)

const (
	playerListPrefix = "player:list:"
	deadlineKey      = "deadline:current"
)

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

type cachedPlayerPage struct {
	items []player.Player
	total int
}

func (r *PlayerRepository) List(ctx context.Context, page, pageSize int) ([]player.Player, int, error) {
	key := playerListPrefix + strconv.Itoa(page) + ":" + strconv.Itoa(pageSize)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, total, err := r.next.List(ctx, page, pageSize)
		if err != nil {
			return nil, err
		}
		return cachedPlayerPage{items: append([]player.Player(nil), items...), total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}

	cached, _ := v.(cachedPlayerPage)
	return append([]player.Player(nil), cached.items...), cached.total, nil
}

func (r *PlayerRepository) ListAll(ctx context.Context) ([]player.Player, error) {
	return r.next.ListAll(ctx)
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return r.next.GetByID(ctx, id)
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (player.Player, error) {
	created, err := r.next.Create(ctx, p)
	if err != nil {
		return player.Player{}, err
	}
	r.cache.DeletePrefix(ctx, playerListPrefix)

	return created, nil
}

func (r *PlayerRepository) BatchUpsert(ctx context.Context, players []player.Player) (int, int, error) {
	created, updated, err := r.next.BatchUpsert(ctx, players)
	if err != nil {
		return 0, 0, err
	}
	r.cache.DeletePrefix(ctx, playerListPrefix)

	return created, updated, nil
}

func (r *PlayerRepository) Update(ctx context.Context, id int64, u player.Update) (player.Player, bool, error) {
	updated, exists, err := r.next.Update(ctx, id, u)
	if err != nil || !exists {
		return updated, exists, err
	}
	r.cache.DeletePrefix(ctx, playerListPrefix)

	return updated, exists, nil
}

func (r *PlayerRepository) Unlock(ctx context.Context, id int64) (player.Player, bool, error) {
	unlocked, exists, err := r.next.Unlock(ctx, id)
	if err != nil || !exists {
		return unlocked, exists, err
	}
	r.cache.DeletePrefix(ctx, playerListPrefix)

	return unlocked, exists, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil || !deleted {
		return deleted, err
	}
	r.cache.DeletePrefix(ctx, playerListPrefix)

	return deleted, nil
}

// BidRepository invalidates cached player pages after an accepted bid;
// reads pass through untouched since history is an admin-only view.
type BidRepository struct {
	next  bid.Repository
	cache *basecache.Store
}

func NewBidRepository(next bid.Repository, cache *basecache.Store) *BidRepository {
	return &BidRepository{next: next, cache: cache}
}

func (r *BidRepository) SubmitBid(ctx context.Context, playerID int64, team string, price int64) (bid.Result, bool, error) {
	result, exists, err := r.next.SubmitBid(ctx, playerID, team, price)
	if err != nil || !exists {
		return result, exists, err
	}
	r.cache.DeletePrefix(ctx, playerListPrefix)

	return result, exists, nil
}

func (r *BidRepository) ListByPlayer(ctx context.Context, playerID int64, page, pageSize int) ([]bid.Bid, int, error) {
	return r.next.ListByPlayer(ctx, playerID, page, pageSize)
}

func (r *BidRepository) ListAll(ctx context.Context) ([]bid.Bid, error) {
	return r.next.ListAll(ctx)
}

type DeadlineRepository struct {
	next  deadline.Repository
	cache *basecache.Store
}

func NewDeadlineRepository(next deadline.Repository, cache *basecache.Store) *DeadlineRepository {
	return &DeadlineRepository{next: next, cache: cache}
}

type cachedDeadline struct {
	at *time.Time
}

func (r *DeadlineRepository) Get(ctx context.Context) (*time.Time, error) {
	v, err := r.cache.GetOrLoad(ctx, deadlineKey, func(ctx context.Context) (any, error) {
		at, err := r.next.Get(ctx)
		if err != nil {
			return nil, err
		}
		return cachedDeadline{at: at}, nil
	})
	if err != nil {
		return nil, err
	}

	cached, _ := v.(cachedDeadline)
	if cached.at == nil {
		return nil, nil
	}
	at := *cached.at

	return &at, nil
}

func (r *DeadlineRepository) Set(ctx context.Context, at *time.Time) error {
	if err := r.next.Set(ctx, at); err != nil {
		return err
	}
	r.cache.Delete(ctx, deadlineKey)

	return nil
}
