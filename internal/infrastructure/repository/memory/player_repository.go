package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/player"
)

type PlayerRepository struct {
	mu      sync.RWMutex
	players map[int64]player.Player
	nextID  int64
	now     func() time.Time
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	index := make(map[int64]player.Player, len(players))
	var maxID int64
	for _, p := range players {
		index[p.ID] = p
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	return &PlayerRepository{
		players: index,
		nextID:  maxID + 1,
		now:     time.Now,
	}
}

func (r *PlayerRepository) List(_ context.Context, page, pageSize int) ([]player.Player, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedByAbility()
	total := len(all)

	start := (page - 1) * pageSize
	if start >= total {
		return []player.Player{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return all[start:end], total, nil
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.players[id]

	return p, ok, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.findByName(p.Name); ok {
		return player.Player{}, player.ErrNameTaken
	}

	now := r.now()
	p.ID = r.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	r.nextID++
	r.players[p.ID] = p

	return p, nil
}

func (r *PlayerRepository) BatchUpsert(_ context.Context, players []player.Player) (int, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var created, updated int
	now := r.now()
	for _, p := range players {
		existing, ok := r.findByName(p.Name)
		if ok {
			// Bid state survives a re-import.
			p.ID = existing.ID
			p.CurrentBidPrice = existing.CurrentBidPrice
			p.CurrentBidTeam = existing.CurrentBidTeam
			p.Buyout = existing.Buyout
			p.CreatedAt = existing.CreatedAt
			p.UpdatedAt = now
			r.players[p.ID] = p
			updated++
			continue
		}

		p.ID = r.nextID
		p.CreatedAt = now
		p.UpdatedAt = now
		r.nextID++
		r.players[p.ID] = p
		created++
	}

	return created, updated, nil
}

func (r *PlayerRepository) Update(_ context.Context, id int64, u player.Update) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[id]
	if !ok {
		return player.Player{}, false, nil
	}

	p = u.Apply(p)
	p.UpdatedAt = r.now()
	r.players[id] = p

	return p, true, nil
}

func (r *PlayerRepository) Unlock(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[id]
	if !ok {
		return player.Player{}, false, nil
	}

	p.Buyout = false
	p.UpdatedAt = r.now()
	r.players[id] = p

	return p, true, nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.players[id]; !ok {
		return false, nil
	}
	delete(r.players, id)

	return true, nil
}

func (r *PlayerRepository) findByName(name string) (player.Player, bool) {
	for _, p := range r.players {
		if p.Name == name {
			return p, true
		}
	}
	return player.Player{}, false
}

func (r *PlayerRepository) sortedByAbility() []player.Player {
	out := make([]player.Player, 0, len(r.players))
	for _, p := range r.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CurrentAbility != out[j].CurrentAbility {
			return out[i].CurrentAbility > out[j].CurrentAbility
		}
		return out[i].ID < out[j].ID
	})

	return out
}
