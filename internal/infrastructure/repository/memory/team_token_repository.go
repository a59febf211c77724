package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/teamtoken"
)

type TeamTokenRepository struct {
	mu     sync.RWMutex
	tokens map[int64]teamtoken.TeamToken
	nextID int64
	now    func() time.Time
}

func NewTeamTokenRepository(tokens []teamtoken.TeamToken) *TeamTokenRepository {
	index := make(map[int64]teamtoken.TeamToken, len(tokens))
	var maxID int64
	for _, t := range tokens {
		index[t.ID] = t
		if t.ID > maxID {
			maxID = t.ID
		}
	}

	return &TeamTokenRepository{
		tokens: index,
		nextID: maxID + 1,
		now:    time.Now,
	}
}

func (r *TeamTokenRepository) GetByToken(_ context.Context, token string) (teamtoken.TeamToken, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.tokens {
		if t.Token == token {
			return t, true, nil
		}
	}

	return teamtoken.TeamToken{}, false, nil
}

func (r *TeamTokenRepository) List(_ context.Context) ([]teamtoken.TeamToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]teamtoken.TeamToken, 0, len(r.tokens))
	for _, t := range r.tokens {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *TeamTokenRepository) Create(_ context.Context, teamName, token string) (teamtoken.TeamToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tokens {
		if t.TeamName == teamName || t.Token == token {
			return teamtoken.TeamToken{}, teamtoken.ErrTeamTaken
		}
	}

	t := teamtoken.TeamToken{
		ID:        r.nextID,
		TeamName:  teamName,
		Token:     token,
		Active:    true,
		CreatedAt: r.now(),
	}
	r.nextID++
	r.tokens[t.ID] = t

	return t, nil
}

func (r *TeamTokenRepository) SetActive(_ context.Context, id int64, active bool) (teamtoken.TeamToken, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tokens[id]
	if !ok {
		return teamtoken.TeamToken{}, false, nil
	}

	t.Active = active
	r.tokens[id] = t

	return t, true, nil
}
