package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/transfer-auction/internal/domain/identity"
	"github.com/riskibarqy/transfer-auction/internal/domain/teamtoken"
)

// TeamTokenVerifier resolves an opaque team token to the identity it
// represents. Unknown and deactivated tokens both come back as not found;
// the caller cannot tell the two apart.
type TeamTokenVerifier struct {
	tokens teamtoken.Repository
}

func NewTeamTokenVerifier(tokens teamtoken.Repository) *TeamTokenVerifier {
	return &TeamTokenVerifier{tokens: tokens}
}

func (v *TeamTokenVerifier) Verify(ctx context.Context, token string) (identity.Identity, bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return identity.Identity{}, false, nil
	}

	t, exists, err := v.tokens.GetByToken(ctx, token)
	if err != nil {
		return identity.Identity{}, false, fmt.Errorf("verify team token: %w", err)
	}
	if !exists || !t.Active {
		return identity.Identity{}, false, nil
	}

	return identity.Identity{
		Kind:     identity.KindTeam,
		TeamID:   t.ID,
		TeamName: t.TeamName,
		Token:    t.Token,
	}, true, nil
}
