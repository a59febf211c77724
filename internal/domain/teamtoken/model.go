package teamtoken

import "time"

// TeamToken binds an anonymous visitor session to one team's identity.
// An inactive token is kept for audit but no longer authenticates.
type TeamToken struct {
	ID        int64
	TeamName  string
	Token     string
	Active    bool
	CreatedAt time.Time
}
