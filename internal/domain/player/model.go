package player

import (
	"fmt"
	"time"
)

// Player is one auction lot: the scouting profile plus the live bid state.
// Bid columns (CurrentBidPrice, CurrentBidTeam, Buyout) are owned by the
// bid acceptance transaction and must never be written by admin edits.
type Player struct {
	ID                int64
	Name              string
	TeamOut           string
	Age               int
	CurrentAbility    int
	PotentialAbility  int
	Position          string
	SecondaryPosition string
	Height            string
	Weight            string
	MinPrice          int64
	MaxPrice          int64
	CurrentBidPrice   *int64
	CurrentBidTeam    *string
	Buyout            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamOut == "" {
		return fmt.Errorf("player team out is required")
	}
	if p.Position == "" {
		return fmt.Errorf("player position is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("player age must be >= 0")
	}
	if p.MinPrice < 0 || p.MaxPrice < 0 {
		return fmt.Errorf("player prices must be >= 0")
	}
	if p.MinPrice > p.MaxPrice {
		return fmt.Errorf("player min price %d exceeds max price %d", p.MinPrice, p.MaxPrice)
	}

	return nil
}

// Update carries a partial admin edit. Nil fields are left untouched.
// The name is immutable once created, and there is deliberately no way
// to express a bid-column change here.
type Update struct {
	TeamOut           *string
	Age               *int
	CurrentAbility    *int
	PotentialAbility  *int
	Position          *string
	SecondaryPosition *string
	Height            *string
	Weight            *string
	MinPrice          *int64
	MaxPrice          *int64
}

// Apply merges the edit into a copy of p.
func (u Update) Apply(p Player) Player {
	if u.TeamOut != nil {
		p.TeamOut = *u.TeamOut
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.CurrentAbility != nil {
		p.CurrentAbility = *u.CurrentAbility
	}
	if u.PotentialAbility != nil {
		p.PotentialAbility = *u.PotentialAbility
	}
	if u.Position != nil {
		p.Position = *u.Position
	}
	if u.SecondaryPosition != nil {
		p.SecondaryPosition = *u.SecondaryPosition
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.MinPrice != nil {
		p.MinPrice = *u.MinPrice
	}
	if u.MaxPrice != nil {
		p.MaxPrice = *u.MaxPrice
	}

	return p
}

func (u Update) Empty() bool {
	return u.TeamOut == nil &&
		u.Age == nil &&
		u.CurrentAbility == nil &&
		u.PotentialAbility == nil &&
		u.Position == nil &&
		u.SecondaryPosition == nil &&
		u.Height == nil &&
		u.Weight == nil &&
		u.MinPrice == nil &&
		u.MaxPrice == nil
}
