package memory

import (
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/player"
	"github.com/riskibarqy/transfer-auction/internal/domain/teamtoken"
)

const (
	TeamTokenAlphaFC = "tok-alpha-0001"
	TeamTokenBetaUtd = "tok-beta-0002"
)

func SeedPlayers() []player.Player {
	created := time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC)
	return []player.Player{
		{
			ID: 1, Name: "Mateo Vidal", TeamOut: "CD Ribera",
			Age: 24, CurrentAbility: 152, PotentialAbility: 168,
			Position: "ST", SecondaryPosition: "AM",
			Height: "183cm", Weight: "78kg",
			MinPrice: 1_000_000, MaxPrice: 5_000_000,
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: 2, Name: "Janek Kowal", TeamOut: "Gornik Stare",
			Age: 29, CurrentAbility: 140, PotentialAbility: 143,
			Position: "DC",
			Height: "190cm", Weight: "85kg",
			MinPrice: 500_000, MaxPrice: 2_000_000,
			CreatedAt: created, UpdatedAt: created,
		},
		{
			ID: 3, Name: "Sandro Iwata", TeamOut: "Kawazu FC",
			Age: 19, CurrentAbility: 121, PotentialAbility: 175,
			Position: "MC", SecondaryPosition: "DM",
			Height: "176cm", Weight: "70kg",
			MinPrice: 750_000, MaxPrice: 750_000,
			CreatedAt: created, UpdatedAt: created,
		},
	}
}

func SeedTeamTokens() []teamtoken.TeamToken {
	created := time.Date(2026, time.July, 1, 9, 0, 0, 0, time.UTC)
	return []teamtoken.TeamToken{
		{ID: 1, TeamName: "Alpha FC", Token: TeamTokenAlphaFC, Active: true, CreatedAt: created},
		{ID: 2, TeamName: "Beta United", Token: TeamTokenBetaUtd, Active: true, CreatedAt: created},
	}
}
