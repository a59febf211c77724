package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/riskibarqy/transfer-auction/internal/domain/bid"
	"github.com/riskibarqy/transfer-auction/internal/domain/player"
	"github.com/valyala/bytebufferpool"
)

// ExportService renders the full auction state as CSV for the organizer's
// spreadsheet. Players are ordered by current ability, best first, and each
// player's bid history follows its ledger row oldest first.
type ExportService struct {
	playerRepo player.Repository
	bidRepo    bid.Repository
}

func NewExportService(playerRepo player.Repository, bidRepo bid.Repository) *ExportService {
	return &ExportService{playerRepo: playerRepo, bidRepo: bidRepo}
}

var exportHeader = []string{
	"player_name", "team_out", "age", "position", "secondary_position",
	"current_ability", "potential_ability", "min_price", "max_price",
	"winning_team", "winning_price", "buyout",
	"bid_team", "bid_price", "bid_time",
}

func (s *ExportService) ExportCSV(ctx context.Context) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExportService.ExportCSV")
	defer span.End()

	players, err := s.playerRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players for export: %w", err)
	}

	bids, err := s.bidRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bids for export: %w", err)
	}

	bidsByPlayer := make(map[int64][]bid.Bid, len(players))
	for _, b := range bids {
		bidsByPlayer[b.PlayerID] = append(bidsByPlayer[b.PlayerID], b)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].CurrentAbility > players[j].CurrentAbility
	})

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	// BOM keeps Excel from mangling non-ASCII player names.
	if _, err := buf.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return nil, fmt.Errorf("write csv bom: %w", err)
	}

	w := csv.NewWriter(buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, p := range players {
		history := bidsByPlayer[p.ID]
		if len(history) == 0 {
			if err := w.Write(exportRow(p, nil)); err != nil {
				return nil, fmt.Errorf("write csv row: %w", err)
			}
			continue
		}
		for i := range history {
			if err := w.Write(exportRow(p, &history[i])); err != nil {
				return nil, fmt.Errorf("write csv row: %w", err)
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func exportRow(p player.Player, b *bid.Bid) []string {
	winningTeam := ""
	if p.CurrentBidTeam != nil {
		winningTeam = *p.CurrentBidTeam
	}
	winningPrice := ""
	if p.CurrentBidPrice != nil {
		winningPrice = strconv.FormatInt(*p.CurrentBidPrice, 10)
	}

	bidTeam, bidPrice, bidTime := "", "", ""
	if b != nil {
		bidTeam = b.Team
		bidPrice = strconv.FormatInt(b.Price, 10)
		bidTime = b.CreatedAt.UTC().Format(time.RFC3339)
	}

	return []string{
		p.Name, p.TeamOut, strconv.Itoa(p.Age), p.Position, p.SecondaryPosition,
		strconv.Itoa(p.CurrentAbility), strconv.Itoa(p.PotentialAbility),
		strconv.FormatInt(p.MinPrice, 10), strconv.FormatInt(p.MaxPrice, 10),
		winningTeam, winningPrice, strconv.FormatBool(p.Buyout),
		bidTeam, bidPrice, bidTime,
	}
}
