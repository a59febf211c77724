package usecase

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/riskibarqy/transfer-auction/internal/infrastructure/repository/memory"
)

func TestExportService_ExportCSV(t *testing.T) {
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	bidRepo := memory.NewBidRepository(playerRepo)
	service := NewExportService(playerRepo, bidRepo)

	if _, exists, err := bidRepo.SubmitBid(t.Context(), 1, "Alpha FC", 1_000_000); err != nil || !exists {
		t.Fatalf("seed bid failed: exists=%v err=%v", exists, err)
	}
	if _, exists, err := bidRepo.SubmitBid(t.Context(), 1, "Beta United", 2_000_000); err != nil || !exists {
		t.Fatalf("seed bid failed: exists=%v err=%v", exists, err)
	}

	out, err := service.ExportCSV(t.Context())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	bom := []byte{0xEF, 0xBB, 0xBF}
	if !bytes.HasPrefix(out, bom) {
		t.Fatal("expected UTF-8 BOM prefix")
	}

	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, bom))).ReadAll()
	if err != nil {
		t.Fatalf("parse exported csv: %v", err)
	}

	// Header + 2 bid rows for player 1 + 1 empty row each for players 2 and 3.
	if len(records) != 5 {
		t.Fatalf("expected 5 csv records, got %d", len(records))
	}
	if records[0][0] != "player_name" {
		t.Fatalf("expected header row, got %v", records[0])
	}

	// Highest current ability comes first, bids oldest first.
	if records[1][0] != "Mateo Vidal" || records[1][12] != "Alpha FC" || records[1][13] != "1000000" {
		t.Fatalf("unexpected first bid row: %v", records[1])
	}
	if records[2][12] != "Beta United" || records[2][13] != "2000000" {
		t.Fatalf("unexpected second bid row: %v", records[2])
	}
	if records[1][9] != "Beta United" || records[1][10] != "2000000" {
		t.Fatalf("unexpected winning columns: %v", records[1])
	}

	// Bid-less players still appear with empty history columns.
	if records[3][0] != "Janek Kowal" || records[3][12] != "" {
		t.Fatalf("unexpected bid-less row: %v", records[3])
	}
}
