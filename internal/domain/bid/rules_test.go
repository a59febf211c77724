package bid

import (
	"errors"
	"testing"

	"github.com/riskibarqy/transfer-auction/internal/domain/player"
)

func TestEvaluate(t *testing.T) {
	base := player.Player{
		ID:       7,
		Name:     "Test Player",
		TeamOut:  "Old Club",
		MinPrice: 100,
		MaxPrice: 500,
	}
	leading := int64(250)

	tests := []struct {
		name       string
		mutate     func(*player.Player)
		price      int64
		wantBuyout bool
		targetErr  error
	}{
		{
			name:   "first bid at minimum",
			mutate: func(_ *player.Player) {},
			price:  100,
		},
		{
			name:       "bid at maximum triggers buyout",
			mutate:     func(_ *player.Player) {},
			price:      500,
			wantBuyout: true,
		},
		{
			name:      "below minimum",
			mutate:    func(_ *player.Player) {},
			price:     50,
			targetErr: ErrBelowMinimum,
		},
		{
			name:      "above maximum",
			mutate:    func(_ *player.Player) {},
			price:     501,
			targetErr: ErrAboveMaximum,
		},
		{
			name: "below current leading bid",
			mutate: func(p *player.Player) {
				p.CurrentBidPrice = &leading
			},
			price:     200,
			targetErr: ErrBelowCurrent,
		},
		{
			name: "tie with current leading bid is accepted",
			mutate: func(p *player.Player) {
				p.CurrentBidPrice = &leading
			},
			price: 250,
		},
		{
			name: "locked rejects before bounds",
			mutate: func(p *player.Player) {
				p.Buyout = true
			},
			price:     50,
			targetErr: ErrLocked,
		},
		{
			name: "locked rejects any price",
			mutate: func(p *player.Player) {
				p.Buyout = true
			},
			price:     500,
			targetErr: ErrLocked,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := base
			tc.mutate(&p)

			isBuyout, err := Evaluate(p, tc.price)
			if tc.targetErr != nil {
				if !errors.Is(err, tc.targetErr) {
					t.Fatalf("expected %v, got %v", tc.targetErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if isBuyout != tc.wantBuyout {
				t.Fatalf("expected buyout=%t, got %t", tc.wantBuyout, isBuyout)
			}
		})
	}
}

func TestEvaluate_MinEqualsMax(t *testing.T) {
	p := player.Player{ID: 1, MinPrice: 300, MaxPrice: 300}

	isBuyout, err := Evaluate(p, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !isBuyout {
		t.Fatalf("expected immediate buyout when min == max")
	}
}
