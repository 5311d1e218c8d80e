package billing

import (
	"errors"
	"testing"

	"github.com/wattlab/wattboard/pkg/models"
)

func TestCostFlatSchedule(t *testing.T) {
	flat := []models.RateTier{{PricePerKWh: 100}}

	cost, err := Cost(flat, 150)
	if err != nil {
		t.Fatalf("Cost failed: %v", err)
	}
	if cost != 15000 {
		t.Fatalf("expected 15000, got %d", cost)
	}
}

func TestCostTiered(t *testing.T) {
	tiers := []models.RateTier{
		{UpToKWh: 100, PricePerKWh: 100},
		{PricePerKWh: 200},
	}

	// 100 kWh at 100/kWh plus 50 kWh at 200/kWh
	cost, err := Cost(tiers, 150)
	if err != nil {
		t.Fatalf("Cost failed: %v", err)
	}
	if cost != 20000 {
		t.Fatalf("expected 20000, got %d", cost)
	}
}

func TestCostTierBoundary(t *testing.T) {
	tiers := []models.RateTier{
		{UpToKWh: 100, PricePerKWh: 100},
		{PricePerKWh: 200},
	}

	// Usage exactly on the bound bills entirely at the lower rate.
	cost, err := Cost(tiers, 100)
	if err != nil {
		t.Fatalf("Cost failed: %v", err)
	}
	if cost != 10000 {
		t.Fatalf("expected 10000, got %d", cost)
	}
}

func TestCostZeroUsage(t *testing.T) {
	tiers := []models.RateTier{
		{UpToKWh: 100, PricePerKWh: 100},
		{PricePerKWh: 200},
	}

	cost, err := Cost(tiers, 0)
	if err != nil {
		t.Fatalf("Cost failed: %v", err)
	}
	if cost != 0 {
		t.Fatalf("expected 0, got %d", cost)
	}
}

func TestCostNegativeUsageRejected(t *testing.T) {
	flat := []models.RateTier{{PricePerKWh: 100}}

	_, err := Cost(flat, -5)
	if err == nil {
		t.Fatal("expected error for negative usage")
	}
	if !errors.Is(err, ErrNegativeUsage) {
		t.Fatalf("expected ErrNegativeUsage, got: %v", err)
	}
}

func TestCostRoundsHalfUp(t *testing.T) {
	flat := []models.RateTier{{PricePerKWh: 100.5}}

	// 1 kWh at 100.5 -> 100.5 -> 101
	cost, err := Cost(flat, 1)
	if err != nil {
		t.Fatalf("Cost failed: %v", err)
	}
	if cost != 101 {
		t.Fatalf("expected 101, got %d", cost)
	}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		tiers   []models.RateTier
		wantErr bool
	}{
		{
			name:    "empty",
			tiers:   nil,
			wantErr: true,
		},
		{
			name: "valid three tiers",
			tiers: []models.RateTier{
				{UpToKWh: 100, PricePerKWh: 100},
				{UpToKWh: 200, PricePerKWh: 200},
				{PricePerKWh: 300},
			},
		},
		{
			name:  "valid flat",
			tiers: []models.RateTier{{PricePerKWh: 100}},
		},
		{
			name: "bounded last tier",
			tiers: []models.RateTier{
				{UpToKWh: 100, PricePerKWh: 100},
				{UpToKWh: 200, PricePerKWh: 200},
			},
			wantErr: true,
		},
		{
			name: "non-ascending bounds",
			tiers: []models.RateTier{
				{UpToKWh: 200, PricePerKWh: 100},
				{UpToKWh: 100, PricePerKWh: 200},
				{PricePerKWh: 300},
			},
			wantErr: true,
		},
		{
			name: "negative price",
			tiers: []models.RateTier{
				{UpToKWh: 100, PricePerKWh: -1},
				{PricePerKWh: 300},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchedule(tt.tiers)
			if tt.wantErr && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
