package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPricingPolicy_Validate(t *testing.T) {
	policy := DefaultPricingPolicy()
	require.NoError(t, policy.Validate())
	assert.Equal(t, 24, policy.Hours())
}

func TestPricingPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  PricingPolicy
		wantErr bool
	}{
		{
			name: "full coverage",
			policy: PricingPolicy{
				OpenHour:  6,
				CloseHour: 22,
				Bands: []PriceBand{
					{FromHour: 6, ToHour: 12, Delta: 0},
					{FromHour: 12, ToHour: 22, Delta: 100},
				},
			},
		},
		{
			name: "gap between bands",
			policy: PricingPolicy{
				OpenHour:  0,
				CloseHour: 24,
				Bands: []PriceBand{
					{FromHour: 0, ToHour: 6, Delta: 0},
					{FromHour: 8, ToHour: 24, Delta: 100},
				},
			},
			wantErr: true,
		},
		{
			name: "overlapping bands",
			policy: PricingPolicy{
				OpenHour:  0,
				CloseHour: 24,
				Bands: []PriceBand{
					{FromHour: 0, ToHour: 10, Delta: 0},
					{FromHour: 5, ToHour: 24, Delta: 100},
				},
			},
			wantErr: true,
		},
		{
			name: "band extends beyond horizon",
			policy: PricingPolicy{
				OpenHour:  6,
				CloseHour: 22,
				Bands: []PriceBand{
					{FromHour: 0, ToHour: 12, Delta: 0},
					{FromHour: 12, ToHour: 24, Delta: 100},
				},
			},
		},
		{
			name: "horizon not covered to close",
			policy: PricingPolicy{
				OpenHour:  0,
				CloseHour: 24,
				Bands: []PriceBand{
					{FromHour: 0, ToHour: 20, Delta: 0},
				},
			},
			wantErr: true,
		},
		{
			name: "inverted band",
			policy: PricingPolicy{
				OpenHour:  0,
				CloseHour: 24,
				Bands: []PriceBand{
					{FromHour: 10, ToHour: 8, Delta: 0},
				},
			},
			wantErr: true,
		},
		{
			name:    "inverted horizon",
			policy:  PricingPolicy{OpenHour: 20, CloseHour: 10},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPricingPolicy)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPricingPolicy_PriceFor(t *testing.T) {
	policy := DefaultPricingPolicy()
	base := 500.0

	tests := []struct {
		hour int
		want float64
	}{
		{hour: 0, want: 400}, // ночь дешевле
		{hour: 5, want: 400},
		{hour: 6, want: 500}, // утро по базовой цене
		{hour: 11, want: 500},
		{hour: 12, want: 600}, // день
		{hour: 16, want: 600},
		{hour: 17, want: 700}, // вечерний прайм-тайм
		{hour: 21, want: 700},
		{hour: 22, want: 400}, // поздний вечер
		{hour: 23, want: 400},
	}

	for _, tt := range tests {
		got, err := policy.PriceFor(base, tt.hour)
		require.NoError(t, err, "hour %d", tt.hour)
		assert.Equal(t, tt.want, got, "hour %d", tt.hour)
	}
}

func TestPricingPolicy_PriceFor_ClampsAtZero(t *testing.T) {
	policy := DefaultPricingPolicy()

	got, err := policy.PriceFor(50, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestPricingPolicy_PriceFor_NoBand(t *testing.T) {
	policy := PricingPolicy{
		OpenHour:  6,
		CloseHour: 12,
		Bands:     []PriceBand{{FromHour: 6, ToHour: 12, Delta: 0}},
	}

	_, err := policy.PriceFor(500, 15)
	assert.ErrorIs(t, err, ErrInvalidPricingPolicy)
}
