package odds

import (
	"errors"
	"math"
	"testing"
)

func TestNewMoneyline(t *testing.T) {
	tests := []struct {
		value   int64
		wantErr bool
	}{
		{100, false},
		{-100, false},
		{1200, false},
		{-20000, false},
		{99, true},
		{-99, true},
		{0, true},
		{1, true},
	}

	for _, tt := range tests {
		_, err := NewMoneyline(tt.value)
		if tt.wantErr && !errors.Is(err, ErrInvalidOdd) {
			t.Errorf("NewMoneyline(%d) error = %v, want ErrInvalidOdd", tt.value, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("NewMoneyline(%d) error: %v", tt.value, err)
		}
	}
}

func TestParseMoneyline(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"-200", -200, false},
		{"+1200", 1200, false},
		{"150", 150, false},
		{"1.5", 0, true},
		{"99", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		m, err := ParseMoneyline(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMoneyline(%q) should fail", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMoneyline(%q) error: %v", tt.input, err)
			continue
		}
		if m.Value() != tt.want {
			t.Errorf("ParseMoneyline(%q) = %d, want %d", tt.input, m.Value(), tt.want)
		}
	}
}

func TestMoneylineIdentityConversion(t *testing.T) {
	m := mustMoneyline(t, -200)
	same, err := m.ToMoneyline()
	if err != nil {
		t.Fatalf("ToMoneyline error: %v", err)
	}
	if same != m {
		t.Errorf("ToMoneyline() = %v, want %v", same, m)
	}
}

func TestMoneylineToFractionalRange(t *testing.T) {
	m := mustMoneyline(t, math.MinInt64)
	if _, err := m.ToFractional(); !errors.Is(err, ErrInvalidOdd) {
		t.Errorf("Moneyline(MinInt64).ToFractional() error = %v, want ErrInvalidOdd", err)
	}

	m = mustMoneyline(t, math.MaxInt64)
	if _, err := m.ToFractional(); !errors.Is(err, ErrInvalidOdd) {
		t.Errorf("Moneyline(MaxInt64).ToFractional() error = %v, want ErrInvalidOdd", err)
	}
}

func TestMoneylineImpliedProbability(t *testing.T) {
	tests := []struct {
		value int64
		want  float64
		delta float64
	}{
		{100, 0.5, 0.001},
		{-100, 0.5, 0.001},
		{-150, 0.6, 0.001},
		{150, 0.4, 0.001},
		{-300, 0.75, 0.001},
		{300, 0.25, 0.001},
		{-110, 0.5238, 0.001},
	}

	for _, tt := range tests {
		m := mustMoneyline(t, tt.value)
		if got := m.ImpliedProbability(); math.Abs(got-tt.want) > tt.delta {
			t.Errorf("Moneyline(%d).ImpliedProbability() = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestMoneylinePayout(t *testing.T) {
	m := mustMoneyline(t, 150)
	if got := m.Profit(100); got != 150 {
		t.Errorf("Moneyline(+150).Profit(100) = %v, want 150", got)
	}
	if got := m.Payout(100); got != 250 {
		t.Errorf("Moneyline(+150).Payout(100) = %v, want 250", got)
	}

	m = mustMoneyline(t, -200)
	if got := m.Profit(100); got != 50 {
		t.Errorf("Moneyline(-200).Profit(100) = %v, want 50", got)
	}
	if got := m.Payout(100); got != 150 {
		t.Errorf("Moneyline(-200).Payout(100) = %v, want 150", got)
	}
}
