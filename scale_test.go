package gauge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNiceNumber(t *testing.T) {
	tests := []struct {
		r     float64
		round bool
		want  float64
	}{
		{100, false, 100},
		{87, false, 100},
		{42, false, 50},
		{15, false, 20},
		{0.3, false, 0.5},
		{11.1, true, 10},
		{1.6, true, 2},
		{4, true, 5},
		{8, true, 10},
		{0.011, true, 0.01},
		{0, false, 0},
		{-5, true, 0},
	}
	for _, tt := range tests {
		got := NiceNumber(tt.r, tt.round)
		if !approx(got, tt.want) {
			t.Errorf("NiceNumber(%v, %v) = %v, want %v", tt.r, tt.round, got, tt.want)
		}
	}
}

func TestAutoScale(t *testing.T) {
	tests := []struct {
		lo, hi float64
		want   Scale
	}{
		{0, 100, Scale{Min: 0, Max: 100, MajorTickSpace: 10, MinorTickSpace: 1}},
		{0, 87, Scale{Min: 0, Max: 90, MajorTickSpace: 10, MinorTickSpace: 1}},
		{-7, 42, Scale{Min: -10, Max: 45, MajorTickSpace: 5, MinorTickSpace: 0.5}},
		{0, 1, Scale{Min: 0, Max: 1, MajorTickSpace: 0.1, MinorTickSpace: 0.01}},
		{5, 5, Scale{Min: 5, Max: 5}},
	}
	for _, tt := range tests {
		got := AutoScale(tt.lo, tt.hi)
		if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("AutoScale(%v, %v) mismatch (-want +got):\n%s", tt.lo, tt.hi, diff)
		}
	}
}

func TestTicks(t *testing.T) {
	tests := []struct {
		name         string
		lo, hi, step float64
		want         []float64
	}{
		{"aligned", 0, 50, 10, []float64{0, 10, 20, 30, 40, 50}},
		{"offset", -7, 22, 10, []float64{0, 10, 20}},
		{"fraction", 0, 0.3, 0.1, []float64{0, 0.1, 0.2, 0.3}},
		{"zero step", 0, 10, 0, nil},
		{"reversed", 10, 0, 1, nil},
		{"no multiple", 1, 2, 5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ticks(tt.lo, tt.hi, tt.step)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Ticks(%v, %v, %v) mismatch (-want +got):\n%s", tt.lo, tt.hi, tt.step, diff)
			}
		})
	}
}

func TestTickDecimals(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{10, 0},
		{1, 0},
		{0.5, 1},
		{0.1, 1},
		{0.25, 2},
		{2.5, 1},
		{0.01, 2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := tickDecimals(tt.step); got != tt.want {
			t.Errorf("tickDecimals(%v) = %v, want %v", tt.step, got, tt.want)
		}
	}
}
