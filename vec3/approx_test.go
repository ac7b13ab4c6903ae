package vec3

import (
	"math"
	"testing"
)

func TestAbsDiffEq(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		epsilon  float64
		expected bool
	}{
		{"identical", New(1, 2, 3), New(1, 2, 3), DefaultEpsilon, true},
		{"within_epsilon", New(1, 2, 3), New(1+1e-10, 2, 3), 1e-9, true},
		{"outside_epsilon", New(1, 2, 3), New(1.01, 2, 3), 1e-9, false},
		{"one_component_off", New(1, 2, 3), New(1, 2, 4), 0.5, false},
		{"negative_pair", New(-1, -2, -3), New(-1, -2, -3), DefaultEpsilon, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbsDiffEq(tt.a, tt.b, tt.epsilon); got != tt.expected {
				t.Errorf("AbsDiffEq = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRelativeEq(t *testing.T) {
	tests := []struct {
		name        string
		a, b        Vec3
		maxRelative float64
		expected    bool
	}{
		{"identical", New(1e6, 1, 0), New(1e6, 1, 0), DefaultMaxRelative, true},
		{"large_values_close", New(1e9, 0, 0), New(1e9+1, 0, 0), 1e-8, true},
		{"large_values_far", New(1e9, 0, 0), New(1.1e9, 0, 0), 1e-8, false},
		{"infinities_differ", New(math.Inf(1), 0, 0), New(1e300, 0, 0), 0.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeEq(tt.a, tt.b, DefaultEpsilon, tt.maxRelative); got != tt.expected {
				t.Errorf("RelativeEq = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestUlpsEq(t *testing.T) {
	nextUp := math.Nextafter(1, 2)

	tests := []struct {
		name     string
		a, b     Vec3
		maxUlps  uint64
		expected bool
	}{
		{"identical", New(1, 2, 3), New(1, 2, 3), DefaultMaxUlps, true},
		{"one_ulp_apart", New(1, 0, 0), New(nextUp, 0, 0), DefaultMaxUlps, true},
		{"too_many_ulps", New(1, 0, 0), New(1+1e-9, 0, 0), DefaultMaxUlps, false},
		{"opposite_signs", New(1, 0, 0), New(-1, 0, 0), DefaultMaxUlps, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UlpsEq(tt.a, tt.b, DefaultEpsilon, tt.maxUlps); got != tt.expected {
				t.Errorf("UlpsEq = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestApproxEq(t *testing.T) {
	a := New(1, 2, 3)
	if !ApproxEq(a, a) {
		t.Error("ApproxEq should accept identical vectors")
	}
	if ApproxEq(a, New(1, 2, 3.1)) {
		t.Error("ApproxEq should reject clearly different vectors")
	}
}
