package discovery

import (
	"errors"
	"testing"
)

var enumerated = []string{
	"/build/deps/fedimint_tests-9f3c21ab",
	"/build/deps/fedimint_wallet_tests-0a1b2c3d",
	"/build/deps/fedimint_mint_tests-44ddee00",
	"/build/deps/fedimint_ln_tests-77aa88bb",
	"/build/deps/ln_gateway-5e6f7a8b",
}

func TestFilter_Matches(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{name: "single suite", pattern: "/ln_gateway-", expected: 1},
		{name: "mint suite", pattern: "/fedimint_mint_tests-", expected: 1},
		{name: "no matches", pattern: "/fedimint_gateway_tests-", expected: 0},
		{name: "loose pattern matches several", pattern: "_tests-", expected: 4},
		{name: "empty pattern matches all", pattern: "", expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := filter.Matches(enumerated, tt.pattern)
			if len(matched) != tt.expected {
				t.Errorf("expected %d matches, got %d: %v", tt.expected, len(matched), matched)
			}
		})
	}

	t.Run("order preserved", func(t *testing.T) {
		matched := filter.Matches(enumerated, "_tests-")
		for i := 1; i < len(matched); i++ {
			if indexOf(enumerated, matched[i-1]) > indexOf(enumerated, matched[i]) {
				t.Errorf("match order differs from enumeration order: %v", matched)
			}
		}
	})
}

func TestFilter_SelectOne(t *testing.T) {
	filter := NewFilter()

	t.Run("exactly one", func(t *testing.T) {
		path, err := filter.SelectOne(enumerated, "/fedimint_wallet_tests-")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/build/deps/fedimint_wallet_tests-0a1b2c3d" {
			t.Errorf("selected wrong path: %s", path)
		}
	})

	t.Run("zero matches", func(t *testing.T) {
		_, err := filter.SelectOne(enumerated, "/missing-")
		if !errors.Is(err, ErrNoMatch) {
			t.Errorf("expected ErrNoMatch, got %v", err)
		}
	})

	t.Run("multiple matches", func(t *testing.T) {
		_, err := filter.SelectOne(enumerated, "_tests-")
		if !errors.Is(err, ErrAmbiguous) {
			t.Errorf("expected ErrAmbiguous, got %v", err)
		}
	})
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
