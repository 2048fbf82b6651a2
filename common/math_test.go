package common

import "testing"

func TestLerp(t *testing.T) {
	cases := []struct {
		a, b, t, want float64
	}{
		{0, 10, 0, 0},
		{0, 10, 1, 10},
		{0, -100, 0.1, -10},
		{-50, -100, 0.5, -75},
	}
	for _, c := range cases {
		if got := Lerp(c.a, c.b, c.t); got != c.want {
			t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
		}
	}
}

func TestSign(t *testing.T) {
	cases := map[float64]int{-3.5: -1, 0: 0, 0.01: 1}
	for v, want := range cases {
		if got := Sign(v); got != want {
			t.Fatalf("Sign(%v) = %d, want %d", v, got, want)
		}
	}
}
