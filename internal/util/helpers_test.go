package util

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct{ in, want int }{
		{5, 10},
		{10, 10},
		{25, 25},
		{40, 30},
	}
	for _, tc := range cases {
		if got := Clamp(tc.in, 10, 30); got != tc.want {
			t.Fatalf("Clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
