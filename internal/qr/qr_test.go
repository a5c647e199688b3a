package qr

import (
	"errors"
	"strings"
	"testing"
)

func TestPixelSize(t *testing.T) {
	cases := map[string]int{
		"small":   100,
		"medium":  250,
		"large":   500,
		" Large ": 500,
		"":        250,
		"huge":    250,
	}
	for in, want := range cases {
		if got := PixelSize(in); got != want {
			t.Fatalf("PixelSize(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestRenderRequiresLink(t *testing.T) {
	if _, err := Render("  ", "small"); !errors.Is(err, ErrMissingLink) {
		t.Fatalf("expected ErrMissingLink, got %v", err)
	}
}

func TestRenderSizesGrow(t *testing.T) {
	link := "https://grovery-ar.netlify.app/projects/pomodoro"
	small, err := Render(link, "small")
	if err != nil {
		t.Fatalf("Render small failed: %v", err)
	}
	medium, err := Render(link, "medium")
	if err != nil {
		t.Fatalf("Render medium failed: %v", err)
	}
	large, err := Render(link, "large")
	if err != nil {
		t.Fatalf("Render large failed: %v", err)
	}
	lines := func(s string) int { return len(strings.Split(strings.TrimRight(s, "\n"), "\n")) }
	if !(lines(small) < lines(medium) && lines(medium) < lines(large)) {
		t.Fatalf("expected rendered height to grow: %d %d %d", lines(small), lines(medium), lines(large))
	}
}
