package cookiekit

import (
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	if got := FormatBytes(512); got != "512 B" {
		t.Fatalf("expected 512 B, got %q", got)
	}
	if got := FormatBytes(1536); got != "1.5 KB" {
		t.Fatalf("expected 1.5 KB, got %q", got)
	}
}

func TestFormatExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *float64 {
		v := float64(now.Add(d).Unix())
		return &v
	}
	tests := []struct {
		name string
		exp  *float64
		want string
	}{
		{"session", nil, "Session"},
		{"expired", at(-time.Hour), "Expired"},
		{"minutes", at(30 * time.Minute), "30m"},
		{"hours", at(5 * time.Hour), "5h"},
		{"days", at(72 * time.Hour), "3 days"},
		{"months", at(90 * 24 * time.Hour), "3 months"},
		{"one year", at(400 * 24 * time.Hour), "1 year"},
		{"years", at(800 * 24 * time.Hour), "2 years"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatExpiry(tc.exp, now); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("expected untouched string, got %q", got)
	}
	if got := Truncate("abcdefghij", 4); got != "abcd…" {
		t.Fatalf("expected abcd…, got %q", got)
	}
}

func TestSecurityScore(t *testing.T) {
	tests := []struct {
		name string
		c    Cookie
		want int
	}{
		{"bare", Cookie{}, 0},
		{"secure only", Cookie{Secure: true}, 1},
		{"lax", Cookie{SameSite: SameSiteLax}, 1},
		{"strict", Cookie{SameSite: SameSiteStrict}, 2},
		{"hardened", Cookie{Secure: true, HttpOnly: true, SameSite: SameSiteStrict}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SecurityScore(tc.c); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestSiteOf(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{".www.example.co.uk", "example.co.uk"},
		{"cdn.example.com", "example.com"},
		{"localhost", "localhost"},
	}
	for _, tc := range tests {
		if got := SiteOf(tc.domain); got != tc.want {
			t.Fatalf("SiteOf(%q) = %q, want %q", tc.domain, got, tc.want)
		}
	}
}

func TestSiteBreakdown(t *testing.T) {
	got := SiteBreakdown([]Cookie{
		{Domain: "a.example.com"},
		{Domain: ".example.com"},
		{Domain: "tracker.io"},
	})
	if got["example.com"] != 2 || got["tracker.io"] != 1 {
		t.Fatalf("unexpected breakdown: %v", got)
	}
}
