package cookiekit

import (
	"fmt"
	"time"
)

// FormatBytes renders a size the way the dashboard does: plain bytes below
// 1 KiB, otherwise one decimal of KiB.
func FormatBytes(n int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	return fmt.Sprintf("%.1f KB", float64(n)/1024)
}

// FormatExpiry renders how far away an expiration epoch is, coarsening with
// distance (minutes, hours, days, months, years). Past epochs render as
// "Expired"; a nil epoch is a session cookie.
func FormatExpiry(expirationDate *float64, now time.Time) string {
	if expirationDate == nil {
		return "Session"
	}
	exp := time.Unix(int64(*expirationDate), 0)
	diff := exp.Sub(now)
	if diff < 0 {
		return "Expired"
	}
	days := int(diff.Hours() / 24)
	switch {
	case days > 365:
		y := days / 365
		if y > 1 {
			return fmt.Sprintf("%d years", y)
		}
		return "1 year"
	case days > 30:
		return fmt.Sprintf("%d months", days/30)
	case days > 0:
		if days > 1 {
			return fmt.Sprintf("%d days", days)
		}
		return "1 day"
	}
	if h := int(diff.Hours()); h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", int(diff.Minutes()))
}

// Truncate shortens a value preview to at most n characters plus an ellipsis.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}

// SecurityScore rates a cookie's transport/access posture 0-4: one point each
// for Secure and HttpOnly, two for SameSite=Strict (one for Lax).
func SecurityScore(c Cookie) int {
	score := 0
	if c.Secure {
		score++
	}
	if c.HttpOnly {
		score++
	}
	switch c.SameSite {
	case SameSiteStrict:
		score += 2
	case SameSiteLax:
		score++
	}
	return score
}
