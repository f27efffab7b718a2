package viewmodel

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// Band is a threshold colour band shared by the eco-score bar and the
// confidence meter.
type Band int

const (
	// BandRed is below 60.
	BandRed Band = iota
	// BandAmber is 60 up to but excluding 80.
	BandAmber
	// BandGreen is 80 and above.
	BandGreen
)

// BandFor selects the band for a 0-100 score. Boundaries belong to the
// higher band.
func BandFor(score float64) Band {
	switch {
	case score >= 80:
		return BandGreen
	case score >= 60:
		return BandAmber
	default:
		return BandRed
	}
}

// String returns a string representation of the band.
func (b Band) String() string {
	switch b {
	case BandRed:
		return "red"
	case BandAmber:
		return "amber"
	case BandGreen:
		return "green"
	default:
		return fmt.Sprintf("Unknown(%d)", int(b))
	}
}

// Gradient returns the start and end colours of the band's meter fill.
func (b Band) Gradient() (from, to string) {
	switch b {
	case BandGreen:
		return "#0ba360", "#56ab2f"
	case BandAmber:
		return "#f2994a", "#f2c94c"
	default:
		return "#eb3349", "#f2994a"
	}
}

// ConfidenceLevel returns a human-readable confidence level.
func ConfidenceLevel(confidence float64) string {
	switch BandFor(confidence) {
	case BandGreen:
		return "Very Confident"
	case BandAmber:
		return "Confident"
	default:
		return "Uncertain"
	}
}

// FormatNumber renders a number the way the backend wrote it: no trailing
// zeros, no exponent.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent renders v as "v%".
func FormatPercent(v float64) string {
	return FormatNumber(v) + "%"
}

// FormatRelativeTime renders t relative to now: "Just now", "5m ago",
// "3h ago", "2d ago", or a date once a week has passed.
func FormatRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return t.Local().Format("Jan 2, 2006")
	}
}

// FormatSize formats a byte count in binary units ("1.5 MiB").
func FormatSize(n int64) string {
	return humanize.IBytes(uint64(max(n, 0)))
}

// TruncateString truncates a string to the specified length with ellipsis.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// String returns a string representation of the tab.
func (t Tab) String() string {
	switch t {
	case TabScan:
		return "Scan"
	case TabStats:
		return "Stats"
	case TabHistory:
		return "History"
	case TabAchievements:
		return "Achievements"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}
