package viewmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Band
	}{
		{name: "zero", score: 0, want: BandRed},
		{name: "just below amber", score: 59.9, want: BandRed},
		{name: "amber boundary", score: 60, want: BandAmber},
		{name: "just below green", score: 79.9, want: BandAmber},
		{name: "green boundary", score: 80, want: BandGreen},
		{name: "full", score: 100, want: BandGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BandFor(tt.score))
		})
	}
}

func TestBand_String(t *testing.T) {
	assert.Equal(t, "red", BandRed.String())
	assert.Equal(t, "amber", BandAmber.String())
	assert.Equal(t, "green", BandGreen.String())
	assert.Equal(t, "Unknown(7)", Band(7).String())
}

func TestConfidenceLevel(t *testing.T) {
	assert.Equal(t, "Uncertain", ConfidenceLevel(42))
	assert.Equal(t, "Confident", ConfidenceLevel(60))
	assert.Equal(t, "Very Confident", ConfidenceLevel(80))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "87.5", FormatNumber(87.5))
	assert.Equal(t, "90", FormatNumber(90))
	assert.Equal(t, "66.7%", FormatPercent(66.7))
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{name: "seconds", then: now.Add(-30 * time.Second), want: "Just now"},
		{name: "minutes", then: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours", then: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days", then: now.Add(-50 * time.Hour), want: "2d ago"},
		{name: "old", then: now.Add(-10 * 24 * time.Hour), want: now.Add(-10 * 24 * time.Hour).Local().Format("Jan 2, 2006")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelativeTime(tt.then, now))
		})
	}
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.0 KiB", FormatSize(1024))
	assert.Equal(t, "20 KiB", FormatSize(20000))
	assert.Equal(t, "1.5 MiB", FormatSize(1536*1024))
	assert.Equal(t, "0 B", FormatSize(-1))
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		maxLen int
	}{
		{name: "fits", input: "glass", maxLen: 10, want: "glass"},
		{name: "truncated", input: "food waste bin", maxLen: 8, want: "food ..."},
		{name: "tiny limit", input: "plastic", maxLen: 2, want: "pl"},
		{name: "multibyte", input: "ééééééé", maxLen: 5, want: "éé..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateString(tt.input, tt.maxLen))
		})
	}
}

func TestTab_Navigation(t *testing.T) {
	assert.Equal(t, TabStats, TabScan.Next())
	assert.Equal(t, TabScan, TabAchievements.Next())
	assert.Equal(t, TabAchievements, TabScan.Prev())
	assert.Equal(t, TabHistory, TabAchievements.Prev())
	assert.Equal(t, "Achievements", TabAchievements.String())
	assert.Equal(t, "Unknown(9)", Tab(9).String())
}
