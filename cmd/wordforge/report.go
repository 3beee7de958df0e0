package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wordforge/wordforge/mutate"
	"github.com/wordforge/wordforge/strength"
)

// Terminal palette for the strength report.
var (
	colorStrong = lipgloss.Color("#2CD7C7")
	colorGood   = lipgloss.Color("#20B9B4")
	colorFair   = lipgloss.Color("#F4D03F")
	colorWeak   = lipgloss.Color("#E67E22")
	colorBroken = lipgloss.Color("#E74C3C")
	colorMuted  = lipgloss.Color("#2C4A54")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorGood)
	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
	styleBox   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

// scoreLabel maps the 0-4 band to a display word and colour.
func scoreLabel(score int) (string, lipgloss.Color) {
	switch score {
	case 0:
		return "very weak", colorBroken
	case 1:
		return "weak", colorWeak
	case 2:
		return "fair", colorFair
	case 3:
		return "good", colorGood
	default:
		return "strong", colorStrong
	}
}

// renderReport formats one strength report as a bordered terminal block.
func renderReport(r strength.Report) string {
	label, color := scoreLabel(r.Score)
	badge := lipgloss.NewStyle().Bold(true).Foreground(color)

	var b strings.Builder
	b.WriteString(styleTitle.Render("Password audit"))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%s %s (%d/4)\n", styleMuted.Render("strength:"), badge.Render(label), r.Score)
	fmt.Fprintf(&b, "%s %.1f bits\n", styleMuted.Render("entropy: "), r.EntropyBits)

	b.WriteString(styleMuted.Render("time to crack:"))
	b.WriteByte('\n')
	for _, est := range r.CrackTimes {
		display := est.Display
		if est.Uncrackable {
			display = badge.Render(display)
		}
		fmt.Fprintf(&b, "  %-22s %s\n", est.Tier, display)
	}

	if len(r.Feedback) > 0 {
		b.WriteString(styleMuted.Render("weaknesses:"))
		b.WriteByte('\n')
		warn := lipgloss.NewStyle().Foreground(colorWeak)
		for _, f := range r.Feedback {
			fmt.Fprintf(&b, "  %s %s\n", warn.Render("!"), f)
		}
	}

	return styleBox.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

// renderSummary is the one-line result printed after wordlist generation.
func renderSummary(path string, profile mutate.Profile, count int) string {
	ok := lipgloss.NewStyle().Foreground(colorStrong)

	return fmt.Sprintf("%s %d candidates (%s profile) written to %s",
		ok.Render("✓"), count, profile.String(), path)
}
