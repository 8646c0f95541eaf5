package main

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/lounge-api/internal/models"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of a lead sheet.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Chord   lipgloss.Style
	Bar     lipgloss.Style
	Label   lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultStyles is a warm lounge palette.
var DefaultStyles = Styles{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f2c14e")).Padding(0, 1),
	Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f78154")).Width(sectionWidth),
	Chord:   lipgloss.NewStyle().Foreground(lipgloss.Color("#e0e0e0")).Width(chordWidth),
	Bar:     lipgloss.NewStyle().Foreground(lipgloss.Color("#5d576b")),
	Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4d9078")),
	Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681")),
}

// PlainStyles keeps the layout but drops all color.
var PlainStyles = Styles{
	Title:   lipgloss.NewStyle().Padding(0, 1),
	Section: lipgloss.NewStyle().Width(sectionWidth),
	Chord:   lipgloss.NewStyle().Width(chordWidth),
	Bar:     lipgloss.NewStyle(),
	Label:   lipgloss.NewStyle(),
	Dim:     lipgloss.NewStyle(),
}

const (
	sectionWidth    = 7
	chordWidth      = 16
	measuresPerLine = 4
)

func renderLeadSheet(plan *models.PlaybackPlan, s Styles) string {
	var b strings.Builder

	b.WriteString(s.Title.Render(plan.Lyrics.Title))
	b.WriteString("\n")
	b.WriteString(s.Dim.Render(fmt.Sprintf(" %s · %d BPM · %s · %s",
		plan.Arrangement.Key.Label, plan.Tempo, plan.SwingLabel, plan.RunningTime)))
	b.WriteString("\n\n")

	for _, section := range plan.Arrangement.Sections {
		for i := 0; i < len(section.Measures); i += measuresPerLine {
			label := ""
			if i == 0 {
				label = section.Label
			}
			end := min(i+measuresPerLine, len(section.Measures))
			b.WriteString(renderLine(label, section.Measures[i:end], s))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	writeStanza(&b, "Verse", plan.Lyrics.Verse, s)
	writeStanza(&b, "Chorus", plan.Lyrics.Chorus, s)
	writeStanza(&b, "Bridge", plan.Lyrics.Bridge, s)
	b.WriteString(s.Dim.Render(fmt.Sprintf("seed %v", plan.Lyrics.Seed)))
	b.WriteString("\n")

	return b.String()
}

func renderLine(label string, measures [][]string, s Styles) string {
	bar := s.Bar.Render("|")
	cells := make([]string, 0, len(measures))
	for _, chords := range measures {
		cells = append(cells, s.Chord.Render(" "+strings.Join(chords, "  ")))
	}
	return s.Section.Render(label) + bar + strings.Join(cells, bar) + bar
}

func writeStanza(b *strings.Builder, name string, lines []string, s Styles) {
	b.WriteString(s.Label.Render(name))
	b.WriteString("\n")
	for _, line := range lines {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}
}
