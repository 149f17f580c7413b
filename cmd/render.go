package cmd

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mandarini/astra-arcana/internal/data"
	"github.com/mandarini/astra-arcana/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			MarginBottom(1)

	failedTitleStyle = titleStyle.Background(lipgloss.Color("#874B4B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999"))

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(1, 2)

	specialStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F25D94"))

	elementColors = map[data.Element]lipgloss.Color{
		data.Fire:    "#FF5A36",
		data.Water:   "#3A86FF",
		data.Earth:   "#8D6E3F",
		data.Air:     "#A8DADC",
		data.Aether:  "#C77DFF",
		data.Void:    "#6C757D",
		data.Neutral: "#CCCCCC",
	}
)

func elementStyle(e data.Element) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(elementColors[e])
}

// balanceBar draws one row of the elemental balance.
func balanceBar(e data.Element, v, peak float64) string {
	const width = 24
	n := 0
	if peak > 0 {
		n = min(width, int(v/peak*width))
	}
	bar := elementStyle(e).Render(strings.Repeat("█", n)) + infoStyle.Render(strings.Repeat("·", width-n))
	return fmt.Sprintf("%-7s %s %5.1f", e, bar, v)
}

func renderBalance(b data.Balance) string {
	peak := 0.0
	for _, e := range data.RealElements {
		peak = math.Max(peak, b[e])
	}
	rows := make([]string, 0, len(data.RealElements))
	for _, e := range data.RealElements {
		rows = append(rows, balanceBar(e, b[e], peak))
	}
	return strings.Join(rows, "\n")
}

func renderCast(res data.CompleteSpellResult) string {
	title := titleStyle.Render("✦ Spell cast")
	if !res.Success {
		title = failedTitleStyle.Render("✦ Spell failed")
	}

	var sb strings.Builder
	sb.WriteString(res.SpellDescription)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Success rate %.1f%%  Power %.2f  Duration %.2f  Dominant %s\n\n",
		res.SuccessRate, res.Power, res.Duration, elementStyle(res.DominantElement).Render(string(res.DominantElement)))
	sb.WriteString(renderBalance(res.ElementalBalance))

	if len(res.Effects) > 0 {
		sb.WriteString("\n\n")
		for _, fx := range res.Effects {
			fmt.Fprintf(&sb, "%s %s %s\n", elementStyle(fx.Element).Render(string(fx.Element)), fx.Strength,
				infoStyle.Render(fmt.Sprintf("%s (%.0f%%)", fx.Effect, fx.Proportion*100)))
		}
	}
	if res.SpecialEffect != nil {
		sb.WriteString("\n")
		sb.WriteString(specialStyle.Render("★ " + res.SpecialEffect.Name))
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, resultBoxStyle.Render(strings.TrimRight(sb.String(), "\n")))
}

func renderVisualization(v data.VisualizationData) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Success rate %.1f%%  Power %.2f  Duration %.2f  Complexity %.2f  Interaction %+.3f\n\n",
		v.SuccessRate, v.Power, v.Duration, v.Complexity, v.InteractionModifier)
	sb.WriteString(renderBalance(v.ElementalBalance))

	if len(v.Interactions) > 0 {
		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.AppendHeader(table.Row{"Elements", "Relationship", "Modifier", "Strength"})
		for _, in := range v.Interactions {
			t.AppendRow(table.Row{
				fmt.Sprintf("%s / %s", in.Element1, in.Element2),
				in.RelationshipType,
				fmt.Sprintf("%+.2f", in.Modifier),
				fmt.Sprintf("%.2f", in.Strength),
			})
		}
		sb.WriteString("\n\n")
		sb.WriteString(t.Render())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("✦ Elemental hexagon"),
		resultBoxStyle.Render(sb.String()),
	)
}

func renderReport(r engine.SimulationReport) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendRow(table.Row{"Trials", r.Trials})
	t.AppendRow(table.Row{"Successes", r.Successes})
	t.AppendRow(table.Row{"Observed rate", fmt.Sprintf("%.2f%%", r.ObservedRate)})
	t.AppendRow(table.Row{"Success rate", fmt.Sprintf("%.2f%%", r.SuccessRate)})
	t.AppendRow(table.Row{"Seed", r.Seed})
	for _, name := range slices.Sorted(maps.Keys(r.SpecialEffects)) {
		t.AppendRow(table.Row{name, r.SpecialEffects[name]})
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("✦ Simulation"), t.Render())
}
