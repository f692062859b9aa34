package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dailytrack/internal/app"
	"dailytrack/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	cardStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

func renderNutrition(d domain.NutritionDay) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Food · "+d.Day) + "\n")
	if len(d.Entries) == 0 {
		b.WriteString(mutedStyle.Render("No entries yet.") + "\n")
	}
	for i, e := range d.Entries {
		fmt.Fprintf(&b, "%s %s %s\n", mutedStyle.Render(fmt.Sprintf("%2d.", i+1)), e.Food, valueStyle.Render(fmt.Sprintf("%d kcal", e.Calories)))
	}
	fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render("Total:"), valueStyle.Render(fmt.Sprintf("%d kcal", d.TotalCalories)))
	return b.String()
}

func renderWorkouts(d domain.WorkoutDay) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Workouts · "+d.Day) + "\n")
	if len(d.Sessions) == 0 {
		b.WriteString(mutedStyle.Render("No sessions yet.") + "\n")
	}
	for i, s := range d.Sessions {
		fmt.Fprintf(&b, "%s %s %s %s\n", mutedStyle.Render(fmt.Sprintf("%2d.", i+1)), s.Name, mutedStyle.Render("("+string(s.Type)+")"), valueStyle.Render(fmt.Sprintf("%d min", s.Minutes)))
	}
	fmt.Fprintf(&b, "%s %s\n", mutedStyle.Render("Total:"), valueStyle.Render(fmt.Sprintf("%d min", d.TotalMinutes)))
	return b.String()
}

func renderBMI(r domain.BMIResult) string {
	return valueStyle.Render(r.Display()) + " " + mutedStyle.Render(r.Category) + "\n"
}

func renderProfile(p domain.BodyProfile) string {
	lines := []string{
		titleStyle.Render("Profile"),
		mutedStyle.Render("Weight: ") + measurementText(p.Weight, string(p.WeightUnit)),
		mutedStyle.Render("Height: ") + measurementText(p.Height, string(p.HeightUnit)),
	}
	return cardStyle.Render(strings.Join(lines, "\n")) + "\n" + renderBMI(p.BMI())
}

func renderSummary(s app.DailySummary) string {
	lines := []string{
		titleStyle.Render(s.Day),
		mutedStyle.Render("Calories: ") + valueStyle.Render(fmt.Sprintf("%d kcal", s.TotalCalories)) + mutedStyle.Render(fmt.Sprintf(" in %d entries", s.EntryCount)),
		mutedStyle.Render("Exercise: ") + valueStyle.Render(fmt.Sprintf("%d min", s.TotalMinutes)) + mutedStyle.Render(fmt.Sprintf(" in %d sessions", s.WorkoutCount)),
		valueStyle.Render(s.BMI.Display()) + " " + mutedStyle.Render(s.BMI.Category),
	}
	return cardStyle.Render(strings.Join(lines, "\n")) + "\n"
}

func measurementText(v float64, unit string) string {
	if v == 0 {
		return mutedStyle.Render("--") + " " + unit
	}
	return valueStyle.Render(fmt.Sprintf("%g", v)) + " " + unit
}
