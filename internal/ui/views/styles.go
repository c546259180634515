package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Frame       lipgloss.Style
	PlainFrame  lipgloss.Style
	Card        lipgloss.Style
	PlainCard   lipgloss.Style
	Dot         lipgloss.Style
	ActiveDot   lipgloss.Style
	Playing     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:        lipgloss.NewStyle().Faint(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		PlainFrame: lipgloss.NewStyle(),
		// Cards carry no colors so the board can be cut by cells
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Align(lipgloss.Center, lipgloss.Center),
		PlainCard: lipgloss.NewStyle().
			Align(lipgloss.Center, lipgloss.Center),
		Dot:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		ActiveDot: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // yellow
		Playing:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")),             // green
	}
}
