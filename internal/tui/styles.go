package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Colors defines the color palette for the dashboard.
var Colors = struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Selected   lipgloss.Color
	Pending    lipgloss.Color
	InProgress lipgloss.Color
	Completed  lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Selected:   lipgloss.Color("#FFEAA7"), // Yellow (selected row)
	Pending:    lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Completed:  lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the dashboard.
type Styles struct {
	Header        lipgloss.Style
	HeaderContext lipgloss.Style

	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDesc     lipgloss.Style

	StatusPending    lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusCompleted  lipgloss.Style
	StatusOther      lipgloss.Style

	Notice lipgloss.Style
	Error  lipgloss.Style

	InputLabel lipgloss.Style
	Confirm    lipgloss.Style
	Pager      lipgloss.Style
	Footer     lipgloss.Style
}

// DefaultStyles returns the default dashboard styles.
func DefaultStyles() Styles {
	return Styles{
		Header:        lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		HeaderContext: lipgloss.NewStyle().Foreground(Colors.Muted),

		TaskNormal:   lipgloss.NewStyle(),
		TaskSelected: lipgloss.NewStyle().Bold(true).Foreground(Colors.Selected),
		TaskDesc:     lipgloss.NewStyle().Foreground(Colors.Muted),

		StatusPending:    lipgloss.NewStyle().Foreground(Colors.Pending),
		StatusInProgress: lipgloss.NewStyle().Foreground(Colors.InProgress),
		StatusCompleted:  lipgloss.NewStyle().Foreground(Colors.Completed),
		StatusOther:      lipgloss.NewStyle().Foreground(Colors.Muted),

		Notice: lipgloss.NewStyle().Foreground(Colors.Warning),
		Error:  lipgloss.NewStyle().Foreground(Colors.Error),

		InputLabel: lipgloss.NewStyle().Bold(true),
		Confirm:    lipgloss.NewStyle().Foreground(Colors.Warning).Bold(true),
		Pager:      lipgloss.NewStyle().Foreground(Colors.Muted),
		Footer:     lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}

// StatusStyle returns the badge style for a status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusPending:
		return s.StatusPending
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusCompleted:
		return s.StatusCompleted
	default:
		return s.StatusOther
	}
}
