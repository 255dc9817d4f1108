package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Priority colors
	Urgent lipgloss.Color
	High   lipgloss.Color
	Medium lipgloss.Color
	Low    lipgloss.Color

	// Due-date bucket colors
	Overdue  lipgloss.Color
	DueToday lipgloss.Color
	DueSoon  lipgloss.Color

	// Group header
	GroupLine lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray

	Urgent: lipgloss.Color("#D63031"), // Red
	High:   lipgloss.Color("#E17055"), // Orange
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	Low:    lipgloss.Color("#74B9FF"), // Light blue

	Overdue:  lipgloss.Color("#D63031"), // Red
	DueToday: lipgloss.Color("#FDCB6E"), // Yellow
	DueSoon:  lipgloss.Color("#74B9FF"), // Light blue

	GroupLine: lipgloss.Color("#636E72"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Stats bar
	StatsBar      lipgloss.Style
	StatsValue    lipgloss.Style
	StatsOverdue  lipgloss.Style
	StatsComplete lipgloss.Style

	// Task list
	TaskList       lipgloss.Style
	TaskID         lipgloss.Style
	TaskTitle      lipgloss.Style
	TaskTitleDone  lipgloss.Style
	TaskDesc       lipgloss.Style
	TaskCategory   lipgloss.Style
	CursorNormal   lipgloss.Style
	CursorSelected lipgloss.Style
	Selected       lipgloss.Style

	// Priority badges
	PriorityUrgent lipgloss.Style
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style

	// Due-date badges
	DueOverdue lipgloss.Style
	DueToday   lipgloss.Style
	DueSoon    lipgloss.Style
	DueNormal  lipgloss.Style

	// Group header
	GroupHeaderLine  lipgloss.Style
	GroupHeaderLabel lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		StatsBar: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginBottom(1),

		StatsValue: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			Bold(true),

		StatsOverdue: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		StatsComplete: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		TaskList: lipgloss.NewStyle().
			MarginBottom(1),

		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		TaskCategory: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		CursorNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		PriorityUrgent: lipgloss.NewStyle().
			Foreground(Colors.Urgent).
			Bold(true),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(Colors.High),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(Colors.Medium),

		PriorityLow: lipgloss.NewStyle().
			Foreground(Colors.Low),

		DueOverdue: lipgloss.NewStyle().
			Foreground(Colors.Overdue).
			Bold(true),

		DueToday: lipgloss.NewStyle().
			Foreground(Colors.DueToday),

		DueSoon: lipgloss.NewStyle().
			Foreground(Colors.DueSoon),

		DueNormal: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		GroupHeaderLine: lipgloss.NewStyle().
			Foreground(Colors.GroupLine),

		GroupHeaderLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Bold(true),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// PriorityStyle returns the style for a given priority.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityUrgent:
		return s.PriorityUrgent
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityLow:
		return s.PriorityLow
	default:
		return s.PriorityMedium
	}
}

// BucketStyle returns the style for a due-date bucket badge.
func (s Styles) BucketStyle(b domain.Bucket) lipgloss.Style {
	switch b {
	case domain.BucketOverdue:
		return s.DueOverdue
	case domain.BucketToday:
		return s.DueToday
	case domain.BucketTomorrow, domain.BucketThisWeek:
		return s.DueSoon
	default:
		return s.DueNormal
	}
}

// PriorityIcon returns an icon for a given priority.
func PriorityIcon(p domain.Priority) string {
	switch p {
	case domain.PriorityUrgent:
		return "!!"
	case domain.PriorityHigh:
		return "! "
	case domain.PriorityLow:
		return "↓ "
	default:
		return "· "
	}
}
