package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/taskdeck/taskdeck/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeSearch, ModeConfirm, ModeInputTitle:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewStatsBar())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.mode == ModeSearch {
		b.WriteString(m.styles.InputPrompt.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	} else if activeFilters := m.filterSummary(); activeFilters != "" {
		b.WriteString(m.styles.Footer.Render("Filters: "+activeFilters) + "\n\n")
	}

	if m.grouped {
		b.WriteString(m.viewGroupedList())
	} else {
		b.WriteString(m.viewTaskList())
	}

	switch m.mode {
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case ModeInputTitle:
		b.WriteString("\n")
		b.WriteString(m.viewTitleInput())
	case ModeNormal, ModeSearch, ModeHelp:
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title line with the task count right-aligned.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("taskdeck")

	countText := fmt.Sprintf("showing %d of %d tasks", len(m.tasks), m.stats.Total)
	rightText := lipgloss.NewStyle().Foreground(Colors.Muted).Render(countText)

	headerWidth := m.width - 6
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewStatsBar renders the aggregate counts line.
func (m *Model) viewStatsBar() string {
	parts := []string{
		m.styles.StatsValue.Render(fmt.Sprintf("%d", m.stats.Active)) + " active",
		m.styles.StatsComplete.Render(fmt.Sprintf("%d", m.stats.Completed)) + " done",
	}
	if m.stats.Overdue > 0 {
		parts = append(parts, m.styles.StatsOverdue.Render(fmt.Sprintf("%d", m.stats.Overdue))+" overdue")
	}
	parts = append(parts, m.styles.StatsValue.Render(fmt.Sprintf("%d%%", m.stats.CompletionRate))+" complete")

	return m.styles.StatsBar.Render(strings.Join(parts, m.styles.Footer.Render("  ·  ")))
}

// viewTaskList renders the flat task list.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.viewEmptyState()
	}

	var b strings.Builder
	for i, task := range m.tasks {
		b.WriteString(m.renderTaskItem(task, i == m.cursor))
		b.WriteString("\n")
	}
	return m.styles.TaskList.Render(b.String())
}

// viewGroupedList renders the agenda view: tasks partitioned by due-date
// bucket with a header line per non-empty group.
func (m *Model) viewGroupedList() string {
	if len(m.tasks) == 0 {
		return m.viewEmptyState()
	}

	now := m.container.Clock.Now()
	groups := domain.GroupByDueDate(m.tasks, now)

	var b strings.Builder
	render := func(label string, tasks []*domain.Task) {
		if len(tasks) == 0 {
			return
		}
		b.WriteString(m.renderGroupHeader(label))
		b.WriteString("\n")
		for _, task := range tasks {
			b.WriteString(m.renderTaskItem(task, m.flatIndex(task) == m.cursor))
			b.WriteString("\n")
		}
	}

	render(domain.BucketOverdue.Display(), groups.Overdue)
	render(domain.BucketToday.Display(), groups.Today)
	render(domain.BucketTomorrow.Display(), groups.Tomorrow)
	render(domain.BucketThisWeek.Display(), groups.ThisWeek)
	render(domain.BucketFuture.Display(), groups.Later)
	render(domain.BucketNone.Display(), groups.NoDate)

	return m.styles.TaskList.Render(b.String())
}

// flatIndex returns the position of the task in the flat list, which is
// what the cursor indexes regardless of grouping.
func (m *Model) flatIndex(task *domain.Task) int {
	for i, t := range m.tasks {
		if t.ID == task.ID {
			return i
		}
	}
	return -1
}

// renderGroupHeader renders a labeled separator line.
func (m *Model) renderGroupHeader(label string) string {
	lineWidth := m.width - 10 - runewidth.StringWidth(label)
	if lineWidth < 4 {
		lineWidth = 4
	}
	return m.styles.GroupHeaderLabel.Render("  "+label+" ") +
		m.styles.GroupHeaderLine.Render(strings.Repeat("─", lineWidth))
}

// renderTaskItem renders a single task line.
func (m *Model) renderTaskItem(task *domain.Task, selected bool) string {
	cursor := " "
	if selected {
		cursor = ">"
	}

	checkbox := "[ ]"
	if task.Completed {
		checkbox = "[x]"
	}

	idStr := fmt.Sprintf("%3d", task.ID)
	priorityIcon := m.styles.PriorityStyle(task.Priority).Render(PriorityIcon(task.Priority))

	title := task.Title
	maxTitleLen := m.width - 40
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen-3, "...")
	}

	titleStyle := m.styles.TaskTitle
	if task.Completed {
		titleStyle = m.styles.TaskTitleDone
	}
	if selected {
		titleStyle = titleStyle.Bold(true)
	}

	var b strings.Builder
	if selected {
		b.WriteString("  " + m.styles.CursorSelected.Render(cursor))
	} else {
		b.WriteString("  " + m.styles.CursorNormal.Render(cursor))
	}
	b.WriteString(" " + m.styles.TaskID.Render(idStr))
	b.WriteString(" " + checkbox)
	b.WriteString(" " + priorityIcon)
	b.WriteString(" " + titleStyle.Render(title))

	if badge := m.dueBadge(task); badge != "" {
		b.WriteString("  " + badge)
	}
	if name := m.categoryName(task.CategoryID); name != "" {
		b.WriteString("  " + m.styles.TaskCategory.Render("@"+name))
	}

	return b.String()
}

// dueBadge renders the due-date badge colored by bucket. Completed tasks
// get no badge; their date no longer demands attention.
func (m *Model) dueBadge(task *domain.Task) string {
	if task.Completed || task.DueDate == nil {
		return ""
	}
	now := m.container.Clock.Now()
	bucket := domain.Classify(task.DueDate, now)

	label := task.DueDate.Format("Jan 2")
	switch bucket {
	case domain.BucketOverdue, domain.BucketToday, domain.BucketTomorrow:
		label = bucket.Display()
	case domain.BucketNone, domain.BucketThisWeek, domain.BucketFuture:
	}
	return m.styles.BucketStyle(bucket).Render(label)
}

// categoryName resolves a category id to its name; unknown ids render
// as uncategorized.
func (m *Model) categoryName(id *int) string {
	if id == nil {
		return ""
	}
	for _, c := range m.categories {
		if c.Category.ID == *id {
			return c.Category.Name
		}
	}
	return ""
}

// filterSummary describes the active filters for the status line.
func (m *Model) filterSummary() string {
	var parts []string
	if m.filter.Search != "" {
		parts = append(parts, fmt.Sprintf("search=%q", m.filter.Search))
	}
	if m.filter.Priority != "" {
		parts = append(parts, "priority="+string(m.filter.Priority))
	}
	if m.filter.Status != "" {
		parts = append(parts, "status="+string(m.filter.Status))
	}
	if m.filter.CategoryID != nil {
		name := m.categoryName(m.filter.CategoryID)
		if name == "" {
			name = fmt.Sprintf("#%d", *m.filter.CategoryID)
		}
		parts = append(parts, "category="+name)
	}
	return strings.Join(parts, " ")
}

// viewEmptyState renders a friendly empty state message.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.filter.IsZero() {
		b.WriteString(m.styles.Footer.Render("  No tasks yet\n\n"))
		b.WriteString(m.styles.Footer.Render("  Press "))
		b.WriteString(m.styles.FooterKey.Render("n"))
		b.WriteString(m.styles.Footer.Render(" to create your first task\n"))
	} else {
		b.WriteString(m.styles.Footer.Render("  No tasks match the current filters\n\n"))
		b.WriteString(m.styles.Footer.Render("  Press "))
		b.WriteString(m.styles.FooterKey.Render("esc"))
		b.WriteString(m.styles.Footer.Render(" to clear them\n"))
	}
	return b.String()
}

// viewConfirmDialog renders the delete confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	prompt := fmt.Sprintf("Delete task #%d? ", m.confirmTaskID)
	keys := m.styles.FooterKey.Render("y") +
		m.styles.Footer.Render(" confirm  ") +
		m.styles.FooterKey.Render("any other key") +
		m.styles.Footer.Render(" cancel")
	return m.styles.Dialog.Render(m.styles.DialogTitle.Render(prompt) + "\n" + keys)
}

// viewTitleInput renders the new-task title prompt.
func (m *Model) viewTitleInput() string {
	return m.styles.Dialog.Render(
		m.styles.DialogTitle.Render("New task") + "\n" +
			m.styles.InputPrompt.Render("Title: ") + m.titleInput.View(),
	)
}

// viewHelp renders the full help overlay.
func (m *Model) viewHelp() string {
	m.help.ShowAll = true
	return m.styles.Help.Render(m.help.View(m.keys))
}

// viewFooter renders the short help line.
func (m *Model) viewFooter() string {
	m.help.ShowAll = false
	return m.styles.Footer.Render(m.help.View(m.keys))
}
