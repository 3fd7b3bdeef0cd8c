package tui

import (
	"fmt"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.mode {
	case ModeInputTitle, ModeInputDesc:
		return m.viewInput()
	case ModeHelp:
		return m.viewHelp()
	case ModeNormal, ModeConfirm:
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder
	page := m.derivePage()

	b.WriteString(m.styles.Header.Render("taskdeck"))
	b.WriteString(m.styles.HeaderContext.Render(fmt.Sprintf("  %s · filter: %s", m.container.Store.Identity(), filterLabel(m.filter))))
	b.WriteString("\n\n")

	if len(page.Tasks) == 0 {
		b.WriteString(m.styles.TaskDesc.Render("No tasks. Press n to create one."))
		b.WriteString("\n")
	}

	for i, t := range page.Tasks {
		cursor := "  "
		titleStyle := m.styles.TaskNormal
		if i == m.cursor {
			cursor = "> "
			titleStyle = m.styles.TaskSelected
		}

		badge := m.styles.StatusStyle(t.Status).Render(fmt.Sprintf("[%s]", t.Status.Display()))
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, badge, titleStyle.Render(t.Title)))
		b.WriteString("      " + m.styles.TaskDesc.Render(t.Description) + "\n")
	}

	if page.TotalPages > 1 {
		b.WriteString("\n")
		b.WriteString(m.styles.Pager.Render(fmt.Sprintf("page %d/%d · %d task(s)", page.Page, page.TotalPages, page.Total)))
		b.WriteString("\n")
	}

	if m.mode == ModeConfirm {
		b.WriteString("\n")
		b.WriteString(m.styles.Confirm.Render("Delete this task? (y/esc)"))
		b.WriteString("\n")
	}

	if notice, ok := m.container.Notifier.Current(); ok {
		b.WriteString("\n")
		b.WriteString(m.styles.Notice.Render("! " + notice))
		b.WriteString("\n")
	}
	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("✗ " + m.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("j/k move · h/l page · f filter · n new · e edit · s status · d delete · r refresh · q quit"))
	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	label := "New task"
	if m.editingID != "" {
		label = "Edit task"
	}
	b.WriteString(m.styles.Header.Render(label))
	b.WriteString("\n\n")

	b.WriteString(m.styles.InputLabel.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.InputLabel.Render("Description"))
	b.WriteString("\n")
	b.WriteString(m.descInput.View())
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("✗ " + m.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("enter next/submit · esc cancel"))
	return b.String()
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("Help"))
	b.WriteString("\n\n")

	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Footer.Render("press any key to close"))
	return b.String()
}

// filterLabel renders the active filter for the header.
func filterLabel(filter string) string {
	if filter == domain.StatusFilterAll {
		return "all"
	}
	return domain.Status(filter).Display()
}
