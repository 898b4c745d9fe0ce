package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/trustyhq/trusty/internal/domain"
	"github.com/trustyhq/trusty/internal/usecase"
)

// Colors defines the color palette for command output.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	// Status colors
	Pending    lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
	Blocked    lipgloss.Color
	Deferred   lipgloss.Color
	Cancelled  lipgloss.Color

	// Priority colors
	High   lipgloss.Color
	Medium lipgloss.Color
	Low    lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	Pending:    lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Done:       lipgloss.Color("#00B894"), // Green
	Blocked:    lipgloss.Color("#D63031"), // Red
	Deferred:   lipgloss.Color("#A29BFE"), // Lavender
	Cancelled:  lipgloss.Color("#636E72"), // Gray

	High:   lipgloss.Color("#D63031"), // Red
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	Low:    lipgloss.Color("#636E72"), // Gray
}

// Styles contains the lipgloss styles for command output.
type Styles struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	StatusPending    lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusDone       lipgloss.Style
	StatusBlocked    lipgloss.Style
	StatusDeferred   lipgloss.Style
	StatusCancelled  lipgloss.Style

	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style
}

// DefaultStyles returns the default styles for command output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		Label: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(14),

		Muted: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Success: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Warning: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		Error: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		StatusPending: lipgloss.NewStyle().
			Foreground(Colors.Pending),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		StatusBlocked: lipgloss.NewStyle().
			Foreground(Colors.Blocked),

		StatusDeferred: lipgloss.NewStyle().
			Foreground(Colors.Deferred),

		StatusCancelled: lipgloss.NewStyle().
			Foreground(Colors.Cancelled),

		PriorityHigh: lipgloss.NewStyle().
			Foreground(Colors.High),

		PriorityMedium: lipgloss.NewStyle().
			Foreground(Colors.Medium),

		PriorityLow: lipgloss.NewStyle().
			Foreground(Colors.Low),
	}
}

// StatusStyle returns the style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusPending:
		return s.StatusPending
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusDone:
		return s.StatusDone
	case domain.StatusBlocked:
		return s.StatusBlocked
	case domain.StatusDeferred:
		return s.StatusDeferred
	case domain.StatusCancelled:
		return s.StatusCancelled
	default:
		return s.StatusPending
	}
}

// PriorityStyle returns the style for a given priority.
func (s Styles) PriorityStyle(priority domain.Priority) lipgloss.Style {
	switch priority {
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityMedium:
		return s.PriorityMedium
	case domain.PriorityLow:
		return s.PriorityLow
	default:
		return s.PriorityMedium
	}
}

// renderStatus renders a status as a colored glyph plus its name.
func (s Styles) renderStatus(status domain.Status) string {
	return s.StatusStyle(status).Render(status.Display())
}

// renderTaskList writes the task table.
func renderTaskList(w io.Writer, views []usecase.TaskView) {
	if len(views) == 0 {
		fmt.Fprintln(w, "No tasks found. Add one with 'trusty add'.")
		return
	}

	styles := DefaultStyles()
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tPRI\tTITLE\tTAGS")
	for _, v := range views {
		title := v.Task.Title
		if v.Total > 0 {
			title = fmt.Sprintf("%s [%d/%d]", title, v.Completed, v.Total)
		}
		if v.Ready && v.Effective == domain.StatusPending {
			title += " " + styles.Success.Render("(ready)")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			v.Task.ID,
			styles.renderStatus(v.Effective),
			styles.PriorityStyle(v.Task.Priority).Render(string(v.Task.Priority)),
			title,
			styles.Muted.Render(strings.Join(v.Task.Tags, ",")),
		)
	}
	tw.Flush()
}

// renderTaskDetails writes the full detail block for a single task.
func renderTaskDetails(w io.Writer, out *usecase.ShowTaskOutput, withSubtasks bool) {
	styles := DefaultStyles()
	t := out.Task

	fmt.Fprintln(w, styles.Header.Render(fmt.Sprintf("Task #%d", t.ID)))
	fmt.Fprintln(w, styles.Muted.Render(strings.Repeat("─", 40)))

	printField := func(label, value string) {
		fmt.Fprintf(w, "%s %s\n", styles.Label.Render(label), value)
	}

	printField("Title:", t.Title)
	statusLine := styles.renderStatus(t.Status)
	if out.Effective != t.Status {
		statusLine += styles.Muted.Render(fmt.Sprintf(" (effective: %s)", out.Effective))
	}
	printField("Status:", statusLine)
	if out.Total > 0 {
		printField("Progress:", fmt.Sprintf("%d/%d subtasks complete", out.Completed, out.Total))
	}
	printField("Priority:", styles.PriorityStyle(t.Priority).Render(string(t.Priority)))
	if t.Complexity != nil {
		printField("Complexity:", string(*t.Complexity))
	}
	if len(t.Dependencies) > 0 {
		printField("Depends on:", joinIDs(t.Dependencies))
	}
	if len(t.Subtasks) > 0 && !withSubtasks {
		printField("Subtasks:", joinIDs(t.Subtasks))
	}
	if len(t.Tags) > 0 {
		printField("Tags:", strings.Join(t.Tags, ", "))
	}
	printField("Created:", t.CreatedAt.Format("2006-01-02 15:04"))
	printField("Updated:", t.UpdatedAt.Format("2006-01-02 15:04"))
	if t.CompletedAt != nil {
		printField("Completed:", t.CompletedAt.Format("2006-01-02 15:04"))
	}
	if t.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, t.Description)
	}

	if withSubtasks && len(out.Subtasks) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.Header.Render("Subtasks"))
		for _, row := range out.Subtasks {
			if row.Task == nil {
				fmt.Fprintf(w, "  #%d %s\n", row.ID, styles.Muted.Render("(task not found)"))
				continue
			}
			fmt.Fprintf(w, "  #%d %s %s\n", row.ID, styles.renderStatus(row.Task.Status), row.Task.Title)
		}
	}
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "#" + strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
