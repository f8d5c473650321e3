package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/commandkit/internal/command"
	"github.com/manav03panchal/commandkit/internal/model"
	"github.com/manav03panchal/commandkit/internal/script"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red
	colorSuccess   = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleObject = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleCursor = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// ObjectName formats an object name.
func (c *CLIFormatter) ObjectName(name string) string {
	return c.render(styleObject, name)
}

// Label formats a label.
func (c *CLIFormatter) Label(text string) string {
	return c.render(styleLabel, fmt.Sprintf("%q", text))
}

// Note formats a note.
func (c *CLIFormatter) Note(text string) string {
	return c.render(styleNote, text)
}

// PrintOutcomes prints one line per played step.
func (c *CLIFormatter) PrintOutcomes(outcomes []script.Outcome) {
	for _, o := range outcomes {
		line := fmt.Sprintf("%-16s %s", o.Step.String(), positionLabel(o))
		state := fmt.Sprintf("[%d/%d]", o.Cursor, o.HistoryLen)
		switch o.Result.Status {
		case command.StatusFailed:
			c.Printf("%s %s %s\n", c.render(styleError, "✗"), line, c.Note(o.Result.Err().Error()))
		case command.StatusInProgress:
			c.Printf("%s %s %s\n", c.render(styleWarning, "…"), line, c.Note(state))
		default:
			c.Printf("%s %s %s\n", c.render(styleSuccess, "✓"), line, c.Note(state))
		}
	}
}

func positionLabel(o script.Outcome) string {
	switch body := o.Result.Body.(type) {
	case model.Vector:
		return "→ " + body.String()
	case string:
		return fmt.Sprintf("→ %q", body)
	default:
		return ""
	}
}

// PrintHistory prints the history with a marker at the cursor.
// Entries after the marker can be redone.
func (c *CLIFormatter) PrintHistory(entries []command.Entry, cursor int) {
	c.Title("History")
	if len(entries) == 0 {
		c.Muted("  (empty)")
		return
	}
	marker := c.render(styleCursor, "  ── cursor ──")
	for i, e := range entries {
		if i == cursor {
			c.Println(marker)
		}
		line := fmt.Sprintf("  %2d. %s", i+1, e.Description)
		if !e.Applied {
			line = c.render(styleMuted, line)
		}
		c.Printf("%s  %s\n", line, c.Note(FormatTimeOnly(e.RecordedAt)))
	}
	if cursor == len(entries) {
		c.Println(marker)
	}
}

// PrintActive prints the kinds with a live, not yet completed command.
func (c *CLIFormatter) PrintActive(kinds []command.Kind) {
	if len(kinds) == 0 {
		return
	}
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	c.Warning("Pending: " + strings.Join(names, ", "))
}

// PrintObject prints one scene object.
func (c *CLIFormatter) PrintObject(obj *model.Object) {
	c.Printf("%s at %s", c.ObjectName(obj.Name), c.render(styleBold, obj.Position.String()))
	if obj.Label != "" {
		c.Printf(" %s", c.Label(obj.Label))
	}
	c.Println()
}

// PrintObjects prints the scene as a table.
func (c *CLIFormatter) PrintObjects(objs []*model.Object) {
	if len(objs) == 0 {
		c.Muted("The scene is empty.")
		c.Muted("Use 'commandkit scene add <name>' or 'commandkit do north' to create an object.")
		return
	}
	rows := make([]TableRow, len(objs))
	for i, obj := range objs {
		rows[i] = TableRow{Columns: []string{
			obj.Name,
			obj.Position.String(),
			obj.Label,
			FormatTime(obj.UpdatedAt),
		}}
	}
	c.PrintTable([]string{"NAME", "POSITION", "LABEL", "UPDATED"}, rows)
}

// TableRow is one row for PrintTable.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && len(col) > widths[i] {
				widths[i] = len(col)
			}
		}
	}

	var header strings.Builder
	for i, h := range headers {
		header.WriteString(fmt.Sprintf("%-*s  ", widths[i], h))
	}
	c.Println(c.render(styleBold, strings.TrimRight(header.String(), " ")))

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		var line strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				line.WriteString(fmt.Sprintf("%-*s  ", widths[i], col))
			}
		}
		c.Println(strings.TrimRight(line.String(), " "))
	}
}
