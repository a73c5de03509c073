package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box and asks a yes/no question on in.
// Only "y" or "yes" (any case) confirms; EOF or anything else declines.
func (p *Printer) Confirm(in io.Reader, title string, warnings []string, question string) bool {
	lines := []string{
		"",
		WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title)),
		"",
	}
	for _, warning := range warnings {
		lines = append(lines, lipgloss.NewStyle().Foreground(TextColor).Render("   • "+warning))
	}
	lines = append(lines, "")

	p.Println(ResultBoxStyle(max(p.width, MinTerminalWidth), WarningColor).Render(strings.Join(lines, "\n")))
	p.Print(WarningTitleStyle.Render(question + " [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(input))
	if err != nil && answer == "" {
		p.Newline()
		return false
	}

	if answer == "y" || answer == "yes" {
		return true
	}
	p.Println(HintStyle.Render("  Operation cancelled."))
	return false
}
