// Package output provides styled terminal output helpers using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	commitStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true)
)

// Success prints a success message
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, errorStyle.Render("ERROR: "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warningStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Info prints an unstyled message
func Info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

// Title prints a bold heading
func Title(w io.Writer, text string) {
	fmt.Fprintln(w, titleStyle.Render(text))
}

// Subtle renders secondary text
func Subtle(text string) string {
	return subtleStyle.Render(text)
}

// Stat prints a label/value pair
func Stat(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "%s %s\n", subtleStyle.Render(label+":"), valueStyle.Render(fmt.Sprint(value)))
}

// FormatTags renders tags as #tag labels
func FormatTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, tagStyle.Render("#"+t))
	}
	return strings.Join(parts, " ")
}

// FormatCommit marks commit-derived entries
func FormatCommit(hash string) string {
	return commitStyle.Render("[git " + hash + "]")
}

// JSON outputs data as indented JSON
func JSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
