// Package logger prints tagged, coloured status lines to the console.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gookit/color"

	"territory/pkg/engine/terminal"
)

var (
	out     io.Writer = os.Stdout
	verbose bool

	styleTime    = color.Style{color.OpFuzzy}
	styleInfo    = color.Style{color.FgBlue}
	styleTag     = color.Style{color.FgCyan}
	styleSuccess = color.Style{color.FgGreen}
	styleWarn    = color.Style{color.FgYellow}
	styleError   = color.Style{color.FgRed}
	styleDebug   = color.Style{color.FgGray}
	styleTitle   = color.Style{color.FgWhite, color.OpBold}
)

func init() {
	if !terminal.StdoutIsTerminal() {
		color.Enable = false
	}
}

// SetOutput redirects log lines to w
func SetOutput(w io.Writer) {
	out = w
}

// SetVerbose turns Debug lines on or off
func SetVerbose(v bool) {
	verbose = v
}

// Verbose reports whether Debug lines are printed
func Verbose() bool {
	return verbose
}

func timestamp() string {
	return styleTime.Sprint(time.Now().Format("15:04:05"))
}

func line(icon string, style color.Style, tag, msg string) {
	fmt.Fprintf(out, "%s %s %s %s\n", timestamp(), style.Sprint(icon), style.Sprintf("[%s]", tag), msg)
}

// Info prints an info message
func Info(tag, msg string) {
	fmt.Fprintf(out, "%s %s %s %s\n", timestamp(), styleInfo.Sprint("●"), styleTag.Sprintf("[%s]", tag), msg)
}

// Success prints a success message
func Success(tag, msg string) {
	line("✓", styleSuccess, tag, msg)
}

// Warn prints a warning message
func Warn(tag, msg string) {
	line("⚠", styleWarn, tag, msg)
}

// Error prints an error message
func Error(tag, msg string) {
	line("✗", styleError, tag, msg)
}

// Debug prints a message only in verbose mode
func Debug(tag, msg string) {
	if !verbose {
		return
	}
	line("·", styleDebug, tag, msg)
}

// Section prints a section header
func Section(title string) {
	fmt.Fprintf(out, "\n%s %s\n", styleTime.Sprint("───"), styleTitle.Sprint(title))
}

// Stats prints one labelled value
func Stats(label string, value any) {
	fmt.Fprintf(out, "    %s %s %v\n", styleTime.Sprint("•"), styleTime.Sprint(label+":"), value)
}
