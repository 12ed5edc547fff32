package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type Builder struct {
	strings.Builder
}

func (b *Builder) WriteLine(parts ...string) {
	for _, part := range parts {
		b.WriteString(part)
	}
	b.WriteString("\n")
}

// WriteField writes a "key: value" line with the key highlighted.
func (b *Builder) WriteField(key string, value any) {
	b.WriteLine(CyanStr("%s", key), ": ", fmt.Sprint(value))
}

// The helpers below color text meant for stdout. fatih/color already turns
// them off for NO_COLOR and for a stdout that is not a terminal.

func GreenStr(format string, args ...any) string {
	return color.HiGreenString(format, args...)
}

func CyanStr(format string, args ...any) string {
	return color.HiCyanString(format, args...)
}

func YellowStr(format string, args ...any) string {
	return color.HiYellowString(format, args...)
}

// ErrorStr formats err for stderr. Coloring follows stderr, which may be a
// terminal while stdout is piped.
func ErrorStr(err error) string {
	c := color.New(color.FgHiRed)
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stderr.Fd())) {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.Sprintf("Error: %v", err)
}
