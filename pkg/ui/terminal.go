package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Color functions for terminal output
var (
	Cyan   = colorize("\033[36m%s\033[0m")
	Yellow = colorize("\033[33m%s\033[0m")
	Red    = colorize("\033[31m%s\033[0m")
	Green  = colorize("\033[32m%s\033[0m")
)

// colorize returns a function that wraps text with ANSI color codes
func colorize(colorString string) func(string) string {
	return func(text string) string {
		return fmt.Sprintf(colorString, text)
	}
}

const completionBanner = "Image download complete!"

// Console prints one human-readable status line per download outcome.
// The text of each line is fixed; colour is decoration only.
type Console struct {
	out   io.Writer
	color bool
}

// NewConsole creates a Console writing to out. mode is "always", "never"
// or "auto"; auto colours only when out is a terminal.
func NewConsole(out io.Writer, mode string) *Console {
	return &Console{out: out, color: UseColor(out, mode)}
}

// UseColor reports whether ANSI colour should be written to out for the
// given mode. auto colours only when out is a terminal.
func UseColor(out io.Writer, mode string) bool {
	switch strings.ToLower(mode) {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *Console) println(paint func(string) string, line string) {
	if c.color && paint != nil {
		line = paint(line)
	}
	fmt.Fprintln(c.out, line)
}

// Downloaded reports a file that was written in full
func (c *Console) Downloaded(path string) {
	c.println(Green, "Downloaded: "+path)
}

// DownloadError reports a failed fetch of url
func (c *Console) DownloadError(url string, err error) {
	c.println(Red, fmt.Sprintf("Error downloading %s: %v", url, err))
}

// AlreadyExists reports a skipped download
func (c *Console) AlreadyExists(path string) {
	c.println(Yellow, "File already exists: "+path)
}

// Complete prints the end-of-run banner, preceded by a blank line
func (c *Console) Complete() {
	fmt.Fprintln(c.out)
	c.println(Cyan, completionBanner)
}

// PrintError prints a fatal CLI error to stderr in red
func PrintError(msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = msg + ": " + fmt.Sprintf("%v", args[0])
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg = Red(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}
