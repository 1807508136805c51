package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mkpdf/pkg/app/styles"
)

// console routes user-facing messages to the terminal (styled) or, with
// --log, to a plain-text file.
type console struct {
	out     io.Writer
	styled  bool
	logFile *os.File
}

func newConsole(logPath string) (*console, error) {
	if logPath == "" {
		return &console{out: os.Stderr, styled: true}, nil
	}

	f, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return &console{out: f, logFile: f}, nil
}

func (c *console) Close() {
	if c.logFile != nil {
		c.logFile.Close()
	}
}

func (c *console) Infof(format string, args ...any) {
	c.printLine(styles.MutedStyle, "[i] "+format, args...)
}

func (c *console) Warnf(format string, args ...any) {
	c.printLine(styles.StatusWarning, "[!] "+format, args...)
}

func (c *console) Successf(format string, args ...any) {
	c.printLine(styles.StatusCompleted, "[✓] "+format, args...)
}

func (c *console) printLine(style lipgloss.Style, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.styled {
		msg = style.Render(msg)
	}
	fmt.Fprintln(c.out, msg)
}
