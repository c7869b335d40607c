package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes CLI output, styling it only when the destination is a terminal.
type Printer struct {
	out    io.Writer
	styled bool
}

// NewPrinter creates a printer for out, detecting the mode with DetectMode.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, styled: IsStyled(out)}
}

// NewPlainPrinter creates a printer that never styles.
func NewPlainPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Styled reports whether output is styled.
func (p *Printer) Styled() bool { return p.styled }

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// Path prints one path per line.
func (p *Printer) Path(path string) {
	fmt.Fprintln(p.out, p.render(PathStyle, path))
}

// Title prints a heading line.
func (p *Printer) Title(title string) {
	fmt.Fprintln(p.out, p.render(TitleStyle, title))
}

// Field prints an aligned "label: value" line.
func (p *Printer) Field(label, value string) {
	fmt.Fprintf(p.out, "%s %s\n", p.render(LabelStyle, fmt.Sprintf("%-11s", label+":")), value)
}

// Success prints a check-marked message.
func (p *Printer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(p.out, "%s %s\n", p.render(SuccessStyle, SymbolCheck), msg)
}

// Failure prints a cross-marked message.
func (p *Printer) Failure(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(p.out, "%s %s\n", p.render(ErrorStyle, SymbolCross), msg)
}

// YesNo renders a boolean as "yes" or "no".
func (p *Printer) YesNo(b bool) string {
	if b {
		return p.render(SuccessStyle, "yes")
	}
	return p.render(MutedStyle, "no")
}

// Missing renders a placeholder for an absent value.
func (p *Printer) Missing() string {
	return p.render(MutedStyle, "(none)")
}
