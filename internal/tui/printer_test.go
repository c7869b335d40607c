package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlainPrinter(&buf)

	p.Title("info")
	p.Path("/tmp/a.txt")
	p.Field("name", "a.txt")
	p.Success("copied %s", "a.txt")
	p.Failure("failed %d", 2)

	want := strings.Join([]string{
		"info",
		"/tmp/a.txt",
		"name:       a.txt",
		SymbolCheck + " copied a.txt",
		SymbolCross + " failed 2",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
	assert.False(t, p.Styled())
}

func TestPlainPrinter_YesNoAndMissing(t *testing.T) {
	p := NewPlainPrinter(&bytes.Buffer{})

	assert.Equal(t, "yes", p.YesNo(true))
	assert.Equal(t, "no", p.YesNo(false))
	assert.Equal(t, "(none)", p.Missing())
}

func TestNewPrinter_BufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	assert.False(t, p.Styled())
	p.Path("x")
	assert.Equal(t, "x\n", buf.String())
}

func TestStyledPrinter_KeepsText(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{out: &buf, styled: true}

	p.Path("/tmp/a.txt")
	p.Field("suffix", p.YesNo(true))

	assert.Contains(t, buf.String(), "/tmp/a.txt")
	assert.Contains(t, buf.String(), "suffix:")
	assert.Contains(t, buf.String(), "yes")
}
