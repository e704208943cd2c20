// Package probe prints a fixed set of UTF-8 lines after asking the console
// to switch to the UTF-8 code page.
package probe

import (
	"fmt"
	"io"
	"log/slog"

	"utf8probe/internal/console"
)

// CodePageLabel prefixes the last line, followed by the live output code page
const CodePageLabel = "当前代码页: "

// FixedLines are printed in order before the code page line
var FixedLines = []string{
	"=== UTF-8编码测试 ===",
	"调试控制台编码测试：你好世界",
	"中文测试：这是UTF-8编码",
	"English test: Hello World",
}

// State of the console as far as the probe knows
type State int

const (
	Unconfigured State = iota
	Configured
)

func (s State) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Configured:
		return "configured"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Probe drives a single configure-and-print run against a console
type Probe struct {
	console console.Console
	state   State
}

// New creates a probe for the given console
func New(c console.Console) *Probe {
	return &Probe{console: c, state: Unconfigured}
}

// State returns the current state
func (p *Probe) State() State {
	return p.state
}

// ConfigureConsoleUTF8 requests UTF-8 for both console output and input.
// Failures are logged at debug level and otherwise ignored: a console that
// refuses the request still gets the diagnostic lines.
func (p *Probe) ConfigureConsoleUTF8() {
	if p.state == Configured {
		return
	}
	if err := p.console.SetOutputCodePage(console.CodePageUTF8); err != nil {
		slog.Debug("Ignoring output code page failure", "error", err)
	}
	if err := p.console.SetInputCodePage(console.CodePageUTF8); err != nil {
		slog.Debug("Ignoring input code page failure", "error", err)
	}
	p.state = Configured
}

// QueryOutputCodePage reads back the console's active output code page
func (p *Probe) QueryOutputCodePage() uint32 {
	return p.console.OutputCodePage()
}

// Lines returns every line the probe prints, given the observed code page
func Lines(cp uint32) []string {
	lines := make([]string, 0, len(FixedLines)+1)
	lines = append(lines, FixedLines...)
	return append(lines, fmt.Sprintf("%s%d", CodePageLabel, cp))
}

// EmitDiagnosticLines writes the fixed lines and the code page line to w,
// each terminated by \n. It stops at the first write error and returns it.
func (p *Probe) EmitDiagnosticLines(w io.Writer) error {
	for _, line := range FixedLines {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write diagnostic line: %w", err)
		}
	}
	cp := p.QueryOutputCodePage()
	if _, err := fmt.Fprintf(w, "%s%d\n", CodePageLabel, cp); err != nil {
		return fmt.Errorf("write code page line: %w", err)
	}
	return nil
}

// Run configures the console and emits the diagnostic lines
func (p *Probe) Run(w io.Writer) error {
	p.ConfigureConsoleUTF8()
	return p.EmitDiagnosticLines(w)
}
