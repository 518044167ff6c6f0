package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureOutput captures stdout during test execution
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestSuccess(t *testing.T) {
	output := captureOutput(func() {
		Success("Test message")
	})

	if !strings.Contains(output, "✨") {
		t.Error("Success output should contain sparkles emoji")
	}
	if !strings.Contains(output, "Test message") {
		t.Error("Success output should contain the message")
	}
}

func TestError(t *testing.T) {
	output := captureOutput(func() {
		Error("Error message")
	})

	if !strings.Contains(output, "❌") {
		t.Error("Error output should contain X emoji")
	}
	if !strings.Contains(output, "Error message") {
		t.Error("Error output should contain the message")
	}
}

func TestWarn(t *testing.T) {
	output := captureOutput(func() {
		Warn("Warn message")
	})

	if !strings.Contains(output, "⚠️") {
		t.Error("Warn output should contain warning emoji")
	}
	if !strings.Contains(output, "Warn message") {
		t.Error("Warn output should contain the message")
	}
}

func TestInfo(t *testing.T) {
	output := captureOutput(func() {
		Info("Info message")
	})

	if !strings.Contains(output, "ℹ️") {
		t.Error("Info output should contain info emoji")
	}
	if !strings.Contains(output, "Info message") {
		t.Error("Info output should contain the message")
	}
}

func TestStep(t *testing.T) {
	output := captureOutput(func() {
		Step("Step message")
	})

	if !strings.Contains(output, "   Step message") {
		t.Errorf("Step output should be indented, got %q", output)
	}
}

func TestVerbose(t *testing.T) {
	output := captureOutput(func() {
		Verbose("Debug message")
	})

	if output != "" {
		t.Error("Verbose output should be empty when verbose mode is off")
	}

	SetVerbose(true)
	defer SetVerbose(false)

	output = captureOutput(func() {
		Verbose("Debug message")
	})

	if !strings.Contains(output, "🔍") {
		t.Error("Verbose output should contain magnifying glass emoji when enabled")
	}
	if !strings.Contains(output, "Debug message") {
		t.Error("Verbose output should contain the message when enabled")
	}
}

func TestSetWriter(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	Info("redirected")

	if !strings.Contains(buf.String(), "redirected") {
		t.Errorf("expected output in custom writer, got %q", buf.String())
	}
	if Writer() != &buf {
		t.Error("Writer() should return the custom writer")
	}
}

func TestSummary_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	md := "# demo\n\n- `cd demo`\n"
	Summary(md)

	if buf.String() != md {
		t.Errorf("non-terminal summary should be raw markdown, got %q", buf.String())
	}
	if IsTerminal() {
		t.Error("a buffer is not a terminal")
	}
}

func TestRender(t *testing.T) {
	out, err := render("# Title\n\nSome **bold** text.\n", 80)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(out, "Title") || !strings.Contains(out, "bold") {
		t.Errorf("rendered markdown lost content: %q", out)
	}
}

func TestTerminalWidth_DefaultsWhenNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	tests := []struct {
		name string
		w    io.Writer
	}{
		{"buffer", &bytes.Buffer{}},
		{"regular file", f},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := terminalWidth(tt.w); got != 80 {
				t.Errorf("terminalWidth() = %d, want 80", got)
			}
		})
	}
}

func TestRender_WrapsAtWidth(t *testing.T) {
	paragraph := strings.Repeat("scaffold a project ", 30)

	narrow, err := render(paragraph, 40)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	wide, err := render(paragraph, 160)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if strings.Count(narrow, "\n") <= strings.Count(wide, "\n") {
		t.Errorf("narrow render should wrap onto more lines:\nnarrow=%q\nwide=%q", narrow, wide)
	}
}
