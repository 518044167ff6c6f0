package exec

import (
	"bytes"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// PrefixWriter adds a styled prefix to each line of output. Incomplete
// lines are held until a newline arrives or Flush is called.
type PrefixWriter struct {
	prefix string
	style  lipgloss.Style
	writer io.Writer
	buffer []byte
}

// NewPrefixWriter creates a writer that prefixes each line
func NewPrefixWriter(writer io.Writer, prefix string) *PrefixWriter {
	return &PrefixWriter{
		prefix: prefix,
		style:  lipgloss.NewStyle(),
		writer: writer,
	}
}

// WithColor renders every prefixed line in color.
func (p *PrefixWriter) WithColor(color lipgloss.Color) *PrefixWriter {
	p.style = lipgloss.NewStyle().Foreground(color)
	return p
}

// Write adds prefix to each complete line
func (p *PrefixWriter) Write(data []byte) (int, error) {
	p.buffer = append(p.buffer, data...)

	for {
		i := bytes.IndexByte(p.buffer, '\n')
		if i < 0 {
			break
		}
		if err := p.writeLine(string(p.buffer[:i])); err != nil {
			return 0, err
		}
		p.buffer = p.buffer[i+1:]
	}

	return len(data), nil
}

// Flush writes any remaining buffered content
func (p *PrefixWriter) Flush() error {
	if len(p.buffer) == 0 {
		return nil
	}
	err := p.writeLine(string(p.buffer))
	p.buffer = p.buffer[:0]
	return err
}

func (p *PrefixWriter) writeLine(line string) error {
	_, err := io.WriteString(p.writer, p.style.Render(p.prefix+line)+"\n")
	return err
}

// TeeWriter writes to multiple writers simultaneously. It is safe for
// concurrent use so a child's stdout and stderr can share one buffer.
type TeeWriter struct {
	mu      sync.Mutex
	writers []io.Writer
}

// NewTeeWriter creates a writer that duplicates output to multiple writers
func NewTeeWriter(writers ...io.Writer) *TeeWriter {
	return &TeeWriter{
		writers: writers,
	}
}

// Write writes to all underlying writers
func (t *TeeWriter) Write(p []byte) (n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, w := range t.writers {
		n, err = w.Write(p)
		if err != nil {
			return n, err
		}
	}
	return len(p), nil
}
