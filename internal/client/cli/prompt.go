package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
)

// Prompter reads one answer from the user. initial is the current value
// of the field; it is offered for editing where the terminal allows and
// kept when the answer is empty.
type Prompter interface {
	Ask(prompt, initial string) (string, error)
}

// linePrompter reads answers line by line from a plain reader. It is used
// when stdin is not a terminal.
type linePrompter struct {
	r *bufio.Reader
	w io.Writer
}

func newLinePrompter(r io.Reader, w io.Writer) *linePrompter {
	return &linePrompter{r: bufio.NewReader(r), w: w}
}

// Ask prints prompt and reads a single line. If EOF occurs after some
// input was read, the partial line is returned.
func (p *linePrompter) Ask(prompt, initial string) (string, error) {
	if _, err := fmt.Fprint(p.w, prompt); err != nil {
		return "", err
	}
	line, err := p.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return initial, nil
	}
	return line, nil
}

// linerPrompter is the readline-style prompter used on a terminal. It keeps
// a command history in historyFile.
type linerPrompter struct {
	state       *liner.State
	historyFile string
}

func newLinerPrompter(historyFile string, commands []string) *linerPrompter {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	st.SetCompleter(func(line string) []string {
		var out []string
		for _, c := range commands {
			if strings.HasPrefix(c, strings.ToLower(line)) {
				out = append(out, c)
			}
		}
		return out
	})

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = st.ReadHistory(f)
			f.Close()
		}
	}
	return &linerPrompter{state: st, historyFile: historyFile}
}

func (p *linerPrompter) Ask(prompt, initial string) (string, error) {
	var (
		line string
		err  error
	)
	if initial == "" {
		line, err = p.state.Prompt(prompt)
	} else {
		line, err = p.state.PromptWithSuggestion(prompt, initial, -1)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) == "" {
		return initial, nil
	}
	return line, nil
}

func (p *linerPrompter) AppendHistory(line string) {
	p.state.AppendHistory(line)
}

// Close restores the terminal and saves the history.
func (p *linerPrompter) Close() error {
	var buf bytes.Buffer
	_, herr := p.state.WriteHistory(&buf)
	err := p.state.Close()
	if p.historyFile == "" || herr != nil {
		return errors.Join(err, herr)
	}
	return errors.Join(err, atomic.WriteFile(p.historyFile, &buf))
}

// isAbort reports whether err means the user left the prompt (Ctrl-C or
// end of input).
func isAbort(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted)
}
