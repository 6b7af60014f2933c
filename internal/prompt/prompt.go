// Package prompt reads answers to interactive questions, either from a real
// terminal with line editing or from any line-oriented reader.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Bowery/prompt"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the user aborts a terminal prompt with CTRL+C.
var ErrInterrupted = errors.New("interrupted")

// Prompter asks a question and returns the answer line without its newline.
// It returns io.EOF when no more input is available.
type Prompter interface {
	Ask(question string) (string, error)
}

// New returns a terminal prompter when in and out are both the process's
// terminal, and a line reader over in otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if in == os.Stdin && out == os.Stdout &&
		term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return Terminal{}
	}
	return NewLines(in, out)
}

// Terminal prompts on the controlling terminal with line editing.
type Terminal struct{}

func (Terminal) Ask(question string) (string, error) {
	ans, err := prompt.Basic(question, false)
	switch {
	case errors.Is(err, prompt.ErrEOF):
		return "", io.EOF
	case errors.Is(err, prompt.ErrCTRLC):
		return "", ErrInterrupted
	}
	return ans, err
}

// Lines writes each question to out and reads one line from in.
type Lines struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewLines builds a Lines prompter. out may be nil to suppress the questions.
func NewLines(in io.Reader, out io.Writer) *Lines {
	if out == nil {
		out = io.Discard
	}
	return &Lines{sc: bufio.NewScanner(in), out: out}
}

func (l *Lines) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(l.out, question); err != nil {
		return "", err
	}
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(l.sc.Text(), "\r"), nil
}

// Tokens splits answers into whitespace-separated words. Words left over
// from one answer are used for the following questions before another line
// is read, so a whole session can be typed on a single line.
type Tokens struct {
	p       Prompter
	out     io.Writer
	pending []string
}

// NewTokens reads words through p. Questions answered from leftover words
// are still written to out, which may be nil.
func NewTokens(p Prompter, out io.Writer) *Tokens {
	if out == nil {
		out = io.Discard
	}
	return &Tokens{p: p, out: out}
}

// Fields asks question and returns the next n words, reading more lines
// until enough have been collected. Input that ends part way through
// returns io.ErrUnexpectedEOF.
func (t *Tokens) Fields(question string, n int) ([]string, error) {
	q := question
	if len(t.pending) > 0 {
		if _, err := fmt.Fprint(t.out, question); err != nil {
			return nil, err
		}
		q = ""
	}
	for len(t.pending) < n {
		line, err := t.p.Ask(q)
		if err != nil {
			if errors.Is(err, io.EOF) && len(t.pending) > 0 {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		t.pending = append(t.pending, strings.Fields(line)...)
		q = ""
	}
	words := append([]string(nil), t.pending[:n]...)
	t.pending = t.pending[n:]
	return words, nil
}

// Word asks question and returns the next word.
func (t *Tokens) Word(question string) (string, error) {
	w, err := t.Fields(question, 1)
	if err != nil {
		return "", err
	}
	return w[0], nil
}
