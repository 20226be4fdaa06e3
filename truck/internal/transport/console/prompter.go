package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrInputClosed = errors.New("input closed")
	errNotANumber  = errors.New("not a number")
)

type scanResult struct {
	line string
	err  error
}

// prompter reads input line by line on its own goroutine so a blocked read
// never keeps the session from noticing a cancelled context.
type prompter struct {
	out   io.Writer
	lines chan scanResult
	stop  chan struct{}
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{
		out:   out,
		lines: make(chan scanResult),
		stop:  make(chan struct{}),
	}
	go p.scan(in)
	return p
}

func (p *prompter) scan(in io.Reader) {
	defer close(p.lines)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case p.lines <- scanResult{line: sc.Text()}:
		case <-p.stop:
			return
		}
	}

	err := sc.Err()
	if err == nil {
		err = ErrInputClosed
	}
	select {
	case p.lines <- scanResult{err: err}:
	case <-p.stop:
	}
}

func (p *prompter) close() {
	close(p.stop)
}

func (p *prompter) readLine(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if res.err != nil {
			return "", res.err
		}
		return res.line, nil
	}
}

func (p *prompter) readFloat(ctx context.Context, prompt string) (float64, error) {
	line, err := p.readLine(ctx, prompt)
	if err != nil {
		return 0, err
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errNotANumber, line)
	}
	return v, nil
}

func (p *prompter) println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *prompter) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}
