package bot

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

const Prompt = ">>> "

// Session is the interactive loop around a Dispatcher.
type Session struct {
	d      *Dispatcher
	format Format
	prompt string
}

func NewSession(d *Dispatcher, f Format) *Session {
	return &Session{d: d, format: f, prompt: Prompt}
}

type lineResult struct {
	line string
	err  error
}

// Run prompts, reads and dispatches lines until an exit command, EOF or ctx
// cancellation. The book is flushed once more before Run returns, also when
// ctx is already done.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	loopErr := s.loop(ctx, lines, out)

	flushErr := s.d.Flush(context.WithoutCancel(ctx))
	if flushErr != nil {
		flushErr = fmt.Errorf("final flush: %w", flushErr)
	}
	return errors.Join(loopErr, flushErr)
}

func (s *Session) loop(ctx context.Context, lines <-chan lineResult, out io.Writer) error {
	for s.d.State() != StateStopped {
		if _, err := io.WriteString(out, s.prompt); err != nil {
			return err
		}
		s.d.reading()

		var next lineResult
		select {
		case <-ctx.Done():
			s.d.log.Infow("session interrupted", "cause", context.Cause(ctx))
			return nil
		case r, open := <-lines:
			if !open {
				return nil
			}
			next = r
		}
		if next.err != nil {
			return fmt.Errorf("read input: %w", next.err)
		}

		reply := s.d.Dispatch(ctx, next.line)
		if err := Render(out, s.format, reply); err != nil {
			return err
		}
	}
	return nil
}

// readLines scans in on its own goroutine so a blocked read never hides a
// cancellation. The channel is closed at EOF.
func readLines(in io.Reader, done <-chan struct{}) <-chan lineResult {
	ch := make(chan lineResult)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case ch <- lineResult{line: sc.Text()}:
			case <-done:
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case ch <- lineResult{err: err}:
			case <-done:
			}
		}
	}()
	return ch
}
