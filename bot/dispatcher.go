// Package bot turns console lines into AddressBook operations.
package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vortex-fintech/addressbook/book"
	"github.com/vortex-fintech/addressbook/contactutil"
	"github.com/vortex-fintech/addressbook/logger"
	"github.com/vortex-fintech/addressbook/metrics"
	"github.com/vortex-fintech/addressbook/store"
	"github.com/vortex-fintech/addressbook/timeutil"
)

// Dispatcher owns the AddressBook for the lifetime of a session and runs one
// command at a time. It is not safe for concurrent use.
type Dispatcher struct {
	book    *book.AddressBook
	store   store.Store
	clock   timeutil.Clock
	log     logger.LoggerInterface
	metrics *metrics.Metrics
	state   State
}

type Option func(*Dispatcher)

func WithClock(c timeutil.Clock) Option { return func(d *Dispatcher) { d.clock = c } }

func WithLogger(l logger.LoggerInterface) Option { return func(d *Dispatcher) { d.log = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(d *Dispatcher) { d.metrics = m } }

// NewDispatcher wires b to s. A nil book starts empty.
func NewDispatcher(b *book.AddressBook, s store.Store, opts ...Option) *Dispatcher {
	if b == nil {
		b = book.New()
	}
	d := &Dispatcher{book: b, store: s, state: StateIdle}
	for _, o := range opts {
		o(d)
	}
	d.clock = timeutil.OrDefault(d.clock)
	if d.log == nil {
		d.log = logger.Nop()
	}
	d.metrics.SetContacts(b.Len())
	return d
}

func (d *Dispatcher) Book() *book.AddressBook { return d.book }

func (d *Dispatcher) State() State { return d.state }

// reading marks that the session waits for the next line.
func (d *Dispatcher) reading() {
	if d.state != StateStopped {
		d.state = StateReading
	}
}

// Dispatch runs one input line. After an exit keyword the state is
// StateStopped and every further line is ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) Reply {
	if d.state == StateStopped {
		return Reply{}
	}
	d.state = StateDispatching
	defer func() {
		if d.state == StateDispatching {
			d.state = StateIdle
		}
	}()

	line = strings.TrimSpace(line)
	if line == "" {
		return Reply{}
	}
	if isExit(line) {
		d.state = StateStopped
		d.metrics.Command("exit", metrics.ResultOK)
		return message(MsgGoodBye)
	}

	cmd, tail, found := match(line)
	if !found {
		d.metrics.Command("unknown", metrics.ResultRejected)
		d.log.Debugw("unknown command", "input", maskTokens(line))
		return message(MsgUnknown)
	}

	ctx = logger.ContextWithRequestID(ctx, uuid.NewString())
	start := time.Now()

	var backup *book.AddressBook
	if d.store != nil {
		backup = d.book.Clone()
	}

	out := cmd.handle(d, tail)
	if out.changed && d.store != nil {
		if err := d.Flush(ctx); err != nil {
			d.book.ReplaceWith(backup)
			d.metrics.SetContacts(d.book.Len())
			out = outcome{
				reply:  message(fmt.Sprintf(msgNotSaved, err)),
				result: metrics.ResultFailed,
				err:    err,
			}
		}
	}

	d.metrics.Command(cmd.keyword, out.result)
	kv := []any{
		"command", cmd.keyword,
		"args", maskTokens(tail),
		"result", out.result,
		"changed", out.changed,
		"latency", time.Since(start),
	}
	switch {
	case out.result == metrics.ResultFailed:
		d.log.ErrorwCtx(ctx, "command failed", append(kv, "error", out.err)...)
	case out.err != nil:
		d.log.InfowCtx(ctx, "command rejected", append(kv, "reason", out.err.Error())...)
	default:
		d.log.InfowCtx(ctx, "command handled", kv...)
	}
	return out.reply
}

// Flush writes the book through the store.
func (d *Dispatcher) Flush(ctx context.Context) error {
	if d.store == nil {
		return nil
	}
	start := time.Now()
	err := d.store.Save(ctx, d.book)
	d.metrics.Flush(time.Since(start), err)
	if err != nil {
		d.log.ErrorwCtx(ctx, "flush failed", "error", err)
		return err
	}
	d.metrics.SetContacts(d.book.Len())
	d.log.DebugwCtx(ctx, "flushed", "contacts", d.book.Len())
	return nil
}

// maskTokens hides every token that parses as a phone.
func maskTokens(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		if _, err := contactutil.NormalizePhone(f); err == nil {
			fields[i] = contactutil.MaskPhone(f)
		}
	}
	return strings.Join(fields, " ")
}
