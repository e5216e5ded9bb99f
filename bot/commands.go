package bot

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"github.com/vortex-fintech/addressbook/book"
	errs "github.com/vortex-fintech/addressbook/errors"
	"github.com/vortex-fintech/addressbook/metrics"
	"github.com/vortex-fintech/addressbook/timeutil"
)

// outcome is the result of one handler. changed asks the dispatcher to flush.
type outcome struct {
	reply   Reply
	changed bool
	result  string
	err     error
}

func ok(r Reply, changed bool) outcome {
	return outcome{reply: r, changed: changed, result: metrics.ResultOK}
}

func rejected(msg string, err error) outcome {
	return outcome{reply: message(msg), result: metrics.ResultRejected, err: err}
}

func absent() outcome {
	return outcome{reply: message(MsgContactAbsent), result: metrics.ResultNotFound, err: book.ErrContactNotFound}
}

func wrongArgs() outcome { return rejected(MsgWrongCommand, nil) }

// fail turns a domain error into the reply the console shows for it.
func fail(err error) outcome {
	if book.IsValidation(err) {
		return rejected(MsgNotCorrect, err)
	}
	switch errs.ToErrorResponse(err).Code {
	case codes.AlreadyExists:
		return rejected(MsgContactExists, err)
	case codes.NotFound:
		return outcome{reply: message(MsgContactAbsent), result: metrics.ResultNotFound, err: err}
	default:
		return outcome{reply: message(MsgNotCorrect), result: metrics.ResultFailed, err: err}
	}
}

type handler func(d *Dispatcher, tail string) outcome

type command struct {
	keyword string
	usage   string
	handle  handler
}

// commands is matched in order and the first prefix wins, so every keyword
// must come before any shorter keyword it starts with. It is filled in init
// because the help handler lists the table itself.
var commands []command

func init() {
	commands = []command{
		{"hello", "hello", handleHello},
		{"help", "help", handleHelp},
		{"add phone", "add phone <name> <phone>", handleAddPhone},
		{"add birthday", "add birthday <name> <YYYY-MM-DD>", handleAddBirthday},
		{"add", "add <name> [phone...]", handleAdd},
		{"change phone", "change phone <name> <old> <new>", handleChangePhone},
		{"remove phone", "remove phone <name> <phone>", handleRemovePhone},
		{"remove contact", "remove contact <name>", handleRemoveContact},
		{"days to birthday", "days to birthday <name>", handleDaysToBirthday},
		{"phone", "phone <name>", handlePhone},
		{"search", "search <pattern>", handleSearch},
		{"show all", "show all", handleShowAll},
	}
}

var exitKeywords = []string{"good bye", "exit", "close"}

// match returns the first command whose keyword prefixes line (ASCII case
// insensitive) and the trimmed rest of the original line.
func match(line string) (command, string, bool) {
	for _, c := range commands {
		if hasPrefixFold(line, c.keyword) {
			return c, strings.TrimSpace(line[len(c.keyword):]), true
		}
	}
	return command{}, "", false
}

func isExit(line string) bool {
	if line == "." {
		return true
	}
	for _, k := range exitKeywords {
		if hasPrefixFold(line, k) {
			return true
		}
	}
	return false
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Commands:")
	for _, c := range commands {
		b.WriteString("\n  ")
		b.WriteString(c.usage)
	}
	b.WriteString("\n  . | good bye | exit | close")
	return b.String()
}

func handleHello(*Dispatcher, string) outcome { return ok(message(MsgGreeting), false) }

func handleHelp(*Dispatcher, string) outcome { return ok(message(helpText()), false) }

// handleAdd checks the name, then that the contact is new, then every phone,
// all before touching the book: one bad phone rejects the whole command.
func handleAdd(d *Dispatcher, tail string) outcome {
	args := strings.Fields(tail)
	if len(args) == 0 {
		return wrongArgs()
	}

	name, err := book.NewName(args[0])
	if err != nil {
		return fail(err)
	}
	if d.book.Has(name.String()) {
		return fail(fmt.Errorf("%w: %s", book.ErrContactExists, name))
	}
	phones := make([]book.Phone, 0, len(args)-1)
	for _, raw := range args[1:] {
		p, err := book.ParsePhone(raw)
		if err != nil {
			return fail(err)
		}
		phones = append(phones, p)
	}

	if _, err := d.book.Create(name, phones...); err != nil {
		return fail(err)
	}
	return ok(message(MsgContactAdded), true)
}

func handlePhone(d *Dispatcher, tail string) outcome {
	args := strings.Fields(tail)
	if len(args) != 1 {
		return wrongArgs()
	}
	r, found := d.book.Lookup(args[0])
	if !found {
		return absent()
	}
	return ok(Reply{Snapshots: []book.Snapshot{r.Snapshot()}}, false)
}

func handleAddPhone(d *Dispatcher, tail string) outcome {
	args := strings.Fields(tail)
	if len(args) != 2 {
		return wrongArgs()
	}
	r, found := d.book.Lookup(args[0])
	if !found {
		return absent()
	}

	p, err := book.ParsePhone(args[1])
	if err != nil {
		return fail(err)
	}
	if r.HasPhone(p) {
		return ok(message(MsgPhoneRecorded), false)
	}
	if err := r.AddPhone(args[1]); err != nil {
		return fail(err)
	}
	return ok(message(MsgPhoneRecorded), true)
}

// handleChangePhone stays silent when the old phone is not stored.
func handleChangePhone(d *Dispatcher, tail string) outcome {
	args := strings.Fields(tail)
	if len(args) != 3 {
		return wrongArgs()
	}
	r, found := d.book.Lookup(args[0])
	if !found {
		return absent()
	}

	err := r.ChangePhone(args[1], args[2])
	switch {
	case errors.Is(err, book.ErrPhoneNotFound):
		return outcome{result: metrics.ResultNotFound, err: err}
	case err != nil:
		return fail(err)
	}
	return ok(message(MsgPhoneChanged), true)
}

func handleRemovePhone(d *Dispatcher, tail string) outcome {
	args := strings.Fields(tail)
	if len(args) != 2 {
		return wrongArgs()
	}
	r, found := d.book.Lookup(args[0])
	if !found {
		return absent()
	}

	p, err := book.ParsePhone(args[1])
	if err != nil {
		return fail(err)
	}
	had := r.HasPhone(p)
	if err := r.DeletePhone(args[1]); err != nil {
		return fail(err)
	}
	return ok(message(MsgPhoneDeleted), had)
}

func handleAddBirthday(d *Dispatcher, tail string) outcome {
	args := strings.Fields(tail)
	if len(args) != 2 {
		return wrongArgs()
	}
	r, found := d.book.Lookup(args[0])
	if !found {
		return absent()
	}

	b, err := book.ParseBirthdayString(args[1])
	if err != nil {
		return fail(err)
	}
	r.UpdateBirthday(b)
	return ok(message(MsgBirthdaySet), true)
}

func handleDaysToBirthday(d *Dispatcher, tail string) outcome {
	args := strings.Fields(tail)
	if len(args) != 1 {
		return wrongArgs()
	}
	r, found := d.book.Lookup(args[0])
	if !found {
		return absent()
	}

	days, known := r.DaysToBirthday(timeutil.Today(d.clock))
	if !known {
		return ok(message(MsgBirthdayUnset), false)
	}
	return ok(message(fmt.Sprintf(msgDaysToBirthday, r.Name(), days)), false)
}

func handleRemoveContact(d *Dispatcher, tail string) outcome {
	args := strings.Fields(tail)
	if len(args) != 1 {
		return wrongArgs()
	}
	if !d.book.RemoveRecord(args[0]) {
		return absent()
	}
	return ok(message(MsgContactRemoved), true)
}

// handleSearch takes the whole tail as the pattern and prints nothing when
// no record matches.
func handleSearch(d *Dispatcher, tail string) outcome {
	if tail == "" {
		return wrongArgs()
	}
	s, found := d.book.Search(tail)
	if !found {
		return outcome{result: metrics.ResultNotFound}
	}
	return ok(Reply{Snapshots: []book.Snapshot{s}}, false)
}

func handleShowAll(d *Dispatcher, _ string) outcome {
	if d.book.Len() == 0 {
		return ok(message(MsgBookEmpty), false)
	}
	var out []book.Snapshot
	for s := range d.book.Scan() {
		out = append(out, s)
	}
	return ok(Reply{Snapshots: out}, false)
}
