package bot

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vortex-fintech/addressbook/book"
)

// User-facing replies.
const (
	MsgGreeting       = "How can I help you?"
	MsgContactAdded   = "Contact added"
	MsgContactExists  = "Contact already exists"
	MsgContactAbsent  = "Contact is absent"
	MsgContactRemoved = "Contact removed"
	MsgPhoneRecorded  = "Phone was recorded"
	MsgPhoneChanged   = "Phone was changed"
	MsgPhoneDeleted   = "Phone was deleted"
	MsgBirthdaySet    = "Birthday was recorded"
	MsgBirthdayUnset  = "Birthday is unknown"
	MsgNotCorrect     = "This record is not correct!"
	MsgWrongCommand   = "This command is wrong"
	MsgBookEmpty      = "Phone book is empty"
	MsgUnknown        = `Unknown command. Type "help" to list commands.`
	MsgGoodBye        = "Good bye!"
	msgNotSaved       = "Changes were not saved: %v"
	msgDaysToBirthday = "%s's birthday will be in %d days"
)

// Reply is what one command prints: a message, snapshots, or nothing.
type Reply struct {
	Message   string
	Snapshots []book.Snapshot
}

func message(s string) Reply { return Reply{Message: s} }

func (r Reply) IsEmpty() bool { return r.Message == "" && len(r.Snapshots) == 0 }

// Format selects how replies are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json" in any case; anything else is text.
func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}

// Render writes r as one line per message or snapshot. An empty reply writes
// nothing.
func Render(w io.Writer, f Format, r Reply) error {
	if r.IsEmpty() {
		return nil
	}

	if f == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if r.Message != "" {
			if err := enc.Encode(struct {
				Message string `json:"message"`
			}{r.Message}); err != nil {
				return err
			}
		}
		for _, s := range r.Snapshots {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
		return nil
	}

	if r.Message != "" {
		if _, err := fmt.Fprintln(w, r.Message); err != nil {
			return err
		}
	}
	for _, s := range r.Snapshots {
		if _, err := fmt.Fprintln(w, s.String()); err != nil {
			return err
		}
	}
	return nil
}
