package book

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/vortex-fintech/addressbook/contactutil"
	"github.com/vortex-fintech/addressbook/textutil"
	"github.com/vortex-fintech/addressbook/timeutil"
)

// MaxNameRunes bounds a canonical name.
const MaxNameRunes = 64

// Name is a canonical contact name and the AddressBook key.
type Name struct{ value string }

// NewName normalizes raw and rejects names that are empty, too long or
// contain control characters.
func NewName(raw string) (Name, error) {
	v, err := textutil.CanonicalizeStrict(textutil.NormalizeName(raw), textutil.CanonicalPolicy{MaxRunes: MaxNameRunes})
	if err != nil {
		return Name{}, ErrInvalidName
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }
func (n Name) IsZero() bool   { return n.value == "" }

// Key returns the lookup key for a raw, not yet validated name.
func Key(raw string) string { return textutil.NormalizeName(raw) }

// Phone is a canonical phone: '+' followed by 12 digits.
type Phone struct{ value string }

func ParsePhone(raw string) (Phone, error) {
	v, err := contactutil.NormalizePhone(raw)
	switch {
	case err == nil:
		return Phone{value: v}, nil
	case errors.Is(err, contactutil.ErrPhoneFormat):
		return Phone{}, ErrInvalidPhoneFormat
	default:
		return Phone{}, ErrInvalidPhoneLength
	}
}

func (p Phone) String() string { return p.value }

// MaxBirthYear keeps birthdays within four-digit ISO years.
const MaxBirthYear = 9999

// Birthday is a validated calendar date. The zero value means "unset";
// every parsed date, 0001-01-01 included, is set.
type Birthday struct {
	date time.Time
	set  bool
}

// ParseBirthday builds a birthday from calendar parts.
func ParseBirthday(year, month, day int) (Birthday, error) {
	if year > MaxBirthYear || !timeutil.IsValidDate(year, time.Month(month), day) {
		return Birthday{}, ErrInvalidDate
	}
	return Birthday{date: timeutil.Date(year, time.Month(month), day), set: true}, nil
}

// ParseBirthdayString accepts "YYYY-MM-DD"; parts may be unpadded ("2000-5-2").
func ParseBirthdayString(s string) (Birthday, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Birthday{}, ErrInvalidDate
	}

	var ymd [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Birthday{}, ErrInvalidDate
		}
		ymd[i] = n
	}
	return ParseBirthday(ymd[0], ymd[1], ymd[2])
}

func (b Birthday) IsZero() bool      { return !b.set }
func (b Birthday) Month() time.Month { return b.date.Month() }
func (b Birthday) Day() int          { return b.date.Day() }

// String returns the ISO date, or "" when unset.
func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return b.date.Format(time.DateOnly)
}

// DaysUntil returns the days from today to the next occurrence, zero when the
// birthday is today. February 29 is observed on February 28 in non-leap years.
func (b Birthday) DaysUntil(today time.Time) int {
	return timeutil.DaysUntilAnniversary(today, b.Month(), b.Day())
}
