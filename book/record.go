package book

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Snapshot is a read-only projection of a Record for display and search.
type Snapshot struct {
	Name     string `json:"name"`
	Phones   string `json:"phone"`
	Birthday string `json:"birthday,omitempty"`
}

// Values returns the searchable field values; an unset birthday is skipped.
func (s Snapshot) Values() []string {
	out := []string{s.Name, s.Phones}
	if s.Birthday != "" {
		out = append(out, s.Birthday)
	}
	return out
}

func (s Snapshot) String() string {
	phones := s.Phones
	if phones == "" {
		phones = "-"
	}
	birthday := s.Birthday
	if birthday == "" {
		birthday = "unknown"
	}
	return fmt.Sprintf("name: %s; phones: %s; birthday: %s", s.Name, phones, birthday)
}

// Record is one contact: an immutable name, unique phones in insertion order
// and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday Birthday
}

func NewRecord(name Name) *Record {
	return &Record{name: name}
}

func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phones in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

func (r *Record) PhoneStrings() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.String()
	}
	return out
}

func (r *Record) HasPhone(p Phone) bool {
	return slices.Contains(r.phones, p)
}

// AddPhone stores raw in canonical form. Adding a phone that is already
// present succeeds without creating a duplicate.
func (r *Record) AddPhone(raw string) error {
	p, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	if !r.HasPhone(p) {
		r.phones = append(r.phones, p)
	}
	return nil
}

// ChangePhone removes oldRaw and appends newRaw. Both are validated before
// anything changes; ErrPhoneNotFound is returned when oldRaw is not stored.
func (r *Record) ChangePhone(oldRaw, newRaw string) error {
	oldPhone, err := ParsePhone(oldRaw)
	if err != nil {
		return err
	}
	newPhone, err := ParsePhone(newRaw)
	if err != nil {
		return err
	}

	i := slices.Index(r.phones, oldPhone)
	if i < 0 {
		return ErrPhoneNotFound
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	if !r.HasPhone(newPhone) {
		r.phones = append(r.phones, newPhone)
	}
	return nil
}

// DeletePhone removes raw if present. A missing phone is not an error.
func (r *Record) DeletePhone(raw string) error {
	p, err := ParsePhone(raw)
	if err != nil {
		return err
	}
	if i := slices.Index(r.phones, p); i >= 0 {
		r.phones = slices.Delete(r.phones, i, i+1)
	}
	return nil
}

// SetBirthday validates the date; on failure the previous birthday is kept.
func (r *Record) SetBirthday(year, month, day int) error {
	b, err := ParseBirthday(year, month, day)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// UpdateBirthday stores an already validated birthday. A zero value clears it.
func (r *Record) UpdateBirthday(b Birthday) { r.birthday = b }

func (r *Record) Birthday() (Birthday, bool) {
	return r.birthday, !r.birthday.IsZero()
}

// DaysToBirthday returns the days left until the next birthday. ok is false
// when the birthday is unknown.
func (r *Record) DaysToBirthday(today time.Time) (days int, ok bool) {
	if r.birthday.IsZero() {
		return 0, false
	}
	return r.birthday.DaysUntil(today), true
}

func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		Name:     r.name.String(),
		Phones:   strings.Join(r.PhoneStrings(), ", "),
		Birthday: r.birthday.String(),
	}
}

func (r *Record) clone() *Record {
	return &Record{name: r.name, phones: slices.Clone(r.phones), birthday: r.birthday}
}

// IsValidation reports whether err came from field validation in this package.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidPhoneFormat) ||
		errors.Is(err, ErrInvalidPhoneLength) ||
		errors.Is(err, ErrInvalidDate)
}
