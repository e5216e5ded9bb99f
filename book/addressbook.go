// Package book holds the contact directory domain: canonical field values,
// the Record aggregate and the AddressBook that owns every Record.
package book

import (
	"iter"
	"maps"
	"regexp"
	"slices"
)

// AddressBook maps canonical names to Records. It is not safe for concurrent
// use; the console session is its only mutator.
type AddressBook struct {
	records map[string]*Record
}

func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name. An existing record with the same name is
// replaced; use Create when duplicates must be rejected.
func (b *AddressBook) AddRecord(r *Record) {
	if r == nil {
		return
	}
	b.records[r.Name().String()] = r
}

// Create adds a new record with the given phones, or returns ErrContactExists.
func (b *AddressBook) Create(name Name, phones ...Phone) (*Record, error) {
	if _, ok := b.records[name.String()]; ok {
		return nil, ErrContactExists
	}
	r := NewRecord(name)
	for _, p := range phones {
		if !r.HasPhone(p) {
			r.phones = append(r.phones, p)
		}
	}
	b.AddRecord(r)
	return r, nil
}

// RemoveRecord deletes the record for raw (normalized first). It reports
// whether a record was removed.
func (b *AddressBook) RemoveRecord(raw string) bool {
	key := Key(raw)
	if _, ok := b.records[key]; !ok {
		return false
	}
	delete(b.records, key)
	return true
}

func (b *AddressBook) Lookup(raw string) (*Record, bool) {
	r, ok := b.records[Key(raw)]
	return r, ok
}

func (b *AddressBook) Has(raw string) bool {
	_, ok := b.records[Key(raw)]
	return ok
}

func (b *AddressBook) Len() int { return len(b.records) }

// Names returns the keys in ascending order.
func (b *AddressBook) Names() []string {
	return slices.Sorted(maps.Keys(b.records))
}

// All returns a snapshot of every record keyed by name.
func (b *AddressBook) All() map[string]Snapshot {
	out := make(map[string]Snapshot, len(b.records))
	for k, r := range b.records {
		out[k] = r.Snapshot()
	}
	return out
}

// Records yields records in ascending name order.
func (b *AddressBook) Records() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		for _, name := range b.Names() {
			r, ok := b.records[name]
			if !ok {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Scan yields snapshots in ascending name order. Every call starts over from
// the first record.
func (b *AddressBook) Scan() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for r := range b.Records() {
			if !yield(r.Snapshot()) {
				return
			}
		}
	}
}

// Search returns the first snapshot in Scan order with a field value matching
// pattern. The pattern is a case-insensitive regular expression; when it does
// not compile it is matched as a literal substring.
func (b *AddressBook) Search(pattern string) (Snapshot, bool) {
	re := compileSearch(pattern)
	for s := range b.Scan() {
		for _, v := range s.Values() {
			if re.MatchString(v) {
				return s, true
			}
		}
	}
	return Snapshot{}, false
}

func compileSearch(pattern string) *regexp.Regexp {
	if re, err := regexp.Compile("(?i)" + pattern); err == nil {
		return re
	}
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(pattern))
}

// Clone returns a deep copy.
func (b *AddressBook) Clone() *AddressBook {
	out := &AddressBook{records: make(map[string]*Record, len(b.records))}
	for k, r := range b.records {
		out.records[k] = r.clone()
	}
	return out
}

// ReplaceWith makes b hold the records of other. other must not be used after.
func (b *AddressBook) ReplaceWith(other *AddressBook) {
	if other == nil {
		b.records = make(map[string]*Record)
		return
	}
	b.records = other.records
}
