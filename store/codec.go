package store

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/vortex-fintech/addressbook/book"
	errs "github.com/vortex-fintech/addressbook/errors"
)

// FormatVersion is written as the first field of every file.
const FormatVersion = 1

// Top-level fields.
const (
	fieldVersion protowire.Number = 1
	fieldRecord  protowire.Number = 2
)

// Record message fields.
const (
	fieldName     protowire.Number = 1
	fieldPhone    protowire.Number = 2
	fieldBirthday protowire.Number = 3
)

var (
	ErrCorrupt     = errors.New("corrupt address book data")
	ErrUnsupported = errors.New("unsupported address book format")
)

func corrupt(field, reason string) error {
	return errs.StateInvariant(ErrCorrupt, field, reason)
}

// Marshal encodes the book in ascending name order, so equal books produce
// equal bytes.
func Marshal(b *book.AddressBook) []byte {
	var out []byte
	out = protowire.AppendTag(out, fieldVersion, protowire.VarintType)
	out = protowire.AppendVarint(out, FormatVersion)

	if b == nil {
		return out
	}
	for r := range b.Records() {
		out = protowire.AppendTag(out, fieldRecord, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalRecord(r))
	}
	return out
}

func marshalRecord(r *book.Record) []byte {
	var out []byte
	out = protowire.AppendTag(out, fieldName, protowire.BytesType)
	out = protowire.AppendString(out, r.Name().String())

	for _, p := range r.Phones() {
		out = protowire.AppendTag(out, fieldPhone, protowire.BytesType)
		out = protowire.AppendString(out, p.String())
	}
	if bd, ok := r.Birthday(); ok {
		out = protowire.AppendTag(out, fieldBirthday, protowire.BytesType)
		out = protowire.AppendString(out, bd.String())
	}
	return out
}

// Unmarshal decodes data written by Marshal. Unknown fields are skipped.
// Every stored value goes through the book constructors again; any value that
// no longer validates makes the whole file corrupt.
func Unmarshal(data []byte) (*book.AddressBook, error) {
	b := book.New()
	var (
		version    uint64
		hasVersion bool
	)

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, corrupt("file", protowire.ParseError(n).Error())
		}
		data = data[n:]

		switch {
		case num == fieldVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, corrupt("version", protowire.ParseError(n).Error())
			}
			version, hasVersion = v, true
			data = data[n:]

		case num == fieldRecord && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, corrupt("record", protowire.ParseError(n).Error())
			}
			r, err := unmarshalRecord(v)
			if err != nil {
				return nil, err
			}
			if b.Has(r.Name().String()) {
				return nil, corrupt("record", "duplicate name "+r.Name().String())
			}
			b.AddRecord(r)
			data = data[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, corrupt("file", protowire.ParseError(n).Error())
			}
			data = data[n:]
		}
	}

	if !hasVersion {
		return nil, corrupt("version", "missing")
	}
	if version != FormatVersion {
		return nil, fmt.Errorf("%w: version %d", ErrUnsupported, version)
	}
	return b, nil
}

func unmarshalRecord(data []byte) (*book.Record, error) {
	var (
		name     string
		hasName  bool
		phones   []string
		birthday string
	)

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, corrupt("record", protowire.ParseError(n).Error())
		}
		data = data[n:]

		if typ != protowire.BytesType || num < fieldName || num > fieldBirthday {
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, corrupt("record", protowire.ParseError(n).Error())
			}
			data = data[n:]
			continue
		}

		v, n := protowire.ConsumeString(data)
		if n < 0 {
			return nil, corrupt("record", protowire.ParseError(n).Error())
		}
		data = data[n:]

		switch num {
		case fieldName:
			name, hasName = v, true
		case fieldPhone:
			phones = append(phones, v)
		case fieldBirthday:
			birthday = v
		}
	}

	if !hasName {
		return nil, corrupt("name", "missing")
	}
	n, err := book.NewName(name)
	if err != nil {
		return nil, corrupt("name", err.Error())
	}
	r := book.NewRecord(n)

	for _, p := range phones {
		if err := r.AddPhone(p); err != nil {
			return nil, corrupt("phone", err.Error())
		}
	}
	if birthday != "" {
		bd, err := book.ParseBirthdayString(birthday)
		if err != nil {
			return nil, corrupt("birthday", err.Error())
		}
		r.UpdateBirthday(bd)
	}
	return r, nil
}
