package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/vortex-fintech/addressbook/book"
	errs "github.com/vortex-fintech/addressbook/errors"
	"github.com/vortex-fintech/addressbook/store"
)

func sampleBook(t *testing.T) *book.AddressBook {
	t.Helper()
	b := book.New()

	john, err := book.NewName("john_smith")
	require.NoError(t, err)
	r := book.NewRecord(john)
	require.NoError(t, r.AddPhone("0501234567"))
	require.NoError(t, r.AddPhone("380671112233"))
	require.NoError(t, r.SetBirthday(2000, 5, 20))
	b.AddRecord(r)

	mary, err := book.NewName("mary")
	require.NoError(t, err)
	b.AddRecord(book.NewRecord(mary))
	return b
}

func TestCodec_RoundTrip(t *testing.T) {
	in := sampleBook(t)

	out, err := store.Unmarshal(store.Marshal(in))
	require.NoError(t, err)
	assert.Equal(t, in.All(), out.All())

	r, ok := out.Lookup("john_smith")
	require.True(t, ok)
	assert.Equal(t, []string{"+380501234567", "+380671112233"}, r.PhoneStrings())
}

func TestCodec_KeepsFirstCalendarDay(t *testing.T) {
	b := book.New()
	name, err := book.NewName("john")
	require.NoError(t, err)
	r := book.NewRecord(name)
	require.NoError(t, r.SetBirthday(1, 1, 1))
	b.AddRecord(r)

	out, err := store.Unmarshal(store.Marshal(b))
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01", out.All()["John"].Birthday)
}

func TestCodec_Deterministic(t *testing.T) {
	assert.Equal(t, store.Marshal(sampleBook(t)), store.Marshal(sampleBook(t)))
}

func TestCodec_EmptyBook(t *testing.T) {
	out, err := store.Unmarshal(store.Marshal(book.New()))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())

	out, err = store.Unmarshal(store.Marshal(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func record(fields ...[]byte) []byte {
	var out []byte
	for _, f := range fields {
		out = append(out, f...)
	}
	return out
}

func str(num protowire.Number, s string) []byte {
	b := protowire.AppendTag(nil, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func file(version uint64, records ...[]byte) []byte {
	out := protowire.AppendTag(nil, 1, protowire.VarintType)
	out = protowire.AppendVarint(out, version)
	for _, r := range records {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, r)
	}
	return out
}

func TestCodec_SkipsUnknownFields(t *testing.T) {
	rec := record(str(1, "John"), str(2, "+380501234567"), str(9, "nickname"))
	rec = protowire.AppendTag(rec, 10, protowire.Fixed64Type)
	rec = protowire.AppendFixed64(rec, 42)

	data := file(store.FormatVersion, rec)
	data = protowire.AppendTag(data, 7, protowire.VarintType)
	data = protowire.AppendVarint(data, 1)

	out, err := store.Unmarshal(data)
	require.NoError(t, err)

	r, ok := out.Lookup("john")
	require.True(t, ok)
	assert.Equal(t, []string{"+380501234567"}, r.PhoneStrings())
}

func TestCodec_NormalizesStoredValues(t *testing.T) {
	data := file(store.FormatVersion, record(str(1, " JOHN "), str(2, "050-123-45-67"), str(3, "2000-5-20")))

	out, err := store.Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, map[string]book.Snapshot{
		"John": {Name: "John", Phones: "+380501234567", Birthday: "2000-05-20"},
	}, out.All())
}

func TestCodec_Corrupt(t *testing.T) {
	valid := store.Marshal(sampleBook(t))

	tests := map[string][]byte{
		"empty":           {},
		"truncated":       valid[:len(valid)-3],
		"garbage":         []byte("not a protobuf at all"),
		"bad phone":       file(store.FormatVersion, record(str(1, "John"), str(2, "123"))),
		"bad birthday":    file(store.FormatVersion, record(str(1, "John"), str(3, "2001-02-29"))),
		"five digit year": file(store.FormatVersion, record(str(1, "John"), str(3, "10000-01-01"))),
		"missing name":    file(store.FormatVersion, record(str(2, "+380501234567"))),
		"blank name":      file(store.FormatVersion, record(str(1, "   "))),
		"duplicate name":  file(store.FormatVersion, record(str(1, "john")), record(str(1, "JOHN"))),
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := store.Unmarshal(data)
			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrCorrupt)
			var ie errs.InvariantError
			assert.ErrorAs(t, err, &ie)
		})
	}
}

func TestCodec_UnsupportedVersion(t *testing.T) {
	_, err := store.Unmarshal(file(2))
	require.ErrorIs(t, err, store.ErrUnsupported)
}
