package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/addressbook/book"
)

func newRecord(t *testing.T, raw string) *book.Record {
	t.Helper()
	n, err := book.NewName(raw)
	require.NoError(t, err)
	return book.NewRecord(n)
}

func TestRecord_AddPhone(t *testing.T) {
	r := newRecord(t, "john")

	require.NoError(t, r.AddPhone("0501234567"))
	require.NoError(t, r.AddPhone("+38 (050) 123-45-67"))
	require.NoError(t, r.AddPhone("0671112233"))

	assert.Equal(t, []string{"+380501234567", "+380671112233"}, r.PhoneStrings())
}

func TestRecord_AddPhone_Invalid(t *testing.T) {
	r := newRecord(t, "john")

	err := r.AddPhone("123")
	require.ErrorIs(t, err, book.ErrInvalidPhoneLength)
	assert.Empty(t, r.Phones())
}

func TestRecord_ChangePhone(t *testing.T) {
	r := newRecord(t, "john")
	require.NoError(t, r.AddPhone("0501234567"))
	require.NoError(t, r.AddPhone("0671112233"))

	require.NoError(t, r.ChangePhone("0501234567", "0939998877"))
	assert.Equal(t, []string{"+380671112233", "+380939998877"}, r.PhoneStrings())
}

func TestRecord_ChangePhone_NotFound(t *testing.T) {
	r := newRecord(t, "john")
	require.NoError(t, r.AddPhone("0501234567"))

	err := r.ChangePhone("0671112233", "0939998877")
	require.ErrorIs(t, err, book.ErrPhoneNotFound)
	assert.Equal(t, []string{"+380501234567"}, r.PhoneStrings())
}

func TestRecord_ChangePhone_InvalidNewKeepsOld(t *testing.T) {
	r := newRecord(t, "john")
	require.NoError(t, r.AddPhone("0501234567"))

	err := r.ChangePhone("0501234567", "12")
	require.ErrorIs(t, err, book.ErrInvalidPhoneLength)
	assert.Equal(t, []string{"+380501234567"}, r.PhoneStrings())
}

func TestRecord_ChangePhone_ToExistingDoesNotDuplicate(t *testing.T) {
	r := newRecord(t, "john")
	require.NoError(t, r.AddPhone("0501234567"))
	require.NoError(t, r.AddPhone("0671112233"))

	require.NoError(t, r.ChangePhone("0501234567", "0671112233"))
	assert.Equal(t, []string{"+380671112233"}, r.PhoneStrings())
}

func TestRecord_DeletePhone(t *testing.T) {
	r := newRecord(t, "john")
	require.NoError(t, r.AddPhone("0501234567"))

	require.NoError(t, r.DeletePhone("0671112233"))
	assert.Len(t, r.Phones(), 1)

	require.NoError(t, r.DeletePhone("050 123 45 67"))
	assert.Empty(t, r.Phones())

	require.ErrorIs(t, r.DeletePhone("abc"), book.ErrInvalidPhoneFormat)
}

func TestRecord_Phones_ReturnsCopy(t *testing.T) {
	r := newRecord(t, "john")
	require.NoError(t, r.AddPhone("0501234567"))

	phones := r.Phones()
	phones[0] = book.Phone{}
	assert.Equal(t, []string{"+380501234567"}, r.PhoneStrings())
}

func TestRecord_SetBirthday(t *testing.T) {
	r := newRecord(t, "john")

	_, ok := r.Birthday()
	assert.False(t, ok)

	require.NoError(t, r.SetBirthday(2000, 5, 20))
	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "2000-05-20", b.String())

	require.ErrorIs(t, r.SetBirthday(2001, 2, 29), book.ErrInvalidDate)
	b, _ = r.Birthday()
	assert.Equal(t, "2000-05-20", b.String(), "invalid date must keep the previous birthday")
}

func TestRecord_DaysToBirthday(t *testing.T) {
	r := newRecord(t, "john")
	today := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, ok := r.DaysToBirthday(today)
	assert.False(t, ok)

	require.NoError(t, r.SetBirthday(2000, 5, 20))
	days, ok := r.DaysToBirthday(today)
	require.True(t, ok)
	assert.Equal(t, 140, days)
}

func TestRecord_Snapshot(t *testing.T) {
	r := newRecord(t, "john_smith")
	require.NoError(t, r.AddPhone("0501234567"))

	s := r.Snapshot()
	assert.Equal(t, book.Snapshot{Name: "John_Smith", Phones: "+380501234567"}, s)
	assert.Equal(t, "name: John_Smith; phones: +380501234567; birthday: unknown", s.String())
	assert.Equal(t, []string{"John_Smith", "+380501234567"}, s.Values())

	require.NoError(t, r.AddPhone("0671112233"))
	require.NoError(t, r.SetBirthday(1990, 12, 1))
	s = r.Snapshot()
	assert.Equal(t, "+380501234567, +380671112233", s.Phones)
	assert.Equal(t, "1990-12-01", s.Birthday)
}
