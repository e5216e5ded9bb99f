package book

import (
	"fmt"

	errs "github.com/vortex-fintech/addressbook/errors"
)

// Validation errors. They are comparable values, test them with errors.Is.
var (
	ErrInvalidName        = errs.DomainInvariant("name", "invalid_name")
	ErrInvalidPhoneFormat = errs.DomainInvariant("phone", "invalid_format")
	ErrInvalidPhoneLength = errs.DomainInvariant("phone", "invalid_length")
	ErrInvalidDate        = errs.DomainInvariant("birthday", "invalid_date")
)

// Lookup errors.
var (
	ErrContactNotFound = fmt.Errorf("contact %w", errs.ErrNotFound)
	ErrPhoneNotFound   = fmt.Errorf("phone %w", errs.ErrNotFound)
	ErrContactExists   = fmt.Errorf("contact %w", errs.ErrAlreadyExists)
)
