package database

import (
	"errors"

	"github.com/lib/pq"
)

// ErrKind is the closed set of store failures the console tells apart.
// Everything the backend reports that is not one of the recognized Postgres
// codes collapses into KindOther.
type ErrKind int

const (
	KindOther ErrKind = iota
	KindDuplicate
	KindForeignKey
	KindBadValue
	KindNotFound
)

// Recognized Postgres error codes.
const (
	codeUniqueViolation  = "23505"
	codeForeignKey       = "23503"
	codeInvalidTextRepr  = "22P02"
	codeNumericOverflow  = "22003"
	codeNotNullViolation = "23502"
)

// StoreError carries a user-presentable message alongside the classified
// kind and the underlying driver error.
type StoreError struct {
	Kind    ErrKind
	Message string
	Err     error
}

func (e *StoreError) Error() string { return e.Message }

func (e *StoreError) Unwrap() error { return e.Err }

// ErrNotFound marks updates/deletes that matched no row.
var ErrNotFound = &StoreError{Kind: KindNotFound, Message: "El registro no existe"}

// MapError classifies a backend error and attaches the user-facing message
// for the named operation. genericMsg is used when the code is not one the
// console discriminates. Returns nil when err is nil.
func MapError(err error, genericMsg string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeUniqueViolation:
			return &StoreError{Kind: KindDuplicate, Message: "Ya existe un registro con ese identificador", Err: err}
		case codeForeignKey:
			return &StoreError{Kind: KindForeignKey, Message: "El registro esta relacionado con otros datos", Err: err}
		case codeInvalidTextRepr, codeNumericOverflow:
			return &StoreError{Kind: KindBadValue, Message: "Alguno de los valores capturados no es valido", Err: err}
		case codeNotNullViolation:
			return &StoreError{Kind: KindBadValue, Message: "Falta capturar un campo obligatorio", Err: err}
		}
	}

	return &StoreError{Kind: KindOther, Message: genericMsg, Err: err}
}

// KindOf extracts the classified kind, KindOther for foreign errors.
func KindOf(err error) ErrKind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindOther
}

// StatusFor maps an error kind to the HTTP status the API answers with.
func StatusFor(err error) int {
	switch KindOf(err) {
	case KindDuplicate, KindForeignKey:
		return 409
	case KindBadValue:
		return 400
	case KindNotFound:
		return 404
	}
	return 500
}
