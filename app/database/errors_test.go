package database

import (
	"errors"
	"testing"

	"github.com/lib/pq"
)

func TestMapErrorNil(t *testing.T) {
	if err := MapError(nil, "generic"); err != nil {
		t.Fatalf("nil must map to nil, got %v", err)
	}
}

func TestMapErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantKind ErrKind
		wantMsg  string
	}{
		{name: "unique violation", code: "23505", wantKind: KindDuplicate, wantMsg: "Ya existe un registro con ese identificador"},
		{name: "foreign key violation", code: "23503", wantKind: KindForeignKey, wantMsg: "El registro esta relacionado con otros datos"},
		{name: "invalid text representation", code: "22P02", wantKind: KindBadValue, wantMsg: "Alguno de los valores capturados no es valido"},
		{name: "numeric overflow", code: "22003", wantKind: KindBadValue, wantMsg: "Alguno de los valores capturados no es valido"},
		{name: "not null violation", code: "23502", wantKind: KindBadValue, wantMsg: "Falta capturar un campo obligatorio"},
		{name: "unrecognized code", code: "42P01", wantKind: KindOther, wantMsg: "generic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pqErr := &pq.Error{Code: pq.ErrorCode(tt.code)}
			mapped := MapError(pqErr, "generic")

			if KindOf(mapped) != tt.wantKind {
				t.Errorf("kind = %v, want %v", KindOf(mapped), tt.wantKind)
			}
			if mapped.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", mapped.Error(), tt.wantMsg)
			}
			if !errors.Is(mapped, pqErr) && !errors.As(mapped, &pqErr) {
				t.Error("mapped error must wrap the driver error")
			}
		})
	}
}

func TestMapErrorForeignError(t *testing.T) {
	plain := errors.New("connection refused")
	mapped := MapError(plain, "No se pudo completar la operacion")

	if KindOf(mapped) != KindOther {
		t.Errorf("kind = %v, want KindOther", KindOf(mapped))
	}
	if mapped.Error() != "No se pudo completar la operacion" {
		t.Errorf("message = %q", mapped.Error())
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "duplicate", err: MapError(&pq.Error{Code: "23505"}, "g"), want: 409},
		{name: "foreign key", err: MapError(&pq.Error{Code: "23503"}, "g"), want: 409},
		{name: "bad value", err: MapError(&pq.Error{Code: "22P02"}, "g"), want: 400},
		{name: "not found", err: ErrNotFound, want: 404},
		{name: "other", err: errors.New("boom"), want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor = %d, want %d", got, tt.want)
			}
		})
	}
}
