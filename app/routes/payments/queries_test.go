package payments

import (
	"strings"
	"testing"
)

func TestBuildPaymentWhereNoFilters(t *testing.T) {
	where, args := BuildPaymentWhere(PaymentFilters{})
	if where != "WHERE p.deleted_at IS NULL" {
		t.Errorf("unexpected clause: %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildPaymentWhereFlags(t *testing.T) {
	tests := []struct {
		name     string
		f        PaymentFilters
		wantPart string
	}{
		{name: "settled true", f: PaymentFilters{Settled: "true"}, wantPart: "p.settled = true"},
		{name: "settled false", f: PaymentFilters{Settled: "false"}, wantPart: "p.settled = false"},
		{name: "notified false", f: PaymentFilters{Notified: "false"}, wantPart: "p.notified = false"},
		{name: "month", f: PaymentFilters{MonthPaid: "2026-08"}, wantPart: "p.month_paid = $1"},
		{name: "method", f: PaymentFilters{Method: "EFECTIVO"}, wantPart: "p.payment_method = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, _ := BuildPaymentWhere(tt.f)
			if !strings.Contains(where, tt.wantPart) {
				t.Errorf("clause %q missing %q", where, tt.wantPart)
			}
		})
	}
}

func TestBuildPaymentWhereIgnoresUnknownFlagValues(t *testing.T) {
	where, args := BuildPaymentWhere(PaymentFilters{Settled: "yes", Notified: "1"})
	if strings.Contains(where, "settled") || strings.Contains(where, "notified") {
		t.Errorf("unknown flag values must be ignored: %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}
