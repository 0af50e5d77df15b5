package entity

import (
	"testing"
	"time"
)

func TestFormWindowIsOpen(t *testing.T) {
	opens := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	closes := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	window := &FormWindow{
		FormType: FormTypeSamuhLagan,
		Active:   true,
		OpensAt:  opens,
		ClosesAt: closes,
	}

	if window.IsOpen(opens.Add(-time.Second)) {
		t.Fatalf("window should be closed before opens_at")
	}
	if !window.IsOpen(opens) {
		t.Fatalf("window should be open exactly at opens_at")
	}
	if !window.IsOpen(opens.AddDate(0, 0, 15)) {
		t.Fatalf("window should be open in the middle")
	}
	if window.IsOpen(closes) {
		t.Fatalf("window should be closed exactly at closes_at")
	}
	if window.IsOpen(closes.Add(time.Hour)) {
		t.Fatalf("window should be closed after closes_at")
	}
}

func TestFormWindowIsOpen_InactiveAndNil(t *testing.T) {
	opens := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	inactive := &FormWindow{Active: false, OpensAt: opens, ClosesAt: opens.AddDate(0, 1, 0)}

	if inactive.IsOpen(opens.AddDate(0, 0, 1)) {
		t.Fatalf("inactive window should never be open")
	}

	var missing *FormWindow
	if missing.IsOpen(time.Now()) {
		t.Fatalf("missing window should never be open")
	}
}

func TestParseFormType(t *testing.T) {
	if _, err := ParseFormType("samuh_lagan"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseFormType("student_award"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseFormType("gallery"); err == nil {
		t.Fatalf("expected error for unknown form type")
	}
}
