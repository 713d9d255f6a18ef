package util

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateOnly(t *testing.T) {
	d, err := ParseDateOnly("2026-06-30")
	if err != nil {
		t.Fatalf("ParseDateOnly failed: %v", err)
	}
	if d.String() != "2026-06-30" {
		t.Errorf("wrong date. want 2026-06-30, got %s", d)
	}

	if _, err := ParseDateOnly("30/06/2026"); err == nil {
		t.Error("ParseDateOnly should reject non-ISO input")
	}
}

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	d := NewDateOnly(time.Date(2026, 6, 30, 15, 4, 5, 0, time.UTC))

	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != `"2026-06-30"` {
		t.Errorf("wrong JSON. got %s", raw)
	}

	var parsed DateOnly
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !parsed.Equal(NewDateOnly(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC))) {
		t.Errorf("round trip lost the date. got %s", parsed)
	}
}

func TestDateOnlyZeroMarshalsAsNull(t *testing.T) {
	raw, err := json.Marshal(DateOnly{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != "null" {
		t.Errorf("zero date should marshal as null, got %s", raw)
	}

	var d DateOnly
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatalf("Unmarshal null failed: %v", err)
	}
	if !d.IsZero() {
		t.Error("null should stay the zero date")
	}
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly
	if err := d.Scan(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan time.Time failed: %v", err)
	}
	if d.String() != "2026-01-15" {
		t.Errorf("wrong scanned date: %s", d)
	}

	if err := d.Scan("2026-02-20"); err != nil {
		t.Fatalf("Scan string failed: %v", err)
	}
	if d.String() != "2026-02-20" {
		t.Errorf("wrong scanned date: %s", d)
	}

	if err := d.Scan(42); err == nil {
		t.Error("Scan should reject unsupported types")
	}
}
