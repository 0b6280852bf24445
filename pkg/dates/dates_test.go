package dates

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(time.Date(2025, 7, 9, 13, 45, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-07-09"` {
		t.Errorf("marshal = %s, want \"2025-07-09\" (time of day dropped)", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(NewDate(d.Time).Time) {
		t.Errorf("round trip: got %v, want %v", back, d)
	}
}

func TestDateJSONNull(t *testing.T) {
	var d Date
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("zero date marshals to %s, want null", b)
	}

	var back Date
	if err := json.Unmarshal([]byte("null"), &back); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !back.IsZero() {
		t.Errorf("null unmarshals to %v, want zero date", back)
	}
}

func TestDateJSONRejectsOtherLayouts(t *testing.T) {
	for _, raw := range []string{`"07/09/2025"`, `"2025-7-9"`, `"2025-07-09T00:00:00"`, `"notadate"`} {
		var d Date
		err := json.Unmarshal([]byte(raw), &d)
		if err == nil {
			t.Errorf("unmarshal %s succeeded, want error", raw)
			continue
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("unmarshal %s: error %T, want *ParseError", raw, err)
		} else if pe.Layout != DateLayout {
			t.Errorf("unmarshal %s: layout %q, want %q", raw, pe.Layout, DateLayout)
		}
	}
}

func TestDateBeforeIsStrict(t *testing.T) {
	a := NewDate(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	b := NewDate(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))

	if !a.Before(b) {
		t.Error("a.Before(b) = false, want true")
	}
	if a.Before(a) {
		t.Error("a.Before(a) = true, want false for equal dates")
	}
	if b.Before(a) {
		t.Error("b.Before(a) = true, want false")
	}
}

func TestLocalDateTimeJSON(t *testing.T) {
	lt := LocalDateTime{Time: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)}

	b, err := json.Marshal(lt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-03-14T09:26:53"` {
		t.Errorf("marshal = %s, want zone-less local date-time", b)
	}

	var back LocalDateTime
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(lt.Time) {
		t.Errorf("round trip: got %v, want %v", back, lt)
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2025, 5, 6, 23, 59, 0, 0, time.UTC)); err != nil {
		t.Fatalf("scan time: %v", err)
	}
	if d.Format(DateLayout) != "2025-05-06" {
		t.Errorf("scan = %v, want 2025-05-06", d)
	}

	if err := d.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !d.IsZero() {
		t.Error("scan nil should reset to zero date")
	}

	if err := d.Scan(42); err == nil {
		t.Error("scan int succeeded, want error")
	}
}
