package common

import (
	"testing"
	"time"
)

// ---------- WipeByteArray ----------

func TestWipeByteArray_ZerosBuffer(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	WipeByteArray(buf)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("expected buf[%d]==0, got %d", i, v)
		}
	}
}

func TestWipeByteArray_NilSafe(t *testing.T) {
	WipeByteArray(nil)
}

// ---------- DateLayout ----------

func TestDateLayout_RoundTrip(t *testing.T) {
	d := time.Date(2025, time.January, 5, 23, 59, 0, 0, time.Local)
	s := d.Format(DateLayout)
	if s != "2025-01-05" {
		t.Fatalf("unexpected format %q", s)
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		t.Fatalf("parse back: %v", err)
	}
}
