package clock

import (
	"testing"
	"time"
)

func TestNormalizeLabels(t *testing.T) {
	cases := []struct {
		input string
		want  Minutes
	}{
		{"12:00 AM", 0},
		{"12:00 PM", 720},
		{"08:05 AM", 485},
		{"8:05 am", 485},
		{"07:52 AM", 472},
		{"03:45 PM", 945},
		{"11:59 PM", 1439},
		{"08:05:30 AM", 485},
		{"07:45", 465},
		{"7:45", 465},
		{"16:00", 960},
		{"16:00:59", 960},
		{"2025-08-23 07:52", 472},
		{"2025-08-23 07:52:00", 472},
		{"2025-08-23T07:52:00", 472},
		{"2025-08-23T07:52:00Z", 472},
		{"2025-08-23T07:52:00+08:00", 472},
		{"2025-08-23T07:52:00.123Z", 472},
		{"", NoTime},
		{"   ", NoTime},
		{"not a time", NoTime},
		{"25:xx", NoTime},
		{"AM", NoTime},
	}
	for _, c := range cases {
		got := Normalize(Label(c.input))
		if got != c.want {
			t.Errorf("Normalize(Label(%q)) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestNormalizeOffsetKeepsEmbeddedDigits(t *testing.T) {
	// The offset marker is accepted syntactically but must not shift the
	// wall-clock digits.
	for _, input := range []string{
		"2025-08-23T07:52:00Z",
		"2025-08-23T07:52:00+05:00",
		"2025-08-23T07:52:00-0700",
	} {
		if got := Normalize(Label(input)); got != 472 {
			t.Errorf("Normalize(Label(%q)) = %d, want 472", input, got)
		}
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(Empty()); got != NoTime {
		t.Errorf("Normalize(Empty()) = %d, want NoTime", got)
	}
}

func TestNormalizeInstant(t *testing.T) {
	at := time.Date(2025, 8, 23, 7, 52, 31, 0, time.Local)
	if got := Normalize(Instant(at)); got != 472 {
		t.Errorf("Normalize(Instant) = %d, want 472", got)
	}
	if got := Normalize(Instant(time.Time{})); got != NoTime {
		t.Errorf("Normalize(Instant(zero)) = %d, want NoTime", got)
	}
}

func TestNormalizeEpochMilli(t *testing.T) {
	at := time.Date(2025, 8, 23, 8, 12, 0, 0, time.Local)
	if got := Normalize(EpochMilli(at.UnixMilli())); got != 492 {
		t.Errorf("Normalize(EpochMilli) = %d, want 492", got)
	}
}

func TestNormalizeIsPure(t *testing.T) {
	v := Label("08:05 AM")
	first := Normalize(v)
	for i := 0; i < 3; i++ {
		if got := Normalize(v); got != first {
			t.Fatalf("Normalize not deterministic: %d then %d", first, got)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		input Minutes
		want  string
	}{
		{0, "12:00 AM"},
		{472, "07:52 AM"},
		{485, "08:05 AM"},
		{720, "12:00 PM"},
		{960, "04:00 PM"},
		{1439, "11:59 PM"},
		{NoTime, "-"},
	}
	for _, c := range cases {
		got := FormatMinutes(c.input)
		if got != c.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestAddMinutes(t *testing.T) {
	if got := AddMinutes(480, 5); got != 485 {
		t.Errorf("AddMinutes(480, 5) = %d, want 485", got)
	}
	if got := AddMinutes(NoTime, 5); got != NoTime {
		t.Errorf("AddMinutes(NoTime, 5) = %d, want NoTime", got)
	}
	// No wraparound past midnight.
	if got := AddMinutes(1438, 10); got != 1448 {
		t.Errorf("AddMinutes(1438, 10) = %d, want 1448", got)
	}
}

func TestIsEmpty(t *testing.T) {
	if !Empty().IsEmpty() {
		t.Error("Empty().IsEmpty() = false, want true")
	}
	if !Label("  ").IsEmpty() {
		t.Error("Label(blank).IsEmpty() = false, want true")
	}
	if Label("08:00 AM").IsEmpty() {
		t.Error("Label(time).IsEmpty() = true, want false")
	}
}
