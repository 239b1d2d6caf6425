package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Minutes is a point in the day expressed as whole minutes since local
// midnight. NoTime marks an absent or unparseable value; it is a valid
// state, not an error.
type Minutes int

const NoTime Minutes = -1

// IsNone reports whether m carries no time value.
func (m Minutes) IsNone() bool {
	return m < 0
}

type valueKind uint8

const (
	kindEmpty valueKind = iota
	kindLabel
	kindInstant
	kindEpochMilli
)

// TimeValue is a time representation as supplied by a caller. The
// caller declares the shape up front instead of having the normalizer
// guess it from the payload.
type TimeValue struct {
	kind    valueKind
	label   string
	instant time.Time
	epoch   int64
}

// Empty returns the absent time value.
func Empty() TimeValue {
	return TimeValue{}
}

// Label wraps a textual time such as "08:05 AM", "07:45",
// "2025-08-23 07:52:00" or an RFC 3339 timestamp.
func Label(s string) TimeValue {
	return TimeValue{kind: kindLabel, label: s}
}

// Instant wraps a native timestamp.
func Instant(t time.Time) TimeValue {
	return TimeValue{kind: kindInstant, instant: t}
}

// EpochMilli wraps a Unix timestamp in milliseconds.
func EpochMilli(ms int64) TimeValue {
	return TimeValue{kind: kindEpochMilli, epoch: ms}
}

// IsEmpty reports whether the value is absent. A blank label counts as
// absent too.
func (v TimeValue) IsEmpty() bool {
	if v.kind == kindLabel {
		return strings.TrimSpace(v.label) == ""
	}
	return v.kind == kindEmpty
}

var (
	// Combined date+time: the offset or UTC marker is accepted but the
	// embedded wall-clock digits are used as written.
	dateTimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[ T](\d{2}):(\d{2})(?::\d{2}(?:\.\d+)?)?(?:Z|[+-]\d{2}:?\d{2})?$`)
	meridiemRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?\s*([AaPp][Mm])$`)
	plainRegex    = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)
)

var fallbackLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Normalize converts a TimeValue into minutes since local midnight.
// Malformed input yields NoTime; Normalize never fails.
func Normalize(v TimeValue) Minutes {
	switch v.kind {
	case kindEmpty:
		return NoTime
	case kindInstant:
		if v.instant.IsZero() {
			return NoTime
		}
		return Minutes(v.instant.Hour()*60 + v.instant.Minute())
	case kindEpochMilli:
		t := time.UnixMilli(v.epoch)
		return Minutes(t.Hour()*60 + t.Minute())
	}
	return normalizeLabel(v.label)
}

// normalizeLabel tries each textual interpretation in a fixed order and
// returns on the first match.
func normalizeLabel(label string) Minutes {
	s := strings.TrimSpace(label)
	if s == "" {
		return NoTime
	}

	if m := dateTimeRegex.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return Minutes(hours*60 + minutes)
	}

	if m := meridiemRegex.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		hours %= 12
		if strings.EqualFold(m[3], "PM") {
			hours += 12
		}
		return Minutes(hours*60 + minutes)
	}

	if m := plainRegex.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return Minutes(hours*60 + minutes)
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Minutes(t.Hour()*60 + t.Minute())
		}
	}

	return NoTime
}

// FormatMinutes renders m as a 12-hour "hh:mm AM" label, or "-" when no
// value is present.
func FormatMinutes(m Minutes) string {
	if m.IsNone() {
		return "-"
	}
	hours24 := int(m) / 60
	minutes := int(m) % 60
	meridiem := "AM"
	if hours24 >= 12 {
		meridiem = "PM"
	}
	hours12 := hours24 % 12
	if hours12 == 0 {
		hours12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", hours12, minutes, meridiem)
}

// AddMinutes shifts m by delta minutes. NoTime propagates. No midnight
// wraparound is applied: a result past 1439 stays past 1439.
func AddMinutes(m Minutes, delta int) Minutes {
	if m.IsNone() {
		return NoTime
	}
	return m + Minutes(delta)
}
