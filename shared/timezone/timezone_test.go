package timezone_test

import (
	"testing"
	"time"

	"hus/shared/constant"
	"hus/shared/timezone"
)

func TestToday(t *testing.T) {
	today := timezone.Today()

	if len(today) != 10 {
		t.Fatalf("expected fixed-width date, got %q", today)
	}

	if _, err := time.Parse(constant.DateFormat, today); err != nil {
		t.Errorf("expected parseable business date, got %q: %v", today, err)
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC)

	if got := timezone.Format(ts, constant.DateFormat); got != "2024-06-01" {
		t.Errorf("expected 2024-06-01, got %s", got)
	}
}
