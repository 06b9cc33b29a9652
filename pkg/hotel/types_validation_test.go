package hotel

import (
	"errors"
	"testing"
	"time"
)

func TestNewRoomNumberRejectsNonPositive(test *testing.T) {
	test.Parallel()
	for _, raw := range []int{0, -1, -100} {
		if _, err := NewRoomNumber(raw); !errors.Is(err, ErrInvalidInput) {
			test.Fatalf("room number %d: expected ErrInvalidInput, got %v", raw, err)
		}
	}
	if number, err := NewRoomNumber(101); err != nil || number.Int() != 101 {
		test.Fatalf("room number 101: got %d, %v", number, err)
	}
}

func TestNewUserIDRejectsNonPositive(test *testing.T) {
	test.Parallel()
	for _, raw := range []int{0, -5} {
		if _, err := NewUserID(raw); !errors.Is(err, ErrInvalidInput) {
			test.Fatalf("user id %d: expected ErrInvalidInput, got %v", raw, err)
		}
	}
}

func TestNewPriceUnitsRequiresPositive(test *testing.T) {
	test.Parallel()
	if _, err := NewPriceUnits(0); !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for zero price, got %v", err)
	}
	if _, err := NewPriceUnits(-1000); !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}
}

func TestNewBalanceUnitsAllowsZero(test *testing.T) {
	test.Parallel()
	balance, err := NewBalanceUnits(0)
	if err != nil || balance.Int64() != 0 {
		test.Fatalf("zero balance should be valid, got %d, %v", balance, err)
	}
	if _, err := NewBalanceUnits(-1); !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for negative balance, got %v", err)
	}
}

func TestParseRoomType(test *testing.T) {
	test.Parallel()
	cases := map[string]RoomType{
		"standard": RoomTypeStandard,
		"JUNIOR":   RoomTypeJunior,
		" Master ": RoomTypeMaster,
	}
	for raw, expected := range cases {
		parsed, err := ParseRoomType(raw)
		if err != nil {
			test.Fatalf("parse %q: %v", raw, err)
		}
		if parsed != expected {
			test.Fatalf("parse %q: expected %s, got %s", raw, expected, parsed)
		}
	}
	if _, err := ParseRoomType("penthouse"); !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}
	if _, err := ParseRoomType(""); !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for empty type, got %v", err)
	}
}

func TestRoomTypeDisplayNames(test *testing.T) {
	test.Parallel()
	if RoomTypeStandard.DisplayName() != "Standard Suite" {
		test.Fatalf("unexpected standard label: %s", RoomTypeStandard.DisplayName())
	}
	if RoomTypeJunior.DisplayName() != "Junior Suite" {
		test.Fatalf("unexpected junior label: %s", RoomTypeJunior.DisplayName())
	}
	if RoomTypeMaster.DisplayName() != "Master Suite" {
		test.Fatalf("unexpected master label: %s", RoomTypeMaster.DisplayName())
	}
}

func TestNewStayRangeRejectsZeroNightStay(test *testing.T) {
	test.Parallel()
	same := day(2026, time.July, 7)
	if _, err := NewStayRange(same, same); !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for equal dates, got %v", err)
	}
}

func TestNewStayRangeRejectsReversedDates(test *testing.T) {
	test.Parallel()
	_, err := NewStayRange(day(2026, time.July, 7), day(2026, time.June, 30))
	if !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for checkout before checkin, got %v", err)
	}
}

func TestNewStayRangeRejectsZeroDates(test *testing.T) {
	test.Parallel()
	if _, err := NewStayRange(time.Time{}, day(2026, time.July, 7)); !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for zero check-in, got %v", err)
	}
	if _, err := NewStayRange(day(2026, time.July, 7), time.Time{}); !errors.Is(err, ErrInvalidInput) {
		test.Fatalf("expected ErrInvalidInput for zero check-out, got %v", err)
	}
}

func TestStayRangeIgnoresTimeOfDay(test *testing.T) {
	test.Parallel()
	checkIn := time.Date(2026, time.July, 7, 15, 30, 0, 0, time.FixedZone("X", 3600))
	checkOut := time.Date(2026, time.July, 8, 9, 0, 0, 0, time.UTC)
	stay, err := NewStayRange(checkIn, checkOut)
	if err != nil {
		test.Fatalf("stay: %v", err)
	}
	if stay.Nights() != 1 {
		test.Fatalf("expected 1 night, got %d", stay.Nights())
	}
	if stay.CheckIn() != day(2026, time.July, 7) {
		test.Fatalf("check-in not normalized to midnight UTC: %s", stay.CheckIn())
	}
}

func TestStayRangeNights(test *testing.T) {
	test.Parallel()
	stay := mustStay(test, day(2026, time.June, 30), day(2026, time.July, 7))
	if stay.Nights() != 7 {
		test.Fatalf("expected 7 nights, got %d", stay.Nights())
	}
}

func TestStayRangeOverlapIsSymmetric(test *testing.T) {
	test.Parallel()
	base := mustStay(test, day(2026, time.July, 5), day(2026, time.July, 10))
	others := []StayRange{
		mustStay(test, day(2026, time.July, 1), day(2026, time.July, 5)),
		mustStay(test, day(2026, time.July, 1), day(2026, time.July, 6)),
		mustStay(test, day(2026, time.July, 6), day(2026, time.July, 8)),
		mustStay(test, day(2026, time.July, 9), day(2026, time.July, 12)),
		mustStay(test, day(2026, time.July, 10), day(2026, time.July, 12)),
		mustStay(test, day(2026, time.July, 1), day(2026, time.July, 12)),
	}
	for _, other := range others {
		if base.Overlaps(other) != other.Overlaps(base) {
			test.Fatalf("overlap not symmetric for %s-%s", other.CheckIn(), other.CheckOut())
		}
	}
}

func TestStayRangeBackToBackDoesNotOverlap(test *testing.T) {
	test.Parallel()
	first := mustStay(test, day(2026, time.July, 1), day(2026, time.July, 5))
	second := mustStay(test, day(2026, time.July, 5), day(2026, time.July, 8))
	if first.Overlaps(second) || second.Overlaps(first) {
		test.Fatal("back-to-back stays must not overlap")
	}
}

func TestStayRangeSharedNightOverlaps(test *testing.T) {
	test.Parallel()
	first := mustStay(test, day(2026, time.July, 7), day(2026, time.July, 8))
	second := mustStay(test, day(2026, time.July, 7), day(2026, time.July, 9))
	if !first.Overlaps(second) {
		test.Fatal("stays sharing a night must overlap")
	}
}
