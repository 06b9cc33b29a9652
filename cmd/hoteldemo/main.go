// Command hoteldemo runs the reference reservation scenario against the
// in-memory store and prints the resulting reports.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/skypay/hotel/internal/store/memstore"
	"github.com/skypay/hotel/pkg/hotel"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "hoteldemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	clock := func() int64 { return time.Now().UTC().Unix() }
	service, err := hotel.NewService(memstore.New(), clock)
	if err != nil {
		return err
	}

	fmt.Println("Hotel Reservation Engine - Demo Scenario")
	fmt.Println("========================================")

	type roomSpec struct {
		number hotel.RoomNumber
		kind   hotel.RoomType
		price  hotel.PriceUnits
	}
	for _, spec := range []roomSpec{
		{1, hotel.RoomTypeStandard, 1000},
		{2, hotel.RoomTypeJunior, 2000},
		{3, hotel.RoomTypeMaster, 3000},
	} {
		if err := service.SetRoom(ctx, spec.number, spec.kind, spec.price); err != nil {
			return err
		}
		fmt.Printf("Room %d created: type=%s price=%d/night\n", spec.number.Int(), spec.kind.DisplayName(), spec.price.Int64())
	}

	for _, user := range []struct {
		id      hotel.UserID
		balance hotel.BalanceUnits
	}{{1, 5000}, {2, 10000}} {
		if err := service.SetUser(ctx, user.id, user.balance); err != nil {
			return err
		}
		fmt.Printf("User %d created: balance=%d\n", user.id.Int(), user.balance.Int64())
	}

	june30 := date(2026, 6, 30)
	july7 := date(2026, 7, 7)
	july8 := date(2026, 7, 8)
	july9 := date(2026, 7, 9)

	book(ctx, service, 1, 2, june30, july7) // rejected: insufficient balance
	book(ctx, service, 1, 2, july7, june30) // rejected: checkout before checkin
	book(ctx, service, 1, 1, july7, july8)  // booked for 1000
	book(ctx, service, 2, 1, july7, july9)  // rejected: overlaps the previous stay
	book(ctx, service, 2, 3, july7, july8)  // booked for 3000

	fmt.Println("\nExecuting setRoom(1, master, 10000)")
	if err := service.SetRoom(ctx, 1, hotel.RoomTypeMaster, 10000); err != nil {
		return err
	}

	if err := printReport(ctx, "All Rooms (latest to oldest)", service.RoomReport); err != nil {
		return err
	}
	if err := printReport(ctx, "All Bookings (latest to oldest)", service.BookingReport); err != nil {
		return err
	}
	if err := printReport(ctx, "All Users (latest to oldest)", service.UserReport); err != nil {
		return err
	}
	return nil
}

func book(ctx context.Context, service *hotel.Service, userID hotel.UserID, roomNumber hotel.RoomNumber, checkIn time.Time, checkOut time.Time) {
	fmt.Printf("\nUser %d books room %d, %s to %s\n",
		userID.Int(), roomNumber.Int(), checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
	stay, err := hotel.NewStayRange(checkIn, checkOut)
	if err != nil {
		fmt.Printf("Booking rejected: %v\n", err)
		return
	}
	booking, err := service.BookRoom(ctx, userID, roomNumber, stay)
	if err != nil {
		fmt.Printf("Booking rejected: %v\n", err)
		return
	}
	fmt.Printf("Booking %d confirmed: %d nights, total %d\n", booking.ID.Int64(), booking.Nights, booking.TotalCost)
}

func printReport(ctx context.Context, title string, report func(context.Context) ([]string, error)) error {
	rows, err := report(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s:\n", title)
	for _, row := range rows {
		fmt.Println(row)
	}
	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
