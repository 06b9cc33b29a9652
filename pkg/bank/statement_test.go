package bank

import (
	"strings"
	"testing"
	"time"
)

func TestStatementEmptyAccountPrintsHeaderOnly(test *testing.T) {
	test.Parallel()
	account := NewAccount()
	rows := account.Statement()
	if len(rows) != 1 {
		test.Fatalf("expected header only, got %d rows", len(rows))
	}
	if rows[0] != "Date        || Amount || Balance" {
		test.Fatalf("unexpected header: %q", rows[0])
	}
}

func TestStatementMostRecentFirst(test *testing.T) {
	test.Parallel()
	account := NewAccount()
	if err := account.Deposit(1000, kataDate(10, time.January)); err != nil {
		test.Fatalf("deposit: %v", err)
	}
	if err := account.Deposit(2000, kataDate(13, time.January)); err != nil {
		test.Fatalf("deposit: %v", err)
	}
	if err := account.Withdraw(500, kataDate(14, time.January)); err != nil {
		test.Fatalf("withdraw: %v", err)
	}

	want := []string{
		"Date        || Amount || Balance",
		"14/01/2012  || -500   || 2500",
		"13/01/2012  || 2000   || 3000",
		"10/01/2012  || 1000   || 1000",
	}
	rows := account.Statement()
	if len(rows) != len(want) {
		test.Fatalf("expected %d rows, got %d: %q", len(want), len(rows), rows)
	}
	for index, row := range rows {
		if row != want[index] {
			test.Fatalf("row %d mismatch:\n got %q\nwant %q", index, row, want[index])
		}
	}
}

func TestWriteStatementEmitsOneRowPerLine(test *testing.T) {
	test.Parallel()
	account := NewAccount()
	if err := account.Deposit(1000, kataDate(10, time.January)); err != nil {
		test.Fatalf("deposit: %v", err)
	}
	var buffer strings.Builder
	if err := account.WriteStatement(&buffer); err != nil {
		test.Fatalf("write: %v", err)
	}
	want := "Date        || Amount || Balance\n10/01/2012  || 1000   || 1000\n"
	if buffer.String() != want {
		test.Fatalf("unexpected output:\n got %q\nwant %q", buffer.String(), want)
	}
}
