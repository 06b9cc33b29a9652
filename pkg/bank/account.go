// Package bank implements a single-account ledger: deposits, withdrawals,
// and a reverse-chronological printed statement. It is the simpler sibling
// of the reservation engine's booking ledger and follows the same rules:
// validate first, mutate last, append-only history.
package bank

import (
	"fmt"
	"sync"
	"time"
)

// Transaction is one immutable line in the account history. Balance is the
// running balance immediately after the transaction applied.
type Transaction struct {
	Date    time.Time
	Amount  int64
	Balance int64
}

// Account holds a balance and its ordered transaction history.
type Account struct {
	mutex        sync.Mutex
	balance      int64
	transactions []Transaction
}

// NewAccount returns an empty account.
func NewAccount() *Account {
	return &Account{}
}

// Deposit credits a strictly positive amount, recorded on the supplied date.
func (account *Account) Deposit(amount int64, date time.Time) error {
	if amount <= 0 {
		return fmt.Errorf("%w: deposit amount must be positive, received %d", ErrInvalidAmount, amount)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: deposit date is required", ErrInvalidDate)
	}
	account.mutex.Lock()
	defer account.mutex.Unlock()
	account.balance += amount
	account.transactions = append(account.transactions, Transaction{
		Date:    date,
		Amount:  amount,
		Balance: account.balance,
	})
	return nil
}

// Withdraw debits a strictly positive amount, recorded on the supplied date
// and rejecting overdrafts. All checks run before any mutation.
func (account *Account) Withdraw(amount int64, date time.Time) error {
	if amount <= 0 {
		return fmt.Errorf("%w: withdrawal amount must be positive, received %d", ErrInvalidAmount, amount)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: withdrawal date is required", ErrInvalidDate)
	}
	account.mutex.Lock()
	defer account.mutex.Unlock()
	if account.balance < amount {
		return fmt.Errorf("%w: available %d, requested %d", ErrInsufficientBalance, account.balance, amount)
	}
	account.balance -= amount
	account.transactions = append(account.transactions, Transaction{
		Date:    date,
		Amount:  -amount,
		Balance: account.balance,
	})
	return nil
}

// Balance returns the current balance.
func (account *Account) Balance() int64 {
	account.mutex.Lock()
	defer account.mutex.Unlock()
	return account.balance
}

// Transactions returns a copy of the history in transaction order.
func (account *Account) Transactions() []Transaction {
	account.mutex.Lock()
	defer account.mutex.Unlock()
	history := make([]Transaction, len(account.transactions))
	copy(history, account.transactions)
	return history
}
