package bank

import (
	"fmt"
	"io"
	"strconv"
)

const (
	statementHeader     = "Date        || Amount || Balance"
	statementDateLayout = "02/01/2006"
)

// Statement renders the account history most recent first, one row per
// transaction, preceded by the column header.
func (account *Account) Statement() []string {
	transactions := account.Transactions()
	rows := make([]string, 0, len(transactions)+1)
	rows = append(rows, statementHeader)
	for index := len(transactions) - 1; index >= 0; index-- {
		rows = append(rows, formatTransaction(transactions[index]))
	}
	return rows
}

// WriteStatement writes the statement to w, one row per line.
func (account *Account) WriteStatement(writer io.Writer) error {
	for _, row := range account.Statement() {
		if _, err := fmt.Fprintln(writer, row); err != nil {
			return err
		}
	}
	return nil
}

func formatTransaction(transaction Transaction) string {
	date := transaction.Date.Format(statementDateLayout)
	amount := strconv.FormatInt(transaction.Amount, 10)
	return fmt.Sprintf("%-12s|| %-7s|| %d", date+"  ", amount+"   ", transaction.Balance)
}
