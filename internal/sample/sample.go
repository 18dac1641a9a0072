// Package sample holds the fixed transaction sets used by the CLI when no
// config file is given, and by tests.
package sample

import (
	"github.com/example/txfilter/pkg/transaction"
	"github.com/shopspring/decimal"
)

var (
	one = decimal.NewFromInt(1)
	ten = decimal.NewFromInt(10)
)

func line(amount decimal.Decimal, description string, tax int) transaction.Chargeline {
	return transaction.NewChargeline(amount, description, tax)
}

// Trio returns three single-line transactions of 10 each: two costs
// (Zbyszek, Tomek) and one income (Romek).
func Trio() []transaction.Transaction {
	return []transaction.Transaction{
		transaction.MustNew("Zbyszek", transaction.Cost, line(ten, "rower", 5)),
		transaction.MustNew("Romek", transaction.Income, line(ten, "rolki", 7)),
		transaction.MustNew("Tomek", transaction.Cost, line(ten, "deskorolka", 11)),
	}
}

// Shop returns seven transactions from six issuers totalling 62.
// Two of them are costs; Zbyszek issues two incomes.
func Shop() []transaction.Transaction {
	return []transaction.Transaction{
		transaction.MustNew("Andrzej", transaction.Cost,
			line(ten, "guma do żucia", 90),
			line(ten, "cola", 21)),
		transaction.MustNew("Romek", transaction.Income, line(ten, "cola", 21)),
		transaction.MustNew("Mietek", transaction.Income, line(ten, "czipsy", 23)),
		transaction.MustNew("Wiesiek", transaction.Cost, line(ten, "żelki", 13)),
		transaction.MustNew("Zbyszek", transaction.Income, line(ten, "ciastka", 16)),
		transaction.MustNew("Tadeusz", transaction.Income, line(one, "paluszki", 6)),
		transaction.MustNew("Zbyszek", transaction.Income, line(one, "sok", 7)),
	}
}
