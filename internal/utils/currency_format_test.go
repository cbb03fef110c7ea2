package utils_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tripweave/tripsplit/internal/utils"
)

func TestClassifyBalance(t *testing.T) {
	tests := []struct {
		name    string
		balance float64
		want    utils.BalanceStatus
	}{
		{"positive balance is owed", 12.34, utils.BalanceOwed},
		{"negative balance owes", -0.02, utils.BalanceOwes},
		{"zero is settled", 0, utils.BalanceSettled},
		{"sub-cent positive is settled", 0.005, utils.BalanceSettled},
		{"sub-cent negative is settled", -0.005, utils.BalanceSettled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.ClassifyBalance(decimal.NewFromFloat(tt.balance)))
		})
	}
}

func TestFormatSignedAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"creditor gets plus prefix", 50, "+50.00 EUR"},
		{"debtor gets minus prefix", -12.345, "-12.35 EUR"},
		{"settled renders unsigned", 0.004, "0.00 EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatSignedAmount(decimal.NewFromFloat(tt.amount), "EUR"))
		})
	}
}
