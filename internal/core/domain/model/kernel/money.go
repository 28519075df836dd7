package kernel

import (
	"fmt"

	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every stored amount is rounded to.
const MoneyScale int32 = 8

// moneyPrecision is the total number of digits of a stored amount; storage
// columns are decimal(18,8).
const moneyPrecision int32 = 18

// MaxMoney is the smallest magnitude that no longer fits in storage.
var MaxMoney = decimal.New(1, moneyPrecision-MoneyScale)

// RoundMoney rounds half away from zero to MoneyScale places.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyScale)
}

// CheckMoneyScale rejects amounts with more than MoneyScale decimal places.
func CheckMoneyScale(param string, d decimal.Decimal) error {
	if !d.Equal(RoundMoney(d)) {
		return errs.NewValueIsInvalidErrorWithCause(
			param, fmt.Errorf("%s has more than %d decimal places", d, MoneyScale),
		)
	}
	return nil
}

// CheckMoneyRange rejects amounts whose magnitude reaches MaxMoney.
func CheckMoneyRange(param string, d decimal.Decimal) error {
	if d.Abs().GreaterThanOrEqual(MaxMoney) {
		return errs.NewValueIsOutOfRangeError(param, d, MaxMoney.Neg(), MaxMoney)
	}
	return nil
}

// CheckMoney applies CheckMoneyScale and CheckMoneyRange.
func CheckMoney(param string, d decimal.Decimal) error {
	if err := CheckMoneyScale(param, d); err != nil {
		return err
	}
	return CheckMoneyRange(param, d)
}
