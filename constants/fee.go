package constants

// Fee sheet token layout. Fee rows are split on single spaces with empty
// tokens preserved, so runs of padding keep the columns aligned; the dollar
// amounts are pulled separately with a currency pattern.
const (
	FeeTokenAdminFee  = 0 // "ACTIVE" on itemized rows; anything else marks the totals row
	FeeTokenFeeStatus = 1
	FeeTokenCode      = 5
	FeeTokenPayor     = 6
	FeeTokenPayee     = 7
)

// FeeStatusActive marks an itemized fee row; the totals row carries no
// status.
const FeeStatusActive = "ACTIVE"

// RestitutionCode is the fee code whose balance is excluded from the
// "payment to restore" calculation (total balance minus D999 balance).
const RestitutionCode = "D999"

// PayorPattern decides whether the positionally ambiguous payor token is a
// real payor code: three digits with an optional leading non-numeric
// character. Non-matching tokens shift into the payee column.
const PayorPattern = `[^R0-9]\d{3}`
