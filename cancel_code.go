package solidgate

import "slices"

// CancelCode is the reason attached to a subscription cancellation.
type CancelCode string

const (
	CancelCodeCardBrandNotSupported              CancelCode = "8.01"
	CancelCodeFraudChargebackReceived            CancelCode = "8.02"
	CancelCodeDisputeReceived                    CancelCode = "8.03"
	CancelCodeFraudAlertReceived                 CancelCode = "8.04"
	CancelCodeFraudDeclineReceived               CancelCode = "8.05"
	CancelCodeCancellationBySupport              CancelCode = "8.06"
	CancelCodeRecurringPaymentBlockedByAntifraud CancelCode = "8.07"
	CancelCodeSubscriptionExpired                CancelCode = "8.08"
	CancelCodeCancellationAfterRedemptionPeriod  CancelCode = "8.09"
	CancelCodeCardTokenExpired                   CancelCode = "8.10"
	CancelCodeTokenRevokedByCustomer             CancelCode = "8.11"
	CancelCodeBankAntifraudSystem                CancelCode = "8.12"
	CancelCodeInvalidAmount                      CancelCode = "8.13"
	CancelCodeCancellationByCustomer             CancelCode = "8.14"
	CancelCodeRecurringTokenNotFound             CancelCode = "8.15"
)

// defaultCancelCodes currently lists every known code.
var defaultCancelCodes = []CancelCode{
	CancelCodeCardBrandNotSupported,
	CancelCodeFraudChargebackReceived,
	CancelCodeDisputeReceived,
	CancelCodeFraudAlertReceived,
	CancelCodeFraudDeclineReceived,
	CancelCodeCancellationBySupport,
	CancelCodeRecurringPaymentBlockedByAntifraud,
	CancelCodeSubscriptionExpired,
	CancelCodeCancellationAfterRedemptionPeriod,
	CancelCodeCardTokenExpired,
	CancelCodeTokenRevokedByCustomer,
	CancelCodeBankAntifraudSystem,
	CancelCodeInvalidAmount,
	CancelCodeCancellationByCustomer,
	CancelCodeRecurringTokenNotFound,
}

// DefaultCancelCodes returns a copy of the default cancellation codes.
func DefaultCancelCodes() []CancelCode {
	return slices.Clone(defaultCancelCodes)
}

// IsDefaultCancellationCode reports whether code belongs to the default set.
func IsDefaultCancellationCode(code string) bool {
	return slices.Contains(defaultCancelCodes, CancelCode(code))
}

func (c CancelCode) String() string { return string(c) }
