package accounting

import (
	"github.com/flourmill/mill_ledger/internal/utils/money"
	"github.com/shopspring/decimal"
)

// Reconciliation compares a locally computed balance with the backend's.
// Authoritative is always the server value; the local estimate is advisory.
type Reconciliation struct {
	LocalEstimate decimal.Decimal `json:"localEstimate"`
	ServerValue   decimal.Decimal `json:"serverValue"`
	Authoritative decimal.Decimal `json:"authoritative"`
	Drift         decimal.Decimal `json:"drift"`
	InSync        bool            `json:"inSync"`
}

// Reconcile is the hook between a client-side estimate and the backend figure.
// Drift is server minus local, compared at two decimal places.
func Reconcile(localEstimate, serverValue decimal.Decimal) Reconciliation {
	drift := money.Round(serverValue.Sub(localEstimate))
	return Reconciliation{
		LocalEstimate: localEstimate,
		ServerValue:   serverValue,
		Authoritative: serverValue,
		Drift:         drift,
		InSync:        drift.IsZero(),
	}
}
