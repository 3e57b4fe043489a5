package delivery

import (
	"fmt"

	"flowerdelivery/internal/pkg/errs"
)

// Settlement is how a delivery is paid for. It is fixed at creation.
type Settlement int

const (
	SettlementUnknown Settlement = iota
	SettlementPrepaid
	SettlementCollect
	SettlementOffice
	SettlementReceiptRequired
)

var settlementCodes = map[Settlement]string{
	SettlementPrepaid:         "PREPAID",
	SettlementCollect:         "COLLECT",
	SettlementOffice:          "OFFICE",
	SettlementReceiptRequired: "RECEIPT_REQUIRED",
}

var settlementLabels = map[Settlement]string{
	SettlementPrepaid:         "선불",
	SettlementCollect:         "착불",
	SettlementOffice:          "사무실",
	SettlementReceiptRequired: "인수증",
}

// ParseSettlement converts a wire code such as "COLLECT" into a Settlement.
func ParseSettlement(code string) (Settlement, error) {
	for m, c := range settlementCodes {
		if c == code {
			return m, nil
		}
	}
	return SettlementUnknown, errs.NewValueIsInvalidErrorWithCause("settlement",
		fmt.Errorf("%q is not a valid settlement method", code))
}

func (m Settlement) String() string {
	if c, ok := settlementCodes[m]; ok {
		return c
	}
	return "UNKNOWN"
}

// Label returns the Korean label shown on delivery cards. Unknown methods
// fall back to their code.
func (m Settlement) Label() string {
	if l, ok := settlementLabels[m]; ok {
		return l
	}
	return m.String()
}

func (m Settlement) Validate() error {
	if _, ok := settlementCodes[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("settlement", fmt.Errorf("%d is not a valid settlement method", m))
	}
	return nil
}
