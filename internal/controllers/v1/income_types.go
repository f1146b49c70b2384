package v1

import (
	"time"

	"github.com/bucketly/backend/internal/models"
	"github.com/bucketly/backend/internal/types"
)

// IncomeTransaction is the read-only API representation of an income
// ledger record.
type IncomeTransaction struct {
	ID          string      `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID of the ledger record
	Amount      types.Money `json:"amount" example:"2500.00"`                          // Amount of the record
	Description string      `json:"description" example:"Salary"`                      // Description from the ledger
	Date        time.Time   `json:"date" example:"2024-03-29T00:00:00Z"`               // Date the income occurred
}

func newIncomeTransaction(model models.IncomeTransaction) IncomeTransaction {
	return IncomeTransaction{
		ID:          model.ID.String(),
		Amount:      model.Amount,
		Description: model.Description,
		Date:        model.Date,
	}
}

type IncomeListResponse struct {
	Error *string             `json:"error" example:"the income ledger is currently unavailable, please try again later"` // The error, if any occurred
	Data  []IncomeTransaction `json:"data"`                                                                               // Income records, newest first
}

type SummaryData struct {
	TotalIncome types.Money `json:"totalIncome" example:"500.00"` // Sum of all income records
	Allocated   types.Money `json:"allocated" example:"120.00"`   // Sum of all active bucket balances
	Unallocated types.Money `json:"unallocated" example:"380.00"` // Income not yet assigned to any bucket
}

type SummaryResponse struct {
	Error *string      `json:"error" example:"the income ledger is currently unavailable, please try again later"` // The error, if any occurred
	Data  *SummaryData `json:"data"`                                                                               // The owner's money at a glance
}
