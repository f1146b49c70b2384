package v1

import (
	"github.com/bucketly/backend/internal/models"
	"github.com/bucketly/backend/internal/types"
)

// AllocationDirection determines whether money moves into or out of a
// bucket.
type AllocationDirection string

const (
	DirectionAdd    AllocationDirection = "add"
	DirectionRemove AllocationDirection = "remove"
)

type AllocationEditable struct {
	Amount    types.Money         `json:"amount" example:"120.00" minimum:"0.01" multipleOf:"0.01"` // Amount to move, always positive
	Direction AllocationDirection `json:"direction" example:"add" enums:"add,remove"`               // Direction of the move
}

type AllocationResult struct {
	NewBalance     types.Money `json:"newBalance" example:"120.00"`     // Bucket balance after the move
	NewUnallocated types.Money `json:"newUnallocated" example:"380.00"` // Unallocated pool after the move
	Message        string      `json:"message"`                         // Confirmation message
}

type AllocationResponse struct {
	Error *string           `json:"error" example:"the amount exceeds the unallocated income"` // The error, if any occurred
	Data  *AllocationResult `json:"data"`                                                      // The result of the move
}

type AllocationEventListResponse struct {
	Error *string                  `json:"error" example:"there is no bucket matching your query"` // The error, if any occurred
	Data  []models.AllocationEvent `json:"data"`                                                   // Audit log entries, newest first
}
