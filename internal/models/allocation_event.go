package models

import (
	"time"

	"github.com/bucketly/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllocationEvent is the audit record for one balance mutation of a
// bucket. Events are append-only: they are written in the same
// transaction as the balance change and never updated or deleted, a
// deleted bucket keeps its history.
type AllocationEvent struct {
	ID               uuid.UUID   `json:"id" example:"d1b8b4a6-4788-4cc9-aa0b-b4b351bbbf64"`
	CreatedAt        time.Time   `json:"createdAt" example:"2022-04-02T19:28:44.491514Z"`
	OwnerID          uuid.UUID   `json:"-" gorm:"index"`
	BucketID         uuid.UUID   `json:"bucketId" gorm:"index"`
	Delta            types.Money `json:"delta" example:"120.00"`            // Signed balance change, positive for allocate
	ResultingBalance types.Money `json:"resultingBalance" example:"120.00"` // Bucket balance after the change
}

func (e *AllocationEvent) BeforeCreate(_ *gorm.DB) error {
	e.ID = uuid.New()
	return nil
}
