package models

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/bucketly/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultBucketColor is used when a bucket is created without a color.
const DefaultBucketColor = "#3b82f6"

// Bucket is a named sub-allocation of an owner's income with its own
// running balance.
//
// A deleted bucket is soft deleted and terminal: it is excluded from
// all queries and sums, which releases its balance back into the
// owner's unallocated pool.
type Bucket struct {
	DefaultModel
	OwnerID        uuid.UUID   `gorm:"uniqueIndex:bucket_owner_name,where:deleted_at IS NULL"`
	Name           string      `gorm:"uniqueIndex:bucket_owner_name,where:deleted_at IS NULL"`
	MonthlyTarget  types.Money // Advisory spending target, never enforced
	CurrentBalance types.Money
	Color          string
}

var (
	ErrBucketNameEmpty       = errors.New("the bucket name must not be empty")
	ErrBucketNameNotUnique   = errors.New("the bucket name is already in use for this owner")
	ErrBucketTargetNegative  = errors.New("the monthly target must not be negative")
	ErrBucketBalanceNegative = errors.New("the bucket balance must not be negative")
)

// BeforeSave trims whitespace and sets the default color.
func (b *Bucket) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Color = strings.TrimSpace(b.Color)

	if b.Color == "" {
		b.Color = DefaultBucketColor
	}

	return nil
}

func (b *Bucket) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Bucket)
	return b.checkName(tx, toSave.OwnerID, toSave.Name, uuid.Nil)
}

// BeforeUpdate verifies the state of the bucket before
// committing an update to the database.
func (b *Bucket) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("Name") {
		toSave := tx.Statement.Dest.(Bucket)
		return b.checkName(tx, b.OwnerID, toSave.Name, b.ID)
	}

	return nil
}

// AfterSave enforces the amount constraints.
func (b *Bucket) AfterSave(_ *gorm.DB) error {
	if b.MonthlyTarget.IsNegative() {
		return ErrBucketTargetNegative
	}

	if b.CurrentBalance.IsNegative() {
		return ErrBucketBalanceNegative
	}

	return nil
}

// checkName verifies that the name is usable: non-empty and not yet
// used by another active bucket of the same owner. The comparison is
// case-insensitive, the unique index only catches exact duplicates.
func (b *Bucket) checkName(tx *gorm.DB, owner uuid.UUID, name string, self uuid.UUID) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBucketNameEmpty
	}

	var count int64
	err := tx.Model(&Bucket{}).
		Where("owner_id = ? AND LOWER(name) = LOWER(?) AND id != ?", owner, name, self).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrBucketNameNotUnique
	}

	return nil
}

// Events returns the audit log for this bucket, newest first.
func (b Bucket) Events(db *gorm.DB) ([]AllocationEvent, error) {
	var events []AllocationEvent
	err := db.
		Where(&AllocationEvent{BucketID: b.ID}).
		Order("created_at DESC").
		Find(&events).Error

	return events, err
}

// ActiveBuckets returns all active buckets for an owner, oldest first.
func ActiveBuckets(db *gorm.DB, owner uuid.UUID) ([]Bucket, error) {
	var buckets []Bucket
	err := db.
		Where(&Bucket{OwnerID: owner}).
		Order("created_at ASC").
		Find(&buckets).Error

	return buckets, err
}

// SumActiveBalances returns the sum of all active bucket balances for
// an owner. Soft deleted buckets do not count, their balance has been
// released back into the unallocated pool.
func SumActiveBalances(db *gorm.DB, owner uuid.UUID) (types.Money, error) {
	var sum sql.NullInt64

	err := db.Model(&Bucket{}).
		Where(&Bucket{OwnerID: owner}).
		Select("SUM(current_balance)").
		Row().
		Scan(&sum)
	if err != nil {
		return 0, err
	}

	return types.NewMoney(sum.Int64), nil
}
