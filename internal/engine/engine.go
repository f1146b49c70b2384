// Package engine implements the allocation engine: it validates and
// atomically applies all operations that move money between an owner's
// unallocated pool and their buckets.
//
// The engine is the only component that mutates bucket balances. Every
// mutation runs inside a database transaction while holding the owner's
// mutex, and re-checks its preconditions against the income ledger and
// the bucket store inside that transaction. This guarantees that no two
// committed operations for the same owner ever jointly exceed the
// owner's total income.
package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/bucketly/backend/internal/models"
	"github.com/bucketly/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxAttempts bounds the optimistic retries on transient commit
// failures before ErrConflict is surfaced to the caller.
const maxAttempts = 3

type Engine struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// BucketCreate holds the caller-editable fields of a bucket.
type BucketCreate struct {
	Name          string
	MonthlyTarget types.Money
	Color         string
}

// Result reports the state after a successful allocation or
// deallocation.
type Result struct {
	NewBalance     types.Money
	NewUnallocated types.Money
}

// Summary is the owner's money at a glance.
type Summary struct {
	TotalIncome types.Money
	Allocated   types.Money
	Unallocated types.Money
}

// CreateBucket inserts a new active bucket with a zero balance.
func (e *Engine) CreateBucket(ctx context.Context, owner uuid.UUID, create BucketCreate) (models.Bucket, error) {
	if create.MonthlyTarget.IsNegative() {
		return models.Bucket{}, models.ErrBucketTargetNegative
	}

	bucket := models.Bucket{
		OwnerID:       owner,
		Name:          create.Name,
		MonthlyTarget: create.MonthlyTarget,
		Color:         create.Color,
	}

	err := e.serialized(ctx, owner, func(tx *gorm.DB) error {
		return tx.Create(&bucket).Error
	})
	if err != nil {
		return models.Bucket{}, err
	}

	return bucket, nil
}

// UpdateBucket changes the editable fields named in fields. The balance
// is not editable, it only changes through Allocate and Deallocate.
func (e *Engine) UpdateBucket(ctx context.Context, owner, id uuid.UUID, update BucketCreate, fields []any) (models.Bucket, error) {
	if update.MonthlyTarget.IsNegative() {
		return models.Bucket{}, models.ErrBucketTargetNegative
	}

	var bucket models.Bucket
	err := e.serialized(ctx, owner, func(tx *gorm.DB) error {
		var err error
		bucket, err = getBucket(tx, owner, id)
		if err != nil {
			return err
		}

		return tx.Model(&bucket).Select("", fields...).Updates(models.Bucket{
			Name:          update.Name,
			MonthlyTarget: update.MonthlyTarget,
			Color:         update.Color,
		}).Error
	})
	if err != nil {
		return models.Bucket{}, err
	}

	return bucket, nil
}

// DeleteBucket marks the bucket as deleted and returns the balance it
// held. The deletion is terminal. No money is moved: the balance simply
// stops counting towards the allocated sum, which releases it back into
// the owner's unallocated pool.
func (e *Engine) DeleteBucket(ctx context.Context, owner, id uuid.UUID) (types.Money, error) {
	var released types.Money

	err := e.serialized(ctx, owner, func(tx *gorm.DB) error {
		bucket, err := getBucket(tx, owner, id)
		if err != nil {
			return err
		}

		released = bucket.CurrentBalance
		return tx.Delete(&bucket).Error
	})
	if err != nil {
		return 0, err
	}

	return released, nil
}

// Allocate moves amount from the owner's unallocated pool into the
// bucket.
//
// The unallocated pool is derived state. It is re-computed from the
// income ledger and the active bucket balances inside the transaction,
// immediately before the write, so concurrent allocations can never
// jointly overcommit it.
func (e *Engine) Allocate(ctx context.Context, owner, id uuid.UUID, amount types.Money) (Result, error) {
	if !amount.IsPositive() {
		return Result{}, ErrAmountNotPositive
	}

	var result Result
	err := e.serialized(ctx, owner, func(tx *gorm.DB) error {
		bucket, err := getBucket(tx, owner, id)
		if err != nil {
			return err
		}

		unallocated, err := unallocated(tx, owner)
		if err != nil {
			return err
		}

		if amount.GreaterThan(unallocated) {
			return ErrInsufficientUnallocated
		}

		result = Result{
			NewBalance:     bucket.CurrentBalance.Add(amount),
			NewUnallocated: unallocated.Sub(amount),
		}

		return applyDelta(tx, bucket, amount, result.NewBalance)
	})
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

// Deallocate moves amount out of the bucket back into the owner's
// unallocated pool.
func (e *Engine) Deallocate(ctx context.Context, owner, id uuid.UUID, amount types.Money) (Result, error) {
	if !amount.IsPositive() {
		return Result{}, ErrAmountNotPositive
	}

	var result Result
	err := e.serialized(ctx, owner, func(tx *gorm.DB) error {
		bucket, err := getBucket(tx, owner, id)
		if err != nil {
			return err
		}

		if amount.GreaterThan(bucket.CurrentBalance) {
			return ErrInsufficientBalance
		}

		unallocated, err := unallocated(tx, owner)
		if err != nil {
			return err
		}

		result = Result{
			NewBalance:     bucket.CurrentBalance.Sub(amount),
			NewUnallocated: unallocated.Add(amount),
		}

		return applyDelta(tx, bucket, amount.Neg(), result.NewBalance)
	})
	if err != nil {
		return Result{}, err
	}

	return result, nil
}

// Unallocated returns the owner's current unallocated pool. Read-only,
// takes no lock.
func (e *Engine) Unallocated(ctx context.Context, owner uuid.UUID) (types.Money, error) {
	return unallocated(e.db.WithContext(ctx), owner)
}

// GetSummary returns the owner's income, allocated and unallocated
// totals. Read-only, takes no lock. Both sums are read in one
// transaction so they are consistent with each other.
func (e *Engine) GetSummary(ctx context.Context, owner uuid.UUID) (Summary, error) {
	var summary Summary

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		income, err := models.TotalIncome(tx, owner)
		if err != nil {
			return err
		}

		allocated, err := models.SumActiveBalances(tx, owner)
		if err != nil {
			return err
		}

		summary = Summary{
			TotalIncome: income,
			Allocated:   allocated,
			Unallocated: income.Sub(allocated),
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	return summary, nil
}

// serialized runs fn in a database transaction while holding the
// owner's mutex. Transient commit failures are retried up to
// maxAttempts times, then surfaced as ErrConflict. A canceled context
// rolls the transaction back, there is no half-applied state.
func (e *Engine) serialized(ctx context.Context, owner uuid.UUID, fn func(tx *gorm.DB) error) error {
	lock := ownerLock(owner)
	lock.Lock()
	defer lock.Unlock()

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = e.db.WithContext(ctx).Transaction(fn)
		if err == nil || !retryable(err) {
			return err
		}
	}

	return fmt.Errorf("%w: %v", ErrConflict, err)
}

// retryable reports whether an error is a transient database conflict
// that a fresh transaction might not hit again.
func retryable(err error) bool {
	msg := err.Error()

	return strings.Contains(msg, "database is locked") || // sqlite SQLITE_BUSY
		strings.Contains(msg, "could not serialize access") || // postgres serialization failure
		strings.Contains(msg, "deadlock detected")
}

// getBucket loads an active bucket, scoped to its owner. Buckets of
// other owners are indistinguishable from absent ones.
func getBucket(tx *gorm.DB, owner, id uuid.UUID) (models.Bucket, error) {
	var bucket models.Bucket
	err := tx.First(&bucket, "id = ? AND owner_id = ?", id, owner).Error
	if err != nil {
		return models.Bucket{}, err
	}

	return bucket, nil
}

// unallocated derives the unallocated pool inside the scope of tx.
func unallocated(tx *gorm.DB, owner uuid.UUID) (types.Money, error) {
	income, err := models.TotalIncome(tx, owner)
	if err != nil {
		return 0, err
	}

	allocated, err := models.SumActiveBalances(tx, owner)
	if err != nil {
		return 0, err
	}

	return income.Sub(allocated), nil
}

// applyDelta writes the new balance and the matching audit event in the
// transaction.
func applyDelta(tx *gorm.DB, bucket models.Bucket, delta types.Money, newBalance types.Money) error {
	err := tx.Model(&bucket).Update("current_balance", newBalance).Error
	if err != nil {
		return err
	}

	return tx.Create(&models.AllocationEvent{
		OwnerID:          bucket.OwnerID,
		BucketID:         bucket.ID,
		Delta:            delta,
		ResultingBalance: newBalance,
	}).Error
}
