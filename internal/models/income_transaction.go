package models

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bucketly/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionKind is the type of a ledger transaction.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// IncomeTransaction is a dated record from the income ledger.
//
// These rows are owned by the ledger service, the allocation engine
// only ever reads them. Only income kind rows contribute to the
// allocatable income of an owner.
type IncomeTransaction struct {
	DefaultModel
	OwnerID     uuid.UUID       `gorm:"index:income_owner_kind"`
	Amount      types.Money
	Kind        TransactionKind `gorm:"index:income_owner_kind"`
	Description string
	Date        time.Time
}

// IncomeTransactions returns all income kind records for an owner,
// newest first.
func IncomeTransactions(db *gorm.DB, owner uuid.UUID) ([]IncomeTransaction, error) {
	var transactions []IncomeTransaction
	err := db.
		Where(&IncomeTransaction{OwnerID: owner, Kind: TransactionKindIncome}).
		Order("date DESC").
		Find(&transactions).Error

	return transactions, err
}

// TotalIncome returns the total allocatable income for an owner: the
// sum over all income kind ledger records.
//
// The result is only valid within the transaction scope of db. Callers
// that validate against it must pass the handle of the transaction they
// commit in, the value must never be cached across atomic scopes.
func TotalIncome(db *gorm.DB, owner uuid.UUID) (types.Money, error) {
	var sum sql.NullInt64

	err := db.Model(&IncomeTransaction{}).
		Where(&IncomeTransaction{OwnerID: owner, Kind: TransactionKindIncome}).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
	}

	return types.NewMoney(sum.Int64), nil
}
