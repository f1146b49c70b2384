package models_test

import (
	"time"

	"github.com/bucketly/backend/internal/models"
	"github.com/bucketly/backend/internal/types"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestIncomeTransactions() {
	owner := uuid.New()

	older := suite.createTestIncome(models.IncomeTransaction{
		OwnerID:     owner,
		Amount:      types.NewMoney(250000),
		Description: "Salary",
		Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	newer := suite.createTestIncome(models.IncomeTransaction{
		OwnerID:     owner,
		Amount:      types.NewMoney(5000),
		Description: "Refund",
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	// Expenses and other owners do not show up
	_ = suite.createTestIncome(models.IncomeTransaction{
		OwnerID: owner,
		Kind:    models.TransactionKindExpense,
		Amount:  types.NewMoney(999),
		Date:    time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestIncome(models.IncomeTransaction{
		OwnerID: uuid.New(),
		Amount:  types.NewMoney(100000),
		Date:    time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
	})

	transactions, err := models.IncomeTransactions(models.DB, owner)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), transactions, 2)

	// Newest first
	assert.Equal(suite.T(), newer.ID, transactions[0].ID)
	assert.Equal(suite.T(), older.ID, transactions[1].ID)
}

func (suite *TestSuiteStandard) TestTotalIncome() {
	owner := uuid.New()

	// An owner without any records has no income
	total, err := models.TotalIncome(models.DB, owner)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), total.IsZero())

	_ = suite.createTestIncome(models.IncomeTransaction{OwnerID: owner, Amount: types.NewMoney(250000)})
	_ = suite.createTestIncome(models.IncomeTransaction{OwnerID: owner, Amount: types.NewMoney(7550)})
	_ = suite.createTestIncome(models.IncomeTransaction{OwnerID: owner, Kind: models.TransactionKindExpense, Amount: types.NewMoney(10000)})
	_ = suite.createTestIncome(models.IncomeTransaction{OwnerID: uuid.New(), Amount: types.NewMoney(123456)})

	total, err = models.TotalIncome(models.DB, owner)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), types.NewMoney(257550), total)
}

func (suite *TestSuiteStandard) TestTotalIncomeLedgerUnavailable() {
	suite.CloseDB()

	_, err := models.TotalIncome(models.DB, uuid.New())
	assert.ErrorIs(suite.T(), err, models.ErrLedgerUnavailable)
}
