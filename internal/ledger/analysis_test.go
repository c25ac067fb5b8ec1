package ledger_test

import (
	"time"

	"github.com/archons/backend/internal/ledger"
	"github.com/archons/backend/internal/models"
	"github.com/archons/backend/internal/types"
)

func (suite *TestSuiteStandard) createDatedTransaction(accountID uint, date time.Time, kind models.Kind, category, value string) {
	_, err := suite.service.AddTransaction(suite.ctx, accountID, ledger.TransactionInput{
		Date:     date,
		Kind:     kind,
		Category: category,
		Amount:   amount(value),
	})
	suite.Require().Nil(err)
}

func (suite *TestSuiteStandard) TestCategoryTotals() {
	account := suite.createTestAccount()

	march := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	suite.createDatedTransaction(account.ID, march, models.KindIncome, "Salary", "2000")
	suite.createDatedTransaction(account.ID, march, models.KindExpense, "Rent", "800")
	suite.createDatedTransaction(account.ID, march, models.KindExpense, "Food", "50")
	suite.createDatedTransaction(account.ID, april, models.KindExpense, "Food", "25.25")
	suite.createDatedTransaction(account.ID, april, models.KindIncome, "Gifts", "10")

	expenses, err := suite.service.CategoryTotals(suite.ctx, account.ID, models.KindExpense, types.Month{})
	suite.Require().Nil(err)
	suite.Require().Len(expenses, 2)
	suite.Assert().Equal("Food", expenses[0].Category)
	suite.Assert().Equal("75.25", expenses[0].Total.StringFixed(2))
	suite.Assert().Equal("Rent", expenses[1].Category)
	suite.Assert().Equal("800.00", expenses[1].Total.StringFixed(2))

	income, err := suite.service.CategoryTotals(suite.ctx, account.ID, models.KindIncome, types.NewMonth(2024, 4))
	suite.Require().Nil(err)
	suite.Require().Len(income, 1)
	suite.Assert().Equal("Gifts", income[0].Category)
	suite.Assert().Equal("10.00", income[0].Total.StringFixed(2))

	none, err := suite.service.CategoryTotals(suite.ctx, account.ID, models.KindIncome, types.NewMonth(2023, 1))
	suite.Require().Nil(err)
	suite.Assert().Len(none, 0)
}

func (suite *TestSuiteStandard) TestCategoryTotalsErrors() {
	account := suite.createTestAccount()

	_, err := suite.service.CategoryTotals(suite.ctx, account.ID, "Transfer", types.Month{})
	suite.Assert().ErrorIs(err, models.ErrKindInvalid)

	_, err = suite.service.CategoryTotals(suite.ctx, account.ID+1, models.KindIncome, types.Month{})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSummary() {
	account := suite.createTestAccount()

	suite.createDatedTransaction(account.ID, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), models.KindIncome, "Salary", "1000")
	suite.createDatedTransaction(account.ID, time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC), models.KindExpense, "Food", "200")
	suite.createDatedTransaction(account.ID, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), models.KindExpense, "Food", "100")

	summary, err := suite.service.Summary(suite.ctx, account.ID, types.Month{})
	suite.Require().Nil(err)
	suite.Assert().Equal("1000.00", summary.TotalIncome.StringFixed(2))
	suite.Assert().Equal("300.00", summary.TotalExpense.StringFixed(2))
	suite.Assert().Equal("700.00", summary.NetBalance.StringFixed(2))

	summary, err = suite.service.Summary(suite.ctx, account.ID, types.NewMonth(2024, 5))
	suite.Require().Nil(err)
	suite.Assert().Equal("1000.00", summary.TotalIncome.StringFixed(2))
	suite.Assert().Equal("200.00", summary.TotalExpense.StringFixed(2))
	suite.Assert().Equal("800.00", summary.NetBalance.StringFixed(2))
}

func (suite *TestSuiteStandard) TestSummaryEmptyAccount() {
	account := suite.createTestAccount()

	summary, err := suite.service.Summary(suite.ctx, account.ID, types.Month{})
	suite.Require().Nil(err)
	suite.Assert().True(summary.NetBalance.IsZero())
}
