package ledger_test

import (
	"testing"
	"time"

	"github.com/archons/backend/internal/events"
	"github.com/archons/backend/internal/ledger"
	"github.com/archons/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func (suite *TestSuiteStandard) TestAddTransactionRunningTotal() {
	account := suite.createTestAccount()

	income := suite.createTestTransaction(account.ID, models.KindIncome, "Salary", "1000")
	suite.Assert().Equal("1000.00", income.RunningTotal.StringFixed(2))

	expense := suite.createTestTransaction(account.ID, models.KindExpense, "Food", "200")
	suite.Assert().Greater(expense.ID, income.ID)
	suite.Assert().Equal("800.00", expense.RunningTotal.StringFixed(2))

	suite.assertRunningTotals(account.ID)
}

func (suite *TestSuiteStandard) TestAddTransactionDefaults() {
	account := suite.createTestAccount()

	before := time.Now()
	transaction, err := suite.service.AddTransaction(suite.ctx, account.ID, ledger.TransactionInput{
		Kind:     models.KindIncome,
		Category: "  Gifts ",
		Amount:   amount("12.50"),
	})
	suite.Require().Nil(err)

	suite.Assert().Equal("Gifts", transaction.Category)
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
	suite.Assert().WithinDuration(before, transaction.Date, time.Minute)
}

func (suite *TestSuiteStandard) TestAddTransactionInvalidInput() {
	account := suite.createTestAccount()

	tests := []struct {
		name  string
		input ledger.TransactionInput
		err   error
	}{
		{"Zero amount", ledger.TransactionInput{Kind: models.KindIncome, Category: "Salary", Amount: decimal.Zero}, models.ErrAmountNotPositive},
		{"Negative amount", ledger.TransactionInput{Kind: models.KindExpense, Category: "Food", Amount: amount("-5")}, models.ErrAmountNotPositive},
		{"Three decimal places", ledger.TransactionInput{Kind: models.KindExpense, Category: "Food", Amount: amount("1.005")}, models.ErrAmountPrecision},
		{"Unknown kind", ledger.TransactionInput{Kind: "Transfer", Category: "Food", Amount: amount("5")}, models.ErrKindInvalid},
		{"No category", ledger.TransactionInput{Kind: models.KindExpense, Category: " ", Amount: amount("5")}, models.ErrCategoryEmpty},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := suite.service.AddTransaction(suite.ctx, account.ID, tt.input)
			suite.Assert().ErrorIs(err, tt.err)
			suite.Assert().ErrorIs(err, models.ErrInvalidInput)
		})
	}

	transactions, err := suite.service.ListTransactions(suite.ctx, account.ID, ledger.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 0)
}

func (suite *TestSuiteStandard) TestAddTransactionAccountNotFound() {
	_, err := suite.service.AddTransaction(suite.ctx, 42, ledger.TransactionInput{
		Kind:     models.KindIncome,
		Category: "Salary",
		Amount:   amount("10"),
	})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAddExpenseWithoutBudget() {
	account := suite.createTestAccount()

	_, err := suite.service.AddTransaction(suite.ctx, account.ID, ledger.TransactionInput{
		Kind:     models.KindExpense,
		Category: "Travel",
		Amount:   amount("300"),
	})
	suite.Require().Nil(err)

	budgets, err := suite.service.GetBudgets(suite.ctx, account.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(budgets, 0, "Adding an expense must not create a budget")
}

func (suite *TestSuiteStandard) TestAddTransactionPublishesEvent() {
	account := suite.createTestAccount()
	transaction := suite.createTestTransaction(account.ID, models.KindExpense, "Food", "5")

	recorded := suite.events.Events()
	suite.Require().Len(recorded, 1)
	suite.Assert().Equal(events.TransactionAdded, recorded[0].Type)
	suite.Assert().Equal(account.ID, recorded[0].AccountID)
	suite.Assert().Equal(transaction.ID, recorded[0].TransactionID)
	suite.Assert().Equal("Food", recorded[0].Category)
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	account := suite.createTestAccount()
	transaction := suite.createTestTransaction(account.ID, models.KindIncome, "Salary", "99.99")

	found, err := suite.service.GetTransaction(suite.ctx, transaction.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(transaction.ID, found.ID)
	suite.Assert().Equal("99.99", found.Amount.StringFixed(2))

	_, err = suite.service.GetTransaction(suite.ctx, transaction.ID+1)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestListTransactions() {
	account := suite.createTestAccount()
	other := suite.createTestAccount()

	suite.createTestTransaction(account.ID, models.KindIncome, "Salary", "1000")
	suite.createTestTransaction(other.ID, models.KindIncome, "Salary", "5")
	suite.createTestTransaction(account.ID, models.KindExpense, "Food:Groceries", "20")
	suite.createTestTransaction(account.ID, models.KindExpense, "Food:Restaurants", "40")
	suite.createTestTransaction(account.ID, models.KindExpense, "Rent", "500")

	tests := []struct {
		name   string
		filter ledger.TransactionFilter
		len    int
	}{
		{"All", ledger.TransactionFilter{}, 4},
		{"Expenses", ledger.TransactionFilter{Kind: models.KindExpense}, 3},
		{"Income", ledger.TransactionFilter{Kind: models.KindIncome}, 1},
		{"Category glob", ledger.TransactionFilter{Category: "Food*"}, 2},
		{"Exact category", ledger.TransactionFilter{Category: "Rent"}, 1},
		{"Kind and category", ledger.TransactionFilter{Kind: models.KindIncome, Category: "Food*"}, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transactions, err := suite.service.ListTransactions(suite.ctx, account.ID, tt.filter)
			suite.Require().Nil(err)
			suite.Assert().Len(transactions, tt.len)

			for _, transaction := range transactions {
				suite.Assert().Equal(account.ID, transaction.AccountID)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestListTransactionsAccountNotFound() {
	_, err := suite.service.ListTransactions(suite.ctx, 17, ledger.TransactionFilter{})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestListTransactionsEmpty() {
	account := suite.createTestAccount()

	transactions, err := suite.service.ListTransactions(suite.ctx, account.ID, ledger.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Assert().NotNil(transactions)
	suite.Assert().Len(transactions, 0)
}

func (suite *TestSuiteStandard) TestUpdateTransactionRecomputesLaterTotals() {
	account := suite.createTestAccount()

	t1 := suite.createTestTransaction(account.ID, models.KindIncome, "Salary", "100")
	t2 := suite.createTestTransaction(account.ID, models.KindExpense, "Food", "30")
	t3 := suite.createTestTransaction(account.ID, models.KindIncome, "Gifts", "50")

	newAmount := amount("60")
	updated, total, err := suite.service.UpdateTransaction(suite.ctx, t2.ID, ledger.TransactionPatch{Amount: &newAmount})
	suite.Require().Nil(err)

	suite.Assert().Equal("40.00", updated.RunningTotal.StringFixed(2), "The edited transaction must carry its prefix sum, not the account total")
	suite.Assert().Equal("90.00", total.StringFixed(2))

	found, err := suite.service.GetTransaction(suite.ctx, t3.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("90.00", found.RunningTotal.StringFixed(2))

	found, err = suite.service.GetTransaction(suite.ctx, t1.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("100.00", found.RunningTotal.StringFixed(2))

	suite.assertRunningTotals(account.ID)
}

func (suite *TestSuiteStandard) TestUpdateTransactionAllFields() {
	account := suite.createTestAccount()

	suite.createTestTransaction(account.ID, models.KindIncome, "Salary", "100")
	t2 := suite.createTestTransaction(account.ID, models.KindIncome, "Gifts", "30")

	date := time.Date(2024, 3, 14, 12, 0, 0, 0, time.UTC)
	kind := models.KindExpense
	category := "Books"
	newAmount := amount("45.5")

	updated, total, err := suite.service.UpdateTransaction(suite.ctx, t2.ID, ledger.TransactionPatch{
		Date:     &date,
		Kind:     &kind,
		Category: &category,
		Amount:   &newAmount,
	})
	suite.Require().Nil(err)

	suite.Assert().True(date.Equal(updated.Date))
	suite.Assert().Equal(models.KindExpense, updated.Kind)
	suite.Assert().Equal("Books", updated.Category)
	suite.Assert().Equal("45.50", updated.Amount.StringFixed(2))
	suite.Assert().Equal("54.50", updated.RunningTotal.StringFixed(2))
	suite.Assert().Equal("54.50", total.StringFixed(2))

	recorded := suite.events.Events()
	suite.Assert().Equal(events.TransactionUpdated, recorded[len(recorded)-1].Type)
}

func (suite *TestSuiteStandard) TestUpdateTransactionReconcilesBudgets() {
	account := suite.createTestAccount()

	_, err := suite.service.SetBudget(suite.ctx, account.ID, "Food", amount("500"))
	suite.Require().Nil(err)
	_, err = suite.service.SetBudget(suite.ctx, account.ID, "Fun", amount("100"))
	suite.Require().Nil(err)

	expense := suite.createTestTransaction(account.ID, models.KindExpense, "Food", "200")
	suite.createTestTransaction(account.ID, models.KindExpense, "Food", "50")

	// Changing the amount
	newAmount := amount("120")
	_, _, err = suite.service.UpdateTransaction(suite.ctx, expense.ID, ledger.TransactionPatch{Amount: &newAmount})
	suite.Require().Nil(err)
	suite.assertBudgetsConsistent(account.ID)

	// Moving to another category
	category := "Fun"
	_, _, err = suite.service.UpdateTransaction(suite.ctx, expense.ID, ledger.TransactionPatch{Category: &category})
	suite.Require().Nil(err)
	suite.assertBudgetsConsistent(account.ID)

	// Turning the expense into income
	kind := models.KindIncome
	_, _, err = suite.service.UpdateTransaction(suite.ctx, expense.ID, ledger.TransactionPatch{Kind: &kind})
	suite.Require().Nil(err)
	suite.assertBudgetsConsistent(account.ID)

	budgets, err := suite.service.GetBudgets(suite.ctx, account.ID)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 2)
	suite.Assert().Equal("Food", budgets[0].Category)
	suite.Assert().Equal("50.00", budgets[0].Spent.StringFixed(2))
	suite.Assert().Equal("Fun", budgets[1].Category)
	suite.Assert().Equal("0.00", budgets[1].Spent.StringFixed(2))
}

func (suite *TestSuiteStandard) TestUpdateTransactionIntoCategoryWithoutBudget() {
	account := suite.createTestAccount()

	_, err := suite.service.SetBudget(suite.ctx, account.ID, "Food", amount("500"))
	suite.Require().Nil(err)

	expense := suite.createTestTransaction(account.ID, models.KindExpense, "Food", "200")

	category := "Travel"
	_, _, err = suite.service.UpdateTransaction(suite.ctx, expense.ID, ledger.TransactionPatch{Category: &category})
	suite.Require().Nil(err)

	budgets, err := suite.service.GetBudgets(suite.ctx, account.ID)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 1, "No budget must be created for the new category")
	suite.Assert().Equal("0.00", budgets[0].Spent.StringFixed(2))
	suite.Assert().Equal("500.00", budgets[0].Remaining.StringFixed(2))
}

func (suite *TestSuiteStandard) TestUpdateTransactionInvalid() {
	account := suite.createTestAccount()
	transaction := suite.createTestTransaction(account.ID, models.KindIncome, "Salary", "100")
	suite.createTestTransaction(account.ID, models.KindIncome, "Salary", "100")

	newAmount := amount("0")
	_, _, err := suite.service.UpdateTransaction(suite.ctx, transaction.ID, ledger.TransactionPatch{Amount: &newAmount})
	suite.Assert().ErrorIs(err, models.ErrAmountNotPositive)

	found, err := suite.service.GetTransaction(suite.ctx, transaction.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("100.00", found.Amount.StringFixed(2), "A failed update must not change the transaction")
	suite.assertRunningTotals(account.ID)
}

func (suite *TestSuiteStandard) TestUpdateTransactionNotFound() {
	category := "Food"
	_, _, err := suite.service.UpdateTransaction(suite.ctx, 404, ledger.TransactionPatch{Category: &category})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransactionRenormalizesLaterEntries() {
	account := suite.createTestAccount()

	t1 := suite.createTestTransaction(account.ID, models.KindIncome, "Salary", "100")
	t2 := suite.createTestTransaction(account.ID, models.KindExpense, "Food", "30")
	t3 := suite.createTestTransaction(account.ID, models.KindIncome, "Gifts", "50")

	suite.Assert().Equal("70.00", t2.RunningTotal.StringFixed(2))
	suite.Assert().Equal("120.00", t3.RunningTotal.StringFixed(2))

	err := suite.service.DeleteTransaction(suite.ctx, t2.ID)
	suite.Require().Nil(err)

	found, err := suite.service.GetTransaction(suite.ctx, t3.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("150.00", found.RunningTotal.StringFixed(2))

	found, err = suite.service.GetTransaction(suite.ctx, t1.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal("100.00", found.RunningTotal.StringFixed(2))

	_, err = suite.service.GetTransaction(suite.ctx, t2.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	recorded := suite.events.Events()
	suite.Assert().Equal(events.TransactionDeleted, recorded[len(recorded)-1].Type)
	suite.Assert().Equal(t2.ID, recorded[len(recorded)-1].TransactionID)
}

func (suite *TestSuiteStandard) TestDeleteTransactionNotFound() {
	err := suite.service.DeleteTransaction(suite.ctx, 1)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

// TestDeleteTransactionNegativeSpent verifies that a budget that is out of
// sync with the ledger is decremented below zero instead of failing.
func (suite *TestSuiteStandard) TestDeleteTransactionNegativeSpent() {
	account := suite.createTestAccount()

	expense := suite.createTestTransaction(account.ID, models.KindExpense, "Food", "80")
	budget, err := suite.service.SetBudget(suite.ctx, account.ID, "Food", amount("100"))
	suite.Require().Nil(err)

	// Drift the budget away from the ledger
	err = suite.db.Model(&models.Budget{}).Where("id = ?", budget.ID).UpdateColumn("spent", decimal.Zero).Error
	suite.Require().Nil(err)

	err = suite.service.DeleteTransaction(suite.ctx, expense.ID)
	suite.Require().Nil(err)

	budgets, err := suite.service.GetBudgets(suite.ctx, account.ID)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 1)
	suite.Assert().Equal("-80.00", budgets[0].Spent.StringFixed(2))
	suite.Assert().Equal("180.00", budgets[0].Remaining.StringFixed(2))

	// Setting the budget again repairs it
	_, err = suite.service.SetBudget(suite.ctx, account.ID, "Food", amount("100"))
	suite.Require().Nil(err)
	suite.assertBudgetsConsistent(account.ID)
}

func (suite *TestSuiteStandard) TestMixedSequenceKeepsInvariants() {
	account := suite.createTestAccount()

	_, err := suite.service.SetBudget(suite.ctx, account.ID, "Food", amount("300"))
	suite.Require().Nil(err)
	_, err = suite.service.SetBudget(suite.ctx, account.ID, "Rent", amount("900"))
	suite.Require().Nil(err)

	var ids []uint
	for i, c := range []struct {
		kind     models.Kind
		category string
		amount   string
	}{
		{models.KindIncome, "Salary", "2500"},
		{models.KindExpense, "Rent", "850"},
		{models.KindExpense, "Food", "42.10"},
		{models.KindExpense, "Food", "17.35"},
		{models.KindIncome, "Gifts", "20"},
		{models.KindExpense, "Fun", "60"},
		{models.KindExpense, "Food", "8.99"},
	} {
		transaction := suite.createTestTransaction(account.ID, c.kind, c.category, c.amount)
		ids = append(ids, transaction.ID)
		suite.Assert().Len(ids, i+1)
	}

	suite.Require().Nil(suite.service.DeleteTransaction(suite.ctx, ids[2]))

	newAmount := amount("900")
	_, _, err = suite.service.UpdateTransaction(suite.ctx, ids[1], ledger.TransactionPatch{Amount: &newAmount})
	suite.Require().Nil(err)

	category := "Food"
	_, _, err = suite.service.UpdateTransaction(suite.ctx, ids[5], ledger.TransactionPatch{Category: &category})
	suite.Require().Nil(err)

	suite.Require().Nil(suite.service.DeleteTransaction(suite.ctx, ids[0]))
	suite.createTestTransaction(account.ID, models.KindExpense, "Food", "3.01")

	suite.assertRunningTotals(account.ID)
	suite.assertBudgetsConsistent(account.ID)
}

func (suite *TestSuiteStandard) TestConcurrentUpdatesSameAccount() {
	account := suite.createTestAccount()

	_, err := suite.service.SetBudget(suite.ctx, account.ID, "Food", amount("1000"))
	suite.Require().Nil(err)

	var transactions []models.Transaction
	for range 10 {
		transactions = append(transactions, suite.createTestTransaction(account.ID, models.KindExpense, "Food", "10"))
	}

	var g errgroup.Group
	for i, transaction := range transactions {
		g.Go(func() error {
			if i%3 == 0 {
				return suite.service.DeleteTransaction(suite.ctx, transaction.ID)
			}

			newAmount := decimal.NewFromInt(int64(i + 1))
			_, _, err := suite.service.UpdateTransaction(suite.ctx, transaction.ID, ledger.TransactionPatch{Amount: &newAmount})
			return err
		})
	}
	suite.Require().Nil(g.Wait())

	suite.assertRunningTotals(account.ID)
	suite.assertBudgetsConsistent(account.ID)
}

func (suite *TestSuiteStandard) TestConcurrentAddsDifferentAccounts() {
	accounts := []models.Account{suite.createTestAccount(), suite.createTestAccount(), suite.createTestAccount()}

	var g errgroup.Group
	for _, account := range accounts {
		for range 5 {
			g.Go(func() error {
				_, err := suite.service.AddTransaction(suite.ctx, account.ID, ledger.TransactionInput{
					Kind:     models.KindIncome,
					Category: "Salary",
					Amount:   amount("1.25"),
				})
				return err
			})
		}
	}
	suite.Require().Nil(g.Wait())

	for _, account := range accounts {
		transactions, err := suite.service.ListTransactions(suite.ctx, account.ID, ledger.TransactionFilter{})
		suite.Require().Nil(err)
		suite.Assert().Len(transactions, 5)
		suite.Assert().Equal("6.25", transactions[4].RunningTotal.StringFixed(2))
		suite.assertRunningTotals(account.ID)
	}
}

func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	account := suite.createTestAccount()
	transaction := suite.createTestTransaction(account.ID, models.KindIncome, "Salary", "1")

	suite.CloseDB()

	_, err := suite.service.AddTransaction(suite.ctx, account.ID, ledger.TransactionInput{Kind: models.KindIncome, Category: "Salary", Amount: amount("1")})
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.service.ListTransactions(suite.ctx, account.ID, ledger.TransactionFilter{})
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = suite.service.DeleteTransaction(suite.ctx, transaction.ID)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
