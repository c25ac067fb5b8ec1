package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/archons/backend/internal/controllers/v1"
	"github.com/archons/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) setBudget(accountID uint, category string, body any, expectedStatus int) v1.BudgetResponse {
	r := suite.request(http.MethodPut, accountURL(accountID)+"/budgets/"+category, body)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus)

	var b v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &b)
	return b
}

func (suite *TestSuiteStandard) getBudgets(accountID uint) v1.BudgetListResponse {
	r := suite.request(http.MethodGet, accountURL(accountID)+"/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	return list
}

// TestBudgetsExampleScenario walks through income, an expense, a budget
// and the deletion of the expense over HTTP.
func (suite *TestSuiteStandard) TestBudgetsExampleScenario() {
	account := suite.createTestAccount(v1.AccountEditable{})
	id := account.Data.ID

	income := suite.createTestTransaction(id, v1.TransactionEditable{Kind: "Income", Category: "Salary", Amount: amount("1000")})
	suite.Assert().Equal("1000.00", income.Data.RunningTotal.StringFixed(2))

	expense := suite.createTestTransaction(id, v1.TransactionEditable{Kind: "Expense", Category: "Food", Amount: amount("200")})
	suite.Assert().Equal("800.00", expense.Data.RunningTotal.StringFixed(2))

	budget := suite.setBudget(id, "Food", v1.BudgetEditable{Limit: amount("500")}, http.StatusOK)
	suite.Assert().Equal("200.00", budget.Data.Spent.StringFixed(2))
	suite.Assert().Equal("300.00", budget.Data.Remaining.StringFixed(2))
	suite.Assert().Equal(accountURL(id)+"/budgets/Food", budget.Data.Links.Self)

	r := suite.request(http.MethodDelete, expense.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	budgets := suite.getBudgets(id)
	suite.Require().Len(budgets.Data, 1)
	suite.Assert().Equal("0.00", budgets.Data[0].Spent.StringFixed(2))
	suite.Assert().Equal("500.00", budgets.Data[0].Remaining.StringFixed(2))

	r = suite.request(http.MethodGet, income.Data.Links.Self, nil)
	var tr v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &tr)
	suite.Assert().Equal("1000.00", tr.Data.RunningTotal.StringFixed(2))
}

func (suite *TestSuiteStandard) TestBudgetsNotCreatedByExpenses() {
	account := suite.createTestAccount(v1.AccountEditable{})
	suite.createTestTransaction(account.Data.ID, v1.TransactionEditable{Kind: "Expense", Category: "Travel", Amount: amount("300")})

	budgets := suite.getBudgets(account.Data.ID)
	suite.Assert().NotNil(budgets.Data)
	suite.Assert().Len(budgets.Data, 0)
}

func (suite *TestSuiteStandard) TestBudgetsUpdateReconciles() {
	account := suite.createTestAccount(v1.AccountEditable{})
	id := account.Data.ID

	suite.setBudget(id, "Food", v1.BudgetEditable{Limit: amount("100")}, http.StatusOK)
	suite.setBudget(id, "Fun", v1.BudgetEditable{Limit: amount("100")}, http.StatusOK)

	expense := suite.createTestTransaction(id, v1.TransactionEditable{Kind: "Expense", Category: "Food", Amount: amount("40")})

	r := suite.request(http.MethodPatch, expense.Data.Links.Self, map[string]any{"category": "Fun", "amount": "25"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	budgets := suite.getBudgets(id)
	suite.Require().Len(budgets.Data, 2)
	suite.Assert().Equal("Food", budgets.Data[0].Category)
	suite.Assert().Equal("0.00", budgets.Data[0].Spent.StringFixed(2))
	suite.Assert().Equal("Fun", budgets.Data[1].Category)
	suite.Assert().Equal("25.00", budgets.Data[1].Spent.StringFixed(2))
	suite.Assert().Equal("75.00", budgets.Data[1].Remaining.StringFixed(2))
}

func (suite *TestSuiteStandard) TestBudgetsSetIdempotent() {
	account := suite.createTestAccount(v1.AccountEditable{})
	suite.createTestTransaction(account.Data.ID, v1.TransactionEditable{Kind: "Expense", Category: "Food", Amount: amount("12")})

	first := suite.setBudget(account.Data.ID, "Food", v1.BudgetEditable{Limit: amount("50")}, http.StatusOK)
	second := suite.setBudget(account.Data.ID, "Food", v1.BudgetEditable{Limit: amount("50")}, http.StatusOK)

	suite.Assert().Equal(first.Data.ID, second.Data.ID)
	suite.Assert().True(first.Data.Spent.Equal(second.Data.Spent))
	suite.Assert().True(first.Data.Remaining.Equal(second.Data.Remaining))
}

func (suite *TestSuiteStandard) TestBudgetsSetFails() {
	account := suite.createTestAccount(v1.AccountEditable{})

	tests := []struct {
		name      string
		accountID uint
		category  string
		body      any
		status    int
	}{
		{"Account does not exist", account.Data.ID + 1, "Food", v1.BudgetEditable{Limit: amount("1")}, http.StatusNotFound},
		{"Negative limit", account.Data.ID, "Food", v1.BudgetEditable{Limit: amount("-1")}, http.StatusBadRequest},
		{"Too precise", account.Data.ID, "Food", v1.BudgetEditable{Limit: amount("1.234")}, http.StatusBadRequest},
		{"Empty body", account.Data.ID, "Food", "", http.StatusBadRequest},
		{"Blank category", account.Data.ID, "%20", v1.BudgetEditable{Limit: amount("1")}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := suite.request(http.MethodPut, accountURL(tt.accountID)+"/budgets/"+tt.category, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var b v1.BudgetResponse
			test.DecodeResponse(t, &r, &b)
			assert.NotNil(t, b.Error)
			assert.Nil(t, b.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetsGetAccountNotFound() {
	r := suite.request(http.MethodGet, accountURL(1)+"/budgets", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
