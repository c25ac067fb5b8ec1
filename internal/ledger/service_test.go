package ledger_test

import (
	"context"
	"errors"

	"github.com/archons/backend/internal/events"
	"github.com/archons/backend/internal/ledger"
	"github.com/archons/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCreateAccount() {
	account, err := suite.service.CreateAccount(suite.ctx, "  Checking ", "usd")
	suite.Require().Nil(err)

	suite.Assert().NotZero(account.ID)
	suite.Assert().Equal("Checking", account.Name)
	suite.Assert().Equal("USD", account.Currency)
	suite.Assert().Contains(account.CurrencySymbol(), "$")
}

func (suite *TestSuiteStandard) TestCreateAccountDefaultCurrency() {
	account, err := suite.service.CreateAccount(suite.ctx, "Savings", "")
	suite.Require().Nil(err)
	suite.Assert().Equal(ledger.DefaultCurrency, account.Currency)

	service := ledger.NewService(suite.db, ledger.Options{DefaultCurrency: "EUR"})
	account, err = service.CreateAccount(suite.ctx, "Euro Savings", "")
	suite.Require().Nil(err)
	suite.Assert().Equal("EUR", account.Currency)
}

func (suite *TestSuiteStandard) TestCreateAccountErrors() {
	_, err := suite.service.CreateAccount(suite.ctx, "Wallet", "")
	suite.Require().Nil(err)

	_, err = suite.service.CreateAccount(suite.ctx, "Wallet", "")
	suite.Assert().ErrorIs(err, models.ErrAccountNameNotUnique)
	suite.Assert().ErrorIs(err, models.ErrConstraintViolation)

	_, err = suite.service.CreateAccount(suite.ctx, " ", "")
	suite.Assert().ErrorIs(err, models.ErrAccountNameEmpty)

	_, err = suite.service.CreateAccount(suite.ctx, "Gold", "XYZW")
	suite.Assert().ErrorIs(err, models.ErrCurrencyInvalid)
}

func (suite *TestSuiteStandard) TestGetAccount() {
	account := suite.createTestAccount()

	found, err := suite.service.GetAccount(suite.ctx, account.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(account.Name, found.Name)

	_, err = suite.service.GetAccount(suite.ctx, account.ID+1)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestDeleteAccountCascades() {
	account := suite.createTestAccount()
	other := suite.createTestAccount()

	suite.createTestTransaction(account.ID, models.KindExpense, "Food", "10")
	suite.createTestTransaction(other.ID, models.KindExpense, "Food", "10")

	_, err := suite.service.SetBudget(suite.ctx, account.ID, "Food", amount("50"))
	suite.Require().Nil(err)
	_, err = suite.service.SetBudget(suite.ctx, other.ID, "Food", amount("50"))
	suite.Require().Nil(err)

	err = suite.service.DeleteAccount(suite.ctx, account.ID)
	suite.Require().Nil(err)

	var transactions int64
	suite.Require().Nil(suite.db.Model(&models.Transaction{}).Where("account_id = ?", account.ID).Count(&transactions).Error)
	suite.Assert().Equal(int64(0), transactions)

	var budgets int64
	suite.Require().Nil(suite.db.Model(&models.Budget{}).Where("account_id = ?", account.ID).Count(&budgets).Error)
	suite.Assert().Equal(int64(0), budgets)

	_, err = suite.service.GetAccount(suite.ctx, account.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// The other account is untouched
	remaining, err := suite.service.ListTransactions(suite.ctx, other.ID, ledger.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(remaining, 1)

	recorded := suite.events.Events()
	suite.Assert().Equal(events.AccountDeleted, recorded[len(recorded)-1].Type)
}

func (suite *TestSuiteStandard) TestDeleteAccountNotFound() {
	err := suite.service.DeleteAccount(suite.ctx, 3)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAccountsDBClosed() {
	suite.CloseDB()

	_, err := suite.service.CreateAccount(suite.ctx, "Closed", "")
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	_, err = suite.service.GetAccount(suite.ctx, 1)
	suite.Assert().ErrorIs(err, models.ErrGeneral)

	err = suite.service.DeleteAccount(suite.ctx, 1)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestCanceledContext() {
	account := suite.createTestAccount()

	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	_, err := suite.service.AddTransaction(ctx, account.ID, ledger.TransactionInput{Kind: models.KindIncome, Category: "Salary", Amount: amount("1")})
	suite.Assert().NotNil(err)

	transactions, err := suite.service.ListTransactions(suite.ctx, account.ID, ledger.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 0)
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, events.Event) error { return errors.New("broker is down") }
func (failingPublisher) Close() error                                { return nil }

func (suite *TestSuiteStandard) TestPublishFailureKeepsCommit() {
	service := ledger.NewService(suite.db, ledger.Options{Publisher: failingPublisher{}})

	account, err := service.CreateAccount(suite.ctx, "Broker down", "")
	suite.Require().Nil(err)

	transaction, err := service.AddTransaction(suite.ctx, account.ID, ledger.TransactionInput{Kind: models.KindIncome, Category: "Salary", Amount: amount("5")})
	suite.Require().Nil(err)

	_, err = service.GetTransaction(suite.ctx, transaction.ID)
	suite.Assert().Nil(err)
}
