package v1

import (
	"fmt"

	"github.com/archons/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type AccountEditable struct {
	Name     string `json:"name" example:"Checking"`              // Name of the account, must be unique
	Currency string `json:"currency" example:"INR" default:"INR"` // ISO 4217 currency code. Defaults to the server default currency
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/1"`                      // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/accounts/1/transactions"` // Transactions of the account
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/accounts/1/budgets"`           // Budgets of the account
	Summary      string `json:"summary" example:"https://example.com/api/v1/accounts/1/analysis/summary"`  // Income and expense summary of the account
}

// Account is the representation of an Account in API v1.
type Account struct {
	models.DefaultModel
	Name           string       `json:"name" example:"Checking"`    // Name of the account
	Currency       string       `json:"currency" example:"INR"`     // ISO 4217 currency code
	CurrencySymbol string       `json:"currencySymbol" example:"₹"` // Symbol of the currency
	Links          AccountLinks `json:"links"`
}

func newAccount(c *gin.Context, model models.Account) Account {
	url := fmt.Sprintf("%s/v1/accounts/%d", c.GetString(string(models.DBContextURL)), model.ID)

	return Account{
		DefaultModel:   model.DefaultModel,
		Name:           model.Name,
		Currency:       model.Currency,
		CurrencySymbol: model.CurrencySymbol(),
		Links: AccountLinks{
			Self:         url,
			Transactions: url + "/transactions",
			Budgets:      url + "/budgets",
			Summary:      url + "/analysis/summary",
		},
	}
}

type AccountResponse struct {
	Error *string  `json:"error" example:"the account name must be unique"` // The error, if any occurred
	Data  *Account `json:"data"`                                            // Data for the account
}
