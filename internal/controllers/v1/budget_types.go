package v1

import (
	"fmt"
	"net/url"

	"github.com/archons/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Limit decimal.Decimal `json:"limit" example:"500" minimum:"0" multipleOf:"0.01"` // Spending cap for the category
}

type BudgetLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/accounts/1/budgets/Food"` // The budget itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/1"`           // The account the budget belongs to
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	AccountID uint            `json:"accountId" example:"1"`   // ID of the account
	Category  string          `json:"category" example:"Food"` // Category the budget is for
	Limit     decimal.Decimal `json:"limit" example:"500"`     // Spending cap
	Spent     decimal.Decimal `json:"spent" example:"200"`     // Sum of all expenses in the category
	Remaining decimal.Decimal `json:"remaining" example:"300"` // Limit minus spent. Negative when overspent
	Links     BudgetLinks     `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	account := fmt.Sprintf("%s/v1/accounts/%d", c.GetString(string(models.DBContextURL)), model.AccountID)

	return Budget{
		DefaultModel: model.DefaultModel,
		AccountID:    model.AccountID,
		Category:     model.Category,
		Limit:        model.Limit,
		Spent:        model.Spent,
		Remaining:    model.Remaining,
		Links: BudgetLinks{
			Self:    account + "/budgets/" + url.PathEscape(model.Category),
			Account: account,
		},
	}
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the budget limit must not be negative"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                  // The budget
}

type BudgetListResponse struct {
	Error *string  `json:"error" example:"there is no account matching your query"` // The error, if any occurred
	Data  []Budget `json:"data"`                                                    // Budgets of the account, ordered by category
}
