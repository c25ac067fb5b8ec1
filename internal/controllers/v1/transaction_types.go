package v1

import (
	"fmt"
	"time"

	"github.com/archons/backend/internal/ledger"
	"github.com/archons/backend/internal/models"
	"github.com/archons/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date     types.Date      `json:"date" swaggertype:"string" example:"2024-03-14"` // Date of the transaction, YYYY-MM-DD or RFC3339. Defaults to the time of creation
	Kind     string          `json:"kind" example:"Expense" enums:"Income,Expense"`
	Category string          `json:"category" example:"Food"`                                 // Category of the transaction
	Amount   decimal.Decimal `json:"amount" example:"14.03" minimum:"0.01" multipleOf:"0.01"` // Amount of the transaction, always positive
}

// input returns the ledger input for the editable fields.
func (editable TransactionEditable) input() (ledger.TransactionInput, error) {
	kind, err := models.ParseKind(editable.Kind)
	if err != nil {
		return ledger.TransactionInput{}, err
	}

	return ledger.TransactionInput{
		Date:     editable.Date.Time(),
		Kind:     kind,
		Category: editable.Category,
		Amount:   editable.Amount,
	}, nil
}

// TransactionPatch contains the fields of a transaction that can be updated.
// Fields that are not set keep their value.
type TransactionPatch struct {
	Date     *types.Date      `json:"date" swaggertype:"string" example:"2024-03-14"`
	Kind     *string          `json:"kind" example:"Income" enums:"Income,Expense"`
	Category *string          `json:"category" example:"Salary"`
	Amount   *decimal.Decimal `json:"amount" example:"1500"`
}

func (p TransactionPatch) patch() (ledger.TransactionPatch, error) {
	patch := ledger.TransactionPatch{
		Category: p.Category,
		Amount:   p.Amount,
	}

	if p.Date != nil {
		date := p.Date.Time()
		patch.Date = &date
	}

	if p.Kind != nil {
		kind, err := models.ParseKind(*p.Kind)
		if err != nil {
			return ledger.TransactionPatch{}, err
		}
		patch.Kind = &kind
	}

	return patch, nil
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/3"` // The transaction itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/1"`  // The account the transaction belongs to
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	AccountID    uint             `json:"accountId" example:"1"`               // ID of the account
	Date         time.Time        `json:"date" example:"2024-03-14T12:00:00Z"` // Date of the transaction
	Kind         models.Kind      `json:"kind" example:"Expense"`              // Income or Expense
	Category     string           `json:"category" example:"Food"`             // Category of the transaction
	Amount       decimal.Decimal  `json:"amount" example:"14.03"`              // Amount of the transaction
	RunningTotal decimal.Decimal  `json:"runningTotal" example:"985.97"`       // Balance of the account after this transaction
	Links        TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		AccountID:    model.AccountID,
		Date:         model.Date,
		Kind:         model.Kind,
		Category:     model.Category,
		Amount:       model.Amount,
		RunningTotal: model.RunningTotal,
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%d", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%d", url, model.AccountID),
		},
	}
}

type TransactionQueryFilter struct {
	Kind     string `form:"kind" enums:"Income,Expense"` // Only transactions of this kind
	Category string `form:"category" example:"Food*"`    // Glob pattern the category must match
}

func (f TransactionQueryFilter) filter() (ledger.TransactionFilter, error) {
	filter := ledger.TransactionFilter{
		Category: f.Category,
	}

	if f.Kind != "" {
		kind, err := models.ParseKind(f.Kind)
		if err != nil {
			return ledger.TransactionFilter{}, err
		}
		filter.Kind = kind
	}

	return filter, nil
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the amount must be greater than zero"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                 // The transaction
}

type TransactionUpdateResponse struct {
	Error    *string          `json:"error" example:"there is no transaction matching your query"` // The error, if any occurred
	Data     *Transaction     `json:"data"`                                                        // The updated transaction
	NetTotal *decimal.Decimal `json:"netTotal" example:"800"`                                      // Net balance of the account after the update
}

type TransactionListResponse struct {
	Error *string       `json:"error" example:"there is no account matching your query"` // The error, if any occurred
	Data  []Transaction `json:"data"`                                                    // List of transactions in ledger order
}
