package v1

import (
	"net/http"

	"github.com/archons/backend/internal/httputil"
	"github.com/archons/backend/internal/ledger"
	"github.com/archons/backend/internal/models"
	"github.com/archons/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type CategoryTotalsResponse struct {
	Error *string                `json:"error" example:"there is no account matching your query"` // The error, if any occurred
	Month types.Month            `json:"month" swaggertype:"string" example:"2024-03"`            // The month the analysis is restricted to, null for all time
	Data  []ledger.CategoryTotal `json:"data"`                                                    // Totals per category, ordered by category
}

type SummaryResponse struct {
	Error *string         `json:"error" example:"there is no account matching your query"` // The error, if any occurred
	Month types.Month     `json:"month" swaggertype:"string" example:"2024-03"`            // The month the analysis is restricted to, null for all time
	Data  *ledger.Summary `json:"data"`                                                    // Income and expenses of the account
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analysis
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id}/analysis/income [options]
// @Router			/v1/accounts/{id}/analysis/expense [options]
// @Router			/v1/accounts/{id}/analysis/summary [options]
func (co Controller) OptionsAnalysis(c *gin.Context) {
	if _, ok := co.account(c); !ok {
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Income per category
// @Description	Returns the sum of all income of the account per category
// @Tags			Analysis
// @Produce		json
// @Success		200		{object}	CategoryTotalsResponse
// @Failure		400		{object}	CategoryTotalsResponse
// @Failure		404		{object}	CategoryTotalsResponse
// @Failure		500		{object}	CategoryTotalsResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	query		string	false	"Only transactions in this month, YYYY-MM"
// @Router			/v1/accounts/{id}/analysis/income [get]
func (co Controller) GetIncomeByCategory(c *gin.Context) {
	co.categoryTotals(c, models.KindIncome)
}

// @Summary		Expense per category
// @Description	Returns the sum of all expenses of the account per category
// @Tags			Analysis
// @Produce		json
// @Success		200		{object}	CategoryTotalsResponse
// @Failure		400		{object}	CategoryTotalsResponse
// @Failure		404		{object}	CategoryTotalsResponse
// @Failure		500		{object}	CategoryTotalsResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	query		string	false	"Only transactions in this month, YYYY-MM"
// @Router			/v1/accounts/{id}/analysis/expense [get]
func (co Controller) GetExpenseByCategory(c *gin.Context) {
	co.categoryTotals(c, models.KindExpense)
}

func (co Controller) categoryTotals(c *gin.Context, kind models.Kind) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, CategoryTotalsResponse{
			Error: &e,
		})
		return
	}

	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryTotalsResponse{
			Error: &e,
		})
		return
	}

	totals, err := co.Ledger.CategoryTotals(c.Request.Context(), uri.ID, kind, query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryTotalsResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryTotalsResponse{Month: query.Month, Data: totals})
}

// @Summary		Income and expenses
// @Description	Returns the total income, the total expenses and the net balance of the account
// @Tags			Analysis
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	SummaryResponse
// @Failure		404		{object}	SummaryResponse
// @Failure		500		{object}	SummaryResponse
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			month	query		string	false	"Only transactions in this month, YYYY-MM"
// @Router			/v1/accounts/{id}/analysis/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &e,
		})
		return
	}

	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{
			Error: &e,
		})
		return
	}

	summary, err := co.Ledger.Summary(c.Request.Context(), uri.ID, query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Month: query.Month, Data: &summary})
}
