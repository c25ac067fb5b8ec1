package v1

import (
	"net/http"

	"github.com/archons/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id}/budgets [options]
func (co Controller) OptionsAccountBudgets(c *gin.Context) {
	if _, ok := co.account(c); !ok {
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budgets
// @Success		204
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	path		string	true	"Category of the budget"
// @Router			/v1/accounts/{id}/budgets/{category} [options]
func (co Controller) OptionsBudgetDetail(c *gin.Context) {
	if _, ok := co.account(c); !ok {
		return
	}

	httputil.OptionsPut(c)
}

// @Summary		Get budgets
// @Description	Returns all budgets of an account. The remaining amount is computed when reading.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Failure		400	{object}	BudgetListResponse
// @Failure		404	{object}	BudgetListResponse
// @Failure		500	{object}	BudgetListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id}/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, BudgetListResponse{
			Error: &e,
		})
		return
	}

	budgets, err := co.Ledger.GetBudgets(c.Request.Context(), uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Budget, 0, len(budgets))
	for _, b := range budgets {
		data = append(data, newBudget(c, b))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Set budget
// @Description	Sets the limit for a category. The spent amount is recomputed from all expenses in the category.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetResponse
// @Failure		400			{object}	BudgetResponse
// @Failure		404			{object}	BudgetResponse
// @Failure		500			{object}	BudgetResponse
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			category	path		string			true	"Category of the budget"
// @Param			budget		body		BudgetEditable	true	"Budget"
// @Router			/v1/accounts/{id}/budgets/{category} [put]
func (co Controller) SetBudget(c *gin.Context) {
	var uri URIBudget
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &e,
		})
		return
	}

	var editable BudgetEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &e,
		})
		return
	}

	budget, err := co.Ledger.SetBudget(c.Request.Context(), uri.ID, uri.Category, editable.Limit)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
