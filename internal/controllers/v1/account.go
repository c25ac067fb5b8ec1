package v1

import (
	"net/http"

	"github.com/archons/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers the routes for accounts and the
// resources belonging to them with the RouterGroup that is passed.
func (co Controller) RegisterAccountRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsAccountList)
		r.POST("", co.CreateAccount)
	}

	// Account with ID
	{
		r.OPTIONS("/:id", co.OptionsAccountDetail)
		r.GET("/:id", co.GetAccount)
		r.DELETE("/:id", co.DeleteAccount)
	}

	// Resources of the account
	{
		r.OPTIONS("/:id/transactions", co.OptionsAccountTransactions)
		r.GET("/:id/transactions", co.GetAccountTransactions)
		r.POST("/:id/transactions", co.CreateTransaction)

		r.OPTIONS("/:id/budgets", co.OptionsAccountBudgets)
		r.GET("/:id/budgets", co.GetBudgets)
		r.OPTIONS("/:id/budgets/:category", co.OptionsBudgetDetail)
		r.PUT("/:id/budgets/:category", co.SetBudget)

		r.OPTIONS("/:id/analysis/income", co.OptionsAnalysis)
		r.GET("/:id/analysis/income", co.GetIncomeByCategory)
		r.OPTIONS("/:id/analysis/expense", co.OptionsAnalysis)
		r.GET("/:id/analysis/expense", co.GetExpenseByCategory)
		r.OPTIONS("/:id/analysis/summary", co.OptionsAnalysis)
		r.GET("/:id/analysis/summary", co.GetSummary)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Router			/v1/accounts [options]
func (co Controller) OptionsAccountList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [options]
func (co Controller) OptionsAccountDetail(c *gin.Context) {
	if _, ok := co.account(c); !ok {
		return
	}

	httputil.OptionsGetDelete(c)
}

// account binds the account ID from the URI and returns the ID if the
// account exists. Otherwise, it writes the error response.
func (co Controller) account(c *gin.Context) (uint, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidID)
		return 0, false
	}

	_, err = co.Ledger.GetAccount(c.Request.Context(), uri.ID)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return 0, false
	}

	return uri.ID, true
}

// @Summary		Create account
// @Description	Creates a new account
// @Tags			Accounts
// @Accept			json
// @Produce		json
// @Success		201		{object}	AccountResponse
// @Failure		400		{object}	AccountResponse
// @Failure		409		{object}	AccountResponse
// @Failure		500		{object}	AccountResponse
// @Param			account	body		AccountEditable	true	"Account"
// @Router			/v1/accounts [post]
func (co Controller) CreateAccount(c *gin.Context) {
	var editable AccountEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{
			Error: &e,
		})
		return
	}

	account, err := co.Ledger.CreateAccount(c.Request.Context(), editable.Name, editable.Currency)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusCreated, AccountResponse{Data: &data})
}

// @Summary		Get account
// @Description	Returns a specific account
// @Tags			Accounts
// @Produce		json
// @Success		200	{object}	AccountResponse
// @Failure		400	{object}	AccountResponse
// @Failure		404	{object}	AccountResponse
// @Failure		500	{object}	AccountResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [get]
func (co Controller) GetAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, AccountResponse{
			Error: &e,
		})
		return
	}

	account, err := co.Ledger.GetAccount(c.Request.Context(), uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AccountResponse{
			Error: &e,
		})
		return
	}

	data := newAccount(c, account)
	c.JSON(http.StatusOK, AccountResponse{Data: &data})
}

// @Summary		Delete account
// @Description	Deletes an account together with all of its transactions and budgets
// @Tags			Accounts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id} [delete]
func (co Controller) DeleteAccount(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidID)
		return
	}

	err = co.Ledger.DeleteAccount(c.Request.Context(), uri.ID)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
