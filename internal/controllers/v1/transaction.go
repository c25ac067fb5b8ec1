package v1

import (
	"net/http"

	"github.com/archons/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
//
// Transactions are created and listed through their account, see
// RegisterAccountRoutes.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Transaction with ID
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/accounts/{id}/transactions [options]
func (co Controller) OptionsAccountTransactions(c *gin.Context) {
	if _, ok := co.account(c); !ok {
		return
	}

	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidID)
		return
	}

	_, err = co.Ledger.GetTransaction(c.Request.Context(), uri.ID)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get transactions
// @Description	Returns the transactions of an account in the order they were recorded
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		404			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Param			id			path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			kind		query		string	false	"Filter by kind"
// @Param			category	query		string	false	"Filter by category. Supports glob patterns, e.g. Food*"
// @Router			/v1/accounts/{id}/transactions [get]
func (co Controller) GetAccountTransactions(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &e,
		})
		return
	}

	var query TransactionQueryFilter
	if err := c.ShouldBindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &e,
		})
		return
	}

	filter, err := query.filter()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	transactions, err := co.Ledger.ListTransactions(c.Request.Context(), uri.ID, filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(c, t))
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Create transaction
// @Description	Records a new transaction for the account. Expenses count towards the budget of their category, if there is one.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/accounts/{id}/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	var editable TransactionEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	input, err := editable.input()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := co.Ledger.AddTransaction(c.Request.Context(), uri.ID, input)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := co.Ledger.GetTransaction(c.Request.Context(), uri.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified. The running totals of all later transactions and the affected budgets are recomputed.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionUpdateResponse
// @Failure		400			{object}	TransactionUpdateResponse
// @Failure		404			{object}	TransactionUpdateResponse
// @Failure		500			{object}	TransactionUpdateResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionPatch	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := httputil.ErrInvalidID.Error()
		c.JSON(http.StatusBadRequest, TransactionUpdateResponse{
			Error: &e,
		})
		return
	}

	var body TransactionPatch
	err = httputil.BindData(c, &body)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionUpdateResponse{
			Error: &e,
		})
		return
	}

	patch, err := body.patch()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionUpdateResponse{
			Error: &e,
		})
		return
	}

	transaction, total, err := co.Ledger.UpdateTransaction(c.Request.Context(), uri.ID, patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionUpdateResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionUpdateResponse{Data: &data, NetTotal: &total})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction. The running totals of all later transactions and the budget of its category are recomputed.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidID)
		return
	}

	err = co.Ledger.DeleteTransaction(c.Request.Context(), uri.ID)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
