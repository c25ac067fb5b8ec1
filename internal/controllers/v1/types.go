package v1

import (
	"github.com/archons/backend/internal/types"
)

type URIID struct {
	ID uint `uri:"id" binding:"required" example:"42"` // ID of the resource
}

type URIBudget struct {
	URIID
	Category string `uri:"category" binding:"required" example:"Food"` // Category of the budget
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2024-07"` // Year and month in YYYY-MM format
}
