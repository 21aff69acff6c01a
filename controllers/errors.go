package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// map error ของ core เป็น HTTP status — ที่เดียวพอ ไม่กระจายตาม handler
func respondServiceError(c *gin.Context, err error) {
	var (
		ve *services.ValidationError
		nf *services.NotFoundError
		is *services.InsufficientStockError
		it *services.InvalidTransitionError
	)
	switch {
	case errors.As(err, &ve):
		resp.BadRequest(c, ve.Error())
	case errors.As(err, &nf):
		resp.NotFound(c, nf.Error())
	case errors.As(err, &is):
		resp.Conflict(c, is.Error())
	case errors.As(err, &it):
		resp.Conflict(c, it.Error())
	default:
		resp.ServerError(c, err)
	}
}
