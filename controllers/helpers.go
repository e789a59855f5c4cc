package controllers

import (
	"errors"
	"strconv"

	"comanda/pkg/resp"
	"comanda/repository"
	"comanda/services"

	"github.com/gin-gonic/gin"
)

func paramUint(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}

// writeErr maps the service error taxonomy onto HTTP codes.
func writeErr(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrLineNotFound),
		errors.Is(err, services.ErrRecipeNotFound),
		errors.Is(err, repository.ErrNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, repository.ErrConflict):
		resp.Conflict(c, err.Error())
	case repository.IsNetwork(err):
		resp.BadGateway(c, err)
	default:
		resp.ServerError(c, err)
	}
}
