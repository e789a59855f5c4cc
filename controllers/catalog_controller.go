package controllers

import (
	"comanda/pkg/resp"
	"comanda/services"

	"github.com/gin-gonic/gin"
)

// CatalogController passes the read-only catalog through to the UI.
type CatalogController struct{ API services.CatalogAPI }

func NewCatalogController(api services.CatalogAPI) *CatalogController {
	return &CatalogController{API: api}
}

// GET /catalog
func (cc *CatalogController) Get(c *gin.Context) {
	ctx := c.Request.Context()

	groups, err := cc.API.GetGroups(ctx)
	if err != nil {
		writeErr(c, err)
		return
	}
	recipes, err := cc.API.GetRecipes(ctx)
	if err != nil {
		writeErr(c, err)
		return
	}
	containers, err := cc.API.GetContainers(ctx)
	if err != nil {
		writeErr(c, err)
		return
	}

	resp.OK(c, gin.H{"groups": groups, "recipes": recipes, "containers": containers})
}
