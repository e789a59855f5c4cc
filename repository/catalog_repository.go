package repository

import (
	"context"

	"comanda/entity"
)

// CatalogRepository reads the recipe/group/container catalog. The terminal
// consumes it for pricing and takeaway-container validation only.
type CatalogRepository struct{ C *Client }

func NewCatalogRepository(c *Client) *CatalogRepository { return &CatalogRepository{C: c} }

func (r *CatalogRepository) GetRecipes(ctx context.Context) ([]entity.Recipe, error) {
	var out []entity.Recipe
	if err := r.C.get(ctx, "/catalog/recipes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) GetGroups(ctx context.Context) ([]entity.RecipeGroup, error) {
	var out []entity.RecipeGroup
	if err := r.C.get(ctx, "/catalog/groups", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CatalogRepository) GetContainers(ctx context.Context) ([]entity.Container, error) {
	var out []entity.Container
	if err := r.C.get(ctx, "/catalog/containers", &out); err != nil {
		return nil, err
	}
	return out, nil
}
