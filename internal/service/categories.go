package service

import (
	"context"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// Categories manages the top level of the job catalog. Writes are reserved
// for admins.
type Categories struct {
	store  model.CategoryStore
	logger *logger.Logger
}

func NewCategories(store model.CategoryStore, logger *logger.Logger) *Categories {
	return &Categories{
		store:  store,
		logger: logger,
	}
}

func (c *Categories) Create(ctx context.Context, actor model.SessionUser, req model.NewCategory) (model.Category, error) {
	if !actor.IsAdmin() {
		return model.Category{}, model.ErrForbidden
	}

	created, err := c.store.Create(ctx, model.Category{Name: req.Name})
	if err != nil {
		return model.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	c.logger.Info("Categories service: category created",
		"category_id", created.ID,
		"by", actor.ID)

	return created, nil
}

// List returns every category with its subcategories. It also serves as
// the catalog menu.
func (c *Categories) List(ctx context.Context) ([]model.Category, error) {
	categories, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (c *Categories) Page(ctx context.Context, query model.PageQuery) (model.Page[model.Category], error) {
	query = query.WithDefaults()

	categories, total, err := c.store.Page(ctx, query)
	if err != nil {
		return model.Page[model.Category]{}, fmt.Errorf("failed to page categories: %w", err)
	}
	return model.NewPage(categories, total, query), nil
}

func (c *Categories) Get(ctx context.Context, id int64) (model.Category, error) {
	category, err := c.store.GetByID(ctx, id)
	if err != nil {
		return model.Category{}, lookupError("Job type", id, err)
	}
	return category, nil
}

func (c *Categories) Update(ctx context.Context, actor model.SessionUser, id int64, upd model.CategoryUpdate) (model.Category, error) {
	if !actor.IsAdmin() {
		return model.Category{}, model.ErrForbidden
	}

	category, err := c.store.GetByID(ctx, id)
	if err != nil {
		return model.Category{}, lookupError("Job type", id, err)
	}
	if upd.Name != nil {
		category.Name = *upd.Name
	}

	updated, err := c.store.Update(ctx, category)
	if err != nil {
		return model.Category{}, lookupError("Job type", id, err)
	}

	c.logger.Info("Categories service: category updated",
		"category_id", id,
		"by", actor.ID)

	return updated, nil
}

// Delete removes a category. Categories that still hold subcategories
// fail with model.ErrInUse.
func (c *Categories) Delete(ctx context.Context, actor model.SessionUser, id int64) error {
	if !actor.IsAdmin() {
		return model.ErrForbidden
	}

	if err := c.store.Delete(ctx, id); err != nil {
		return lookupError("Job type", id, err)
	}

	c.logger.Info("Categories service: category deleted",
		"category_id", id,
		"by", actor.ID)

	return nil
}
