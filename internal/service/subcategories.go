package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// Subcategories manages the detail groups between categories and jobs.
// Writes are reserved for admins.
type Subcategories struct {
	store  model.SubcategoryStore
	jobs   model.JobStore
	images model.Storage
	logger *logger.Logger
}

func NewSubcategories(store model.SubcategoryStore, jobs model.JobStore, images model.Storage, logger *logger.Logger) *Subcategories {
	return &Subcategories{
		store:  store,
		jobs:   jobs,
		images: images,
		logger: logger,
	}
}

func (s *Subcategories) Create(ctx context.Context, actor model.SessionUser, req model.NewSubcategory) (model.Subcategory, error) {
	if !actor.IsAdmin() {
		return model.Subcategory{}, model.ErrForbidden
	}

	created, err := s.store.Create(ctx, model.Subcategory{
		Name:       req.Name,
		Image:      req.Image,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			return model.Subcategory{}, referenceError("maLoaiCongViec", err)
		}
		return model.Subcategory{}, fmt.Errorf("failed to create subcategory: %w", err)
	}

	s.logger.Info("Subcategories service: subcategory created",
		"subcategory_id", created.ID,
		"category_id", created.CategoryID,
		"by", actor.ID)

	return created, nil
}

// List returns every subcategory with its category and jobs.
func (s *Subcategories) List(ctx context.Context) ([]model.Subcategory, error) {
	subs, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}

	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return attachJobs(subs, jobs), nil
}

func (s *Subcategories) Page(ctx context.Context, query model.PageQuery) (model.Page[model.Subcategory], error) {
	query = query.WithDefaults()

	subs, total, err := s.store.Page(ctx, query)
	if err != nil {
		return model.Page[model.Subcategory]{}, fmt.Errorf("failed to page subcategories: %w", err)
	}

	for i := range subs {
		jobs, err := s.jobs.ListBySubcategory(ctx, subs[i].ID)
		if err != nil {
			return model.Page[model.Subcategory]{}, fmt.Errorf("failed to list jobs of subcategory %d: %w", subs[i].ID, err)
		}
		subs[i].Jobs = jobs
	}
	return model.NewPage(subs, total, query), nil
}

func (s *Subcategories) Get(ctx context.Context, id int64) (model.Subcategory, error) {
	sub, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Subcategory{}, lookupError("Job detail type", id, err)
	}

	jobs, err := s.jobs.ListBySubcategory(ctx, id)
	if err != nil {
		return model.Subcategory{}, fmt.Errorf("failed to list jobs of subcategory %d: %w", id, err)
	}
	sub.Jobs = jobs
	return sub, nil
}

func (s *Subcategories) Update(ctx context.Context, actor model.SessionUser, id int64, upd model.SubcategoryUpdate) (model.Subcategory, error) {
	if !actor.IsAdmin() {
		return model.Subcategory{}, model.ErrForbidden
	}

	sub, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Subcategory{}, lookupError("Job detail type", id, err)
	}
	if upd.Name != nil {
		sub.Name = *upd.Name
	}
	if upd.Image != nil {
		sub.Image = upd.Image
	}
	if upd.CategoryID != nil {
		sub.CategoryID = *upd.CategoryID
	}

	updated, err := s.store.Update(ctx, sub)
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			return model.Subcategory{}, referenceError("maLoaiCongViec", err)
		}
		return model.Subcategory{}, lookupError("Job detail type", id, err)
	}

	s.logger.Info("Subcategories service: subcategory updated",
		"subcategory_id", id,
		"by", actor.ID)

	return updated, nil
}

// Delete removes a subcategory. Subcategories that still hold jobs fail
// with model.ErrInUse.
func (s *Subcategories) Delete(ctx context.Context, actor model.SessionUser, id int64) error {
	if !actor.IsAdmin() {
		return model.ErrForbidden
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return lookupError("Job detail type", id, err)
	}

	s.logger.Info("Subcategories service: subcategory deleted",
		"subcategory_id", id,
		"by", actor.ID)

	return nil
}

// UploadImage stores a picture for the subcategory and points it there.
func (s *Subcategories) UploadImage(ctx context.Context, actor model.SessionUser, id int64, upload model.Upload) (model.Subcategory, error) {
	if !actor.IsAdmin() {
		return model.Subcategory{}, model.ErrForbidden
	}

	sub, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.Subcategory{}, lookupError("Job detail type", id, err)
	}

	key, url, err := storeImage(ctx, s.images, "subcategories", id, upload)
	if err != nil {
		return model.Subcategory{}, err
	}

	previous := sub.Image
	sub.Image = &url
	updated, err := s.store.Update(ctx, sub)
	if err != nil {
		return model.Subcategory{}, lookupError("Job detail type", id, err)
	}

	if oldKey, err := dropImage(ctx, s.images, previous); err != nil {
		s.logger.Warn("Subcategories service: failed to delete previous image",
			"subcategory_id", id,
			"key", oldKey,
			"error", err.Error())
	}

	s.logger.Info("Subcategories service: image uploaded",
		"subcategory_id", id,
		"key", key)

	return updated, nil
}

func attachJobs(subs []model.Subcategory, jobs []model.Job) []model.Subcategory {
	bySub := make(map[int64][]model.Job, len(subs))
	for _, j := range jobs {
		bySub[j.SubcategoryID] = append(bySub[j.SubcategoryID], j)
	}
	for i := range subs {
		subs[i].Jobs = bySub[subs[i].ID]
		if subs[i].Jobs == nil {
			subs[i].Jobs = []model.Job{}
		}
	}
	return subs
}
