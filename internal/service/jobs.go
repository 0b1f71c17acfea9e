package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// Jobs manages job listings and the catalog views built around them. Any
// signed-in user may publish a job; only its creator or an admin may
// change it.
type Jobs struct {
	store         model.JobStore
	categories    model.CategoryStore
	subcategories model.SubcategoryStore
	comments      model.CommentStore
	images        model.Storage
	logger        *logger.Logger
}

func NewJobs(
	store model.JobStore,
	categories model.CategoryStore,
	subcategories model.SubcategoryStore,
	comments model.CommentStore,
	images model.Storage,
	logger *logger.Logger,
) *Jobs {
	return &Jobs{
		store:         store,
		categories:    categories,
		subcategories: subcategories,
		comments:      comments,
		images:        images,
		logger:        logger,
	}
}

func (j *Jobs) Create(ctx context.Context, actor model.SessionUser, req model.NewJob) (model.Job, error) {
	creator := actor.ID
	job := model.Job{
		Title:            req.Title,
		Rating:           req.Rating,
		Image:            req.Image,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Stars:            req.Stars,
		SubcategoryID:    req.SubcategoryID,
		CreatorID:        &creator,
	}
	if req.Price != nil {
		job.Price = *req.Price
	}

	created, err := j.store.Create(ctx, job)
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			return model.Job{}, referenceError("maChiTietLoai", err)
		}
		return model.Job{}, fmt.Errorf("failed to create job: %w", err)
	}

	j.logger.Info("Jobs service: job created",
		"job_id", created.ID,
		"by", actor.ID)

	return created, nil
}

func (j *Jobs) List(ctx context.Context) ([]model.Job, error) {
	jobs, err := j.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

func (j *Jobs) Page(ctx context.Context, query model.PageQuery) (model.Page[model.Job], error) {
	query = query.WithDefaults()

	jobs, total, err := j.store.Page(ctx, query)
	if err != nil {
		return model.Page[model.Job]{}, fmt.Errorf("failed to page jobs: %w", err)
	}
	return model.NewPage(jobs, total, query), nil
}

// Get returns a job with its catalog placement and comments, newest
// comment first.
func (j *Jobs) Get(ctx context.Context, id int64) (model.Job, error) {
	job, err := j.store.GetByID(ctx, id)
	if err != nil {
		return model.Job{}, lookupError("Job", id, err)
	}

	comments, err := j.comments.ListByJob(ctx, id)
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to list comments of job %d: %w", id, err)
	}
	job.Comments = comments
	return job, nil
}

func (j *Jobs) Update(ctx context.Context, actor model.SessionUser, id int64, upd model.JobUpdate) (model.Job, error) {
	job, err := j.owned(ctx, actor, id)
	if err != nil {
		return model.Job{}, err
	}
	upd.Apply(&job)

	updated, err := j.store.Update(ctx, job)
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			return model.Job{}, referenceError("maChiTietLoai", err)
		}
		return model.Job{}, lookupError("Job", id, err)
	}

	j.logger.Info("Jobs service: job updated",
		"job_id", id,
		"by", actor.ID)

	return updated, nil
}

// Delete removes a job together with its hires and comments.
func (j *Jobs) Delete(ctx context.Context, actor model.SessionUser, id int64) error {
	job, err := j.owned(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := j.store.Delete(ctx, id); err != nil {
		return lookupError("Job", id, err)
	}

	if key, err := dropImage(ctx, j.images, job.Image); err != nil {
		j.logger.Warn("Jobs service: failed to delete job image",
			"job_id", id,
			"key", key,
			"error", err.Error())
	}

	j.logger.Info("Jobs service: job deleted",
		"job_id", id,
		"by", actor.ID)

	return nil
}

func (j *Jobs) UploadImage(ctx context.Context, actor model.SessionUser, id int64, upload model.Upload) (model.Job, error) {
	job, err := j.owned(ctx, actor, id)
	if err != nil {
		return model.Job{}, err
	}

	key, url, err := storeImage(ctx, j.images, "jobs", id, upload)
	if err != nil {
		return model.Job{}, err
	}

	previous := job.Image
	job.Image = &url
	updated, err := j.store.Update(ctx, job)
	if err != nil {
		return model.Job{}, lookupError("Job", id, err)
	}

	if oldKey, err := dropImage(ctx, j.images, previous); err != nil {
		j.logger.Warn("Jobs service: failed to delete previous image",
			"job_id", id,
			"key", oldKey,
			"error", err.Error())
	}

	j.logger.Info("Jobs service: image uploaded",
		"job_id", id,
		"key", key)

	return updated, nil
}

// Menu returns every category with its subcategories.
func (j *Jobs) Menu(ctx context.Context) ([]model.Category, error) {
	categories, err := j.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// SubcategoriesOf returns the subcategories of one category, each with its
// jobs.
func (j *Jobs) SubcategoriesOf(ctx context.Context, categoryID int64) ([]model.Subcategory, error) {
	subs, err := j.subcategories.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subcategories of category %d: %w", categoryID, err)
	}

	jobs, err := j.store.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs of category %d: %w", categoryID, err)
	}
	return attachJobs(subs, jobs), nil
}

func (j *Jobs) BySubcategory(ctx context.Context, subcategoryID int64) ([]model.Job, error) {
	jobs, err := j.store.ListBySubcategory(ctx, subcategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs of subcategory %d: %w", subcategoryID, err)
	}
	return jobs, nil
}

// Search returns jobs whose title contains the given text.
func (j *Jobs) Search(ctx context.Context, title string) ([]model.Job, error) {
	jobs, err := j.store.SearchByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to search jobs: %w", err)
	}
	return jobs, nil
}

func (j *Jobs) owned(ctx context.Context, actor model.SessionUser, id int64) (model.Job, error) {
	job, err := j.store.GetByID(ctx, id)
	if err != nil {
		return model.Job{}, lookupError("Job", id, err)
	}
	if !job.OwnedBy(actor) {
		return model.Job{}, model.ErrForbidden
	}
	return job, nil
}
