package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// Hires records users hiring jobs. The hirer, the job's creator and admins
// may change a hire.
type Hires struct {
	store  model.HireStore
	logger *logger.Logger
}

func NewHires(store model.HireStore, logger *logger.Logger) *Hires {
	return &Hires{
		store:  store,
		logger: logger,
	}
}

// Create hires a job on behalf of the signed-in user.
func (h *Hires) Create(ctx context.Context, actor model.SessionUser, req model.NewHire) (model.Hire, error) {
	created, err := h.store.Create(ctx, model.Hire{JobID: req.JobID, HirerID: actor.ID})
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			return model.Hire{}, referenceError("maCongViec", err)
		}
		return model.Hire{}, fmt.Errorf("failed to create hire: %w", err)
	}

	h.logger.Info("Hires service: job hired",
		"hire_id", created.ID,
		"job_id", created.JobID,
		"by", actor.ID)

	return created, nil
}

func (h *Hires) List(ctx context.Context) ([]model.Hire, error) {
	hires, err := h.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hires: %w", err)
	}
	return hires, nil
}

// ListOpen returns hires that are not completed, newest first.
func (h *Hires) ListOpen(ctx context.Context) ([]model.Hire, error) {
	hires, err := h.store.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open hires: %w", err)
	}
	return hires, nil
}

// Page returns one page of hires, newest first. The keyword is ignored.
func (h *Hires) Page(ctx context.Context, query model.PageQuery) (model.Page[model.Hire], error) {
	query = query.WithDefaults()

	hires, total, err := h.store.Page(ctx, query)
	if err != nil {
		return model.Page[model.Hire]{}, fmt.Errorf("failed to page hires: %w", err)
	}
	return model.NewPage(hires, total, query), nil
}

func (h *Hires) Get(ctx context.Context, id int64) (model.Hire, error) {
	hire, err := h.store.GetByID(ctx, id)
	if err != nil {
		return model.Hire{}, lookupError("Hired job", id, err)
	}
	return hire, nil
}

// Update changes the completion flag. An empty update returns the hire
// unchanged.
func (h *Hires) Update(ctx context.Context, actor model.SessionUser, id int64, upd model.HireUpdate) (model.Hire, error) {
	hire, err := h.managed(ctx, actor, id)
	if err != nil {
		return model.Hire{}, err
	}
	if upd.Completed == nil {
		return hire, nil
	}
	return h.setCompleted(ctx, actor, id, *upd.Completed)
}

// Complete marks a hire as done.
func (h *Hires) Complete(ctx context.Context, actor model.SessionUser, id int64) (model.Hire, error) {
	if _, err := h.managed(ctx, actor, id); err != nil {
		return model.Hire{}, err
	}
	return h.setCompleted(ctx, actor, id, true)
}

func (h *Hires) Delete(ctx context.Context, actor model.SessionUser, id int64) error {
	if _, err := h.managed(ctx, actor, id); err != nil {
		return err
	}

	if err := h.store.Delete(ctx, id); err != nil {
		return lookupError("Hired job", id, err)
	}

	h.logger.Info("Hires service: hire deleted",
		"hire_id", id,
		"by", actor.ID)

	return nil
}

func (h *Hires) setCompleted(ctx context.Context, actor model.SessionUser, id int64, completed bool) (model.Hire, error) {
	updated, err := h.store.SetCompleted(ctx, id, completed)
	if err != nil {
		return model.Hire{}, lookupError("Hired job", id, err)
	}

	h.logger.Info("Hires service: hire updated",
		"hire_id", id,
		"completed", completed,
		"by", actor.ID)

	return updated, nil
}

func (h *Hires) managed(ctx context.Context, actor model.SessionUser, id int64) (model.Hire, error) {
	hire, err := h.store.GetByID(ctx, id)
	if err != nil {
		return model.Hire{}, lookupError("Hired job", id, err)
	}
	if !hire.ManagedBy(actor) {
		return model.Hire{}, model.ErrForbidden
	}
	return hire, nil
}
