package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/logger"
	"github.com/dtroode/jobmarket-server/internal/model"
)

// Comments manages reviews left on jobs. Only the author or an admin may
// change a comment.
type Comments struct {
	store  model.CommentStore
	logger *logger.Logger
}

func NewComments(store model.CommentStore, logger *logger.Logger) *Comments {
	return &Comments{
		store:  store,
		logger: logger,
	}
}

// Create posts a comment as the signed-in user.
func (c *Comments) Create(ctx context.Context, actor model.SessionUser, req model.NewComment) (model.Comment, error) {
	created, err := c.store.Create(ctx, model.Comment{
		JobID:       req.JobID,
		CommenterID: actor.ID,
		Content:     req.Content,
		Stars:       req.Stars,
	})
	if err != nil {
		if errors.Is(err, model.ErrInvalidReference) {
			return model.Comment{}, referenceError("maCongViec", err)
		}
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	c.logger.Info("Comments service: comment created",
		"comment_id", created.ID,
		"job_id", created.JobID,
		"by", actor.ID)

	return created, nil
}

func (c *Comments) List(ctx context.Context) ([]model.Comment, error) {
	comments, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// ListByJob returns the comments on one job, newest first.
func (c *Comments) ListByJob(ctx context.Context, jobID int64) ([]model.Comment, error) {
	comments, err := c.store.ListByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments of job %d: %w", jobID, err)
	}
	return comments, nil
}

func (c *Comments) Get(ctx context.Context, id int64) (model.Comment, error) {
	comment, err := c.store.GetByID(ctx, id)
	if err != nil {
		return model.Comment{}, lookupError("Comment", id, err)
	}
	return comment, nil
}

func (c *Comments) Update(ctx context.Context, actor model.SessionUser, id int64, upd model.CommentUpdate) (model.Comment, error) {
	comment, err := c.authored(ctx, actor, id)
	if err != nil {
		return model.Comment{}, err
	}
	if upd.Content != nil {
		comment.Content = *upd.Content
	}
	if upd.Stars != nil {
		comment.Stars = *upd.Stars
	}

	updated, err := c.store.Update(ctx, comment)
	if err != nil {
		return model.Comment{}, lookupError("Comment", id, err)
	}

	c.logger.Info("Comments service: comment updated",
		"comment_id", id,
		"by", actor.ID)

	return updated, nil
}

func (c *Comments) Delete(ctx context.Context, actor model.SessionUser, id int64) error {
	if _, err := c.authored(ctx, actor, id); err != nil {
		return err
	}

	if err := c.store.Delete(ctx, id); err != nil {
		return lookupError("Comment", id, err)
	}

	c.logger.Info("Comments service: comment deleted",
		"comment_id", id,
		"by", actor.ID)

	return nil
}

func (c *Comments) authored(ctx context.Context, actor model.SessionUser, id int64) (model.Comment, error) {
	comment, err := c.store.GetByID(ctx, id)
	if err != nil {
		return model.Comment{}, lookupError("Comment", id, err)
	}
	if comment.CommenterID != actor.ID && !actor.IsAdmin() {
		return model.Comment{}, model.ErrForbidden
	}
	return comment, nil
}
