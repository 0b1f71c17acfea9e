package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/jobmarket-server/internal/model"
)

var _ model.CommentStore = (*CommentRepository)(nil)

const commentSelect = `SELECT m.id, m.job_id, m.commenter_id, m.posted_at, m.content, m.stars,
		j.title AS job_title, j.price AS job_price, j.image AS job_image, j.creator_id AS job_creator_id,
		u.name AS commenter_name, u.avatar AS commenter_avatar
	FROM comments m
	JOIN jobs j ON j.id = m.job_id
	JOIN users u ON u.id = m.commenter_id`

const (
	queryCreateComment = `INSERT INTO comments (job_id, commenter_id, content, stars) VALUES ($1, $2, $3, $4) RETURNING id`
	queryUpdateComment = `UPDATE comments SET content = $2, stars = $3 WHERE id = $1 RETURNING id`
	queryDeleteComment = `DELETE FROM comments WHERE id = $1`

	queryCommentByID   = commentSelect + ` WHERE m.id = $1`
	queryListComments  = commentSelect + ` ORDER BY m.posted_at DESC, m.id DESC`
	queryCommentsByJob = commentSelect + ` WHERE m.job_id = $1 ORDER BY m.posted_at DESC, m.id DESC`
)

type commentRow struct {
	ID              int64     `db:"id"`
	JobID           int64     `db:"job_id"`
	CommenterID     int64     `db:"commenter_id"`
	PostedAt        time.Time `db:"posted_at"`
	Content         string    `db:"content"`
	Stars           int       `db:"stars"`
	JobTitle        string    `db:"job_title"`
	JobPrice        int       `db:"job_price"`
	JobImage        *string   `db:"job_image"`
	JobCreatorID    *int64    `db:"job_creator_id"`
	CommenterName   string    `db:"commenter_name"`
	CommenterAvatar *string   `db:"commenter_avatar"`
}

func (r commentRow) toModel() model.Comment {
	return model.Comment{
		ID:          r.ID,
		JobID:       r.JobID,
		CommenterID: r.CommenterID,
		PostedAt:    r.PostedAt,
		Content:     r.Content,
		Stars:       r.Stars,
		Job: &model.JobSummary{
			ID:        r.JobID,
			Title:     r.JobTitle,
			Price:     r.JobPrice,
			Image:     r.JobImage,
			CreatorID: r.JobCreatorID,
		},
		Commenter: &model.UserSummary{
			ID:     r.CommenterID,
			Name:   r.CommenterName,
			Avatar: r.CommenterAvatar,
		},
	}
}

// CommentRepository stores job comments. Reads return each comment with
// the job and the commenter, newest first.
type CommentRepository struct {
	db *Connection
}

func NewCommentRepository(db *Connection) *CommentRepository {
	return &CommentRepository{
		db: db,
	}
}

// Create inserts a comment. An unknown job or user yields model.ErrInvalidReference.
func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	id, err := r.db.returningID(ctx, "create comment", queryCreateComment,
		comment.JobID, comment.CommenterID, comment.Content, comment.Stars)
	if err != nil {
		return model.Comment{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *CommentRepository) GetByID(ctx context.Context, id int64) (model.Comment, error) {
	var row commentRow
	if err := r.db.GetContext(ctx, &row, queryCommentByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Comment{}, model.ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("failed to get comment: %w", err)
	}
	return row.toModel(), nil
}

func (r *CommentRepository) List(ctx context.Context) ([]model.Comment, error) {
	return r.selectMany(ctx, "list comments", queryListComments)
}

func (r *CommentRepository) ListByJob(ctx context.Context, jobID int64) ([]model.Comment, error) {
	return r.selectMany(ctx, "list comments by job", queryCommentsByJob, jobID)
}

func (r *CommentRepository) Update(ctx context.Context, comment model.Comment) (model.Comment, error) {
	_, err := r.db.returningID(ctx, "update comment", queryUpdateComment, comment.ID, comment.Content, comment.Stars)
	if err != nil {
		return model.Comment{}, err
	}
	return r.GetByID(ctx, comment.ID)
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.execOne(ctx, "delete comment", queryDeleteComment, id)
}

func (r *CommentRepository) selectMany(ctx context.Context, op, query string, args ...any) ([]model.Comment, error) {
	rows := []commentRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	out := make([]model.Comment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
