package model

import (
	"context"
	"time"
)

// CommentStore defines persistence operations for job comments.
type CommentStore interface {
	Create(ctx context.Context, comment Comment) (Comment, error)
	GetByID(ctx context.Context, id int64) (Comment, error)
	List(ctx context.Context) ([]Comment, error)
	ListByJob(ctx context.Context, jobID int64) ([]Comment, error)
	Update(ctx context.Context, comment Comment) (Comment, error)
	Delete(ctx context.Context, id int64) error
}

// Comment is a rated review left on a job.
type Comment struct {
	ID          int64        `json:"id"`
	JobID       int64        `json:"maCongViec"`
	CommenterID int64        `json:"maNguoiBinhLuan"`
	PostedAt    time.Time    `json:"ngayBinhLuan"`
	Content     string       `json:"noiDung"`
	Stars       int          `json:"saoBinhLuan"`
	Job         *JobSummary  `json:"congViec,omitempty"`
	Commenter   *UserSummary `json:"nguoiDung,omitempty"`
}

// NewComment is a request to comment on a job.
type NewComment struct {
	JobID   int64  `json:"maCongViec" validate:"required,gt=0"`
	Content string `json:"noiDung" validate:"required"`
	Stars   int    `json:"saoBinhLuan" validate:"required,gte=1,lte=5"`
}

// CommentUpdate is a partial update of a comment.
type CommentUpdate struct {
	Content *string `json:"noiDung,omitempty" validate:"omitempty,min=1"`
	Stars   *int    `json:"saoBinhLuan,omitempty" validate:"omitempty,gte=1,lte=5"`
}
