package model

import (
	"context"
	"time"
)

// HireStore defines persistence operations for hired jobs.
type HireStore interface {
	Create(ctx context.Context, hire Hire) (Hire, error)
	GetByID(ctx context.Context, id int64) (Hire, error)
	List(ctx context.Context) ([]Hire, error)
	Page(ctx context.Context, query PageQuery) ([]Hire, int64, error)
	ListOpen(ctx context.Context) ([]Hire, error)
	SetCompleted(ctx context.Context, id int64, completed bool) (Hire, error)
	Delete(ctx context.Context, id int64) error
}

// Hire records a user hiring a job.
type Hire struct {
	ID        int64        `json:"id"`
	JobID     int64        `json:"maCongViec"`
	HirerID   int64        `json:"maNguoiThue"`
	HiredAt   time.Time    `json:"ngayThue"`
	Completed bool         `json:"hoanThanh"`
	Job       *JobSummary  `json:"congViec,omitempty"`
	Hirer     *UserSummary `json:"nguoiDung,omitempty"`
}

// ManagedBy reports whether the user may change the hire: the hirer, the
// job's creator and admins.
func (h Hire) ManagedBy(actor SessionUser) bool {
	if actor.IsAdmin() || h.HirerID == actor.ID {
		return true
	}
	return h.Job != nil && h.Job.CreatorID != nil && *h.Job.CreatorID == actor.ID
}

// NewHire is a request to hire a job.
type NewHire struct {
	JobID int64 `json:"maCongViec" validate:"required,gt=0"`
}

// HireUpdate is a partial update of a hire.
type HireUpdate struct {
	Completed *bool `json:"hoanThanh,omitempty"`
}
