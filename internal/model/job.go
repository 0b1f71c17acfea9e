package model

import "context"

// JobStore defines persistence operations for job listings.
type JobStore interface {
	Create(ctx context.Context, job Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	List(ctx context.Context) ([]Job, error)
	Page(ctx context.Context, query PageQuery) ([]Job, int64, error)
	ListBySubcategory(ctx context.Context, subcategoryID int64) ([]Job, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]Job, error)
	SearchByTitle(ctx context.Context, title string) ([]Job, error)
	Update(ctx context.Context, job Job) (Job, error)
	Delete(ctx context.Context, id int64) error
}

// Job is a service offered on the marketplace.
type Job struct {
	ID               int64           `json:"id"`
	Title            string          `json:"tenCongViec"`
	Rating           int             `json:"danhGia"`
	Price            int             `json:"giaTien"`
	Image            *string         `json:"hinhAnh"`
	Description      *string         `json:"moTa"`
	ShortDescription *string         `json:"moTaNgan"`
	Stars            int             `json:"saoCongViec"`
	SubcategoryID    int64           `json:"maChiTietLoai"`
	CreatorID        *int64          `json:"nguoiTao"`
	Subcategory      *SubcategoryRef `json:"chiTietLoaiCongViec,omitempty"`
	Comments         []Comment       `json:"binhLuans,omitempty"`
}

// OwnedBy reports whether the user may change the job.
func (j Job) OwnedBy(actor SessionUser) bool {
	return actor.IsAdmin() || (j.CreatorID != nil && *j.CreatorID == actor.ID)
}

// JobSummary is a job embedded in hires and comments.
type JobSummary struct {
	ID        int64   `json:"id"`
	Title     string  `json:"tenCongViec"`
	Price     int     `json:"giaTien"`
	Image     *string `json:"hinhAnh"`
	CreatorID *int64  `json:"nguoiTao"`
}

// UserSummary is the public part of a user embedded in other records.
type UserSummary struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email,omitempty"`
	Avatar *string `json:"avatar"`
}

// NewJob is a request to publish a job.
type NewJob struct {
	Title            string  `json:"tenCongViec" validate:"required"`
	Rating           int     `json:"danhGia" validate:"gte=0"`
	Price            *int    `json:"giaTien" validate:"required,gte=0"`
	Image            *string `json:"hinhAnh,omitempty"`
	Description      *string `json:"moTa,omitempty"`
	ShortDescription *string `json:"moTaNgan,omitempty"`
	Stars            int     `json:"saoCongViec" validate:"gte=0"`
	SubcategoryID    int64   `json:"maChiTietLoai" validate:"required,gt=0"`
}

// JobUpdate is a partial update of a job.
type JobUpdate struct {
	Title            *string `json:"tenCongViec,omitempty" validate:"omitempty,min=1"`
	Rating           *int    `json:"danhGia,omitempty" validate:"omitempty,gte=0"`
	Price            *int    `json:"giaTien,omitempty" validate:"omitempty,gte=0"`
	Image            *string `json:"hinhAnh,omitempty"`
	Description      *string `json:"moTa,omitempty"`
	ShortDescription *string `json:"moTaNgan,omitempty"`
	Stars            *int    `json:"saoCongViec,omitempty" validate:"omitempty,gte=0"`
	SubcategoryID    *int64  `json:"maChiTietLoai,omitempty" validate:"omitempty,gt=0"`
}

// Apply copies the set fields onto the job.
func (u JobUpdate) Apply(j *Job) {
	if u.Title != nil {
		j.Title = *u.Title
	}
	if u.Rating != nil {
		j.Rating = *u.Rating
	}
	if u.Price != nil {
		j.Price = *u.Price
	}
	if u.Image != nil {
		j.Image = u.Image
	}
	if u.Description != nil {
		j.Description = u.Description
	}
	if u.ShortDescription != nil {
		j.ShortDescription = u.ShortDescription
	}
	if u.Stars != nil {
		j.Stars = *u.Stars
	}
	if u.SubcategoryID != nil {
		j.SubcategoryID = *u.SubcategoryID
	}
}
