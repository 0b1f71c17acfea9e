package model

import "context"

// CategoryStore defines persistence operations for job categories.
type CategoryStore interface {
	Create(ctx context.Context, category Category) (Category, error)
	GetByID(ctx context.Context, id int64) (Category, error)
	List(ctx context.Context) ([]Category, error)
	Page(ctx context.Context, query PageQuery) ([]Category, int64, error)
	Update(ctx context.Context, category Category) (Category, error)
	Delete(ctx context.Context, id int64) error
}

// SubcategoryStore defines persistence operations for the detail groups
// that sit between categories and jobs.
type SubcategoryStore interface {
	Create(ctx context.Context, sub Subcategory) (Subcategory, error)
	GetByID(ctx context.Context, id int64) (Subcategory, error)
	List(ctx context.Context) ([]Subcategory, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]Subcategory, error)
	Page(ctx context.Context, query PageQuery) ([]Subcategory, int64, error)
	Update(ctx context.Context, sub Subcategory) (Subcategory, error)
	Delete(ctx context.Context, id int64) error
}

// Category is a top-level job category together with its detail groups.
type Category struct {
	ID            int64         `json:"id"`
	Name          string        `json:"tenLoaiCongViec"`
	Subcategories []Subcategory `json:"chiTietLoaiCongViecs"`
}

// Ref drops the nested subcategories.
func (c Category) Ref() *CategoryRef {
	return &CategoryRef{ID: c.ID, Name: c.Name}
}

// CategoryRef is a category embedded in another record.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"tenLoaiCongViec"`
}

// Subcategory groups jobs inside a category.
type Subcategory struct {
	ID         int64        `json:"id"`
	Name       string       `json:"tenChiTiet"`
	Image      *string      `json:"hinhAnh"`
	CategoryID int64        `json:"maLoaiCongViec"`
	Category   *CategoryRef `json:"loaiCongViec,omitempty"`
	Jobs       []Job        `json:"congViecs,omitempty"`
}

// SubcategoryRef is a subcategory embedded in a job.
type SubcategoryRef struct {
	ID         int64        `json:"id"`
	Name       string       `json:"tenChiTiet"`
	Image      *string      `json:"hinhAnh"`
	CategoryID int64        `json:"maLoaiCongViec"`
	Category   *CategoryRef `json:"loaiCongViec,omitempty"`
}

// NewCategory is a request to create a category.
type NewCategory struct {
	Name string `json:"tenLoaiCongViec" validate:"required"`
}

// CategoryUpdate is a partial update of a category.
type CategoryUpdate struct {
	Name *string `json:"tenLoaiCongViec,omitempty" validate:"omitempty,min=1"`
}

// NewSubcategory is a request to create a subcategory.
type NewSubcategory struct {
	Name       string  `json:"tenChiTiet" validate:"required"`
	Image      *string `json:"hinhAnh,omitempty"`
	CategoryID int64   `json:"maLoaiCongViec" validate:"required,gt=0"`
}

// SubcategoryUpdate is a partial update of a subcategory.
type SubcategoryUpdate struct {
	Name       *string `json:"tenChiTiet,omitempty" validate:"omitempty,min=1"`
	Image      *string `json:"hinhAnh,omitempty"`
	CategoryID *int64  `json:"maLoaiCongViec,omitempty" validate:"omitempty,gt=0"`
}
