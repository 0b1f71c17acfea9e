package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/model"
)

var _ model.CategoryStore = (*CategoryRepository)(nil)

const (
	queryCreateCategory = `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	queryUpdateCategory = `UPDATE categories SET name = $2 WHERE id = $1 RETURNING id`
	queryDeleteCategory = `DELETE FROM categories WHERE id = $1`

	queryCategoryByID   = `SELECT id, name FROM categories WHERE id = $1`
	queryListCategories = `SELECT id, name FROM categories ORDER BY id`

	queryCountCategories = `SELECT count(*) FROM categories WHERE $1 = '' OR name ILIKE $2`
	queryPageCategories  = `SELECT id, name FROM categories
		WHERE $1 = '' OR name ILIKE $2
		ORDER BY id DESC
		LIMIT $3 OFFSET $4`

	querySubcategoriesOfCategory = `SELECT id, name, image, category_id FROM subcategories
		WHERE category_id = $1 ORDER BY id`
	queryAllSubcategories    = `SELECT id, name, image, category_id FROM subcategories ORDER BY id`
	querySubcategoriesOfPage = `SELECT id, name, image, category_id FROM subcategories
		WHERE category_id IN (
			SELECT id FROM categories
			WHERE $1 = '' OR name ILIKE $2
			ORDER BY id DESC
			LIMIT $3 OFFSET $4
		)
		ORDER BY id`
)

type categoryRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type subcategoryRow struct {
	ID           int64          `db:"id"`
	Name         string         `db:"name"`
	Image        *string        `db:"image"`
	CategoryID   int64          `db:"category_id"`
	CategoryName sql.NullString `db:"category_name"`
}

func (r subcategoryRow) toModel() model.Subcategory {
	s := model.Subcategory{
		ID:         r.ID,
		Name:       r.Name,
		Image:      r.Image,
		CategoryID: r.CategoryID,
	}
	if r.CategoryName.Valid {
		s.Category = &model.CategoryRef{ID: r.CategoryID, Name: r.CategoryName.String}
	}
	return s
}

// CategoryRepository stores job categories. Reads return each category
// with its subcategories.
type CategoryRepository struct {
	db *Connection
}

func NewCategoryRepository(db *Connection) *CategoryRepository {
	return &CategoryRepository{
		db: db,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category model.Category) (model.Category, error) {
	id, err := r.db.returningID(ctx, "create category", queryCreateCategory, category.Name)
	if err != nil {
		return model.Category{}, err
	}
	return model.Category{ID: id, Name: category.Name, Subcategories: []model.Subcategory{}}, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (model.Category, error) {
	var row categoryRow
	if err := r.db.GetContext(ctx, &row, queryCategoryByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Category{}, model.ErrNotFound
		}
		return model.Category{}, fmt.Errorf("failed to get category: %w", err)
	}

	subs := []subcategoryRow{}
	if err := r.db.SelectContext(ctx, &subs, querySubcategoriesOfCategory, id); err != nil {
		return model.Category{}, fmt.Errorf("failed to list subcategories of category %d: %w", id, err)
	}

	return withSubcategories([]categoryRow{row}, subs)[0], nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	rows := []categoryRow{}
	if err := r.db.SelectContext(ctx, &rows, queryListCategories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	subs := []subcategoryRow{}
	if err := r.db.SelectContext(ctx, &subs, queryAllSubcategories); err != nil {
		return nil, fmt.Errorf("failed to list subcategories: %w", err)
	}

	return withSubcategories(rows, subs), nil
}

// Page returns one page of categories ordered newest first along with the
// number of categories matching the keyword.
func (r *CategoryRepository) Page(ctx context.Context, q model.PageQuery) ([]model.Category, int64, error) {
	pattern := containsPattern(q.Keyword)

	var total int64
	if err := r.db.GetContext(ctx, &total, queryCountCategories, q.Keyword, pattern); err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	rows := []categoryRow{}
	if err := r.db.SelectContext(ctx, &rows, queryPageCategories, q.Keyword, pattern, q.PageSize, q.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to page categories: %w", err)
	}

	subs := []subcategoryRow{}
	if len(rows) > 0 {
		err := r.db.SelectContext(ctx, &subs, querySubcategoriesOfPage, q.Keyword, pattern, q.PageSize, q.Offset())
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list subcategories of page: %w", err)
		}
	}

	return withSubcategories(rows, subs), total, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category model.Category) (model.Category, error) {
	if _, err := r.db.returningID(ctx, "update category", queryUpdateCategory, category.ID, category.Name); err != nil {
		return model.Category{}, err
	}
	return r.GetByID(ctx, category.ID)
}

// Delete removes a category. It fails with model.ErrInUse while
// subcategories still point at it.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.execOne(ctx, "delete category", queryDeleteCategory, id)
}

func withSubcategories(rows []categoryRow, subs []subcategoryRow) []model.Category {
	byCategory := make(map[int64][]model.Subcategory, len(rows))
	for _, s := range subs {
		byCategory[s.CategoryID] = append(byCategory[s.CategoryID], s.toModel())
	}

	out := make([]model.Category, 0, len(rows))
	for _, row := range rows {
		nested := byCategory[row.ID]
		if nested == nil {
			nested = []model.Subcategory{}
		}
		out = append(out, model.Category{ID: row.ID, Name: row.Name, Subcategories: nested})
	}
	return out
}
