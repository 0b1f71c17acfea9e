package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/model"
)

var _ model.SubcategoryStore = (*SubcategoryRepository)(nil)

const subcategorySelect = `SELECT s.id, s.name, s.image, s.category_id, c.name AS category_name
	FROM subcategories s
	JOIN categories c ON c.id = s.category_id`

const (
	queryCreateSubcategory = `INSERT INTO subcategories (name, image, category_id) VALUES ($1, $2, $3) RETURNING id`
	queryUpdateSubcategory = `UPDATE subcategories SET name = $2, image = $3, category_id = $4 WHERE id = $1 RETURNING id`
	queryDeleteSubcategory = `DELETE FROM subcategories WHERE id = $1`

	querySubcategoryByID       = subcategorySelect + ` WHERE s.id = $1`
	queryListSubcategories     = subcategorySelect + ` ORDER BY s.id`
	querySubcategoriesByParent = subcategorySelect + ` WHERE s.category_id = $1 ORDER BY s.id`

	queryCountSubcategories = `SELECT count(*) FROM subcategories WHERE $1 = '' OR name ILIKE $2`
	queryPageSubcategories  = subcategorySelect + `
		WHERE $1 = '' OR s.name ILIKE $2
		ORDER BY s.id DESC
		LIMIT $3 OFFSET $4`
)

// SubcategoryRepository stores the detail groups of categories. Reads
// return each subcategory with its parent category.
type SubcategoryRepository struct {
	db *Connection
}

func NewSubcategoryRepository(db *Connection) *SubcategoryRepository {
	return &SubcategoryRepository{
		db: db,
	}
}

// Create inserts a subcategory. An unknown category yields
// model.ErrInvalidReference.
func (r *SubcategoryRepository) Create(ctx context.Context, sub model.Subcategory) (model.Subcategory, error) {
	id, err := r.db.returningID(ctx, "create subcategory", queryCreateSubcategory, sub.Name, sub.Image, sub.CategoryID)
	if err != nil {
		return model.Subcategory{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *SubcategoryRepository) GetByID(ctx context.Context, id int64) (model.Subcategory, error) {
	var row subcategoryRow
	if err := r.db.GetContext(ctx, &row, querySubcategoryByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Subcategory{}, model.ErrNotFound
		}
		return model.Subcategory{}, fmt.Errorf("failed to get subcategory: %w", err)
	}
	return row.toModel(), nil
}

func (r *SubcategoryRepository) List(ctx context.Context) ([]model.Subcategory, error) {
	return r.selectMany(ctx, "list subcategories", queryListSubcategories)
}

func (r *SubcategoryRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.Subcategory, error) {
	return r.selectMany(ctx, "list subcategories by category", querySubcategoriesByParent, categoryID)
}

func (r *SubcategoryRepository) Page(ctx context.Context, q model.PageQuery) ([]model.Subcategory, int64, error) {
	pattern := containsPattern(q.Keyword)

	var total int64
	if err := r.db.GetContext(ctx, &total, queryCountSubcategories, q.Keyword, pattern); err != nil {
		return nil, 0, fmt.Errorf("failed to count subcategories: %w", err)
	}

	subs, err := r.selectMany(ctx, "page subcategories", queryPageSubcategories, q.Keyword, pattern, q.PageSize, q.Offset())
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

func (r *SubcategoryRepository) Update(ctx context.Context, sub model.Subcategory) (model.Subcategory, error) {
	_, err := r.db.returningID(ctx, "update subcategory", queryUpdateSubcategory, sub.ID, sub.Name, sub.Image, sub.CategoryID)
	if err != nil {
		return model.Subcategory{}, err
	}
	return r.GetByID(ctx, sub.ID)
}

// Delete removes a subcategory. It fails with model.ErrInUse while jobs
// still point at it.
func (r *SubcategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.execOne(ctx, "delete subcategory", queryDeleteSubcategory, id)
}

func (r *SubcategoryRepository) selectMany(ctx context.Context, op, query string, args ...any) ([]model.Subcategory, error) {
	rows := []subcategoryRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	out := make([]model.Subcategory, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
