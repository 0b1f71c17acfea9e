package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dtroode/jobmarket-server/internal/model"
)

var _ model.JobStore = (*JobRepository)(nil)

const jobSelect = `SELECT j.id, j.title, j.rating, j.price, j.image, j.description, j.short_description,
		j.stars, j.subcategory_id, j.creator_id,
		s.name AS subcategory_name, s.image AS subcategory_image, s.category_id, c.name AS category_name
	FROM jobs j
	JOIN subcategories s ON s.id = j.subcategory_id
	JOIN categories c ON c.id = s.category_id`

const (
	queryCreateJob = `INSERT INTO jobs (title, rating, price, image, description, short_description,
		stars, subcategory_id, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	queryUpdateJob = `UPDATE jobs SET title = $2, rating = $3, price = $4, image = $5, description = $6,
		short_description = $7, stars = $8, subcategory_id = $9
		WHERE id = $1
		RETURNING id`

	queryDeleteJob = `DELETE FROM jobs WHERE id = $1`

	queryJobByID           = jobSelect + ` WHERE j.id = $1`
	queryListJobs          = jobSelect + ` ORDER BY j.id`
	queryJobsBySubcategory = jobSelect + ` WHERE j.subcategory_id = $1 ORDER BY j.id`
	queryJobsByCategory    = jobSelect + ` WHERE s.category_id = $1 ORDER BY j.id`
	querySearchJobs        = jobSelect + ` WHERE j.title ILIKE $1 ORDER BY j.id`

	queryCountJobs = `SELECT count(*) FROM jobs WHERE $1 = '' OR title ILIKE $2`
	queryPageJobs  = jobSelect + `
		WHERE $1 = '' OR j.title ILIKE $2
		ORDER BY j.id DESC
		LIMIT $3 OFFSET $4`
)

type jobRow struct {
	ID               int64   `db:"id"`
	Title            string  `db:"title"`
	Rating           int     `db:"rating"`
	Price            int     `db:"price"`
	Image            *string `db:"image"`
	Description      *string `db:"description"`
	ShortDescription *string `db:"short_description"`
	Stars            int     `db:"stars"`
	SubcategoryID    int64   `db:"subcategory_id"`
	CreatorID        *int64  `db:"creator_id"`
	SubcategoryName  string  `db:"subcategory_name"`
	SubcategoryImage *string `db:"subcategory_image"`
	CategoryID       int64   `db:"category_id"`
	CategoryName     string  `db:"category_name"`
}

func (r jobRow) toModel() model.Job {
	return model.Job{
		ID:               r.ID,
		Title:            r.Title,
		Rating:           r.Rating,
		Price:            r.Price,
		Image:            r.Image,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Stars:            r.Stars,
		SubcategoryID:    r.SubcategoryID,
		CreatorID:        r.CreatorID,
		Subcategory: &model.SubcategoryRef{
			ID:         r.SubcategoryID,
			Name:       r.SubcategoryName,
			Image:      r.SubcategoryImage,
			CategoryID: r.CategoryID,
			Category:   &model.CategoryRef{ID: r.CategoryID, Name: r.CategoryName},
		},
	}
}

// JobRepository stores job listings. Reads return each job with its
// subcategory and category.
type JobRepository struct {
	db *Connection
}

func NewJobRepository(db *Connection) *JobRepository {
	return &JobRepository{
		db: db,
	}
}

// Create inserts a job. An unknown subcategory yields model.ErrInvalidReference.
func (r *JobRepository) Create(ctx context.Context, job model.Job) (model.Job, error) {
	id, err := r.db.returningID(ctx, "create job", queryCreateJob,
		job.Title, job.Rating, job.Price, job.Image, job.Description, job.ShortDescription,
		job.Stars, job.SubcategoryID, job.CreatorID,
	)
	if err != nil {
		return model.Job{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (model.Job, error) {
	var row jobRow
	if err := r.db.GetContext(ctx, &row, queryJobByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Job{}, model.ErrNotFound
		}
		return model.Job{}, fmt.Errorf("failed to get job: %w", err)
	}
	return row.toModel(), nil
}

func (r *JobRepository) List(ctx context.Context) ([]model.Job, error) {
	return r.selectMany(ctx, "list jobs", queryListJobs)
}

func (r *JobRepository) ListBySubcategory(ctx context.Context, subcategoryID int64) ([]model.Job, error) {
	return r.selectMany(ctx, "list jobs by subcategory", queryJobsBySubcategory, subcategoryID)
}

func (r *JobRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.Job, error) {
	return r.selectMany(ctx, "list jobs by category", queryJobsByCategory, categoryID)
}

func (r *JobRepository) SearchByTitle(ctx context.Context, title string) ([]model.Job, error) {
	return r.selectMany(ctx, "search jobs", querySearchJobs, containsPattern(title))
}

// Page returns one page of jobs ordered newest first along with the number
// of jobs whose title matches the keyword.
func (r *JobRepository) Page(ctx context.Context, q model.PageQuery) ([]model.Job, int64, error) {
	pattern := containsPattern(q.Keyword)

	var total int64
	if err := r.db.GetContext(ctx, &total, queryCountJobs, q.Keyword, pattern); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	jobs, err := r.selectMany(ctx, "page jobs", queryPageJobs, q.Keyword, pattern, q.PageSize, q.Offset())
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// Update writes the editable columns of the job. The creator is left untouched.
func (r *JobRepository) Update(ctx context.Context, job model.Job) (model.Job, error) {
	_, err := r.db.returningID(ctx, "update job", queryUpdateJob,
		job.ID, job.Title, job.Rating, job.Price, job.Image, job.Description, job.ShortDescription,
		job.Stars, job.SubcategoryID,
	)
	if err != nil {
		return model.Job{}, err
	}
	return r.GetByID(ctx, job.ID)
}

// Delete removes a job together with its hires and comments.
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	return r.db.execOne(ctx, "delete job", queryDeleteJob, id)
}

func (r *JobRepository) selectMany(ctx context.Context, op, query string, args ...any) ([]model.Job, error) {
	rows := []jobRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	out := make([]model.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
