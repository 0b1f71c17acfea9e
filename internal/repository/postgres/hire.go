package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/jobmarket-server/internal/model"
)

var _ model.HireStore = (*HireRepository)(nil)

const hireSelect = `SELECT h.id, h.job_id, h.hirer_id, h.hired_at, h.completed,
		j.title AS job_title, j.price AS job_price, j.image AS job_image, j.creator_id AS job_creator_id,
		u.name AS hirer_name, u.email AS hirer_email, u.avatar AS hirer_avatar
	FROM hires h
	JOIN jobs j ON j.id = h.job_id
	JOIN users u ON u.id = h.hirer_id`

const (
	queryCreateHire   = `INSERT INTO hires (job_id, hirer_id) VALUES ($1, $2) RETURNING id`
	querySetCompleted = `UPDATE hires SET completed = $2 WHERE id = $1 RETURNING id`
	queryDeleteHire   = `DELETE FROM hires WHERE id = $1`

	queryHireByID   = hireSelect + ` WHERE h.id = $1`
	queryListHires  = hireSelect + ` ORDER BY h.hired_at DESC, h.id DESC`
	queryOpenHires  = hireSelect + ` WHERE NOT h.completed ORDER BY h.hired_at DESC, h.id DESC`
	queryCountHires = `SELECT count(*) FROM hires`
	queryPageHires  = hireSelect + ` ORDER BY h.hired_at DESC, h.id DESC LIMIT $1 OFFSET $2`
)

type hireRow struct {
	ID           int64     `db:"id"`
	JobID        int64     `db:"job_id"`
	HirerID      int64     `db:"hirer_id"`
	HiredAt      time.Time `db:"hired_at"`
	Completed    bool      `db:"completed"`
	JobTitle     string    `db:"job_title"`
	JobPrice     int       `db:"job_price"`
	JobImage     *string   `db:"job_image"`
	JobCreatorID *int64    `db:"job_creator_id"`
	HirerName    string    `db:"hirer_name"`
	HirerEmail   string    `db:"hirer_email"`
	HirerAvatar  *string   `db:"hirer_avatar"`
}

func (r hireRow) toModel() model.Hire {
	return model.Hire{
		ID:        r.ID,
		JobID:     r.JobID,
		HirerID:   r.HirerID,
		HiredAt:   r.HiredAt,
		Completed: r.Completed,
		Job: &model.JobSummary{
			ID:        r.JobID,
			Title:     r.JobTitle,
			Price:     r.JobPrice,
			Image:     r.JobImage,
			CreatorID: r.JobCreatorID,
		},
		Hirer: &model.UserSummary{
			ID:     r.HirerID,
			Name:   r.HirerName,
			Email:  r.HirerEmail,
			Avatar: r.HirerAvatar,
		},
	}
}

// HireRepository stores hired jobs. Reads return each hire with the job
// and the hiring user.
type HireRepository struct {
	db *Connection
}

func NewHireRepository(db *Connection) *HireRepository {
	return &HireRepository{
		db: db,
	}
}

// Create records a hire. An unknown job or user yields model.ErrInvalidReference.
func (r *HireRepository) Create(ctx context.Context, hire model.Hire) (model.Hire, error) {
	id, err := r.db.returningID(ctx, "create hire", queryCreateHire, hire.JobID, hire.HirerID)
	if err != nil {
		return model.Hire{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *HireRepository) GetByID(ctx context.Context, id int64) (model.Hire, error) {
	var row hireRow
	if err := r.db.GetContext(ctx, &row, queryHireByID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Hire{}, model.ErrNotFound
		}
		return model.Hire{}, fmt.Errorf("failed to get hire: %w", err)
	}
	return row.toModel(), nil
}

func (r *HireRepository) List(ctx context.Context) ([]model.Hire, error) {
	return r.selectMany(ctx, "list hires", queryListHires)
}

// ListOpen returns the hires that are not completed yet, newest first.
func (r *HireRepository) ListOpen(ctx context.Context) ([]model.Hire, error) {
	return r.selectMany(ctx, "list open hires", queryOpenHires)
}

func (r *HireRepository) Page(ctx context.Context, q model.PageQuery) ([]model.Hire, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, queryCountHires); err != nil {
		return nil, 0, fmt.Errorf("failed to count hires: %w", err)
	}

	hires, err := r.selectMany(ctx, "page hires", queryPageHires, q.PageSize, q.Offset())
	if err != nil {
		return nil, 0, err
	}
	return hires, total, nil
}

func (r *HireRepository) SetCompleted(ctx context.Context, id int64, completed bool) (model.Hire, error) {
	if _, err := r.db.returningID(ctx, "update hire", querySetCompleted, id, completed); err != nil {
		return model.Hire{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *HireRepository) Delete(ctx context.Context, id int64) error {
	return r.db.execOne(ctx, "delete hire", queryDeleteHire, id)
}

func (r *HireRepository) selectMany(ctx context.Context, op, query string, args ...any) ([]model.Hire, error) {
	rows := []hireRow{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	out := make([]model.Hire, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}
