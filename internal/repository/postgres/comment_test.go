package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/jobmarket-server/internal/model"
)

var commentColumns = []string{
	"id", "job_id", "commenter_id", "posted_at", "content", "stars",
	"job_title", "job_price", "job_image", "job_creator_id",
	"commenter_name", "commenter_avatar",
}

func addComment(rows *sqlmock.Rows, id int64, content string) *sqlmock.Rows {
	return rows.AddRow(id, 3, 5, fixedTime, content, 4, "Logo design", 100, nil, 2, "Bob", "avatars/5/a.png")
}

func TestCommentRepository_Create(t *testing.T) {
	t.Parallel()

	t.Run("loads commenter", func(t *testing.T) {
		t.Parallel()
		conn, mock := newMockConnection(t)
		r := NewCommentRepository(conn)
		mock.ExpectQuery(regexp.QuoteMeta(queryCreateComment)).WithArgs(int64(3), int64(5), "Great", 4).WillReturnRows(idRow(6))
		mock.ExpectQuery(regexp.QuoteMeta(queryCommentByID)).WithArgs(int64(6)).
			WillReturnRows(addComment(sqlmock.NewRows(commentColumns), 6, "Great"))

		c, err := r.Create(context.Background(), model.Comment{JobID: 3, CommenterID: 5, Content: "Great", Stars: 4})
		require.NoError(t, err)
		assert.Equal(t, int64(6), c.ID)
		require.NotNil(t, c.Commenter)
		require.NotNil(t, c.Commenter.Avatar)
		assert.Equal(t, "avatars/5/a.png", *c.Commenter.Avatar)
		assert.Empty(t, c.Commenter.Email)
	})

	t.Run("unknown job", func(t *testing.T) {
		t.Parallel()
		conn, mock := newMockConnection(t)
		r := NewCommentRepository(conn)
		mock.ExpectQuery(regexp.QuoteMeta(queryCreateComment)).WillReturnError(&pgconn.PgError{Code: "23503"})

		_, err := r.Create(context.Background(), model.Comment{JobID: 99, CommenterID: 5, Content: "x", Stars: 1})
		require.ErrorIs(t, err, model.ErrInvalidReference)
	})
}

func TestCommentRepository_Reads(t *testing.T) {
	t.Parallel()

	conn, mock := newMockConnection(t)
	r := NewCommentRepository(conn)
	mock.ExpectQuery(regexp.QuoteMeta(queryListComments)).
		WillReturnRows(addComment(addComment(sqlmock.NewRows(commentColumns), 2, "b"), 1, "a"))
	mock.ExpectQuery(regexp.QuoteMeta(queryCommentsByJob)).WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(commentColumns))
	mock.ExpectQuery(regexp.QuoteMeta(queryCommentByID)).WithArgs(int64(4)).WillReturnError(sql.ErrNoRows)

	all, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].Content)

	byJob, err := r.ListByJob(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, byJob)
	assert.Empty(t, byJob)

	_, err = r.GetByID(context.Background(), 4)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestCommentRepository_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	conn, mock := newMockConnection(t)
	r := NewCommentRepository(conn)
	mock.ExpectQuery(regexp.QuoteMeta(queryUpdateComment)).WithArgs(int64(6), "Edited", 5).WillReturnRows(idRow(6))
	mock.ExpectQuery(regexp.QuoteMeta(queryCommentByID)).WithArgs(int64(6)).
		WillReturnRows(addComment(sqlmock.NewRows(commentColumns), 6, "Edited"))
	mock.ExpectExec(regexp.QuoteMeta(queryDeleteComment)).WithArgs(int64(6)).WillReturnResult(sqlmock.NewResult(0, 1))

	c, err := r.Update(context.Background(), model.Comment{ID: 6, Content: "Edited", Stars: 5})
	require.NoError(t, err)
	assert.Equal(t, "Edited", c.Content)

	require.NoError(t, r.Delete(context.Background(), 6))
}
