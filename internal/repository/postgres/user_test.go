package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/jobmarket-server/internal/model"
)

var columnNames = []string{
	"id", "name", "email", "password_hash", "google_id", "role", "refresh_token_hash",
	"phone", "birth_day", "gender", "skill", "certification", "avatar", "created_at", "updated_at",
}

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newMockRepository(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewUserRepository(&Connection{DB: sqlx.NewDb(db, "sqlmock")}), mock
}

func userRow(id int64, email string) *sqlmock.Rows {
	return sqlmock.NewRows(columnNames).AddRow(
		id, "Ann", email, "$2a$10$digest", nil, "user", nil,
		nil, nil, nil, "go", nil, nil, fixedTime, fixedTime,
	)
}

func TestUserRepository_GetByID(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUserByID)).WithArgs(int64(7)).WillReturnRows(userRow(7, "ann@x.com"))

		u, err := r.GetByID(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.ID)
		assert.Equal(t, model.RoleUser, u.Role)
		require.NotNil(t, u.PasswordHash)
		assert.Equal(t, "$2a$10$digest", *u.PasswordHash)
		assert.Nil(t, u.ExternalID)
		require.NotNil(t, u.Skill)
		assert.Equal(t, "go", *u.Skill)
		assert.Equal(t, fixedTime, u.CreatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUserByID)).WithArgs(int64(8)).WillReturnError(sql.ErrNoRows)

		_, err := r.GetByID(context.Background(), 8)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("driver failure", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUserByID)).WithArgs(int64(9)).WillReturnError(errors.New("conn reset"))

		_, err := r.GetByID(context.Background(), 9)
		require.Error(t, err)
		assert.NotErrorIs(t, err, model.ErrNotFound)
		assert.Contains(t, err.Error(), "failed to get user by id")
	})
}

func TestUserRepository_Lookups(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta(queryUserByEmail)).WithArgs("ann@x.com").WillReturnRows(userRow(1, "ann@x.com"))
	mock.ExpectQuery(regexp.QuoteMeta(queryUserByExternalID)).WithArgs("g-1").WillReturnError(sql.ErrNoRows)

	u, err := r.GetByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", u.Email)

	_, err = r.GetByExternalID(context.Background(), "g-1")
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_Create(t *testing.T) {
	t.Parallel()

	hash := "$2a$10$digest"
	in := model.User{Name: "Ann", Email: "ann@x.com", PasswordHash: &hash}

	t.Run("defaults role", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryCreateUser)).
			WithArgs("Ann", "ann@x.com", hash, nil, "user", nil, nil, nil, nil, nil, nil).
			WillReturnRows(userRow(3, "ann@x.com"))

		saved, err := r.Create(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, int64(3), saved.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryCreateUser)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		_, err := r.Create(context.Background(), in)
		require.ErrorIs(t, err, model.ErrConflict)
	})
}

func TestUserRepository_Update(t *testing.T) {
	t.Parallel()

	skill := "go"
	in := model.User{ID: 4, Name: "Ann B", Email: "ann@x.com", Role: model.RoleAdmin, Skill: &skill}

	t.Run("writes profile columns", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUpdateUser)).
			WithArgs(int64(4), "Ann B", "ann@x.com", "admin", nil, nil, nil, "go", nil, nil).
			WillReturnRows(userRow(4, "ann@x.com"))

		saved, err := r.Update(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, int64(4), saved.ID)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUpdateUser)).WillReturnError(sql.ErrNoRows)

		_, err := r.Update(context.Background(), in)
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectQuery(regexp.QuoteMeta(queryUpdateUser)).WillReturnError(&pgconn.PgError{Code: "23505"})

		_, err := r.Update(context.Background(), in)
		require.ErrorIs(t, err, model.ErrConflict)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepository(t)
	mock.ExpectExec(regexp.QuoteMeta(queryDeleteUser)).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(queryDeleteUser)).WithArgs(int64(6)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.Delete(context.Background(), 5))
	require.ErrorIs(t, r.Delete(context.Background(), 6), model.ErrNotFound)
}

func TestUserRepository_LinkExternalID(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepository(t)
	rows := sqlmock.NewRows(columnNames).AddRow(
		2, "Eve", "eve@x.com", "$2a$10$digest", "google-42", "user", nil,
		nil, nil, nil, nil, nil, nil, fixedTime, fixedTime,
	)
	mock.ExpectQuery(regexp.QuoteMeta(queryLinkExternalID)).WithArgs(int64(2), "google-42").WillReturnRows(rows)

	u, err := r.LinkExternalID(context.Background(), 2, "google-42")
	require.NoError(t, err)
	require.NotNil(t, u.ExternalID)
	assert.Equal(t, "google-42", *u.ExternalID)
	require.NotNil(t, u.PasswordHash)
}

func TestUserRepository_SetRefreshTokenHash(t *testing.T) {
	t.Parallel()

	digest := "abc123"

	t.Run("store digest", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectExec(regexp.QuoteMeta(querySetRefreshHash)).WithArgs(int64(1), digest).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, r.SetRefreshTokenHash(context.Background(), 1, &digest))
	})

	t.Run("clear digest", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectExec(regexp.QuoteMeta(querySetRefreshHash)).WithArgs(int64(1), nil).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, r.SetRefreshTokenHash(context.Background(), 1, nil))
	})

	t.Run("missing user", func(t *testing.T) {
		t.Parallel()
		r, mock := newMockRepository(t)
		mock.ExpectExec(regexp.QuoteMeta(querySetRefreshHash)).WithArgs(int64(2), nil).WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, r.SetRefreshTokenHash(context.Background(), 2, nil), model.ErrNotFound)
	})
}

func TestUserRepository_Page(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta(queryCountPage)).WithArgs("an_n", `%an\_n%`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta(queryPageUsers)).WithArgs("an_n", `%an\_n%`, 5, 5).
		WillReturnRows(userRow(9, "ann@x.com"))

	users, total, err := r.Page(context.Background(), model.PageQuery{Page: 2, PageSize: 5, Keyword: "an_n"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	require.Len(t, users, 1)
	assert.Equal(t, int64(9), users[0].ID)
}

func TestUserRepository_ListAndSearch(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta(queryListUsers)).WillReturnRows(sqlmock.NewRows(columnNames))
	mock.ExpectQuery(regexp.QuoteMeta(querySearchByName)).WithArgs("%50\\%%").WillReturnRows(userRow(1, "a@x.com"))

	all, err := r.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	found, err := r.SearchByName(context.Background(), "50%")
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestConnection_Ping(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	conn := &Connection{DB: sqlx.NewDb(db, "sqlmock")}
	mock.ExpectPing()
	mock.ExpectClose()

	require.NoError(t, conn.Ping(context.Background()))
	require.NoError(t, conn.Close())
	require.NoError(t, mock.ExpectationsWereMet())

	require.Error(t, (&Connection{}).Ping(context.Background()))
	require.NoError(t, (&Connection{}).Close())
}

func TestUserRepository_SkillValues(t *testing.T) {
	t.Parallel()

	r, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta(querySkillValues)).
		WillReturnRows(sqlmock.NewRows([]string{"skill"}).AddRow(`["go","sql"]`).AddRow("plain"))

	values, err := r.SkillValues(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{`["go","sql"]`, "plain"}, values)
}
