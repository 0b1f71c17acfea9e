//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/jobmarket-server/internal/model"
	repo "github.com/dtroode/jobmarket-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "jobmarket_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/jobmarket_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func ptr(s string) *string { return &s }

func TestUserRepository_Integration(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	// migrations are idempotent
	require.NoError(t, repo.Migrate(ctx, conn.DB.DB))

	ur := repo.NewUserRepository(conn)

	ann, err := ur.Create(ctx, model.User{Name: "Ann", Email: "ann@example.com", PasswordHash: ptr("$2a$10$digest")})
	require.NoError(t, err)
	require.NotZero(t, ann.ID)
	assert.Equal(t, model.RoleUser, ann.Role)
	assert.False(t, ann.CreatedAt.IsZero())

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := ur.Create(ctx, model.User{Name: "Other", Email: "ann@example.com"})
		require.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("lookups", func(t *testing.T) {
		byEmail, err := ur.GetByEmail(ctx, "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, ann.ID, byEmail.ID)

		_, err = ur.GetByID(ctx, ann.ID+1000)
		require.ErrorIs(t, err, model.ErrNotFound)

		_, err = ur.GetByExternalID(ctx, "google-1")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("link external identity keeps password", func(t *testing.T) {
		linked, err := ur.LinkExternalID(ctx, ann.ID, "google-1")
		require.NoError(t, err)
		require.NotNil(t, linked.ExternalID)
		require.NotNil(t, linked.PasswordHash)

		byExt, err := ur.GetByExternalID(ctx, "google-1")
		require.NoError(t, err)
		assert.Equal(t, ann.ID, byExt.ID)
	})

	t.Run("refresh hash last write wins", func(t *testing.T) {
		require.NoError(t, ur.SetRefreshTokenHash(ctx, ann.ID, ptr("first")))
		require.NoError(t, ur.SetRefreshTokenHash(ctx, ann.ID, ptr("second")))

		u, err := ur.GetByID(ctx, ann.ID)
		require.NoError(t, err)
		require.NotNil(t, u.RefreshTokenHash)
		assert.Equal(t, "second", *u.RefreshTokenHash)

		require.NoError(t, ur.SetRefreshTokenHash(ctx, ann.ID, nil))
		u, err = ur.GetByID(ctx, ann.ID)
		require.NoError(t, err)
		assert.Nil(t, u.RefreshTokenHash)
	})

	t.Run("update leaves secrets alone", func(t *testing.T) {
		require.NoError(t, ur.SetRefreshTokenHash(ctx, ann.ID, ptr("kept")))

		in := ann
		in.Name = "Ann B"
		in.Skill = ptr("go")
		in.PasswordHash = nil
		in.RefreshTokenHash = nil
		updated, err := ur.Update(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "Ann B", updated.Name)
		require.NotNil(t, updated.PasswordHash)
		require.NotNil(t, updated.RefreshTokenHash)
		assert.Equal(t, "kept", *updated.RefreshTokenHash)
	})

	t.Run("page and search", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			_, err := ur.Create(ctx, model.User{Name: fmt.Sprintf("Bob %d", i), Email: fmt.Sprintf("bob%d@example.com", i)})
			require.NoError(t, err)
		}

		page, total, err := ur.Page(ctx, model.PageQuery{Page: 1, PageSize: 3, Keyword: "BOB"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), total)
		require.Len(t, page, 3)
		assert.Greater(t, page[0].ID, page[1].ID)

		all, _, err := ur.Page(ctx, model.PageQuery{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Len(t, all, 5)

		found, err := ur.SearchByName(ctx, "ann")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, ann.ID, found[0].ID)

		list, err := ur.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 5)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, ur.Delete(ctx, ann.ID))
		require.ErrorIs(t, ur.Delete(ctx, ann.ID), model.ErrNotFound)
		require.ErrorIs(t, ur.SetRefreshTokenHash(ctx, ann.ID, nil), model.ErrNotFound)
	})
}

func TestMarketplace_Integration(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	users := repo.NewUserRepository(conn)
	categories := repo.NewCategoryRepository(conn)
	subcategories := repo.NewSubcategoryRepository(conn)
	jobs := repo.NewJobRepository(conn)
	hires := repo.NewHireRepository(conn)
	comments := repo.NewCommentRepository(conn)

	carol, err := users.Create(ctx, model.User{Name: "Carol", Email: "carol@example.com", Skill: ptr(`["go","sql"]`)})
	require.NoError(t, err)

	design, err := categories.Create(ctx, model.Category{Name: "Design"})
	require.NoError(t, err)

	logo, err := subcategories.Create(ctx, model.Subcategory{Name: "Logo", CategoryID: design.ID})
	require.NoError(t, err)
	require.NotNil(t, logo.Category)
	assert.Equal(t, "Design", logo.Category.Name)

	_, err = subcategories.Create(ctx, model.Subcategory{Name: "Orphan", CategoryID: design.ID + 1000})
	require.ErrorIs(t, err, model.ErrInvalidReference)

	job, err := jobs.Create(ctx, model.Job{Title: "Logo design", Price: 100, SubcategoryID: logo.ID, CreatorID: &carol.ID})
	require.NoError(t, err)
	require.NotNil(t, job.Subcategory)
	assert.Equal(t, design.ID, job.Subcategory.CategoryID)

	t.Run("category reads nest subcategories", func(t *testing.T) {
		got, err := categories.GetByID(ctx, design.ID)
		require.NoError(t, err)
		require.Len(t, got.Subcategories, 1)

		page, total, err := categories.Page(ctx, model.PageQuery{Page: 1, PageSize: 5, Keyword: "des"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, page, 1)
		assert.Len(t, page[0].Subcategories, 1)
	})

	t.Run("job lookups", func(t *testing.T) {
		byCat, err := jobs.ListByCategory(ctx, design.ID)
		require.NoError(t, err)
		assert.Len(t, byCat, 1)

		found, err := jobs.SearchByTitle(ctx, "LOGO")
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("referenced rows cannot be deleted", func(t *testing.T) {
		require.ErrorIs(t, categories.Delete(ctx, design.ID), model.ErrInUse)
		require.ErrorIs(t, subcategories.Delete(ctx, logo.ID), model.ErrInUse)
	})

	t.Run("hire lifecycle", func(t *testing.T) {
		hire, err := hires.Create(ctx, model.Hire{JobID: job.ID, HirerID: carol.ID})
		require.NoError(t, err)
		assert.False(t, hire.Completed)

		open, err := hires.ListOpen(ctx)
		require.NoError(t, err)
		assert.Len(t, open, 1)

		done, err := hires.SetCompleted(ctx, hire.ID, true)
		require.NoError(t, err)
		assert.True(t, done.Completed)

		open, err = hires.ListOpen(ctx)
		require.NoError(t, err)
		assert.Empty(t, open)
	})

	t.Run("comments", func(t *testing.T) {
		c, err := comments.Create(ctx, model.Comment{JobID: job.ID, CommenterID: carol.ID, Content: "Great", Stars: 5})
		require.NoError(t, err)
		require.NotNil(t, c.Commenter)
		assert.Equal(t, "Carol", c.Commenter.Name)

		byJob, err := comments.ListByJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Len(t, byJob, 1)
	})

	t.Run("skills", func(t *testing.T) {
		values, err := users.SkillValues(ctx)
		require.NoError(t, err)
		assert.Contains(t, values, `["go","sql"]`)
	})

	t.Run("deleting a job cascades", func(t *testing.T) {
		require.NoError(t, jobs.Delete(ctx, job.ID))

		all, err := hires.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		require.NoError(t, subcategories.Delete(ctx, logo.ID))
		require.NoError(t, categories.Delete(ctx, design.ID))
	})
}
