package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dtroode/jobmarket-server/internal/model"
)

var (
	_ model.UserStore   = (*UserRepository)(nil)
	_ model.SkillSource = (*UserRepository)(nil)
)

const userColumns = `id, name, email, password_hash, google_id, role, refresh_token_hash,
	phone, birth_day, gender, skill, certification, avatar, created_at, updated_at`

const (
	queryUserByID         = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	queryUserByEmail      = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	queryUserByExternalID = `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`

	queryCreateUser = `INSERT INTO users (name, email, password_hash, google_id, role,
		phone, birth_day, gender, skill, certification, avatar)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + userColumns

	queryUpdateUser = `UPDATE users SET name = $2, email = $3, role = $4, phone = $5, birth_day = $6,
		gender = $7, skill = $8, certification = $9, avatar = $10, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	queryDeleteUser = `DELETE FROM users WHERE id = $1`

	queryLinkExternalID = `UPDATE users SET google_id = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns

	querySetRefreshHash = `UPDATE users SET refresh_token_hash = $2, updated_at = now() WHERE id = $1`

	queryListUsers = `SELECT ` + userColumns + ` FROM users ORDER BY id`

	queryCountPage = `SELECT count(*) FROM users
		WHERE $1 = '' OR name ILIKE $2 OR email ILIKE $2`

	queryPageUsers = `SELECT ` + userColumns + ` FROM users
		WHERE $1 = '' OR name ILIKE $2 OR email ILIKE $2
		ORDER BY id DESC
		LIMIT $3 OFFSET $4`

	querySearchByName = `SELECT ` + userColumns + ` FROM users WHERE name ILIKE $1 ORDER BY id`

	querySkillValues = `SELECT skill FROM users WHERE skill IS NOT NULL AND skill <> '' ORDER BY id`
)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	return r.getOne(ctx, "id", queryUserByID, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.getOne(ctx, "email", queryUserByEmail, email)
}

func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (model.User, error) {
	return r.getOne(ctx, "external id", queryUserByExternalID, externalID)
}

func (r *UserRepository) getOne(ctx context.Context, by, query string, arg any) (model.User, error) {
	var user model.User
	if err := r.db.GetContext(ctx, &user, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by %s: %w", by, err)
	}
	return user, nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	role := user.Role
	if role == "" {
		role = model.RoleUser
	}

	var saved model.User
	err := r.db.QueryRowxContext(ctx, queryCreateUser,
		user.Name, user.Email, user.PasswordHash, user.ExternalID, role,
		user.Phone, user.BirthDay, user.Gender, user.Skill, user.Certification, user.Avatar,
	).StructScan(&saved)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, fmt.Errorf("failed to create user: %w", model.ErrConflict)
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return saved, nil
}

// Update writes the profile columns of the user. Credentials, the external
// identity and the refresh hash are left untouched.
func (r *UserRepository) Update(ctx context.Context, user model.User) (model.User, error) {
	var saved model.User
	err := r.db.QueryRowxContext(ctx, queryUpdateUser,
		user.ID, user.Name, user.Email, user.Role,
		user.Phone, user.BirthDay, user.Gender, user.Skill, user.Certification, user.Avatar,
	).StructScan(&saved)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return model.User{}, model.ErrNotFound
		case isUniqueViolation(err):
			return model.User{}, fmt.Errorf("failed to update user: %w", model.ErrConflict)
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return saved, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.execOne(ctx, "delete user", queryDeleteUser, id)
}

func (r *UserRepository) LinkExternalID(ctx context.Context, id int64, externalID string) (model.User, error) {
	var saved model.User
	err := r.db.QueryRowxContext(ctx, queryLinkExternalID, id, externalID).StructScan(&saved)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return model.User{}, model.ErrNotFound
		case isUniqueViolation(err):
			return model.User{}, fmt.Errorf("failed to link external identity: %w", model.ErrConflict)
		}
		return model.User{}, fmt.Errorf("failed to link external identity: %w", err)
	}

	return saved, nil
}

// SetRefreshTokenHash replaces the stored refresh digest. A nil hash clears it.
func (r *UserRepository) SetRefreshTokenHash(ctx context.Context, id int64, hash *string) error {
	return r.db.execOne(ctx, "set refresh token hash", querySetRefreshHash, id, hash)
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	if err := r.db.SelectContext(ctx, &users, queryListUsers); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Page returns one page of users ordered newest first along with the number
// of users matching the keyword.
func (r *UserRepository) Page(ctx context.Context, q model.PageQuery) ([]model.User, int64, error) {
	pattern := containsPattern(q.Keyword)

	var total int64
	if err := r.db.GetContext(ctx, &total, queryCountPage, q.Keyword, pattern); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	users := []model.User{}
	if err := r.db.SelectContext(ctx, &users, queryPageUsers, q.Keyword, pattern, q.PageSize, q.Offset()); err != nil {
		return nil, 0, fmt.Errorf("failed to page users: %w", err)
	}

	return users, total, nil
}

func (r *UserRepository) SearchByName(ctx context.Context, name string) ([]model.User, error) {
	users := []model.User{}
	if err := r.db.SelectContext(ctx, &users, querySearchByName, containsPattern(name)); err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	return users, nil
}

// SkillValues returns the raw skill column of every user that filled it in.
func (r *UserRepository) SkillValues(ctx context.Context) ([]string, error) {
	values := []string{}
	if err := r.db.SelectContext(ctx, &values, querySkillValues); err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return values, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
