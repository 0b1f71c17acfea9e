// Package validate checks request payloads before they reach the services.
// Failures are reported as *model.ValidationError keyed by JSON field name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dtroode/jobmarket-server/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// bcrypt rejects input longer than 72 bytes; max counts runes.
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Registration validates a password sign-up.
func Registration(r model.Registration) error {
	return check(r)
}

// Credentials validates a password sign-in.
func Credentials(c model.Credentials) error {
	return check(c)
}

// NewUser validates an admin account creation.
func NewUser(u model.NewUser) error {
	return check(u)
}

// ProfileUpdate validates a partial profile update.
func ProfileUpdate(u model.ProfileUpdate) error {
	return check(u)
}

// NewCategory validates a category creation.
func NewCategory(c model.NewCategory) error {
	return check(c)
}

// CategoryUpdate validates a partial category update.
func CategoryUpdate(c model.CategoryUpdate) error {
	return check(c)
}

// NewSubcategory validates a subcategory creation.
func NewSubcategory(s model.NewSubcategory) error {
	return check(s)
}

// SubcategoryUpdate validates a partial subcategory update.
func SubcategoryUpdate(s model.SubcategoryUpdate) error {
	return check(s)
}

// NewJob validates a job listing.
func NewJob(j model.NewJob) error {
	return check(j)
}

// JobUpdate validates a partial job update.
func JobUpdate(j model.JobUpdate) error {
	return check(j)
}

// NewHire validates a hire request.
func NewHire(h model.NewHire) error {
	return check(h)
}

// NewComment validates a comment.
func NewComment(c model.NewComment) error {
	return check(c)
}

// CommentUpdate validates a partial comment update.
func CommentUpdate(c model.CommentUpdate) error {
	return check(c)
}

// PageQuery fills defaults and validates paging parameters.
func PageQuery(q model.PageQuery) (model.PageQuery, error) {
	if q.Page == 0 {
		q.Page = model.DefaultPage
	}
	if q.PageSize == 0 {
		q.PageSize = model.DefaultPageSize
	}
	q.Keyword = strings.TrimSpace(q.Keyword)
	return q, check(q)
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = message(fe)
	}
	return &model.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "maxbytes":
		return fmt.Sprintf("must be at most %s bytes", fe.Param())
	case "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
