package validation

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"bookmarkpage/internal/models"
)

// CreateBookmarkRequest is the POST /api/bookmarks body.
type CreateBookmarkRequest struct {
	Title string `json:"title" validate:"required"`
	URL   string `json:"url" validate:"required,http_url"`
}

// UpdateBookmarkRequest is the PATCH /api/bookmarks/{id} body. Both
// fields are optional, but at least one must be present.
type UpdateBookmarkRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1"`
	URL   *string `json:"url" validate:"omitempty,http_url"`
}

// ValidationError reports the first failing field and its fixed
// user-facing message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("http_url", validateHTTPURL); err != nil {
		panic(err)
	}

	// Report field names from the "json" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func (r *CreateBookmarkRequest) Validate() *ValidationError {
	return firstError(validate.Struct(r))
}

func (r *UpdateBookmarkRequest) Validate() *ValidationError {
	if r.Title == nil && r.URL == nil {
		return &ValidationError{Message: models.MsgUpdateMinFields}
	}
	return firstError(validate.Struct(r))
}

// getValidationMessage returns the fixed message for a validation error.
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		if e.Field() == "title" {
			return models.MsgTitleRequired
		}
		return models.MsgURLInvalidFormat
	case "min":
		return models.MsgTitleMinLength
	case "http_url":
		// A parseable URL with the wrong scheme (ftp:, javascript:)
		// gets the protocol message; everything else is a format
		// problem.
		if s, ok := e.Value().(string); ok && isAbsoluteURL(s) {
			return models.MsgURLInvalidProto
		}
		return models.MsgURLInvalidFormat
	default:
		return models.MsgBadRequest
	}
}

func firstError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		return &ValidationError{Field: e.Field(), Message: getValidationMessage(e)}
	}
	return &ValidationError{Message: models.MsgBadRequest}
}

// Custom validator: absolute URL with an http or https scheme
func validateHTTPURL(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	return isSyntacticURL(s)
}

func isSyntacticURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}
