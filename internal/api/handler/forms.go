package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/crmdesk/crm-system/internal/core/domain"
	"github.com/crmdesk/crm-system/internal/core/ports"
)

// RecordForm is the typed shape of the add/update record forms. The
// validate tags mirror the column limits of the records table.
type RecordForm struct {
	FirstName string `form:"first_name" validate:"required,max=50"`
	LastName  string `form:"last_name"  validate:"required,max=50"`
	Email     string `form:"email"      validate:"required,email,max=50"`
	Phone     string `form:"phone"      validate:"required,max=15"`
	Address   string `form:"address"    validate:"required,max=100"`
	City      string `form:"city"       validate:"required,max=50"`
	State     string `form:"state"      validate:"required,max=50"`
	ZipCode   string `form:"zip_code"   validate:"required,max=20"`
}

// Fields maps the form onto the store's field set.
func (f RecordForm) Fields() ports.RecordFields {
	return ports.RecordFields{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Phone:     f.Phone,
		Address:   f.Address,
		City:      f.City,
		State:     f.State,
		ZipCode:   f.ZipCode,
	}
}

// recordFormFrom seeds an update form with a record's current values so
// fields omitted from the POST keep their prior value.
func recordFormFrom(rec *domain.Record) RecordForm {
	return RecordForm{
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Email:     rec.Email,
		Phone:     rec.Phone,
		Address:   rec.Address,
		City:      rec.City,
		State:     rec.State,
		ZipCode:   rec.ZipCode,
	}
}

// RegisterForm is the typed shape of the sign-up form.
type RegisterForm struct {
	Username  string `form:"username"   validate:"required,max=150"`
	Email     string `form:"email"      validate:"omitempty,email,max=50"`
	FirstName string `form:"first_name" validate:"omitempty,max=50"`
	LastName  string `form:"last_name"  validate:"omitempty,max=50"`
	Password1 string `form:"password1"  validate:"required"`
	Password2 string `form:"password2"  validate:"required,eqfield=Password1"`
}

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the submitted field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateForm checks a form struct and returns one message per violating
// field, keyed by the submitted field name, for redisplay next to the
// inputs. A nil map means the form is valid.
func ValidateForm(form any) map[string]string {
	err := formValidator.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = fieldError(fe)
	}
	return out
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
