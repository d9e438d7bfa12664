package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/yoga-studio/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They are the Go field names of the validated structs.
const (
	FieldName        = "Name"
	FieldDate        = "Date"
	FieldTeacherID   = "TeacherID"
	FieldDescription = "Description"
	FieldEmail       = "Email"
	FieldFirstName   = "FirstName"
	FieldLastName    = "LastName"
	FieldPassword    = "Password"
)

// DTOValidator implements the Validator interface for request payloads:
// SessionDTO, SignupRequest and LoginRequest. Constraints are declared with
// `validate` struct tags on the models and checked by go-playground/validator.
//
// Both value and pointer forms are accepted. Optional field names restrict
// validation to the named subset.
type DTOValidator struct {
	validate *validator.Validate
}

// NewDTOValidator constructs a DTOValidator whose error messages name fields
// by their JSON tag.
func NewDTOValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &DTOValidator{validate: v}
}

// Validate checks obj against its struct tags.
//
// Returns ErrUnsupportedType if obj is not a supported payload,
// ErrUnknownField if a requested field does not exist, or a *ValidationError
// wrapping ErrValidationFailed when constraints are violated.
func (v *DTOValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SessionDTO, models.SignupRequest, models.LoginRequest:
		return v.validateStruct(ctx, value, fields)
	case *models.SessionDTO:
		return v.validateStruct(ctx, deref(value), fields)
	case *models.SignupRequest:
		return v.validateStruct(ctx, deref(value), fields)
	case *models.LoginRequest:
		return v.validateStruct(ctx, deref(value), fields)
	default:
		return ErrUnsupportedType
	}
}

func deref[T any](p *T) any {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func (v *DTOValidator) validateStruct(ctx context.Context, obj any, fields []string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		typ := reflect.TypeOf(obj)
		for _, f := range fields {
			if _, ok := typ.FieldByName(f); !ok {
				return fmt.Errorf("%w: %s", ErrUnknownField, f)
			}
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}

	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		result.Fields = append(result.Fields, FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}

	return result
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "email":
		return "must be a well-formed email address"
	case "max":
		return "size must be at most " + fe.Param()
	case "min":
		return "size must be at least " + fe.Param()
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
