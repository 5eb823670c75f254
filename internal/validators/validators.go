package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/pg-backoffice/internal/domain/activity"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/notification"
	"github.com/BruksfildServices01/pg-backoffice/internal/domain/session"
	"github.com/BruksfildServices01/pg-backoffice/internal/httperr"
)

var activityType validator.Func = func(fl validator.FieldLevel) bool {
	return activity.Type(fl.Field().String()).Valid()
}

var activityCategory validator.Func = func(fl validator.FieldLevel) bool {
	return activity.Category(fl.Field().String()).Valid()
}

var activityPriority validator.Func = func(fl validator.FieldLevel) bool {
	return activity.Priority(fl.Field().String()).Valid()
}

var activityStatus validator.Func = func(fl validator.FieldLevel) bool {
	return activity.Status(fl.Field().String()).Valid()
}

var entityType validator.Func = func(fl validator.FieldLevel) bool {
	return activity.EntityType(fl.Field().String()).Valid()
}

var userRole validator.Func = func(fl validator.FieldLevel) bool {
	return session.Role(fl.Field().String()).Valid()
}

var roleScope validator.Func = func(fl validator.FieldLevel) bool {
	return notification.RoleScope(fl.Field().String()).Valid()
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs the domain enum validations and reports json field
// names in errors.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("activity_type", activityType)
	_ = v.RegisterValidation("activity_category", activityCategory)
	_ = v.RegisterValidation("activity_priority", activityPriority)
	_ = v.RegisterValidation("activity_status", activityStatus)
	_ = v.RegisterValidation("entity_type", entityType)
	_ = v.RegisterValidation("user_role", userRole)
	_ = v.RegisterValidation("role_scope", roleScope)

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
}

// Struct validates obj with the shared gin engine and converts the first
// failure into a ValidationError.
func Struct(obj any) error {
	return Translate(binding.Validator.ValidateStruct(obj))
}

// Translate turns validator (and gin binding) failures into a
// ValidationError. nil stays nil.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return httperr.NewValidation(fe.Field(), message(fe))
	}

	return httperr.NewValidation("", err.Error())
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "activity_type":
		return fmt.Sprintf("unknown activity type %q", fe.Value())
	case "activity_category", "activity_priority", "activity_status", "entity_type", "user_role", "role_scope":
		return fmt.Sprintf("%q is not an allowed value", fe.Value())
	}
	return "is invalid"
}
