package validator

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/wuddevdet/platform-api/internal/domain/entity"
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// AppValidator implements the usecase IValidator interface.
type AppValidator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator that implements the usecase IValidator interface.
func NewValidator() usecasecontract.IValidator {
	v := validator.New()
	return &AppValidator{validate: v}
}

// ValidateEmail checks if the email format is valid.
func (av *AppValidator) ValidateEmail(email string) error {
	return av.validate.Var(email, "required,email")
}

// ValidatePassword checks the minimum password length.
func (av *AppValidator) ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	return nil
}

// ValidateLocation checks that the location is in the Michigan-city allow-list.
func (av *AppValidator) ValidateLocation(location string) error {
	if !entity.IsAllowedLocation(location) {
		return fmt.Errorf("location %q is not a supported Michigan city", location)
	}
	return nil
}

// RegisterCustomValidators registers custom validation functions with the Gin validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("micity", michiganCityFL)
		v.RegisterValidation("postcontent", postContentFL)
	}
}

// michiganCityFL validates the binding tag `micity` against the allow-list.
func michiganCityFL(fl validator.FieldLevel) bool {
	return entity.IsAllowedLocation(fl.Field().String())
}

// postContentFL validates the binding tag `postcontent` (280-char limit).
func postContentFL(fl validator.FieldLevel) bool {
	return !entity.ContentTooLong(fl.Field().String())
}
