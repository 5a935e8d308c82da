package contract

// IValidator abstracts field-level validation rules.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePassword(password string) error
	ValidateLocation(location string) error
}
