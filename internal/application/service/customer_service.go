package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/pkg/apperror"
)

// CustomerService validates buyer identification before it binds to a
// transaction. Formatted tax IDs and phone numbers are normalized to digits
// before the rules run.
type CustomerService struct {
	validate *validator.Validate
}

func NewCustomerService() *CustomerService {
	return &CustomerService{validate: validator.New()}
}

// ValidateCustomer normalizes and validates the customer form. A failure
// returns a validation error carrying one message per offending field.
func (s *CustomerService) ValidateCustomer(customer *entity.Customer) error {
	customer.Normalize()

	err := s.validate.Struct(customer)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperror.ErrInternalServer
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fieldName(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return apperror.NewValidationError(fields)
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "TaxID":
		return "tax_id"
	case "Phone":
		return "phone"
	case "Email":
		return "email"
	default:
		return structField
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "len":
		return "must be exactly " + fe.Param() + " digits"
	case "min":
		return "must have at least " + fe.Param() + " digits"
	case "max":
		return "must have at most " + fe.Param() + " digits"
	case "numeric":
		return "must contain only digits"
	case "email":
		return "must be a valid email address"
	default:
		return "is invalid"
	}
}
