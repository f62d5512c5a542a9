package service

import (
	"testing"

	"github.com/matospos/checkout-api/internal/domain/entity"
	"github.com/matospos/checkout-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCustomerNormalizesFormattedInput(t *testing.T) {
	svc := NewCustomerService()

	customer := entity.Customer{
		Name:  "  Ana Souza  ",
		TaxID: "123.456.789-01",
		Phone: "(11) 98765-4321",
	}
	require.NoError(t, svc.ValidateCustomer(&customer))

	assert.Equal(t, "Ana Souza", customer.Name)
	assert.Equal(t, "12345678901", customer.TaxID)
	assert.Equal(t, "11987654321", customer.Phone)
}

func TestValidateCustomerRejectsMissingFields(t *testing.T) {
	svc := NewCustomerService()

	customer := entity.Customer{}
	err := svc.ValidateCustomer(&customer)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)

	fields := make(map[string]bool)
	for _, fe := range appErr.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["tax_id"])
	assert.True(t, fields["phone"])
}

func TestValidateCustomerRejectsShortTaxID(t *testing.T) {
	svc := NewCustomerService()

	customer := entity.Customer{
		Name:  "Ana Souza",
		TaxID: "12345",
		Phone: "11987654321",
	}
	err := svc.ValidateCustomer(&customer)
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	require.Len(t, appErr.Errors, 1)
	assert.Equal(t, "tax_id", appErr.Errors[0].Field)
}

func TestValidateCustomerEmailOptional(t *testing.T) {
	svc := NewCustomerService()

	// Absent email is fine
	customer := entity.Customer{
		Name:  "Ana Souza",
		TaxID: "12345678901",
		Phone: "11987654321",
	}
	assert.NoError(t, svc.ValidateCustomer(&customer))

	// Blank email is treated as absent
	blank := "   "
	customer.Email = &blank
	require.NoError(t, svc.ValidateCustomer(&customer))
	assert.Nil(t, customer.Email)

	// Malformed email is rejected
	bad := "not-an-email"
	customer.Email = &bad
	assert.Error(t, svc.ValidateCustomer(&customer))
}
