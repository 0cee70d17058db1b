package domain_test

import (
	"testing"

	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ana(t *testing.T) *domain.Individual {
	t.Helper()
	c, err := domain.NewIndividual("ana@example.com", "Av. Bolivar 12", "04141234567", "Ana Perez", "1234567")
	require.NoError(t, err)
	return c
}

func acme(t *testing.T) *domain.Organization {
	t.Helper()
	c, err := domain.NewOrganization("ops@acme.com", "Zona Industrial", "02129876543", "Acme Repuestos",
		"J12345678", "Luis Diaz", "04241112233", "luis@acme.com")
	require.NoError(t, err)
	return c
}

func TestCustomerKeys(t *testing.T) {
	assert.Equal(t, "Natural:1234567", ana(t).Key())
	assert.Equal(t, "Juridico:J12345678", acme(t).Key())
	assert.Equal(t, domain.KindOrganization, acme(t).Kind())
	assert.Equal(t, "Acme Repuestos", acme(t).DisplayName())
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, domain.ValidatePhone("04141234567"))
	assert.Error(t, domain.ValidatePhone("0414123456"))
	assert.Error(t, domain.ValidatePhone("0414-123456"))
}

func TestValidateNationalID(t *testing.T) {
	for _, ok := range []string{"123456", "12345678"} {
		assert.NoError(t, domain.ValidateNationalID(ok), ok)
	}
	for _, bad := range []string{"12345", "123456789", "V123456", ""} {
		assert.ErrorIs(t, domain.ValidateNationalID(bad), domain.ErrValidation, bad)
	}
}

func TestValidateTaxID(t *testing.T) {
	assert.NoError(t, domain.ValidateTaxID("J12345678"))
	assert.Error(t, domain.ValidateTaxID("J1234"))
	assert.Error(t, domain.ValidateTaxID("J-1234567"))
}

func TestNewOrganization_RequiresContact(t *testing.T) {
	_, err := domain.NewOrganization("ops@acme.com", "Zona Industrial", "02129876543", "Acme",
		"J12345678", "", "04241112233", "luis@acme.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact name")
}

func TestIndividual_SetRestrictedToContact(t *testing.T) {
	c := ana(t)
	assert.Equal(t, []domain.CustomerField{domain.FieldAddress, domain.FieldPhone, domain.FieldEmail}, c.Fields())

	require.NoError(t, c.Set(domain.FieldPhone, "04120000000"))
	assert.Equal(t, "04120000000", c.Phone)

	assert.ErrorIs(t, c.Set(domain.FieldContactName, "Luis"), domain.ErrValidation)
	assert.ErrorIs(t, c.Set(domain.FieldPhone, "123"), domain.ErrValidation)
	assert.Equal(t, "04120000000", c.Phone)
}

func TestOrganization_Set(t *testing.T) {
	c := acme(t)
	assert.Len(t, c.Fields(), 6)

	require.NoError(t, c.Set(domain.FieldContactPhone, "04249998877"))
	require.NoError(t, c.Set(domain.FieldAddress, "Av. Principal"))
	assert.Equal(t, "04249998877", c.ContactPhone)
	assert.Equal(t, "Av. Principal", c.ContactInfo().Address)

	err := c.Set(domain.FieldContactEmail, " ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contact email")
}

func TestFieldLabels(t *testing.T) {
	assert.Equal(t, "contact phone", domain.FieldContactPhone.Label())
	assert.Equal(t, "email", domain.FieldEmail.Label())
	assert.Equal(t, "inventory", domain.ProductInventory.Label())
}

func TestRecoverable(t *testing.T) {
	assert.True(t, domain.Recoverable(ana(t).Set(domain.FieldEmail, "")))
	assert.True(t, domain.Recoverable(domain.ErrUniqueness))
	assert.False(t, domain.Recoverable(domain.ErrBlockedByPendingPayment))
	assert.ErrorIs(t, domain.ErrBlockedByPendingPayment, domain.ErrStateConflict)
}
