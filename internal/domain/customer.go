package domain

import (
	"fmt"
	"strings"
)

// CustomerKind tags the customer variant. The values match the "tipo" field of
// the persisted customer records.
type CustomerKind string

const (
	KindIndividual   CustomerKind = "Natural"
	KindOrganization CustomerKind = "Juridico"
)

// Contact holds the fields shared by both customer variants.
type Contact struct {
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Customer is implemented by *Individual and *Organization.
type Customer interface {
	Kind() CustomerKind
	// Identifier is the national ID or tax ID, unique within the kind.
	Identifier() string
	// Key is unique across both kinds.
	Key() string
	DisplayName() string
	ContactInfo() *Contact
	// Fields lists the attributes that Set accepts.
	Fields() []CustomerField
	Set(field CustomerField, value string) error
}

// CustomerKey builds the registry key for a kind and identifier.
func CustomerKey(kind CustomerKind, id string) string {
	return string(kind) + ":" + id
}

// CustomerField names an updatable customer attribute.
type CustomerField string

const (
	FieldAddress      CustomerField = "Address"
	FieldPhone        CustomerField = "Phone"
	FieldEmail        CustomerField = "Email"
	FieldContactName  CustomerField = "ContactName"
	FieldContactPhone CustomerField = "ContactPhone"
	FieldContactEmail CustomerField = "ContactEmail"
)

// Individual is a natural person identified by a national ID (cédula).
type Individual struct {
	Contact
	FullName   string `json:"full_name"`
	NationalID string `json:"national_id"`
}

// NewIndividual validates formats. Uniqueness is the registry's concern.
func NewIndividual(email, address, phone, fullName, nationalID string) (*Individual, error) {
	c := &Individual{
		Contact:    Contact{Email: strings.TrimSpace(email), Address: strings.TrimSpace(address), Phone: strings.TrimSpace(phone)},
		FullName:   strings.TrimSpace(fullName),
		NationalID: strings.TrimSpace(nationalID),
	}
	if err := c.Contact.validate(); err != nil {
		return nil, err
	}
	if c.FullName == "" {
		return nil, invalid("full name", "must not be empty")
	}
	if err := ValidateNationalID(c.NationalID); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Individual) Kind() CustomerKind { return KindIndividual }
func (c *Individual) Identifier() string { return c.NationalID }
func (c *Individual) Key() string { return CustomerKey(KindIndividual, c.NationalID) }
func (c *Individual) DisplayName() string { return c.FullName }
func (c *Individual) ContactInfo() *Contact { return &c.Contact }
func (c *Individual) Fields() []CustomerField { return []CustomerField{FieldAddress, FieldPhone, FieldEmail} }

func (c *Individual) Set(field CustomerField, value string) error {
	return c.Contact.set(field, value)
}

// Organization is a legal entity identified by a tax ID (RIF).
type Organization struct {
	Contact
	LegalName    string `json:"legal_name"`
	TaxID        string `json:"tax_id"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
}

func NewOrganization(email, address, phone, legalName, taxID, contactName, contactPhone, contactEmail string) (*Organization, error) {
	c := &Organization{
		Contact:      Contact{Email: strings.TrimSpace(email), Address: strings.TrimSpace(address), Phone: strings.TrimSpace(phone)},
		LegalName:    strings.TrimSpace(legalName),
		TaxID:        strings.TrimSpace(taxID),
		ContactName:  strings.TrimSpace(contactName),
		ContactPhone: strings.TrimSpace(contactPhone),
		ContactEmail: strings.TrimSpace(contactEmail),
	}
	if err := c.Contact.validate(); err != nil {
		return nil, err
	}
	if c.LegalName == "" {
		return nil, invalid("legal name", "must not be empty")
	}
	if err := ValidateTaxID(c.TaxID); err != nil {
		return nil, err
	}
	if c.ContactName == "" {
		return nil, invalid("contact name", "must not be empty")
	}
	if err := ValidatePhone(c.ContactPhone); err != nil {
		return nil, err
	}
	if c.ContactEmail == "" {
		return nil, invalid("contact email", "must not be empty")
	}
	return c, nil
}

func (c *Organization) Kind() CustomerKind { return KindOrganization }
func (c *Organization) Identifier() string { return c.TaxID }
func (c *Organization) Key() string { return CustomerKey(KindOrganization, c.TaxID) }
func (c *Organization) DisplayName() string { return c.LegalName }
func (c *Organization) ContactInfo() *Contact { return &c.Contact }

func (c *Organization) Fields() []CustomerField {
	return []CustomerField{FieldAddress, FieldPhone, FieldEmail, FieldContactName, FieldContactPhone, FieldContactEmail}
}

func (c *Organization) Set(field CustomerField, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case FieldContactName:
		if value == "" {
			return invalid(field.Label(), "must not be empty")
		}
		c.ContactName = value
	case FieldContactPhone:
		if err := ValidatePhone(value); err != nil {
			return err
		}
		c.ContactPhone = value
	case FieldContactEmail:
		if value == "" {
			return invalid(field.Label(), "must not be empty")
		}
		c.ContactEmail = value
	default:
		return c.Contact.set(field, value)
	}
	return nil
}

func (c *Contact) validate() error {
	if c.Email == "" {
		return invalid("email", "must not be empty")
	}
	if c.Address == "" {
		return invalid("address", "must not be empty")
	}
	return ValidatePhone(c.Phone)
}

func (c *Contact) set(field CustomerField, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case FieldAddress:
		if value == "" {
			return invalid(field.Label(), "must not be empty")
		}
		c.Address = value
	case FieldEmail:
		if value == "" {
			return invalid(field.Label(), "must not be empty")
		}
		c.Email = value
	case FieldPhone:
		if err := ValidatePhone(value); err != nil {
			return err
		}
		c.Phone = value
	default:
		return invalid("field", fmt.Sprintf("%q cannot be updated for this customer", field))
	}
	return nil
}

// ValidatePhone requires exactly 11 digits.
func ValidatePhone(phone string) error {
	if len(phone) != 11 || !isDigits(phone) {
		return invalid("phone", "must be exactly 11 digits")
	}
	return nil
}

// ValidateNationalID requires 6 to 8 digits.
func ValidateNationalID(id string) error {
	if !isDigits(id) || len(id) < 6 || len(id) > 8 {
		return invalid("national ID", "must be 6 to 8 digits")
	}
	return nil
}

// ValidateTaxID requires at least 8 letters or digits.
func ValidateTaxID(id string) error {
	if !isAlphanumeric(id) || len(id) < 8 {
		return invalid("tax ID", "must be at least 8 letters or digits")
	}
	return nil
}
