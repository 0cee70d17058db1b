package records

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
)

// timeLayout is the timestamp format of payment and shipment fecha fields.
// Sales record the calendar day only, in domain.DateLayout.
const timeLayout = "2006-01-02 15:04:05"

type customerRecord struct {
	Tipo      domain.CustomerKind `json:"tipo"`
	Correo    string              `json:"correo"`
	Direccion string              `json:"direccion"`
	Telefono  string              `json:"telefono"`

	Nombre string `json:"nombre,omitempty"`
	Cedula string `json:"cedula,omitempty"`

	RazonSocial    string `json:"razon_social,omitempty"`
	Rif            string `json:"rif,omitempty"`
	NombreContacto string `json:"nombre_contacto,omitempty"`
	TelfContacto   string `json:"telf_contacto,omitempty"`
	CorreoContacto string `json:"correo_contacto,omitempty"`
}

type productRecord struct {
	ID          int         `json:"id"`
	Nombre      string      `json:"nombre"`
	Descripcion string      `json:"descripcion"`
	Precio      json.Number `json:"precio"`
	Categoria   string      `json:"categoria"`
	Inventario  int         `json:"inventario"`
	Compatible  []string    `json:"compatible_vehicles"`
}

type lineRecord struct {
	ID       int `json:"id"`
	Cantidad int `json:"cantidad"`
}

// owner carries the customer reference shared by sales, payments and
// shipments. Exactly one of the two fields is set.
type owner struct {
	ClienteCedula *string `json:"cliente_cedula"`
	ClienteRif    *string `json:"cliente_rif"`
}

type saleRecord struct {
	ID    int    `json:"id"`
	Fecha string `json:"fecha"`
	owner
	Productos   []lineRecord `json:"productos"`
	MetodoPago  domain.Terms `json:"metodo_pago"`
	DiasCredito int          `json:"dias_credito,omitempty"`
	MetodoEnvio string       `json:"metodo_envio"`
	Subtotal    json.Number  `json:"subtotal"`
	Descuento   json.Number  `json:"descuento"`
	IVA         json.Number  `json:"iva"`
	IGTF        json.Number  `json:"igtf"`
	Total       json.Number  `json:"total"`
}

type shipmentRecord struct {
	owner
	VentaID            int          `json:"venta_id"`
	ServicioEnvio      string       `json:"servicio_envio"`
	CostoServicio      *json.Number `json:"costo_servicio"`
	NombreMotorizado   *string      `json:"nombre_motorizado"`
	TelefonoMotorizado *string      `json:"telefono_motorizado"`
	PlacaMotorizado    *string      `json:"placa_motorizado"`
	Fecha              string       `json:"fecha"`
}

// paymentRecord stores the due date in fecha while the payment is pending.
type paymentRecord struct {
	owner
	VentaID    int         `json:"venta_id"`
	MontoPago  json.Number `json:"monto_pago"`
	MetodoPago *string     `json:"metodo_pago"`
	MonedaPago *string     `json:"moneda_pago"`
	Estado     bool        `json:"estado"`
	Fecha      string      `json:"fecha"`
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func amount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n.String())
}

func stamp(t time.Time) string {
	return t.Format(timeLayout)
}

func parseStamp(s string) (time.Time, error) {
	return time.ParseInLocation(timeLayout, s, time.Local)
}

func ownerOf(c domain.Customer) owner {
	if c == nil {
		return owner{}
	}
	id := c.Identifier()
	if c.Kind() == domain.KindOrganization {
		return owner{ClienteRif: &id}
	}
	return owner{ClienteCedula: &id}
}

func (o owner) key() (string, error) {
	switch {
	case o.ClienteCedula != nil && o.ClienteRif == nil:
		return domain.CustomerKey(domain.KindIndividual, *o.ClienteCedula), nil
	case o.ClienteRif != nil && o.ClienteCedula == nil:
		return domain.CustomerKey(domain.KindOrganization, *o.ClienteRif), nil
	default:
		return "", fmt.Errorf("record must name exactly one of cliente_cedula and cliente_rif")
	}
}

// placeholder stands in for a customer that was removed after the record
// referencing it was written.
func (o owner) placeholder() domain.Customer {
	if o.ClienteRif != nil {
		return &domain.Organization{TaxID: *o.ClienteRif}
	}
	return &domain.Individual{NationalID: *o.ClienteCedula}
}

func encodeCustomer(c domain.Customer) customerRecord {
	info := c.ContactInfo()
	rec := customerRecord{
		Tipo:      c.Kind(),
		Correo:    info.Email,
		Direccion: info.Address,
		Telefono:  info.Phone,
	}
	switch v := c.(type) {
	case *domain.Individual:
		rec.Nombre, rec.Cedula = v.FullName, v.NationalID
	case *domain.Organization:
		rec.RazonSocial, rec.Rif = v.LegalName, v.TaxID
		rec.NombreContacto, rec.TelfContacto, rec.CorreoContacto = v.ContactName, v.ContactPhone, v.ContactEmail
	}
	return rec
}

func decodeCustomer(rec customerRecord) (domain.Customer, error) {
	contact := domain.Contact{Email: rec.Correo, Address: rec.Direccion, Phone: rec.Telefono}
	switch rec.Tipo {
	case domain.KindIndividual:
		return &domain.Individual{Contact: contact, FullName: rec.Nombre, NationalID: rec.Cedula}, nil
	case domain.KindOrganization:
		return &domain.Organization{
			Contact:      contact,
			LegalName:    rec.RazonSocial,
			TaxID:        rec.Rif,
			ContactName:  rec.NombreContacto,
			ContactPhone: rec.TelfContacto,
			ContactEmail: rec.CorreoContacto,
		}, nil
	default:
		return nil, fmt.Errorf("unknown customer tipo %q", rec.Tipo)
	}
}

func encodeProduct(p *domain.Product) productRecord {
	compatible := p.Compatible
	if compatible == nil {
		compatible = []string{}
	}
	return productRecord{
		ID:          p.ID,
		Nombre:      p.Name,
		Descripcion: p.Description,
		Precio:      number(p.Price),
		Categoria:   p.Category,
		Inventario:  p.Inventory,
		Compatible:  compatible,
	}
}

func decodeProduct(rec productRecord) (*domain.Product, error) {
	price, err := amount(rec.Precio)
	if err != nil {
		return nil, fmt.Errorf("product %d precio: %w", rec.ID, err)
	}
	var compatible []string
	if len(rec.Compatible) > 0 {
		compatible = rec.Compatible
	}
	return &domain.Product{
		ID:          rec.ID,
		Name:        rec.Nombre,
		Description: rec.Descripcion,
		Price:       price,
		Category:    rec.Categoria,
		Inventory:   rec.Inventario,
		Compatible:  compatible,
	}, nil
}

func encodeSale(s *domain.Sale) saleRecord {
	lines := make([]lineRecord, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = lineRecord{ID: l.ProductID, Cantidad: l.Quantity}
	}
	return saleRecord{
		ID:          s.ID,
		Fecha:       s.Date.Format(domain.DateLayout),
		owner:       ownerOf(s.Customer),
		Productos:   lines,
		MetodoPago:  s.Plan.Terms,
		DiasCredito: s.Plan.CreditDays,
		MetodoEnvio: string(s.Shipping),
		Subtotal:    number(s.Subtotal),
		Descuento:   number(s.Discount),
		IVA:         number(s.Tax),
		IGTF:        number(s.Surcharge),
		Total:       number(s.Total),
	}
}

func encodeShipment(s *domain.Shipment) shipmentRecord {
	rec := shipmentRecord{
		owner:              ownerOf(s.Customer),
		ServicioEnvio:      string(s.Service),
		NombreMotorizado:   s.CourierName,
		TelefonoMotorizado: s.CourierPhone,
		PlacaMotorizado:    s.CourierPlate,
		Fecha:              stamp(s.Date),
	}
	if s.Sale != nil {
		rec.VentaID = s.Sale.ID
	}
	if s.Cost != nil {
		cost := number(*s.Cost)
		rec.CostoServicio = &cost
	}
	return rec
}

func encodePayment(p *domain.Payment) paymentRecord {
	rec := paymentRecord{
		owner:     ownerOf(p.Customer),
		MontoPago: number(p.Amount),
		Estado:    p.Completed,
		Fecha:     stamp(p.Date),
	}
	if p.Sale != nil {
		rec.VentaID = p.Sale.ID
	}
	if p.Instrument != nil {
		method := string(*p.Instrument)
		rec.MetodoPago = &method
	}
	if p.Currency != nil {
		currency := string(*p.Currency)
		rec.MonedaPago = &currency
	}
	if !p.Completed && p.DueDate != nil {
		rec.Fecha = stamp(*p.DueDate)
	}
	return rec
}
