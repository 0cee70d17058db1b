package records

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/partsdesk/partsdesk/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	customersFile = "clientes.json"
	productsFile  = "productos.json"
	salesFile     = "ventas.json"
	shipmentsFile = "envios.json"
	paymentsFile  = "pagos.json"
	manifestFile  = "snapshot.json"
)

// Store implements domain.SnapshotStore as one JSON file per collection.
type Store struct {
	git domain.GitInfo
	now func() time.Time
}

// New creates a Store. git may be nil, in which case manifests carry no
// commit hash.
func New(git domain.GitInfo) *Store {
	return &Store{git: git, now: time.Now}
}

// Save writes the five collections and the manifest under dir. Every file
// is encoded before the first one is written, and each lands through a
// rename so a reader never sees a half-written file.
func (s *Store) Save(dir string, snap *domain.Snapshot) (*domain.Manifest, error) {
	customers := make([]customerRecord, len(snap.Customers))
	for i, c := range snap.Customers {
		customers[i] = encodeCustomer(c)
	}
	products := make([]productRecord, len(snap.Products))
	for i, p := range snap.Products {
		products[i] = encodeProduct(p)
	}
	sales := make([]saleRecord, len(snap.Sales))
	for i, sale := range snap.Sales {
		sales[i] = encodeSale(sale)
	}
	shipments := make([]shipmentRecord, len(snap.Shipments))
	for i, sh := range snap.Shipments {
		shipments[i] = encodeShipment(sh)
	}
	payments := make([]paymentRecord, len(snap.Payments))
	for i, p := range snap.Payments {
		payments[i] = encodePayment(p)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	manifest := &domain.Manifest{
		SavedAt: s.now(),
		Counts: map[string]int{
			"customers": len(customers),
			"products":  len(products),
			"sales":     len(sales),
			"shipments": len(shipments),
			"payments":  len(payments),
		},
	}
	if s.git != nil && s.git.IsGitRepo(dir) {
		// A repository without commits has no HEAD; the manifest just omits it.
		if hash, err := s.git.CommitHash(dir); err == nil {
			manifest.CommitHash = hash
		}
	}

	files := []struct {
		name string
		v    any
	}{
		{customersFile, customers},
		{productsFile, products},
		{salesFile, sales},
		{shipmentsFile, shipments},
		{paymentsFile, payments},
		{manifestFile, manifest},
	}
	encoded := make(map[string][]byte, len(files))
	for _, f := range files {
		data, err := json.MarshalIndent(f.v, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", f.name, err)
		}
		encoded[f.name] = data
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), encoded[f.name]); err != nil {
			return nil, err
		}
	}
	return manifest, nil
}

func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Load reads a saved snapshot back, resolving the customer, sale and
// product references by id.
func (s *Store) Load(dir string) (*domain.Snapshot, error) {
	if _, err := os.Stat(filepath.Join(dir, manifestFile)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: no saved session in %s", domain.ErrNotFound, dir)
		}
		return nil, err
	}

	var (
		customerRecs []customerRecord
		productRecs  []productRecord
		saleRecs     []saleRecord
		shipmentRecs []shipmentRecord
		paymentRecs  []paymentRecord
	)
	for name, v := range map[string]any{
		customersFile: &customerRecs,
		productsFile:  &productRecs,
		salesFile:     &saleRecs,
		shipmentsFile: &shipmentRecs,
		paymentsFile:  &paymentRecs,
	} {
		if err := readFile(filepath.Join(dir, name), v); err != nil {
			return nil, err
		}
	}

	snap := &domain.Snapshot{}
	customers := make(map[string]domain.Customer, len(customerRecs))
	for i, rec := range customerRecs {
		c, err := decodeCustomer(rec)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", customersFile, i, err)
		}
		customers[c.Key()] = c
		snap.Customers = append(snap.Customers, c)
	}
	resolve := func(o owner) (domain.Customer, error) {
		key, err := o.key()
		if err != nil {
			return nil, err
		}
		if c, ok := customers[key]; ok {
			return c, nil
		}
		c := o.placeholder()
		customers[key] = c
		return c, nil
	}

	products := make(map[int]*domain.Product, len(productRecs))
	for i, rec := range productRecs {
		p, err := decodeProduct(rec)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", productsFile, i, err)
		}
		products[p.ID] = p
		snap.Products = append(snap.Products, p)
	}

	sales := make(map[int]*domain.Sale, len(saleRecs))
	for i, rec := range saleRecs {
		sale, err := decodeSale(rec, products, resolve)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", salesFile, i, err)
		}
		sales[sale.ID] = sale
		snap.Sales = append(snap.Sales, sale)
	}
	saleFor := func(id int) (*domain.Sale, error) {
		sale, ok := sales[id]
		if !ok {
			return nil, fmt.Errorf("%w: sale %d", domain.ErrNotFound, id)
		}
		return sale, nil
	}

	for i, rec := range paymentRecs {
		p, err := decodePayment(rec, saleFor, resolve)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", paymentsFile, i, err)
		}
		snap.Payments = append(snap.Payments, p)
	}
	for i, rec := range shipmentRecs {
		sh, err := decodeShipment(rec, saleFor, resolve)
		if err != nil {
			return nil, fmt.Errorf("%s entry %d: %w", shipmentsFile, i, err)
		}
		snap.Shipments = append(snap.Shipments, sh)
	}

	restoreInstruments(snap)
	return snap, nil
}

func readFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return nil
}

func decodeSale(rec saleRecord, products map[int]*domain.Product, resolve func(owner) (domain.Customer, error)) (*domain.Sale, error) {
	customer, err := resolve(rec.owner)
	if err != nil {
		return nil, err
	}
	date, err := time.ParseInLocation(domain.DateLayout, rec.Fecha, time.Local)
	if err != nil {
		return nil, err
	}
	var plan domain.PaymentPlan
	switch rec.MetodoPago {
	case domain.CashTerms:
		plan = domain.CashPlan()
	case domain.CreditTerms:
		plan = domain.CreditPlan(rec.DiasCredito)
	default:
		return nil, fmt.Errorf("sale %d: unknown metodo_pago %q", rec.ID, rec.MetodoPago)
	}

	lines := make([]domain.SaleLine, len(rec.Productos))
	for i, l := range rec.Productos {
		line := domain.SaleLine{ProductID: l.ID, Name: fmt.Sprintf("#%d", l.ID), Quantity: l.Cantidad}
		if p, ok := products[l.ID]; ok {
			line.Name, line.UnitPrice = p.Name, p.Price
		}
		lines[i] = line
	}

	sale := &domain.Sale{
		ID:       rec.ID,
		Date:     date,
		Customer: customer,
		Lines:    lines,
		Plan:     plan,
		Currency: domain.Bolivares,
		Shipping: domain.ShippingMethod(rec.MetodoEnvio),
	}
	for _, f := range []struct {
		dst *decimal.Decimal
		src json.Number
	}{
		{&sale.Subtotal, rec.Subtotal},
		{&sale.Discount, rec.Descuento},
		{&sale.Tax, rec.IVA},
		{&sale.Surcharge, rec.IGTF},
		{&sale.Total, rec.Total},
	} {
		if *f.dst, err = amount(f.src); err != nil {
			return nil, fmt.Errorf("sale %d amounts: %w", rec.ID, err)
		}
	}
	if sale.Surcharge.IsPositive() {
		sale.Currency = domain.USD
	}
	return sale, nil
}

func decodePayment(rec paymentRecord, saleFor func(int) (*domain.Sale, error), resolve func(owner) (domain.Customer, error)) (*domain.Payment, error) {
	sale, err := saleFor(rec.VentaID)
	if err != nil {
		return nil, err
	}
	customer, err := resolve(rec.owner)
	if err != nil {
		return nil, err
	}
	value, err := amount(rec.MontoPago)
	if err != nil {
		return nil, err
	}
	date, err := parseStamp(rec.Fecha)
	if err != nil {
		return nil, err
	}

	p := &domain.Payment{
		ID:        uuid.New(),
		Date:      date,
		Customer:  customer,
		Sale:      sale,
		Amount:    value,
		Completed: rec.Estado,
	}
	if rec.MetodoPago != nil {
		instrument := domain.Instrument(*rec.MetodoPago)
		p.Instrument = &instrument
	}
	if rec.MonedaPago != nil {
		currency := domain.Currency(*rec.MonedaPago)
		p.Currency = &currency
	}
	if !rec.Estado {
		// Pending payments are created together with their sale.
		due := date
		p.DueDate = &due
		p.Date = sale.Date
	}
	return p, nil
}

func decodeShipment(rec shipmentRecord, saleFor func(int) (*domain.Sale, error), resolve func(owner) (domain.Customer, error)) (*domain.Shipment, error) {
	sale, err := saleFor(rec.VentaID)
	if err != nil {
		return nil, err
	}
	customer, err := resolve(rec.owner)
	if err != nil {
		return nil, err
	}
	date, err := parseStamp(rec.Fecha)
	if err != nil {
		return nil, err
	}

	sh := &domain.Shipment{
		ID:           uuid.New(),
		Date:         date,
		Customer:     customer,
		Sale:         sale,
		Service:      domain.ShippingMethod(rec.ServicioEnvio),
		CourierName:  rec.NombreMotorizado,
		CourierPhone: rec.TelefonoMotorizado,
		CourierPlate: rec.PlacaMotorizado,
	}
	if rec.CostoServicio != nil {
		cost, err := amount(*rec.CostoServicio)
		if err != nil {
			return nil, err
		}
		sh.Cost = &cost
		sh.Completed = true
	}
	return sh, nil
}

// restoreInstruments copies the instrument of each sale from its first
// payment, which is always completed at sale time.
func restoreInstruments(snap *domain.Snapshot) {
	first := make(map[*domain.Sale]*domain.Payment)
	for _, p := range snap.Payments {
		if _, ok := first[p.Sale]; !ok {
			first[p.Sale] = p
		}
	}
	for _, sale := range snap.Sales {
		p, ok := first[sale]
		if !ok {
			continue
		}
		if p.Instrument != nil {
			sale.Instrument = *p.Instrument
		}
		if p.Currency != nil {
			sale.Currency = *p.Currency
		}
	}
}
