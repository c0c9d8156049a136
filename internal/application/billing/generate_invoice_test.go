package billing_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivascu/gestiune-api/internal/application/billing"
	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: store en memoria con semántica transaccional (commit o descarte).
// El mutex serializa las transacciones, igual que lo harían los bloqueos de
// fila de SELECT FOR UPDATE sobre un mismo producto.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	clients  map[string]*entity.Client
	invoices map[string]*entity.Invoice
	details  map[string][]*entity.InvoiceDetail
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*entity.Product),
		clients:  make(map[string]*entity.Client),
		invoices: make(map[string]*entity.Invoice),
		details:  make(map[string][]*entity.InvoiceDetail),
	}
}

func (s *fakeStore) addProduct(p *entity.Product) {
	cp := *p
	s.products[p.ID] = &cp
}

// snapshot copia el estado para poder descartarlo en rollback.
func (s *fakeStore) snapshot() *fakeStore {
	snap := newFakeStore()
	for id, p := range s.products {
		cp := *p
		snap.products[id] = &cp
	}
	for id, c := range s.clients {
		cc := *c
		snap.clients[id] = &cc
	}
	for id, inv := range s.invoices {
		ci := *inv
		snap.invoices[id] = &ci
	}
	for id, ds := range s.details {
		for _, d := range ds {
			cd := *d
			snap.details[id] = append(snap.details[id], &cd)
		}
	}
	return snap
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.products = snap.products
	s.clients = snap.clients
	s.invoices = snap.invoices
	s.details = snap.details
}

type fakeTxRunner struct {
	store       *fakeStore
	productRepo repository.ProductRepository // opcional, para instrumentar los bloqueos
}

func (r *fakeTxRunner) RunInvoice(_ context.Context, fn func(
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	productRepo := r.productRepo
	if productRepo == nil {
		productRepo = &fakeProductRepo{r.store}
	}

	snap := r.store.snapshot()
	err := fn(&fakeClientRepo{r.store}, productRepo, &fakeInvoiceRepo{r.store})
	if err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

type fakeClientRepo struct{ s *fakeStore }

func (r *fakeClientRepo) Create(c *entity.Client) error {
	cp := *c
	r.s.clients[c.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.GetForUpdate(id)
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	r.s.products[id].Stock = stock
	return nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }

func (r *fakeProductRepo) SearchByName(name string, limit int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.s.products, id)
	return nil
}

// lockTally envuelve el repo de productos y anota cada bloqueo de fila pedido,
// en orden.
type lockTally struct {
	*fakeProductRepo
	locked []string
}

func (r *lockTally) GetForUpdate(id string) (*entity.Product, error) {
	r.locked = append(r.locked, id)
	return r.fakeProductRepo.GetForUpdate(id)
}

type fakeInvoiceRepo struct{ s *fakeStore }

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	ci := *inv
	r.s.invoices[inv.ID] = &ci
	return nil
}

func (r *fakeInvoiceRepo) CreateDetails(details []*entity.InvoiceDetail) error {
	for _, d := range details {
		cd := *d
		r.s.details[d.InvoiceID] = append(r.s.details[d.InvoiceID], &cd)
	}
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	ci := *inv
	return &ci, nil
}

func (r *fakeInvoiceRepo) GetDetailsByInvoiceID(invoiceID string) ([]*entity.InvoiceDetail, error) {
	return r.s.details[invoiceID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newUseCase(store *fakeStore) *billing.GenerateInvoiceUseCase {
	return billing.NewGenerateInvoiceUseCase(
		&fakeTxRunner{store: store},
		&fakeInvoiceRepo{store},
		&fakeClientRepo{store},
		&fakeProductRepo{store},
		zerolog.Nop(),
	)
}

func product(id, name string, stock int, salePrice, purchasePrice string) *entity.Product {
	return &entity.Product{
		ID:            id,
		Name:          name,
		Stock:         stock,
		SalePrice:     decimal.RequireFromString(salePrice),
		PurchasePrice: decimal.RequireFromString(purchasePrice),
	}
}

func request(items ...dto.InvoiceItemRequest) dto.GenerateInvoiceRequest {
	return dto.GenerateInvoiceRequest{
		ClientName:    "Ion Popescu",
		ClientAddress: "Str. Libertății 10",
		ClientContact: "0722000111",
		Items:         items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Generación exitosa
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_DescuentaStockYPersisteTodo(t *testing.T) {
	store := newFakeStore()
	store.addProduct(product("p1", "Paracetamol", 10, "12.50", "8.00"))
	store.addProduct(product("p2", "Ibuprofeno", 4, "20.00", "14.00"))
	uc := newUseCase(store)

	out, err := uc.Generate(context.Background(), request(
		dto.InvoiceItemRequest{ProductID: "p1", Quantity: 3},
		dto.InvoiceItemRequest{ProductID: "p2", Quantity: 4},
	))
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, 7, store.products["p1"].Stock, "p1 debe quedar con 10-3")
	assert.Equal(t, 0, store.products["p2"].Stock, "comprar el stock exacto debe dejar 0")

	require.Contains(t, store.invoices, out.ID)
	require.Contains(t, store.clients, out.ClientID)
	assert.Equal(t, "Ion Popescu", store.clients[out.ClientID].Name)

	details := store.details[out.ID]
	require.Len(t, details, 2)
	assert.Equal(t, 3, details[0].Quantity)
	assert.True(t, details[0].UnitPrice.Equal(decimal.RequireFromString("12.50")),
		"la línea debe llevar la instantánea del precio de venta")
	assert.True(t, details[0].UnitCost.Equal(decimal.RequireFromString("8.00")),
		"la línea debe llevar la instantánea del precio de compra")
}

func TestGenerate_GetInvoiceCalculaTotal(t *testing.T) {
	store := newFakeStore()
	store.addProduct(product("p1", "Paracetamol", 10, "12.50", "8.00"))
	uc := newUseCase(store)

	out, err := uc.Generate(context.Background(), request(
		dto.InvoiceItemRequest{ProductID: "p1", Quantity: 4},
	))
	require.NoError(t, err)

	inv, err := uc.GetInvoice(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ion Popescu", inv.ClientName)
	require.Len(t, inv.Details, 1)
	assert.True(t, inv.Total.Equal(decimal.RequireFromString("50.00")), "total = 4 x 12.50")
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock insuficiente: rollback total
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_StockInsuficiente_AbortaTodo(t *testing.T) {
	store := newFakeStore()
	store.addProduct(product("p1", "Paracetamol", 10, "12.50", "8.00"))
	store.addProduct(product("p2", "Ibuprofeno", 2, "20.00", "14.00"))
	uc := newUseCase(store)

	out, err := uc.Generate(context.Background(), request(
		dto.InvoiceItemRequest{ProductID: "p1", Quantity: 3},
		dto.InvoiceItemRequest{ProductID: "p2", Quantity: 5},
	))
	require.Error(t, err)
	assert.Nil(t, out)

	stockErr, ok := domain.AsInsufficientStock(err)
	require.True(t, ok, "el error debe ser de stock insuficiente")
	assert.Equal(t, "Ibuprofeno", stockErr.ProductName)
	assert.Equal(t, 2, stockErr.Available)

	// Rollback total: ni descuento parcial de p1, ni cliente, ni factura
	assert.Equal(t, 10, store.products["p1"].Stock)
	assert.Equal(t, 2, store.products["p2"].Stock)
	assert.Empty(t, store.clients)
	assert.Empty(t, store.invoices)
	assert.Empty(t, store.details)
}

func TestGenerate_StockInsuficiente_ReportaPrimeraLineaFallida(t *testing.T) {
	store := newFakeStore()
	store.addProduct(product("p1", "Paracetamol", 1, "12.50", "8.00"))
	store.addProduct(product("p2", "Ibuprofeno", 1, "20.00", "14.00"))
	uc := newUseCase(store)

	// Ambas líneas exceden el stock; debe reportarse la primera en orden
	_, err := uc.Generate(context.Background(), request(
		dto.InvoiceItemRequest{ProductID: "p1", Quantity: 5},
		dto.InvoiceItemRequest{ProductID: "p2", Quantity: 5},
	))
	stockErr, ok := domain.AsInsufficientStock(err)
	require.True(t, ok)
	assert.Equal(t, "Paracetamol", stockErr.ProductName)
}

func TestGenerate_StockInsuficiente_NoBloqueaLineasPosteriores(t *testing.T) {
	store := newFakeStore()
	store.addProduct(product("p1", "Paracetamol", 1, "12.50", "8.00"))
	store.addProduct(product("p2", "Ibuprofeno", 10, "20.00", "14.00"))

	tally := &lockTally{fakeProductRepo: &fakeProductRepo{store}}
	uc := billing.NewGenerateInvoiceUseCase(
		&fakeTxRunner{store: store, productRepo: tally},
		&fakeInvoiceRepo{store},
		&fakeClientRepo{store},
		&fakeProductRepo{store},
		zerolog.Nop(),
	)

	_, err := uc.Generate(context.Background(), request(
		dto.InvoiceItemRequest{ProductID: "p1", Quantity: 5},
		dto.InvoiceItemRequest{ProductID: "p2", Quantity: 1},
	))
	_, ok := domain.AsInsufficientStock(err)
	require.True(t, ok)

	assert.Equal(t, []string{"p1"}, tally.locked,
		"tras la primera línea fallida no se debe bloquear ningún producto más")
}

func TestGenerate_FalloRepetido_NoAcumulaEfectos(t *testing.T) {
	store := newFakeStore()
	store.addProduct(product("p1", "Paracetamol", 3, "12.50", "8.00"))
	uc := newUseCase(store)

	in := request(dto.InvoiceItemRequest{ProductID: "p1", Quantity: 5})
	for i := 0; i < 3; i++ {
		_, err := uc.Generate(context.Background(), in)
		require.Error(t, err)
	}
	assert.Equal(t, 3, store.products["p1"].Stock, "los fallos repetidos no deben tocar el stock")
	assert.Empty(t, store.invoices)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y producto inexistente
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_ValidacionDeEntrada(t *testing.T) {
	store := newFakeStore()
	store.addProduct(product("p1", "Paracetamol", 10, "12.50", "8.00"))
	uc := newUseCase(store)

	cases := []struct {
		name string
		in   dto.GenerateInvoiceRequest
	}{
		{"sin nombre de cliente", func() dto.GenerateInvoiceRequest {
			in := request(dto.InvoiceItemRequest{ProductID: "p1", Quantity: 1})
			in.ClientName = "  "
			return in
		}()},
		{"sin dirección", func() dto.GenerateInvoiceRequest {
			in := request(dto.InvoiceItemRequest{ProductID: "p1", Quantity: 1})
			in.ClientAddress = ""
			return in
		}()},
		{"sin contacto", func() dto.GenerateInvoiceRequest {
			in := request(dto.InvoiceItemRequest{ProductID: "p1", Quantity: 1})
			in.ClientContact = ""
			return in
		}()},
		{"sin líneas", request()},
		{"cantidad cero", request(dto.InvoiceItemRequest{ProductID: "p1", Quantity: 0})},
		{"cantidad negativa", request(dto.InvoiceItemRequest{ProductID: "p1", Quantity: -2})},
		{"línea sin producto", request(dto.InvoiceItemRequest{Quantity: 1})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Generate(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Equal(t, 10, store.products["p1"].Stock)
}

func TestGenerate_ProductoInexistente_AbortaTodo(t *testing.T) {
	store := newFakeStore()
	store.addProduct(product("p1", "Paracetamol", 10, "12.50", "8.00"))
	uc := newUseCase(store)

	_, err := uc.Generate(context.Background(), request(
		dto.InvoiceItemRequest{ProductID: "p1", Quantity: 2},
		dto.InvoiceItemRequest{ProductID: "no-existe", Quantity: 1},
	))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 10, store.products["p1"].Stock, "el descuento de p1 debe revertirse")
	assert.Empty(t, store.invoices)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: nunca se vende más stock del disponible
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_Concurrente_NoSobrevende(t *testing.T) {
	const stock = 5
	const buyers = 20

	store := newFakeStore()
	store.addProduct(product("p1", "Paracetamol", stock, "12.50", "8.00"))
	uc := newUseCase(store)

	var wg sync.WaitGroup
	errs := make(chan error, buyers)
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Generate(context.Background(), request(
				dto.InvoiceItemRequest{ProductID: "p1", Quantity: 1},
			))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, insufficient int
	for err := range errs {
		if err == nil {
			ok++
			continue
		}
		_, isStock := domain.AsInsufficientStock(err)
		require.True(t, isStock, "el único error esperado es stock insuficiente: %v", err)
		insufficient++
	}

	assert.Equal(t, stock, ok, "deben triunfar exactamente tantas compras como stock había")
	assert.Equal(t, buyers-stock, insufficient)
	assert.Equal(t, 0, store.products["p1"].Stock)
	assert.Len(t, store.invoices, stock)
}
