package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/application/usecase"
	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.GetByID(id) }

func (r *memProductRepo) UpdateStock(id string, stock int) error {
	r.products[id].Stock = stock
	return nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) SearchByName(name string, limit int) ([]*entity.Product, error) {
	return nil, nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type memDetailRepo struct {
	byProduct map[string][]*entity.ProductDetail
}

func (r *memDetailRepo) Create(d *entity.ProductDetail) error {
	cd := *d
	r.byProduct[d.ProductID] = append(r.byProduct[d.ProductID], &cd)
	return nil
}

func (r *memDetailRepo) GetByID(id string) (*entity.ProductDetail, error) {
	for _, details := range r.byProduct {
		for _, d := range details {
			if d.ID == id {
				cd := *d
				return &cd, nil
			}
		}
	}
	return nil, nil
}

func (r *memDetailRepo) Update(d *entity.ProductDetail) error {
	for _, details := range r.byProduct {
		for i, cur := range details {
			if cur.ID == d.ID {
				cd := *d
				details[i] = &cd
				return nil
			}
		}
	}
	return nil
}

func (r *memDetailRepo) ListByProduct(productID string) ([]*entity.ProductDetail, error) {
	return r.byProduct[productID], nil
}

type memSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *memSupplierRepo) Create(s *entity.Supplier) error { return nil }

func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *memSupplierRepo) Update(s *entity.Supplier) error                    { return nil }
func (r *memSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) { return nil, nil }
func (r *memSupplierRepo) Delete(id string) error                             { return nil }

// passthroughTxRunner ejecuta la función directamente sobre los repos en
// memoria (sin transacción real).
type passthroughTxRunner struct {
	productRepo repository.ProductRepository
	detailRepo  repository.ProductDetailRepository
}

func (r *passthroughTxRunner) RunProduct(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	detailRepo repository.ProductDetailRepository,
) error) error {
	return fn(r.productRepo, r.detailRepo)
}

func newProductUC() (*usecase.ProductUseCase, *memProductRepo) {
	productRepo := &memProductRepo{products: make(map[string]*entity.Product)}
	detailRepo := &memDetailRepo{byProduct: make(map[string][]*entity.ProductDetail)}
	supplierRepo := &memSupplierRepo{suppliers: map[string]*entity.Supplier{
		"sup-1": {ID: "sup-1", Name: "Farmacéutica SA"},
	}}
	tx := &passthroughTxRunner{productRepo: productRepo, detailRepo: detailRepo}
	return usecase.NewProductUseCase(tx, productRepo, detailRepo, supplierRepo), productRepo
}

func validProductRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:          "Paracetamol 500mg",
		PurchasePrice: decimal.RequireFromString("8.00"),
		SalePrice:     decimal.RequireFromString("12.50"),
		TaxRate:       decimal.RequireFromString("9"),
		SupplierID:    "sup-1",
		Stock:         100,
		ExpiryDate:    "2027-01-31",
		Details: []dto.ProductDetailRequest{
			{AttributeName: "concentración", AttributeValue: "500mg", UnitMeasure: "mg"},
		},
	}
}

func TestProductCreate_PersisteProductoYAtributos(t *testing.T) {
	uc, repo := newProductUC()

	out, err := uc.Create(context.Background(), validProductRequest())
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	assert.Equal(t, "Paracetamol 500mg", repo.products[out.ID].Name)
	assert.Equal(t, 100, repo.products[out.ID].Stock)
	require.Len(t, out.Details, 1)
	assert.Equal(t, "concentración", out.Details[0].AttributeName)

	got, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, "2027-01-31", got.ExpiryDate)
	require.Len(t, got.Details, 1)
}

func TestProductCreate_Validacion(t *testing.T) {
	uc, _ := newProductUC()

	cases := []struct {
		name    string
		mutate  func(*dto.CreateProductRequest)
		wantErr error
	}{
		{"sin nombre", func(r *dto.CreateProductRequest) { r.Name = "   " }, domain.ErrInvalidInput},
		{"sin proveedor", func(r *dto.CreateProductRequest) { r.SupplierID = "" }, domain.ErrInvalidInput},
		{"proveedor inexistente", func(r *dto.CreateProductRequest) { r.SupplierID = "sup-999" }, domain.ErrNotFound},
		{"stock negativo", func(r *dto.CreateProductRequest) { r.Stock = -1 }, domain.ErrInvalidInput},
		{"precio negativo", func(r *dto.CreateProductRequest) {
			r.SalePrice = decimal.RequireFromString("-1")
		}, domain.ErrInvalidInput},
		{"fecha inválida", func(r *dto.CreateProductRequest) { r.ExpiryDate = "31-01-2027" }, domain.ErrInvalidInput},
		{"atributo sin nombre", func(r *dto.CreateProductRequest) {
			r.Details = []dto.ProductDetailRequest{{AttributeName: " "}}
		}, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validProductRequest()
			tc.mutate(&in)
			_, err := uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestProductUpdate_PreservaCreatedAt(t *testing.T) {
	uc, repo := newProductUC()

	created, err := uc.Create(context.Background(), validProductRequest())
	require.NoError(t, err)
	originalCreatedAt := repo.products[created.ID].CreatedAt

	in := validProductRequest()
	in.Name = "Paracetamol 1000mg"
	in.Stock = 50
	updated, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "Paracetamol 1000mg", updated.Name)
	assert.Equal(t, 50, repo.products[created.ID].Stock)
	assert.Equal(t, originalCreatedAt, repo.products[created.ID].CreatedAt,
		"la fecha de alta no debe cambiar al editar")
}

func TestProductUpdate_UpsertDeAtributos(t *testing.T) {
	uc, _ := newProductUC()

	created, err := uc.Create(context.Background(), validProductRequest())
	require.NoError(t, err)
	require.Len(t, created.Details, 1)
	existingID := created.Details[0].ID

	in := validProductRequest()
	in.Details = []dto.ProductDetailRequest{
		{ID: existingID, AttributeName: "concentración", AttributeValue: "1000mg"},
		{AttributeName: "forma", AttributeValue: "comprimidos"},
	}
	updated, err := uc.Update(context.Background(), created.ID, in)
	require.NoError(t, err)

	require.Len(t, updated.Details, 2)
	byName := map[string]string{}
	for _, d := range updated.Details {
		byName[d.AttributeName] = d.AttributeValue
	}
	assert.Equal(t, "1000mg", byName["concentración"], "el atributo con ID debe editarse")
	assert.Equal(t, "comprimidos", byName["forma"], "el atributo sin ID debe crearse")
}

func TestProductUpdate_AtributoAjeno_RetornaNotFound(t *testing.T) {
	uc, _ := newProductUC()

	created, err := uc.Create(context.Background(), validProductRequest())
	require.NoError(t, err)

	in := validProductRequest()
	in.Details = []dto.ProductDetailRequest{
		{ID: "detalle-inexistente", AttributeName: "forma"},
	}
	_, err = uc.Update(context.Background(), created.ID, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newProductUC()
	_, err := uc.Update(context.Background(), "no-existe", validProductRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductSearch_NombreVacio_RetornaInvalidInput(t *testing.T) {
	uc, _ := newProductUC()
	_, err := uc.Search("   ", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newProductUC()
	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
