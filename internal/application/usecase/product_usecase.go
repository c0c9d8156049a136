package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// ProductUseCase reglas de negocio para productos y sus atributos.
type ProductUseCase struct {
	txRunner     ProductTxRunner
	repo         repository.ProductRepository
	detailRepo   repository.ProductDetailRepository
	supplierRepo repository.SupplierRepository
}

// NewProductUseCase construye el caso de uso con los puertos de persistencia.
func NewProductUseCase(
	txRunner ProductTxRunner,
	repo repository.ProductRepository,
	detailRepo repository.ProductDetailRepository,
	supplierRepo repository.SupplierRepository,
) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, repo: repo, detailRepo: detailRepo, supplierRepo: supplierRepo}
}

// Create crea un producto junto con sus atributos en una sola transacción.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.buildProduct(uuid.New().String(), in)
	if err != nil {
		return nil, err
	}
	product.CreatedAt = time.Now()

	details := make([]*entity.ProductDetail, 0, len(in.Details))
	for _, d := range in.Details {
		if strings.TrimSpace(d.AttributeName) == "" {
			return nil, domain.ErrInvalidInput
		}
		details = append(details, &entity.ProductDetail{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			AttributeName:  strings.TrimSpace(d.AttributeName),
			AttributeValue: d.AttributeValue,
			UnitMeasure:    d.UnitMeasure,
			Description:    d.Description,
			CreatedAt:      product.CreatedAt,
		})
	}

	err = uc.txRunner.RunProduct(ctx, func(
		productRepo repository.ProductRepository,
		detailRepo repository.ProductDetailRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		for _, detail := range details {
			if err := detailRepo.Create(detail); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(product, details), nil
}

// GetByID obtiene un producto con sus atributos.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.detailRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(product, details), nil
}

// Update actualiza un producto y hace upsert de sus atributos: un atributo con
// ID se edita, uno sin ID se crea. Los atributos no enviados quedan intactos.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	product, err := uc.buildProduct(id, in)
	if err != nil {
		return nil, err
	}
	product.CreatedAt = existing.CreatedAt

	err = uc.txRunner.RunProduct(ctx, func(
		productRepo repository.ProductRepository,
		detailRepo repository.ProductDetailRepository,
	) error {
		if err := productRepo.Update(product); err != nil {
			return err
		}
		for _, d := range in.Details {
			if strings.TrimSpace(d.AttributeName) == "" {
				return domain.ErrInvalidInput
			}
			if d.ID == "" {
				if err := detailRepo.Create(&entity.ProductDetail{
					ID:             uuid.New().String(),
					ProductID:      product.ID,
					AttributeName:  strings.TrimSpace(d.AttributeName),
					AttributeValue: d.AttributeValue,
					UnitMeasure:    d.UnitMeasure,
					Description:    d.Description,
					CreatedAt:      time.Now(),
				}); err != nil {
					return err
				}
				continue
			}
			current, err := detailRepo.GetByID(d.ID)
			if err != nil {
				return err
			}
			if current == nil || current.ProductID != product.ID {
				return domain.ErrNotFound
			}
			current.AttributeName = strings.TrimSpace(d.AttributeName)
			current.AttributeValue = d.AttributeValue
			current.UnitMeasure = d.UnitMeasure
			current.Description = d.Description
			if err := detailRepo.Update(current); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	details, err := uc.detailRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(product, details), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]*dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, uc.toResponse(p, nil))
	}
	return out, nil
}

// Search busca productos por coincidencia parcial de nombre.
func (uc *ProductUseCase) Search(name string, limit int) ([]*dto.ProductResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	products, err := uc.repo.SearchByName(name, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, uc.toResponse(p, nil))
	}
	return out, nil
}

// Delete elimina un producto (sus atributos caen en cascada).
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// buildProduct valida el request y arma la entidad (sin CreatedAt).
func (uc *ProductUseCase) buildProduct(id string, in dto.CreateProductRequest) (*entity.Product, error) {
	if strings.TrimSpace(in.Name) == "" || in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.SalePrice.IsNegative() || in.PurchasePrice.IsNegative() || in.TaxRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	expiry, err := parseDate(in.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	production, err := parseDate(in.ProductionDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Product{
		ID:              id,
		Name:            strings.TrimSpace(in.Name),
		ProductType:     in.ProductType,
		PurchasePrice:   in.PurchasePrice,
		SalePrice:       in.SalePrice,
		TaxRate:         in.TaxRate,
		BatchNumber:     in.BatchNumber,
		ShelfNumber:     in.ShelfNumber,
		ExpiryDate:      expiry,
		ProductionDate:  production,
		SupplierID:      in.SupplierID,
		Description:     in.Description,
		Stock:           in.Stock,
		PackageQuantity: in.PackageQuantity,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func (uc *ProductUseCase) toResponse(p *entity.Product, details []*entity.ProductDetail) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		ProductType:     p.ProductType,
		PurchasePrice:   p.PurchasePrice,
		SalePrice:       p.SalePrice,
		TaxRate:         p.TaxRate,
		BatchNumber:     p.BatchNumber,
		ShelfNumber:     p.ShelfNumber,
		SupplierID:      p.SupplierID,
		Description:     p.Description,
		Stock:           p.Stock,
		PackageQuantity: p.PackageQuantity,
	}
	if !p.ExpiryDate.IsZero() {
		resp.ExpiryDate = p.ExpiryDate.Format("2006-01-02")
	}
	if !p.ProductionDate.IsZero() {
		resp.ProductionDate = p.ProductionDate.Format("2006-01-02")
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.ProductDetailResponse{
			ID:             d.ID,
			AttributeName:  d.AttributeName,
			AttributeValue: d.AttributeValue,
			UnitMeasure:    d.UnitMeasure,
			Description:    d.Description,
		})
	}
	return resp
}
