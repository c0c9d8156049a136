package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
// Details se crean junto con el producto en la misma transacción.
type CreateProductRequest struct {
	Name            string                 `json:"name"`
	ProductType     string                 `json:"product_type,omitempty"`
	PurchasePrice   decimal.Decimal        `json:"purchase_price"`
	SalePrice       decimal.Decimal        `json:"sale_price"`
	TaxRate         decimal.Decimal        `json:"tax_rate"`
	BatchNumber     string                 `json:"batch_number,omitempty"`
	ShelfNumber     string                 `json:"shelf_number,omitempty"`
	ExpiryDate      string                 `json:"expiry_date,omitempty"`     // YYYY-MM-DD
	ProductionDate  string                 `json:"production_date,omitempty"` // YYYY-MM-DD
	SupplierID      string                 `json:"supplier_id"`
	Description     string                 `json:"description,omitempty"`
	Stock           int                    `json:"stock"`
	PackageQuantity int                    `json:"package_quantity,omitempty"`
	Details         []ProductDetailRequest `json:"details,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest = CreateProductRequest

// ProductDetailRequest atributo adicional del producto. En actualizaciones,
// un ID presente edita el atributo existente y un ID vacío crea uno nuevo.
type ProductDetailRequest struct {
	ID             string `json:"id,omitempty"`
	AttributeName  string `json:"attribute_name"`
	AttributeValue string `json:"attribute_value"`
	UnitMeasure    string `json:"unit_measure,omitempty"`
	Description    string `json:"description,omitempty"`
}

// ProductResponse producto en respuestas.
type ProductResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	ProductType     string                  `json:"product_type,omitempty"`
	PurchasePrice   decimal.Decimal         `json:"purchase_price"`
	SalePrice       decimal.Decimal         `json:"sale_price"`
	TaxRate         decimal.Decimal         `json:"tax_rate"`
	BatchNumber     string                  `json:"batch_number,omitempty"`
	ShelfNumber     string                  `json:"shelf_number,omitempty"`
	ExpiryDate      string                  `json:"expiry_date,omitempty"`
	ProductionDate  string                  `json:"production_date,omitempty"`
	SupplierID      string                  `json:"supplier_id"`
	Description     string                  `json:"description,omitempty"`
	Stock           int                     `json:"stock"`
	PackageQuantity int                     `json:"package_quantity,omitempty"`
	Details         []ProductDetailResponse `json:"details,omitempty"`
}

// ProductDetailResponse atributo del producto en respuestas.
type ProductDetailResponse struct {
	ID             string `json:"id"`
	AttributeName  string `json:"attribute_name"`
	AttributeValue string `json:"attribute_value"`
	UnitMeasure    string `json:"unit_measure,omitempty"`
	Description    string `json:"description,omitempty"`
}
