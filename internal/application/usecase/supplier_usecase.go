package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// SupplierUseCase reglas de negocio para proveedores, sus datos bancarios y
// su cuenta corriente.
type SupplierUseCase struct {
	repo        repository.SupplierRepository
	bankRepo    repository.SupplierBankRepository
	accountRepo repository.SupplierAccountRepository
}

// NewSupplierUseCase construye el caso de uso con los puertos de persistencia.
func NewSupplierUseCase(
	repo repository.SupplierRepository,
	bankRepo repository.SupplierBankRepository,
	accountRepo repository.SupplierAccountRepository,
) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, bankRepo: bankRepo, accountRepo: accountRepo}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Address:     in.Address,
		Phone:       in.Phone,
		Email:       in.Email,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return toSupplierResponse(supplier), nil
}

// Update actualiza un proveedor existente.
func (uc *SupplierUseCase) Update(id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	supplier.Name = strings.TrimSpace(in.Name)
	supplier.Address = in.Address
	supplier.Phone = in.Phone
	supplier.Email = in.Email
	supplier.Description = in.Description
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// List lista proveedores con paginación.
func (uc *SupplierUseCase) List(page dto.PageRequest) ([]*dto.SupplierResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

// Delete elimina un proveedor.
func (uc *SupplierUseCase) Delete(id string) error {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// AddBank registra datos bancarios para un proveedor.
func (uc *SupplierUseCase) AddBank(supplierID string, in dto.CreateSupplierBankRequest) (*dto.SupplierBankResponse, error) {
	if strings.TrimSpace(in.AccountNumber) == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.repo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	bank := &entity.SupplierBank{
		ID:            uuid.New().String(),
		SupplierID:    supplierID,
		AccountNumber: strings.TrimSpace(in.AccountNumber),
		SWIFT:         in.SWIFT,
	}
	if err := uc.bankRepo.Create(bank); err != nil {
		return nil, err
	}
	return toSupplierBankResponse(bank), nil
}

// UpdateBank actualiza los datos bancarios de un proveedor.
func (uc *SupplierUseCase) UpdateBank(bankID string, in dto.CreateSupplierBankRequest) (*dto.SupplierBankResponse, error) {
	if strings.TrimSpace(in.AccountNumber) == "" {
		return nil, domain.ErrInvalidInput
	}
	bank, err := uc.bankRepo.GetByID(bankID)
	if err != nil {
		return nil, err
	}
	if bank == nil {
		return nil, domain.ErrNotFound
	}
	bank.AccountNumber = strings.TrimSpace(in.AccountNumber)
	bank.SWIFT = in.SWIFT
	if err := uc.bankRepo.Update(bank); err != nil {
		return nil, err
	}
	return toSupplierBankResponse(bank), nil
}

// ListBanks lista los datos bancarios de un proveedor.
func (uc *SupplierUseCase) ListBanks(supplierID string) ([]*dto.SupplierBankResponse, error) {
	supplier, err := uc.repo.GetByID(supplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	banks, err := uc.bankRepo.ListBySupplier(supplierID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierBankResponse, 0, len(banks))
	for _, b := range banks {
		out = append(out, toSupplierBankResponse(b))
	}
	return out, nil
}

// AddAccountEntry registra un movimiento en la cuenta corriente de un proveedor.
func (uc *SupplierUseCase) AddAccountEntry(in dto.CreateSupplierAccountRequest) (*dto.SupplierAccountResponse, error) {
	if in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TransactionType != entity.TransactionDebit && in.TransactionType != entity.TransactionCredit {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.repo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	txDate := time.Now()
	if in.TransactionDate != "" {
		txDate, err = time.Parse("2006-01-02", in.TransactionDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	account := &entity.SupplierAccount{
		ID:              uuid.New().String(),
		SupplierID:      in.SupplierID,
		TransactionType: in.TransactionType,
		Amount:          in.Amount,
		TransactionDate: txDate,
		PaymentMethod:   in.PaymentMethod,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toSupplierAccountResponse(account), nil
}

// UpdateAccountEntry corrige un movimiento ya registrado (tipo, monto, fecha,
// método de pago). El proveedor del movimiento no cambia.
func (uc *SupplierUseCase) UpdateAccountEntry(id string, in dto.CreateSupplierAccountRequest) (*dto.SupplierAccountResponse, error) {
	if in.TransactionType != entity.TransactionDebit && in.TransactionType != entity.TransactionCredit {
		return nil, domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	account, err := uc.accountRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.TransactionDate != "" {
		txDate, err := time.Parse("2006-01-02", in.TransactionDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		account.TransactionDate = txDate
	}
	account.TransactionType = in.TransactionType
	account.Amount = in.Amount
	account.PaymentMethod = in.PaymentMethod
	if err := uc.accountRepo.Update(account); err != nil {
		return nil, err
	}
	return toSupplierAccountResponse(account), nil
}

// ListAccountEntries lista movimientos de cuenta corriente con paginación.
func (uc *SupplierUseCase) ListAccountEntries(page dto.PageRequest) ([]*dto.SupplierAccountResponse, error) {
	page.DefaultPage()
	entries, err := uc.accountRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierAccountResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toSupplierAccountResponse(e))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		Phone:       s.Phone,
		Email:       s.Email,
		Description: s.Description,
	}
}

func toSupplierBankResponse(b *entity.SupplierBank) *dto.SupplierBankResponse {
	return &dto.SupplierBankResponse{
		ID:            b.ID,
		SupplierID:    b.SupplierID,
		AccountNumber: b.AccountNumber,
		SWIFT:         b.SWIFT,
	}
}

func toSupplierAccountResponse(a *entity.SupplierAccount) *dto.SupplierAccountResponse {
	return &dto.SupplierAccountResponse{
		ID:              a.ID,
		SupplierID:      a.SupplierID,
		TransactionType: a.TransactionType,
		Amount:          a.Amount,
		TransactionDate: a.TransactionDate.Format("2006-01-02"),
		PaymentMethod:   a.PaymentMethod,
	}
}
