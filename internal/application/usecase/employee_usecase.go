package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
)

// EmployeeUseCase reglas de negocio para empleados, sus datos bancarios y
// pagos de salario. Todas las operaciones son solo-admin (lo exige el router).
type EmployeeUseCase struct {
	repo       repository.EmployeeRepository
	bankRepo   repository.EmployeeBankRepository
	salaryRepo repository.SalaryRepository
}

// NewEmployeeUseCase construye el caso de uso con los puertos de persistencia.
func NewEmployeeUseCase(
	repo repository.EmployeeRepository,
	bankRepo repository.EmployeeBankRepository,
	salaryRepo repository.SalaryRepository,
) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, bankRepo: bankRepo, salaryRepo: salaryRepo}
}

// Create crea un empleado: hashea la parola con bcrypt y persiste.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	employee := &entity.Employee{
		ID:           uuid.New().String(),
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: string(hash),
		Email:        in.Email,
		LastName:     in.LastName,
		FirstName:    in.FirstName,
		Phone:        in.Phone,
		IsAdmin:      in.IsAdmin,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update actualiza un empleado. Parola vacía conserva el hash actual.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if strings.TrimSpace(in.Username) == "" {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	employee.Username = strings.TrimSpace(in.Username)
	employee.Email = in.Email
	employee.LastName = in.LastName
	employee.FirstName = in.FirstName
	employee.Phone = in.Phone
	employee.IsAdmin = in.IsAdmin
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = string(hash)
	}
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista empleados con paginación.
func (uc *EmployeeUseCase) List(page dto.PageRequest) ([]*dto.EmployeeResponse, error) {
	page.DefaultPage()
	employees, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Delete elimina un empleado.
func (uc *EmployeeUseCase) Delete(id string) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// AddBank registra datos bancarios para un empleado.
func (uc *EmployeeUseCase) AddBank(employeeID string, in dto.CreateEmployeeBankRequest) (*dto.EmployeeBankResponse, error) {
	if strings.TrimSpace(in.AccountNumber) == "" {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.repo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	bank := &entity.EmployeeBank{
		ID:            uuid.New().String(),
		EmployeeID:    employeeID,
		AccountNumber: strings.TrimSpace(in.AccountNumber),
		SWIFT:         in.SWIFT,
	}
	if err := uc.bankRepo.Create(bank); err != nil {
		return nil, err
	}
	return &dto.EmployeeBankResponse{
		ID:            bank.ID,
		EmployeeID:    bank.EmployeeID,
		AccountNumber: bank.AccountNumber,
		SWIFT:         bank.SWIFT,
	}, nil
}

// UpdateBank actualiza los datos bancarios de un empleado.
func (uc *EmployeeUseCase) UpdateBank(bankID string, in dto.CreateEmployeeBankRequest) (*dto.EmployeeBankResponse, error) {
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
	return &dto.EmployeeBankResponse{
		ID:            bank.ID,
		EmployeeID:    bank.EmployeeID,
		AccountNumber: bank.AccountNumber,
		SWIFT:         bank.SWIFT,
	}, nil
}

// ListBanks lista los datos bancarios de un empleado.
func (uc *EmployeeUseCase) ListBanks(employeeID string) ([]*dto.EmployeeBankResponse, error) {
	employee, err := uc.repo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	banks, err := uc.bankRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeBankResponse, 0, len(banks))
	for _, b := range banks {
		out = append(out, &dto.EmployeeBankResponse{
			ID:            b.ID,
			EmployeeID:    b.EmployeeID,
			AccountNumber: b.AccountNumber,
			SWIFT:         b.SWIFT,
		})
	}
	return out, nil
}

// AddSalary registra un pago de salario para un empleado.
func (uc *EmployeeUseCase) AddSalary(employeeID string, in dto.CreateSalaryRequest) (*dto.SalaryResponse, error) {
	if in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.repo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	salaryDate := time.Now()
	if in.SalaryDate != "" {
		salaryDate, err = time.Parse("2006-01-02", in.SalaryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	salary := &entity.EmployeeSalary{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		SalaryDate: salaryDate,
		Amount:     in.Amount,
		CreatedAt:  time.Now(),
	}
	if err := uc.salaryRepo.Create(salary); err != nil {
		return nil, err
	}
	return toSalaryResponse(salary), nil
}

// UpdateSalary corrige un pago de salario ya registrado.
func (uc *EmployeeUseCase) UpdateSalary(salaryID string, in dto.CreateSalaryRequest) (*dto.SalaryResponse, error) {
	if in.Amount.IsNegative() || in.Amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	salary, err := uc.salaryRepo.GetByID(salaryID)
	if err != nil {
		return nil, err
	}
	if salary == nil {
		return nil, domain.ErrNotFound
	}
	if in.SalaryDate != "" {
		salaryDate, err := time.Parse("2006-01-02", in.SalaryDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		salary.SalaryDate = salaryDate
	}
	salary.Amount = in.Amount
	if err := uc.salaryRepo.Update(salary); err != nil {
		return nil, err
	}
	return toSalaryResponse(salary), nil
}

// ListSalaries lista los pagos de salario de un empleado.
func (uc *EmployeeUseCase) ListSalaries(employeeID string) ([]*dto.SalaryResponse, error) {
	employee, err := uc.repo.GetByID(employeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	salaries, err := uc.salaryRepo.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SalaryResponse, 0, len(salaries))
	for _, s := range salaries {
		out = append(out, toSalaryResponse(s))
	}
	return out, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		LastName:  e.LastName,
		FirstName: e.FirstName,
		Phone:     e.Phone,
		IsAdmin:   e.IsAdmin,
		Role:      e.Role(),
	}
}

func toSalaryResponse(s *entity.EmployeeSalary) *dto.SalaryResponse {
	return &dto.SalaryResponse{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		SalaryDate: s.SalaryDate.Format("2006-01-02"),
		Amount:     s.Amount,
	}
}
