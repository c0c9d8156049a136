package auth

import (
	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/repository"
	"github.com/ivascu/gestiune-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación (login por username).
type AuthUseCase struct {
	employeeRepo repository.EmployeeRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(employeeRepo repository.EmployeeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employeeRepo: employeeRepo, jwtCfg: jwtCfg}
}

// Login verifica username/parola, genera JWT y retorna token, rol y nombre.
// Username inexistente y parola incorrecta responden igual (ErrUnauthorized):
// no se revela cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	employee, err := uc.employeeRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, employee.ID, employee.Role(), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		Role:      employee.Role(),
		LastName:  employee.LastName,
		FirstName: employee.FirstName,
	}, nil
}
