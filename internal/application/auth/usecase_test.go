package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ivascu/gestiune-api/internal/application/auth"
	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
	pkgjwt "github.com/ivascu/gestiune-api/pkg/jwt"
)

type fakeEmployeeRepo struct {
	byUsername map[string]*entity.Employee
}

func (f *fakeEmployeeRepo) Create(*entity.Employee) error             { return nil }
func (f *fakeEmployeeRepo) GetByID(string) (*entity.Employee, error)  { return nil, nil }
func (f *fakeEmployeeRepo) Update(*entity.Employee) error             { return nil }
func (f *fakeEmployeeRepo) List(int, int) ([]*entity.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) Delete(string) error                       { return nil }

func (f *fakeEmployeeRepo) GetByUsername(username string) (*entity.Employee, error) {
	return f.byUsername[username], nil
}

const (
	testSecret   = "auth-test-secret"
	testPassword = "parola123"
)

func newAuthUC(t *testing.T, isAdmin bool) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeEmployeeRepo{byUsername: map[string]*entity.Employee{
		"ion.popescu": {
			ID:           "emp-1",
			Username:     "ion.popescu",
			PasswordHash: string(hash),
			LastName:     "Popescu",
			FirstName:    "Ion",
			IsAdmin:      isAdmin,
		},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "gestiune-api-test",
	})
}

func TestLogin_CredencialesValidas_RetornaTokenYRol(t *testing.T) {
	uc := newAuthUC(t, true)

	out, err := uc.Login(dto.LoginRequest{Username: "ion.popescu", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
	assert.Equal(t, "Popescu", out.LastName)
	assert.Equal(t, "Ion", out.FirstName)

	userID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "emp-1", userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_EmpleadoNoAdmin_RolAngajat(t *testing.T) {
	uc := newAuthUC(t, false)

	out, err := uc.Login(dto.LoginRequest{Username: "ion.popescu", Password: testPassword})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, out.Role)
}

func TestLogin_ParolaIncorrecta_RetornaUnauthorized(t *testing.T) {
	uc := newAuthUC(t, false)

	_, err := uc.Login(dto.LoginRequest{Username: "ion.popescu", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsernameInexistente_MismaRespuestaQueParolaMala(t *testing.T) {
	uc := newAuthUC(t, false)

	_, errNoUser := uc.Login(dto.LoginRequest{Username: "no.existe", Password: testPassword})
	_, errBadPass := uc.Login(dto.LoginRequest{Username: "ion.popescu", Password: "incorrecta"})

	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errNoUser, errBadPass, "no debe revelarse cuál credencial falló")
}

func TestLogin_CamposVacios_RetornaInvalidInput(t *testing.T) {
	uc := newAuthUC(t, false)

	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Username: "ion.popescu"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
