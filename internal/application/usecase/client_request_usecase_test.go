package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivascu/gestiune-api/internal/application/dto"
	"github.com/ivascu/gestiune-api/internal/application/usecase"
	"github.com/ivascu/gestiune-api/internal/domain"
	"github.com/ivascu/gestiune-api/internal/domain/entity"
)

type memClientRequestRepo struct {
	requests map[string]*entity.ClientRequest
}

func newMemClientRequestRepo() *memClientRequestRepo {
	return &memClientRequestRepo{requests: make(map[string]*entity.ClientRequest)}
}

func (m *memClientRequestRepo) Create(r *entity.ClientRequest) error {
	m.requests[r.ID] = r
	return nil
}

func (m *memClientRequestRepo) GetByID(id string) (*entity.ClientRequest, error) {
	return m.requests[id], nil
}

func (m *memClientRequestRepo) Update(r *entity.ClientRequest) error {
	m.requests[r.ID] = r
	return nil
}

func (m *memClientRequestRepo) List(limit, offset int) ([]*entity.ClientRequest, error) {
	out := make([]*entity.ClientRequest, 0, len(m.requests))
	for _, r := range m.requests {
		out = append(out, r)
	}
	return out, nil
}

func (m *memClientRequestRepo) Delete(id string) error {
	delete(m.requests, id)
	return nil
}

func TestClientRequestCreate_QuedaPendiente(t *testing.T) {
	repo := newMemClientRequestRepo()
	uc := usecase.NewClientRequestUseCase(repo)

	out, err := uc.Create(dto.CreateClientRequestRequest{
		ClientName:     "Maria Ionescu",
		Phone:          "0733000222",
		ProductDetails: "Paracetamol 500mg, 2 cajas",
	})
	require.NoError(t, err)

	assert.False(t, out.Status, "una solicitud nueva queda pendiente")
	assert.NotEmpty(t, out.ID)
}

func TestClientRequestDelete_EliminaLaSolicitud(t *testing.T) {
	repo := newMemClientRequestRepo()
	uc := usecase.NewClientRequestUseCase(repo)

	created, err := uc.Create(dto.CreateClientRequestRequest{
		ClientName:     "Maria Ionescu",
		ProductDetails: "Ibuprofeno 400mg",
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))

	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientRequestDelete_Inexistente_RetornaNotFound(t *testing.T) {
	uc := usecase.NewClientRequestUseCase(newMemClientRequestRepo())

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
