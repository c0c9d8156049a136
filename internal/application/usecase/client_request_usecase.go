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

// ClientRequestUseCase reglas de negocio para solicitudes de clientes.
type ClientRequestUseCase struct {
	repo repository.ClientRequestRepository
}

// NewClientRequestUseCase construye el caso de uso con el puerto de persistencia.
func NewClientRequestUseCase(repo repository.ClientRequestRepository) *ClientRequestUseCase {
	return &ClientRequestUseCase{repo: repo}
}

// Create registra una solicitud de cliente (queda pendiente).
func (uc *ClientRequestUseCase) Create(in dto.CreateClientRequestRequest) (*dto.ClientRequestResponse, error) {
	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.ProductDetails) == "" {
		return nil, domain.ErrInvalidInput
	}
	request := &entity.ClientRequest{
		ID:             uuid.New().String(),
		ClientName:     strings.TrimSpace(in.ClientName),
		Phone:          in.Phone,
		ProductDetails: strings.TrimSpace(in.ProductDetails),
		Status:         false,
		RequestedAt:    time.Now(),
	}
	if err := uc.repo.Create(request); err != nil {
		return nil, err
	}
	return toClientRequestResponse(request), nil
}

// GetByID obtiene una solicitud por ID.
func (uc *ClientRequestUseCase) GetByID(id string) (*dto.ClientRequestResponse, error) {
	request, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	return toClientRequestResponse(request), nil
}

// Update actualiza una solicitud (típicamente marcarla completada).
func (uc *ClientRequestUseCase) Update(id string, in dto.UpdateClientRequestRequest) (*dto.ClientRequestResponse, error) {
	if strings.TrimSpace(in.ClientName) == "" || strings.TrimSpace(in.ProductDetails) == "" {
		return nil, domain.ErrInvalidInput
	}
	request, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	request.ClientName = strings.TrimSpace(in.ClientName)
	request.Phone = in.Phone
	request.ProductDetails = strings.TrimSpace(in.ProductDetails)
	request.Status = in.Status
	if err := uc.repo.Update(request); err != nil {
		return nil, err
	}
	return toClientRequestResponse(request), nil
}

// Delete elimina una solicitud.
func (uc *ClientRequestUseCase) Delete(id string) error {
	request, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if request == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List lista solicitudes con paginación.
func (uc *ClientRequestUseCase) List(page dto.PageRequest) ([]*dto.ClientRequestResponse, error) {
	page.DefaultPage()
	requests, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, toClientRequestResponse(r))
	}
	return out, nil
}

func toClientRequestResponse(r *entity.ClientRequest) *dto.ClientRequestResponse {
	return &dto.ClientRequestResponse{
		ID:             r.ID,
		ClientName:     r.ClientName,
		Phone:          r.Phone,
		ProductDetails: r.ProductDetails,
		Status:         r.Status,
		RequestedAt:    r.RequestedAt.Format(time.RFC3339),
	}
}
