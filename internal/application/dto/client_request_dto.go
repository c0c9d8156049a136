package dto

// CreateClientRequestRequest body para POST /api/client-requests.
type CreateClientRequestRequest struct {
	ClientName     string `json:"client_name"`
	Phone          string `json:"phone,omitempty"`
	ProductDetails string `json:"product_details"`
}

// UpdateClientRequestRequest body para PUT /api/client-requests/:id
// (típicamente marcar la solicitud como completada).
type UpdateClientRequestRequest struct {
	ClientName     string `json:"client_name"`
	Phone          string `json:"phone,omitempty"`
	ProductDetails string `json:"product_details"`
	Status         bool   `json:"status"`
}

// ClientRequestResponse solicitud en respuestas.
type ClientRequestResponse struct {
	ID             string `json:"id"`
	ClientName     string `json:"client_name"`
	Phone          string `json:"phone,omitempty"`
	ProductDetails string `json:"product_details"`
	Status         bool   `json:"status"`
	RequestedAt    string `json:"requested_at"`
}
