package entity

import "time"

// Client representa el cliente de una factura. Se crea uno nuevo en cada
// generación de factura (sin deduplicación ni búsqueda previa).
type Client struct {
	ID        string
	Name      string
	Address   string
	Contact   string
	CreatedAt time.Time
}

// ClientRequest solicitud de producto dejada por un cliente
// (pendiente mientras Status sea false).
type ClientRequest struct {
	ID             string
	ClientName     string
	Phone          string
	ProductDetails string
	Status         bool // false = pendiente, true = completada
	RequestedAt    time.Time
}
