package dto

// APIResponse envoltura uniforme de todas las respuestas HTTP:
// {"error": bool, "message": string, "data": ...}.
type APIResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// OK construye una respuesta de éxito.
func OK(message string, data any) APIResponse {
	return APIResponse{Error: false, Message: message, Data: data}
}

// Fail construye una respuesta de error.
func Fail(message string) APIResponse {
	return APIResponse{Error: true, Message: message}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
