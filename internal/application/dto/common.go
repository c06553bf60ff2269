package dto

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PageRequest limit/offset de los listados.
type PageRequest struct {
	Limit  int
	Offset int
}

// DefaultPage normaliza la página: Limit en [1, 100], Offset no negativo.
func (p *PageRequest) DefaultPage() {
	switch {
	case p.Limit <= 0:
		p.Limit = defaultPageLimit
	case p.Limit > maxPageLimit:
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse página devuelta junto a cada listado.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse cuerpo de error: Code es el código de domain.Kind.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
