package dto

import "github.com/jhoicas/packages-api/internal/domain/entity"

// PackageData representa un paquete en la respuesta. User solo va poblado en
// el filtro por rango con scope admin (join con el dueño, proyección
// {_id, name, email}).
type PackageData struct {
	ID          string       `json:"_id,omitempty"`
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Price       int          `json:"price"`
	ExpiresAt   string       `json:"expiresAt,omitempty"`
	UserID      string       `json:"userId,omitempty"`
	User        *AccountData `json:"user,omitempty"`
	CreatedAt   string       `json:"createdAt,omitempty"`
	UpdatedAt   string       `json:"updatedAt,omitempty"`
}

// FromPackage mapea la entidad Package a su representación de respuesta.
func FromPackage(p *entity.Package) *PackageData {
	if p == nil {
		return nil
	}
	out := &PackageData{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ExpiresAt:   formatTime(p.ExpiresAt),
		UserID:      p.UserID,
		CreatedAt:   formatTime(p.CreatedAt),
		UpdatedAt:   formatTime(p.UpdatedAt),
	}
	if p.Owner != nil {
		out.User = &AccountData{
			ID:    p.Owner.ID,
			Name:  p.Owner.Name,
			Email: p.Owner.Email,
		}
	}
	return out
}

// FromPackages mapea una colección de paquetes.
func FromPackages(pkgs []*entity.Package) []*PackageData {
	out := make([]*PackageData, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, FromPackage(p))
	}
	return out
}
