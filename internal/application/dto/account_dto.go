package dto

import (
	"time"

	"github.com/jhoicas/packages-api/internal/domain/entity"
)

// AccountData representa una cuenta (user o admin) en la respuesta. Cubre
// tanto el perfil persistido como el payload de token emitido en register y
// login: en ese caso Token y el id discriminado (UserID o AdminID) van
// poblados.
type AccountData struct {
	ID        string `json:"_id,omitempty"`
	UserID    string `json:"userId,omitempty"`
	AdminID   string `json:"adminId,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Status    string `json:"status,omitempty"`
	UserType  string `json:"userType,omitempty"`
	Token     string `json:"token,omitempty"` // "Bearer <jwt>"
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// FromUser mapea la entidad User a su representación de respuesta
// (sin token; el hash de password nunca se expone).
func FromUser(u *entity.User) *AccountData {
	if u == nil {
		return nil
	}
	return &AccountData{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Status:    u.Status,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

// FromUsers mapea una colección de usuarios.
func FromUsers(users []*entity.User) []*AccountData {
	out := make([]*AccountData, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// FromAdmin mapea la entidad Admin a su representación de respuesta.
func FromAdmin(a *entity.Admin) *AccountData {
	if a == nil {
		return nil
	}
	return &AccountData{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
