package usecase

import (
	"github.com/jhoicas/packages-api/internal/application/dto"
	"github.com/jhoicas/packages-api/internal/domain"
	"github.com/jhoicas/packages-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/packages-api/pkg/jwt"
)

// JWTConfig configuración para la emisión de tokens.
type JWTConfig struct {
	Secret  string
	ExpDays int
}

// issueTokenData firma el conjunto de claims de la cuenta y devuelve el
// payload de token que viaja en data en register y login. El campo de
// identificación queda discriminado por rol (userId o adminId). Un fallo de
// firma se convierte en error estructurado, nunca escala como excepción.
func issueTokenData(cfg JWTConfig, id, email, name, status string, role entity.Role) (*dto.AccountData, error) {
	tok, err := pkgjwt.Issue(cfg.Secret, id, email, name, status, string(role), cfg.ExpDays)
	if err != nil {
		return nil, domain.ErrTokenIssuance
	}
	data := &dto.AccountData{
		Email:    email,
		Name:     name,
		Status:   status,
		UserType: string(role),
		Token:    "Bearer " + tok,
	}
	if role == entity.RoleAdmin {
		data.AdminID = id
	} else {
		data.UserID = id
	}
	return data, nil
}
