package graphql

import (
	"errors"

	"github.com/jhoicas/packages-api/internal/application/dto"
	"github.com/jhoicas/packages-api/internal/domain"
	"github.com/jhoicas/packages-api/internal/domain/entity"
)

// Mensajes compartidos entre resolvers. Los textos son parte del contrato
// con los clientes y no deben cambiarse a la ligera.
const (
	msgUserNotLoggedIn  = "User is not logged in (or authenticated)."
	msgAdminNotLoggedIn = "Admin is not logged in (or authenticated)."
	msgUnauthorized     = "Unauthorized"
	msgInvalidDate      = "Please enter a valid date"
	msgMissingDates     = "startDate && endDate is required as query params for expiration date filter"
	msgMissingUserID    = "userId is required as query params for user filter"
	msgShortPassword    = "Your password should be greater then 6 characters!"
	msgInvalidID        = "Unable to handle request, an invalid _id is sent"
	msgUnhandled        = "Unable to handle request, please try again in a few seconds"
)

// isAuthenticated es un predicado puro: solo responde si hay un principal
// en el contexto. Nunca escribe la respuesta por sí mismo.
func isAuthenticated(p *entity.Principal) bool {
	return p != nil
}

// failFrom traduce un error de dominio al envelope de fallo con el mensaje
// que corresponde a la operación. notFound y empty son los textos propios
// de cada operación; los demás errores usan mensajes compartidos.
func failFrom(err error, notFound, empty string) dto.Response {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return dto.Fail(notFound)
	case errors.Is(err, domain.ErrEmptyResult):
		return dto.Fail(empty)
	case errors.Is(err, domain.ErrDuplicateEmail):
		return dto.Fail("User account email already exist")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return dto.Fail("Invalid login credentials")
	case errors.Is(err, domain.ErrInvalidDate):
		return dto.Fail(msgInvalidDate)
	case errors.Is(err, domain.ErrMissingDateRange):
		return dto.Fail(msgMissingDates)
	case errors.Is(err, domain.ErrMissingUserID):
		return dto.Fail(msgMissingUserID)
	case errors.Is(err, domain.ErrUnauthorized):
		return dto.Fail(msgUnauthorized)
	case errors.Is(err, domain.ErrInvalidID):
		return dto.Fail(msgInvalidID)
	case errors.Is(err, domain.ErrTokenIssuance):
		return dto.Fail("Unable to generate token.")
	default:
		return dto.Fail(msgUnhandled)
	}
}
