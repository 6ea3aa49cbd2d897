package domain

import "errors"

// Errores de dominio (sin dependencias externas). La capa de interfaces los
// traduce a los mensajes del envelope de respuesta.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrDuplicateEmail     = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmptyResult        = errors.New("la consulta no produjo resultados")
	ErrInvalidDate        = errors.New("fecha inválida")
	ErrMissingDateRange   = errors.New("rango de fechas requerido")
	ErrMissingUserID      = errors.New("userId requerido")
	ErrInvalidID          = errors.New("id con formato inválido")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrTokenIssuance      = errors.New("no se pudo generar el token")
)
