package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrMissingField      = errors.New("campo obligatorio ausente")
	ErrInvalidDate       = errors.New("fecha no parseable")
	ErrUnsupportedFormat = errors.New("formato de salida no soportado")
	ErrUnauthorized      = errors.New("no autorizado")
)
