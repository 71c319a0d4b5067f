package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// ErrPartialBatch indica que una salida por receta no pudo aplicarse
	// completa. La transacción se revierte entera: ningún ingrediente queda
	// descontado cuando se reporta este error.
	ErrPartialBatch = errors.New("salida por receta incompleta, ningún movimiento aplicado")
)
