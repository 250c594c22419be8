package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrNotFound cubre también los recursos de otro tenant: el handler lo
// traduce a 404 "no encontrado o no autorizado" para no filtrar existencia.
var (
	ErrNotFound           = errors.New("no encontrado o no autorizado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")

	// Facturación
	ErrEstadoInvalido     = errors.New("Estado de factura inválido")
	ErrMontoTotalInferior = errors.New("El monto total no puede ser inferior a los pagos registrados")
	ErrPagoExcede         = errors.New("El pago excede el monto pendiente de la factura")
	ErrNumeroDuplicado    = errors.New("El número de factura ya existe")
	ErrMontoPagoInvalido  = errors.New("El monto del pago debe ser un número mayor a cero")
	ErrPagoNoEncontrado   = errors.New("Pago no encontrado")
	ErrCentroRequerido    = errors.New("El paciente se atiende por centro: se requiere un centro de salud")
	ErrCentroDuplicado    = errors.New("Ya existe un centro de salud con ese nombre")
)
