package validate

import "errors"

// Error es el único tipo de error de cliente del core: siempre nombra el campo
// ofensivo y se traduce a un 400. Nunca es transitorio ni reintentable.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New arma un Error para el campo dado. El mensaje ya viene armado;
// no usamos format aquí para mantener los mensajes idénticos entre call sites.
func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// As extrae un *Error de cualquier error (incluyendo wrapped).
func As(err error) (*Error, bool) {
	var ve *Error
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
