package omg

import (
	"errors"
	"fmt"
)

// Сентинелы для errors.Is
var (
	ErrConversion = errors.New("conversion error")
	ErrMapping    = errors.New("mapping error")
)

// ConversionError означает, что документ не может быть сконвертирован:
// нет обязательной секции, неподдерживаемая версия, неверный выбор сервера,
// переменные сервера, несколько серверов у пути, некорректная схема URL.
type ConversionError struct {
	// Path — шаблон пути OpenAPI, если ошибка относится к конкретному пути
	Path    string
	Message string
	Cause   error
}

func (e *ConversionError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is позволяет сравнивать с ErrConversion
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

func conversionErrorf(format string, args ...any) *ConversionError {
	return &ConversionError{Message: fmt.Sprintf(format, args...)}
}

// MappingError означает, что значение словаря OpenAPI (тип или location
// параметра) не имеет эквивалента в OMG.
type MappingError struct {
	// Kind — какая таблица: "type" или "location"
	Kind  string
	Value string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("no OMG equivalent for OpenAPI %s %q", e.Kind, e.Value)
}

// Is позволяет сравнивать с ErrMapping
func (e *MappingError) Is(target error) bool {
	return target == ErrMapping
}
