// internal/domain/homework/errors.go
package homework

import (
	"fmt"
	"strings"
)

// ConfigError means the process cannot start. It is the only fatal error.
type ConfigError struct {
	Missing []string // names of unset required variables
	Err     error    // set when a variable is present but malformed
}

func (e *ConfigError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("обязательные переменные окружения отсутствуют: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("некорректная конфигурация: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// FetchKind classifies a failed API request.
type FetchKind int

const (
	FetchTransport FetchKind = iota + 1
	FetchBadStatus
	FetchDecode
)

func (k FetchKind) String() string {
	switch k {
	case FetchTransport:
		return "transport"
	case FetchBadStatus:
		return "bad_status"
	case FetchDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// FetchError is returned by the API client.
type FetchError struct {
	Kind FetchKind
	Code int // HTTP status, only for FetchBadStatus
	Err  error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FetchBadStatus:
		return fmt.Sprintf("эндпоинт недоступен, код ответа API: %d", e.Code)
	case FetchDecode:
		return fmt.Sprintf("ответ API не является JSON: %v", e.Err)
	default:
		return fmt.Sprintf("ошибка при запросе к основному API: %v", e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// ShapeKind classifies a structurally invalid API response.
type ShapeKind int

const (
	ShapeNotAnObject ShapeKind = iota + 1
	ShapeMissingKey
	ShapeWrongType
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeNotAnObject:
		return "not_an_object"
	case ShapeMissingKey:
		return "missing_key"
	case ShapeWrongType:
		return "wrong_type"
	default:
		return "unknown"
	}
}

// ShapeError is returned by ParseResponse.
type ShapeError struct {
	Kind ShapeKind
	Key  string
}

func (e *ShapeError) Error() string {
	switch e.Kind {
	case ShapeNotAnObject:
		return "неверный тип ответа API: ожидался объект"
	case ShapeMissingKey:
		return fmt.Sprintf("в ответе API отсутствует ключ %q", e.Key)
	default:
		return fmt.Sprintf("неверный тип значения по ключу %q: ожидался список", e.Key)
	}
}

// FieldKind classifies a malformed homework entry.
type FieldKind int

const (
	FieldMissing FieldKind = iota + 1
	FieldUnknown
	FieldWrongType
	FieldNotAnObject
)

// FieldError is returned by FormatStatus.
type FieldError struct {
	Field string
	Kind  FieldKind
	Value string // offending value for FieldUnknown
}

func (e *FieldError) Error() string {
	switch e.Kind {
	case FieldUnknown:
		return fmt.Sprintf("недокументированный статус %q", e.Value)
	case FieldWrongType:
		return fmt.Sprintf("неверный тип значения ключа %s: ожидалась строка", e.Field)
	case FieldNotAnObject:
		return fmt.Sprintf("элемент списка %s не является объектом", e.Field)
	default:
		return fmt.Sprintf("отсутствует ключ %s", e.Field)
	}
}
