// internal/domain/homework/format.go
package homework

import "fmt"

// FormatStatus renders the chat message for one entry.
func FormatStatus(e Entry) (string, error) {
	if e.Name == nil {
		return "", &FieldError{Field: "homework_name", Kind: FieldMissing}
	}
	if e.Status == nil {
		return "", &FieldError{Field: "status", Kind: FieldMissing}
	}
	verdict, ok := Verdict(Status(*e.Status))
	if !ok {
		return "", &FieldError{Field: "status", Kind: FieldUnknown, Value: *e.Status}
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", *e.Name, verdict), nil
}
