// internal/domain/homework/homework.go
package homework

import "encoding/json"

// Entry is one submitted assignment as returned by the API.
// Pointer fields distinguish an absent key from an empty value.
type Entry struct {
	Name   *string `json:"homework_name"`
	Status *string `json:"status"`
}

// RawEntry is one element of the homeworks array, not yet checked.
type RawEntry json.RawMessage

// Decode turns an element into an Entry. A non-object element or a field of
// the wrong type is a *FieldError; a null field counts as missing.
func (r RawEntry) Decode() (Entry, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r, &fields); err != nil || fields == nil {
		return Entry{}, &FieldError{Field: homeworksKey, Kind: FieldNotAnObject}
	}

	var e Entry
	if err := decodeStringField(fields, "homework_name", &e.Name); err != nil {
		return Entry{}, err
	}
	if err := decodeStringField(fields, "status", &e.Status); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func decodeStringField(fields map[string]json.RawMessage, key string, dst **string) error {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(v, dst); err != nil {
		return &FieldError{Field: key, Kind: FieldWrongType}
	}
	return nil
}

// Response is a shape-checked API answer.
type Response struct {
	Homeworks   []RawEntry
	CurrentDate int64
}

// RawResponse is a successfully fetched body that is known to be valid JSON
// but whose shape has not been checked yet.
type RawResponse json.RawMessage

// CurrentDate extracts current_date from the body, if present and numeric.
func (r RawResponse) CurrentDate() (int64, bool) {
	var body struct {
		CurrentDate *int64 `json:"current_date"`
	}
	if err := json.Unmarshal(r, &body); err != nil || body.CurrentDate == nil {
		return 0, false
	}
	return *body.CurrentDate, true
}

// PollState is carried from one poll cycle to the next.
type PollState struct {
	CurrentTimestamp int64  // unix seconds passed as from_date
	LastErrorMessage string // last failure text sent to the chat
}

// Advance moves the timestamp forward. Older or equal values are ignored.
func (s PollState) Advance(ts int64) PollState {
	if ts > s.CurrentTimestamp {
		s.CurrentTimestamp = ts
	}
	return s
}
