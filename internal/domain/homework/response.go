// internal/domain/homework/response.go
package homework

import (
	"bytes"
	"encoding/json"
)

const homeworksKey = "homeworks"

// ParseResponse checks the shape of a fetched body and returns its entries in order.
// Elements are returned unchanged; per-entry checks happen in RawEntry.Decode
// and FormatStatus.
func ParseResponse(raw RawResponse) (Response, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Response{}, &ShapeError{Kind: ShapeNotAnObject}
	}

	list, ok := fields[homeworksKey]
	if !ok || bytes.Equal(bytes.TrimSpace(list), []byte("null")) {
		return Response{}, &ShapeError{Kind: ShapeMissingKey, Key: homeworksKey}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(list, &items); err != nil {
		return Response{}, &ShapeError{Kind: ShapeWrongType, Key: homeworksKey}
	}
	entries := make([]RawEntry, 0, len(items))
	for _, item := range items {
		entries = append(entries, RawEntry(item))
	}

	resp := Response{Homeworks: entries}
	if ts, ok := raw.CurrentDate(); ok {
		resp.CurrentDate = ts
	}
	return resp, nil
}
