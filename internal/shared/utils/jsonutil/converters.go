// Package jsonutil provides JSON conversion utilities.
package jsonutil

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// MapToJSON converts a free-form map to a JSON column value.
// Returns nil for empty or nil maps so the column stays NULL.
//
// Example:
//
//	map[string]any{"a": 1} -> {"a":1}
//	map[string]any{}       -> NULL
func MapToJSON(m map[string]any) (datatypes.JSON, error) {
	if len(m) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}
	return datatypes.JSON(data), nil
}

// JSONToMap converts a JSON column value back to a map.
// NULL and empty values return a nil map.
func JSONToMap(data datatypes.JSON) (map[string]any, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json column: %w", err)
	}
	return m, nil
}
