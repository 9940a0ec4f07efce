package converters

import (
	"encoding/json"
	"fmt"
)

// EncodeTheme serializes a theme name as a JSON string (e.g. "dark" -> `"dark"`)
func EncodeTheme(name string) (string, error) {
	data, err := json.Marshal(name)
	if err != nil {
		return "", fmt.Errorf("failed to encode theme: %w", err)
	}
	return string(data), nil
}

// DecodeTheme parses a JSON string theme name
func DecodeTheme(raw string) (string, error) {
	var name string
	if err := json.Unmarshal([]byte(raw), &name); err != nil {
		return "", fmt.Errorf("failed to decode theme: %w", err)
	}
	return name, nil
}
