package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Parse validates a configuration document and decodes it
func Parse(data []byte) (*Config, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	var config Config
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}
