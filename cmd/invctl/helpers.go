package main

import (
	"fmt"
	"strconv"
)

// parseID parses a numeric identifier given as a command argument
func parseID(raw string) (int64, error) {
	if raw == "" {
		return 0, fmt.Errorf("an id argument is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
