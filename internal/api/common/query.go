package common

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// GetAndValidateQueryParam returns the named query parameter with surrounding
// blanks removed. A missing parameter yields "". The value must not contain
// whitespace.
func GetAndValidateQueryParam(r *http.Request, paramName string) (string, error) {
	value := strings.TrimSpace(r.URL.Query().Get(paramName))
	if strings.ContainsAny(value, " \t\n\r") {
		return "", fmt.Errorf("%s cannot contain whitespace", paramName)
	}
	return value, nil
}

// GetLimitParam parses the optional "limit" query parameter. Zero means no limit.
func GetLimitParam(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("invalid limit parameter: must be a positive integer")
	}
	return limit, nil
}
