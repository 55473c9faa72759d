package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// decodeID разбирает идентификатор, который приходит строкой или числом.
// Целые числа, в том числе записанные как 7.0, приводятся к виду "7".
// null дает пустую строку.
func decodeID(data []byte) (value string, isNumber bool, err error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", false, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", false, err
		}
		return s, false, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", false, fmt.Errorf("id must be a string or a number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), true, nil
	}
	// целое за пределами int64 оставляем как есть
	if !strings.ContainsAny(n.String(), ".eE") {
		return n.String(), true, nil
	}
	f, err := n.Float64()
	if err != nil {
		return "", false, err
	}
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10), true, nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), true, nil
}
