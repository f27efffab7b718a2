package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeOrderedObject walks a JSON object in document order, calling fn for
// every key. JSON null decodes to nothing.
func decodeOrderedObject(data []byte, fn func(key string, dec *json.Decoder) error) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read object start: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read object key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", tok)
		}
		if err := fn(key, dec); err != nil {
			return fmt.Errorf("failed to decode value for %q: %w", key, err)
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to read object end: %w", err)
	}
	return nil
}

// encodeOrderedObject writes key/value pairs as a JSON object in the given order.
func encodeOrderedObject(n int, pair func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, value := pair(i)
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
