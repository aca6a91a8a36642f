package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SchemaValidator validates a parsed struct after JSON extraction.
// Returns nil if valid, or a descriptive error if invalid.
type SchemaValidator[T any] func(T) error

const fence = "```"

// ExtractFencedJSON returns the payload of a model answer. Exactly one fenced
// block yields its body; no fence yields the whole trimmed text. More than one
// block, or a fence left open, is ErrAmbiguousOutput.
func ExtractFencedJSON(raw string) (string, error) {
	var (
		blocks []string
		body   []string
		open   bool
	)
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, fence) {
			if open {
				body = append(body, line)
			}
			continue
		}
		if open {
			if trimmed != fence {
				return "", fmt.Errorf("%w: unexpected text on closing fence", ErrAmbiguousOutput)
			}
			blocks = append(blocks, strings.Join(body, "\n"))
			body = nil
			open = false
			continue
		}
		open = true
	}

	switch {
	case open:
		return "", fmt.Errorf("%w: unterminated code fence", ErrAmbiguousOutput)
	case len(blocks) > 1:
		return "", fmt.Errorf("%w: found %d fenced blocks, expected one", ErrAmbiguousOutput, len(blocks))
	case len(blocks) == 1:
		return strings.TrimSpace(blocks[0]), nil
	default:
		return strings.TrimSpace(raw), nil
	}
}

// DecodeJSON extracts the payload with ExtractFencedJSON and decodes exactly
// one JSON value of type T from it. Nothing is repaired: comments, trailing
// text or type mismatches are ErrInvalidOutput. If validator is non-nil the
// decoded value is validated before return.
func DecodeJSON[T any](raw string, validator SchemaValidator[T]) (T, error) {
	var zero T

	payload, err := ExtractFencedJSON(raw)
	if err != nil {
		return zero, err
	}
	if payload == "" {
		return zero, fmt.Errorf("%w: empty response", ErrInvalidOutput)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(payload)))
	var result T
	if err := dec.Decode(&result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return zero, fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidOutput)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}
