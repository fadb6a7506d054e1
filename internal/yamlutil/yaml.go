// Package yamlutil wraps YAML decoding of deck files so the rest of the
// module never imports the YAML library directly.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps a deck document (default 4MB, large decks list
// thousands of cards).
var MaxInputSize = 4 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// DecodeOption tunes Decode.
type DecodeOption func(*decodeSettings)

type decodeSettings struct {
	strict bool
}

// Strict rejects fields the destination does not declare.
func Strict() DecodeOption {
	return func(s *decodeSettings) { s.strict = true }
}

// Decode parses YAML data into v.
func Decode(data []byte, v any, opts ...DecodeOption) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}

	var s decodeSettings
	for _, opt := range opts {
		opt(&s)
	}

	var yopts []yaml.DecodeOption
	if s.strict {
		yopts = append(yopts, yaml.Strict())
	}
	if err := yaml.UnmarshalWithOptions(data, v, yopts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Encode renders v as YAML with two-space indentation.
func Encode(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2))
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return out, nil
}
