package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/shibukawa/dialectsql/formatter"
)

// writeReport encodes a plain value as YAML or JSON.
func writeReport(w io.Writer, format string, value any) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case "", formatter.FormatYAML:
		data, err = yaml.Marshal(value)
	case formatter.FormatJSON:
		data, err = yaml.MarshalWithOptions(value, yaml.JSON())
	default:
		return fmt.Errorf("%w: '%s'", formatter.ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = w.Write(data)

	return err
}
