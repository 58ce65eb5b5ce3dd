package lib

import (
	"fmt"
	"io"

	"github.com/presbrey/fontsjson/internal/outfile"
)

// Stdout is the output path that sends the manifest to the stdout writer
const Stdout = "-"

// Report describes a finished Generate call
type Report struct {
	*Result
	// Changed is false when the output file already held the same manifest.
	Changed bool
}

// Generate builds the manifest for folder and writes it to output, replacing
// any existing file. Nothing is written when the folder cannot be read or a
// name cannot be keyed. An output of "-" writes to stdout instead.
func Generate(folder, output string, opts Options, stdout io.Writer) (*Report, error) {
	res, err := Build(folder, opts)
	if err != nil {
		return nil, err
	}

	data, err := Marshal(res.Records)
	if err != nil {
		return nil, err
	}

	if output == Stdout {
		if _, err := stdout.Write(data); err != nil {
			return nil, fmt.Errorf("write manifest: %w", err)
		}
		return &Report{Result: res, Changed: true}, nil
	}

	changed, err := outfile.Changed(output, data)
	if err != nil {
		return nil, fmt.Errorf("read existing manifest: %w", err)
	}
	if err := outfile.Write(output, data); err != nil {
		return nil, err
	}
	return &Report{Result: res, Changed: changed}, nil
}
