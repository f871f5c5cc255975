package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Teqnological-Asia/quill-markdown/pkg/delta"
)

// readDelta loads a Delta from path, or from stdin when path is "-".
func readDelta(path string) (*delta.Delta, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var d delta.Delta
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &d, nil
}

func readFile(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// writeDelta prints d as indented JSON on stdout.
func writeDelta(d *delta.Delta) error {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	out = append(out, '\n')
	_, err = os.Stdout.Write(out)
	return err
}
