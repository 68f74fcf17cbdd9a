package iojson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ListReader reads a list of T from the --file flag or stdin. The input is
// either one JSON array or a stream of JSON values, one per element, such as
// JSON Lines.
type ListReader[T any] struct {
	path string
}

// Flag returns the --file flag bound to the reader.
func (r *ListReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to a JSON array or JSON Lines file (reads stdin if not provided)",
		Destination: &r.path,
	}
}

// Read decodes the list from the flagged file, or from stdin when no file was
// given. A terminal stdin is refused rather than waiting for input.
func (r *ListReader[T]) Read(stdin io.Reader) ([]T, error) {
	var data []byte
	var err error

	switch {
	case r.path != "":
		data, err = os.ReadFile(r.path)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
	default:
		if stdin == nil {
			stdin = os.Stdin
		}
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, errors.New("no input provided (stdin is a terminal); use -f or pipe JSON")
		}
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	return decodeList[T](data)
}

func decodeList[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("no input provided")
	}

	if data[0] == '[' {
		var out []T
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode JSON: %w", err)
		}
		return out, nil
	}

	var out []T
	dec := json.NewDecoder(bytes.NewReader(data))
	for {
		var v T
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode JSON value %d: %w", len(out)+1, err)
		}
		out = append(out, v)
	}
}
