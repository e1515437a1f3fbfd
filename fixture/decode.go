package fixture

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// DecodeJSON reads a JSON fixture and validates it.
func DecodeJSON(r io.Reader) (*Fixture, error) {
	var f Fixture
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("fixture: decode json: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// DecodeTOML reads a TOML fixture and validates it.
func DecodeTOML(r io.Reader) (*Fixture, error) {
	var f Fixture
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("fixture: decode toml: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// DecodeText reads the line-oriented algs4 layout and validates it.
func DecodeText(r io.Reader) (*Fixture, error) {
	sc := bufio.NewScanner(r)
	var (
		f      Fixture
		line   int
		header bool
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)

		if !header {
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: want point count, got %q", ErrMalformed, line, text)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
			}
			f.Total = n
			header = true
			continue
		}

		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want \"p q\", got %q", ErrMalformed, line, text)
		}
		p, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		q, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err)
		}
		f.Pairs = append(f.Pairs, Pair{P: p, Q: q})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fixture: read text: %w", err)
	}
	if !header {
		return nil, fmt.Errorf("%w: missing point count", ErrMalformed)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Load opens path and decodes it according to its extension.
func Load(path string) (*Fixture, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open: %w", err)
	}
	defer fh.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(fh)
	case ".toml":
		return DecodeTOML(fh)
	default:
		return DecodeText(fh)
	}
}
