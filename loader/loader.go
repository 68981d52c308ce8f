// SPDX-License-Identifier: MIT

// Package loader reads parent→children mapping files (JSON or YAML objects of
// the form {"parent": ["child", ...]}) and turns them into a
// hierarchy.Index[string].
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlindex/hierarchy"
)

// ErrUnsupportedFormat is returned for a file extension with no decoder.
var ErrUnsupportedFormat = errors.New("loader: unsupported file format")

// Mapping is a decoded parent→children file.
type Mapping map[string][]string

// ErrTrailingData is returned when a JSON file holds more than one value.
var ErrTrailingData = errors.New("loader: trailing data after json object")

// ReadJSON decodes a JSON object of string arrays. Anything but whitespace
// after the object is an error.
func ReadJSON(r io.Reader) (Mapping, error) {
	dec := json.NewDecoder(r)
	var m Mapping
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("loader: decoding json: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, ErrTrailingData
		}
		return nil, fmt.Errorf("%w: %w", ErrTrailingData, err)
	}
	if m == nil {
		m = Mapping{}
	}
	return m, nil
}

// ReadYAML decodes a stream of YAML mappings of string sequences. Documents
// separated by "---" are merged in order. An empty stream is an empty mapping.
func ReadYAML(r io.Reader) (Mapping, error) {
	dec := yaml.NewDecoder(r)
	m := Mapping{}
	for {
		var doc Mapping
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		if err != nil {
			return nil, fmt.Errorf("loader: decoding yaml: %w", err)
		}
		m.Merge(doc)
	}
}

// LoadFile reads path, choosing the decoder from its extension
// (.json, .yaml, .yml).
func LoadFile(path string) (Mapping, error) {
	return loadFile(context.Background(), path)
}

func loadFile(ctx context.Context, path string) (Mapping, error) {
	var read func(io.Reader) (Mapping, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		read = ReadJSON
	case ".yaml", ".yml":
		read = ReadYAML
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	m, err := read(ctxReader{ctx: ctx, r: f})
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return nil, fmt.Errorf("%s: %w", path, cerr)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Default().Debug("mapping loaded", "path", path, "parents", len(m))
	return m, nil
}

// ctxReader fails every Read once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// LoadFiles reads every path concurrently and merges the results in argument
// order: a parent present in several files gets the concatenation of its
// children lists. The first error, or ctx being cancelled, stops shards not
// yet started and aborts the ones still reading.
func LoadFiles(ctx context.Context, paths ...string) (Mapping, error) {
	parts := make([]Mapping, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m, err := loadFile(ctx, path)
			if err != nil {
				return err
			}
			parts[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	merged := make(Mapping)
	for _, part := range parts {
		merged.Merge(part)
	}
	return merged, nil
}

// Merge appends other's children lists into m.
func (m Mapping) Merge(other Mapping) {
	for parent, children := range other {
		m[parent] = append(m[parent], children...)
	}
}

// Index builds the hierarchy. Parents are laid out in sorted order, so the
// same mapping always yields the same identifiers.
func (m Mapping) Index(opts ...hierarchy.Option) (*hierarchy.Index[string], error) {
	return hierarchy.FromMap(m, opts...)
}
