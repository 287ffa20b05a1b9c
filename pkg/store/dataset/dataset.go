package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/de-tools/parking-atlas/pkg/adapters"
	"github.com/de-tools/parking-atlas/pkg/models/domain"
	"github.com/de-tools/parking-atlas/pkg/models/store"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sample []byte

// Sample returns the built-in Lern-Air dataset.
func Sample() (domain.Dataset, error) {
	return Decode(bytes.NewReader(sample))
}

// Load reads a dataset file. An empty path selects the built-in sample.
func Load(path string) (domain.Dataset, error) {
	if path == "" {
		return Sample()
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode parses a YAML dataset. Unknown keys are rejected.
func Decode(r io.Reader) (domain.Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw store.Dataset
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return domain.Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}

	return adapters.MapStoreDatasetToDomain(raw)
}
