package data

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader finds cast requests (saved recipes) across a fallback hierarchy of directories.
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a Loader with the given data directory fallback hierarchy
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
	}
}

// LoadRequest reads a recipe by name, e.g. "Digital Detox" -> recipes/digital-detox.yaml.
func (l *Loader) LoadRequest(name string) (*CastRequest, error) {
	dashName := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
	ref := filepath.Join("recipes", fmt.Sprintf("%s.yaml", dashName))
	for _, dir := range l.dataDirs {
		f, err := os.Open(filepath.Join(dir, ref))
		if err != nil {
			continue
		}
		defer f.Close()
		req, err := DecodeRequest(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode recipe %s: %w", ref, err)
		}
		return req, nil
	}
	return nil, fmt.Errorf("could not find recipe %s in any available data directory", ref)
}

// ReadRequestFile decodes a cast request from a YAML or JSON file.
func ReadRequestFile(path string) (*CastRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open request %s: %w", path, err)
	}
	defer f.Close()
	req, err := DecodeRequest(f)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", path, err)
	}
	return req, nil
}

// DecodeRequest reads a cast request in YAML or JSON form. Missing lists decode as empty.
func DecodeRequest(r io.Reader) (*CastRequest, error) {
	var req CastRequest
	if err := yaml.NewDecoder(r).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("invalid request data: %w", err)
	}
	if req.Ingredients == nil {
		req.Ingredients = []Ingredient{}
	}
	if req.Incantations == nil {
		req.Incantations = []Incantation{}
	}
	for i, ing := range req.Ingredients {
		if strings.TrimSpace(ing.Name) == "" {
			return nil, fmt.Errorf("ingredient %d has no name", i)
		}
	}
	for i, inc := range req.Incantations {
		if strings.TrimSpace(inc.Name) == "" {
			return nil, fmt.Errorf("incantation %d has no name", i)
		}
	}
	return &req, nil
}
