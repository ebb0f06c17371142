package chart

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a chart document from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chart: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS parses every JSON/YAML file in fsys, in lexical path order.
func LoadFS(fsys fs.FS) ([]*Document, error) {
	if fsys == nil {
		return nil, nil
	}
	var docs []*Document
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isChartFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("chart: read %s: %w", path, err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Parse decodes a chart document. Input starting with '{' is JSON, anything
// else is YAML. source names the document in errors.
func Parse(data []byte, source string) (*Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("chart: file %s is empty", source)
	}

	var doc Document
	if looksLikeJSON(data) {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("chart: parse %s: %w", source, err)
		}
	} else if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("chart: parse %s: %w", source, err)
	}

	kind, err := NormalizeKind(doc.Kind)
	if err != nil {
		return nil, fmt.Errorf("chart: %s: %w", source, err)
	}
	doc.Kind = kind
	doc.Source = source
	return &doc, nil
}

func isChartFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func looksLikeJSON(data []byte) bool {
	trimmed := strings.TrimSpace(string(data))
	return strings.HasPrefix(trimmed, "{")
}
