// internal/storage/memory/export.go
package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/subspaceue/solarconfig/pkg/core"
)

// DefaultFileName is the export path used when none is configured.
const DefaultFileName = "solar_system_config.json"

// jsonIndent is the indentation of exported documents.
const jsonIndent = "  "

// BuildDocument assembles the export document. planets is copied so the
// document never aliases the caller's slice.
func BuildDocument(version, dateCreated string, planets []core.Planet, f core.ScaleFactors, c core.Constants) core.ConfigDocument {
	out := make([]core.Planet, len(planets))
	copy(out, planets)
	return core.ConfigDocument{
		Version:      version,
		DateCreated:  dateCreated,
		ScaleFactors: f,
		Constants:    c,
		Planets:      out,
	}
}

// DefaultVersion is the document version written by ExportConfig.
const DefaultVersion = "1.0"

// ExportConfig writes planets, scale factors and constants to path, stamped
// with DefaultVersion and today's date.
func ExportConfig(planets []core.Planet, f core.ScaleFactors, c core.Constants, path string) error {
	doc := BuildDocument(DefaultVersion, time.Now().Format(time.DateOnly), planets, f, c)
	return WriteDocument(doc, path)
}

// WriteDocument writes doc as indented JSON to path, creating or overwriting
// it. A ".gz" suffix selects gzip.
func WriteDocument(doc core.ConfigDocument, path string) error {
	if path == "" {
		path = DefaultFileName
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if strings.HasSuffix(path, ".gz") {
		return writeGzipJSON(path, doc)
	}
	return writeJSON(path, doc)
}

// ReadConfig parses a document previously written by ExportConfig.
func ReadConfig(path string) (core.ConfigDocument, error) {
	var doc core.ConfigDocument

	f, err := os.Open(path)
	if err != nil {
		return doc, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return doc, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return doc, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return doc, nil
}

func encode(w io.Writer, doc core.ConfigDocument) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", jsonIndent)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(doc)
}

func writeJSON(path string, doc core.ConfigDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := encode(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func writeGzipJSON(path string, doc core.ConfigDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	gzWriter := gzip.NewWriter(f)
	if err := encode(gzWriter, doc); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush gzip stream %s: %w", path, err)
	}
	return f.Close()
}
