package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testResult struct {
	Name  string `json:"name" yaml:"name"`
	Files int    `json:"files" yaml:"files"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testResult{
		{Name: "config", Files: 1},
		{Name: "logs", Files: 4},
	}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testResult
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}
	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[1].Name != "logs" || result[1].Files != 4 {
		t.Errorf("Unexpected data: %+v", result[1])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := testResult{Name: "inventory", Files: 1}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testResult
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}
	if result != data {
		t.Errorf("Round trip mismatch: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := testResult{Name: "coredump", Files: 2}

	if err := writer.Serialize(data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "FIELD") {
		t.Errorf("expected table header, got %q", out)
	}
	if !strings.Contains(out, "coredump") {
		t.Errorf("expected value in table, got %q", out)
	}
}

func TestWriter_UnknownFormatDefaults(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if err := writer.Serialize(testResult{Name: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	// Defaulted to YAML.
	if !strings.Contains(buf.String(), "name: x") {
		t.Errorf("expected YAML output, got %q", buf.String())
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	writer := NewFileWriterOrStdout(FormatJSON, path)

	if err := writer.Serialize(testResult{Name: "f", Files: 9}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if !strings.Contains(string(b), `"files": 9`) {
		t.Errorf("unexpected output: %s", b)
	}

	// Close is idempotent for stdout writers.
	stdout := NewFileWriterOrStdout(FormatYAML, "")
	if err := stdout.Close(); err != nil {
		t.Errorf("Close on stdout writer failed: %v", err)
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Fatalf("expected 3 formats, got %d", len(formats))
	}
	for _, f := range formats {
		if Format(f).IsUnknown() {
			t.Errorf("format %s reported unknown", f)
		}
	}
}
