package vector

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_NewDesign(t *testing.T) {
	v := fullBuild(t)
	d := NewDesign(v, testDesignConfig())

	if d.FullSequence != v.FullSequence() {
		t.Error("design full sequence differs from the vector's")
	}
	if d.TranscriptSequence != v.TranscriptSequence() {
		t.Error("design transcript sequence differs from the vector's")
	}
	if !d.Validation.Passed {
		t.Errorf("validation failed: %v", d.Validation.Issues)
	}
	if d.Time == "" {
		t.Error("design has no timestamp")
	}
}

func Test_Design_WriteJSON(t *testing.T) {
	v := fullBuild(t)
	d := NewDesign(v, testDesignConfig())

	path := filepath.Join(t.TempDir(), "design.json")
	output, err := d.WriteJSON(path)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(raw, output) {
		t.Error("file contents differ from the returned bytes")
	}

	var read Design
	if err := json.Unmarshal(raw, &read); err != nil {
		t.Fatal(err)
	}
	if read.Name != v.Name || read.TotalLength != v.TotalLength {
		t.Errorf("read back %s/%d, want %s/%d", read.Name, read.TotalLength, v.Name, v.TotalLength)
	}
	if len(read.Elements) != len(v.Elements) {
		t.Errorf("read back %d elements, want %d", len(read.Elements), len(v.Elements))
	}
	if read.FullSequence != d.FullSequence {
		t.Error("full sequence did not survive the round trip")
	}
	if !read.Validation.Passed {
		t.Error("validation report did not survive the round trip")
	}
}

func Test_Design_WriteJSON_badPath(t *testing.T) {
	d := NewDesign(fullBuild(t), testDesignConfig())
	if _, err := d.WriteJSON(filepath.Join(t.TempDir(), "missing", "design.json")); err == nil {
		t.Error("expected an error writing to a missing directory")
	}
}

func Test_Design_WriteMap(t *testing.T) {
	v := fullBuild(t)
	d := NewDesign(v, testDesignConfig())

	var buf bytes.Buffer
	d.WriteMap(&buf)

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(v.Elements)+1 {
		t.Fatalf("map has %d lines, want %d elements plus a header", len(lines), len(v.Elements))
	}
	if !strings.Contains(lines[0], "element") || !strings.Contains(lines[0], "length") {
		t.Errorf("header = %q", lines[0])
	}
	for _, e := range v.Elements {
		if !strings.Contains(out, e.Name) {
			t.Errorf("map missing element %s", e.Name)
		}
	}
}
