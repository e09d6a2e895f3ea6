package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rkaran-2547241/linkedinScrapper/models"
)

func sampleProfile() *models.ProfileRecord {
	rec := models.NewProfileRecord("https://www.linkedin.com/in/jose-garcia/")
	rec.Name = "José García"
	rec.Headline = "R&D Lead <Platform & Tools>"
	rec.Location = "Zürich, Switzerland"
	rec.Experience = append(rec.Experience, models.Experience{
		Title:    "R&D Lead",
		Company:  "Müller & Sons",
		Duration: "Jan 2020 - Present",
	})
	rec.Skills = append(rec.Skills, "Go", "C++")
	return rec
}

func TestEncodeJSON_RoundTrip(t *testing.T) {
	orig := sampleProfile()

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, orig); err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	var got models.ProfileRecord
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(&got, orig) {
		t.Errorf("round trip mismatch:\n got: %+v\nwant: %+v", &got, orig)
	}
}

func TestEncodeJSON_DoesNotEscapeText(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, sampleProfile()); err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	out := buf.String()

	// Non-ASCII and HTML-significant characters stay literal in the file.
	for _, want := range []string{"José García", "Zürich", "R&D Lead <Platform & Tools>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing literal %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, `\u0026`) || strings.Contains(out, `\u003c`) {
		t.Errorf("output contains escaped HTML characters:\n%s", out)
	}
}

func TestEncodeJSON_Indented(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, sampleProfile()); err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"") {
		t.Error("output is not indented")
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "profile.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	orig := sampleProfile()
	if err := WriteJSON(path, orig); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var got models.ProfileRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(&got, orig) {
		t.Error("file contents do not round trip to the original record")
	}
}

func TestWriteJSON_BadPath(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "missing", "out.json"), sampleProfile())
	if err == nil {
		t.Error("expected an error for a nonexistent directory")
	}
}
