package document

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/anchorkit/anchorkit/pkg/errors"
)

func TestReadWriteRoundTrip(t *testing.T) {
	d := testDoc()

	var buf bytes.Buffer
	if err := Write(d, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(got, d) {
		t.Errorf("round trip mismatch:\n got: %+v\nwant: %+v", got, d)
	}
}

func TestReadRejectsUnknownUnit(t *testing.T) {
	in := `{
	  "name": "bad",
	  "viewport": {"width": 800, "height": 600},
	  "elements": [
	    {"id": "a",
	     "x": {"value": 0, "unit": "px"}, "y": {"value": 0, "unit": "px"},
	     "width": {"value": 10, "unit": "em"}, "height": {"value": 10, "unit": "px"}}
	  ]
	}`
	_, err := Read(strings.NewReader(in))
	if !errors.Is(err, errors.ErrCodeInvalidUnit) {
		t.Errorf("Read = %v, want INVALID_UNIT", err)
	}
}

func TestReadRejectsMalformedJSON(t *testing.T) {
	if _, err := Read(strings.NewReader("{not json")); err == nil {
		t.Error("Read should fail on malformed JSON")
	}
}

func TestImportExportFile(t *testing.T) {
	d := testDoc()
	path := filepath.Join(t.TempDir(), "doc.json")

	if err := ExportFile(d, path); err != nil {
		t.Fatalf("ExportFile: %v", err)
	}
	got, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if !reflect.DeepEqual(got, d) {
		t.Error("file round trip mismatch")
	}
}

func TestImportFileMissing(t *testing.T) {
	if _, err := ImportFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportFile should fail for missing files")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	d := testDoc()
	data, err := Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, d) {
		t.Error("marshal round trip mismatch")
	}
}

func TestWriteResolvedOmitsNothingPersisted(t *testing.T) {
	d := testDoc()
	var buf bytes.Buffer
	if err := WriteResolved(d.Resolve(), &buf); err != nil {
		t.Fatalf("WriteResolved: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"rect"`) || !strings.Contains(out, `"parent_id"`) {
		t.Errorf("resolved export missing derived fields:\n%s", out)
	}
}
