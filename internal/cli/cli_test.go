package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/anchorkit/anchorkit/pkg/document"
	"github.com/anchorkit/anchorkit/pkg/store"
)

func testDocFile(t *testing.T) (string, *document.Document) {
	t.Helper()

	doc := document.New("dashboard", 1280, 800)
	doc.ID = "doc-1"

	panel := document.NewElement("panel", "box", 0, 0, 0, 0)
	panel.ID = "panel"
	panel.Width = document.Value{Value: 50, Unit: "vw"}
	panel.Height = document.Value{Value: 50, Unit: "vh"}
	panel.X = document.Value{Value: 0, Unit: "px"}
	panel.Y = document.Value{Value: 0, Unit: "px"}
	panel.Z = 1

	button := document.NewElement("button", "box", 10, 10, 50, 50)
	button.ID = "button"
	button.Z = 2

	doc.Elements = []document.Element{panel, button}

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := document.ExportFile(doc, path); err != nil {
		t.Fatalf("export: %v", err)
	}
	return path, doc
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.ExecuteContext(t.Context())
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "json", []string{"json"}},
		{"multiple formats", "svg,json,dot", []string{"svg", "json", "dot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) length = %d, want %d", tt.input, len(got), len(tt.want))
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestRenderBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derived from input", "", "page.json", "page"},
		{"output with artifact ext", "out.svg", "page.json", "out"},
		{"output without ext", "out", "page.json", "out"},
		{"unknown ext kept", "out.layout", "page.json", "out.layout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderBasePath(tt.output, tt.input); got != tt.want {
				t.Errorf("renderBasePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatExt(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"svg", "svg"},
		{"json", "json"},
		{"dot", "dot"},
		{"tree", "tree.svg"},
		{"tree-png", "tree.png"},
	}

	for _, tt := range tests {
		if got := formatExt(tt.format); got != tt.want {
			t.Errorf("formatExt(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestValidateConvertOpts(t *testing.T) {
	tests := []struct {
		name    string
		opts    convertOpts
		wantErr bool
	}{
		{"unit conversion", convertOpts{field: "width", unit: "pw"}, false},
		{"anchor conversion", convertOpts{anchorX: "center"}, false},
		{"both anchors", convertOpts{anchorX: "right", anchorY: "bottom"}, false},
		{"nothing to do", convertOpts{}, true},
		{"field without unit", convertOpts{field: "x"}, true},
		{"unit without field", convertOpts{unit: "px"}, true},
		{"bad field", convertOpts{field: "area", unit: "px"}, true},
		{"bad unit", convertOpts{field: "x", unit: "em"}, true},
		{"bad anchor x", convertOpts{anchorX: "top"}, true},
		{"bad anchor y", convertOpts{anchorY: "left"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConvertOpts(&tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConvertOpts(%+v) error = %v, wantErr %v", tt.opts, err, tt.wantErr)
			}
		})
	}
}

func TestElementContext(t *testing.T) {
	_, doc := testDocFile(t)

	cfg, parent, err := elementContext(doc, "button")
	if err != nil {
		t.Fatalf("elementContext: %v", err)
	}
	if cfg.Width.Magnitude != 50 {
		t.Errorf("width magnitude = %g, want 50", cfg.Width.Magnitude)
	}

	// The button sits inside the 640x400 panel.
	if parent.W != 640 || parent.H != 400 {
		t.Errorf("parent = %gx%g, want 640x400", parent.W, parent.H)
	}

	if _, _, err := elementContext(doc, "missing"); err == nil {
		t.Error("expected error for unknown element")
	}
}

func TestResolveCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	input, _ := testDocFile(t)
	output := filepath.Join(t.TempDir(), "resolved.json")

	if err := runCommand(t, "resolve", input, "-o", output, "--quiet"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty resolved output")
	}
}

func TestRenderCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	input, _ := testDocFile(t)
	output := filepath.Join(t.TempDir(), "out.svg")

	if err := runCommand(t, "render", input, "-o", output, "-f", "svg"); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty svg output")
	}
}

func TestRenderCommandRejectsFormat(t *testing.T) {
	input, _ := testDocFile(t)

	if err := runCommand(t, "render", input, "-f", "pdf"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestConvertCommandKeepsGeometry(t *testing.T) {
	input, doc := testDocFile(t)
	before := doc.Resolve()

	err := runCommand(t, "convert", input, "--element", "button", "--field", "width", "--unit", "pw", "--anchor-x", "center")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	converted, err := document.ImportFile(input)
	if err != nil {
		t.Fatalf("reimport: %v", err)
	}

	elem := converted.Element("button")
	if elem.Width.Unit != "pw" {
		t.Errorf("width unit = %q, want pw", elem.Width.Unit)
	}
	if elem.AnchorX != "center" {
		t.Errorf("anchor x = %q, want center", elem.AnchorX)
	}

	after := converted.Resolve()
	for i := range before {
		if before[i].Rect != after[i].Rect {
			t.Errorf("element %s moved: %+v -> %+v", before[i].ID, before[i].Rect, after[i].Rect)
		}
	}
}

func TestDocsCommands(t *testing.T) {
	input, doc := testDocFile(t)
	storeDir := t.TempDir()

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := "[store]\nbackend = \"file\"\ndir = \"" + storeDir + "\"\n"
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := runCommand(t, "--config", cfgPath, "docs", "save", input); err != nil {
		t.Fatalf("docs save: %v", err)
	}

	st, err := store.NewFileStore(storeDir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close(t.Context())

	stored, err := st.Get(t.Context(), doc.ID)
	if err != nil {
		t.Fatalf("get stored: %v", err)
	}
	if stored.Name != "dashboard" {
		t.Errorf("stored name = %q, want dashboard", stored.Name)
	}

	exported := filepath.Join(t.TempDir(), "exported.json")
	if err := runCommand(t, "--config", cfgPath, "docs", "export", doc.ID, "-o", exported); err != nil {
		t.Fatalf("docs export: %v", err)
	}
	if _, err := os.Stat(exported); err != nil {
		t.Errorf("exported file missing: %v", err)
	}

	if err := runCommand(t, "--config", cfgPath, "docs", "delete", doc.ID); err != nil {
		t.Fatalf("docs delete: %v", err)
	}
	if _, err := st.Get(t.Context(), doc.ID); err == nil {
		t.Error("document still present after delete")
	}
}

func TestCacheDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir = %q", dir)
	}
}
