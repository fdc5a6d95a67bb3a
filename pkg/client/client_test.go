package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/anchorkit/anchorkit/internal/server"
	"github.com/anchorkit/anchorkit/pkg/document"
	"github.com/anchorkit/anchorkit/pkg/pipeline"
	"github.com/anchorkit/anchorkit/pkg/store"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	srv := server.New(store.NewMemoryStore(), pipeline.NewRunner(nil, nil, logger), logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return New(ts.URL)
}

func testDoc() *document.Document {
	doc := document.New("dashboard", 1280, 800)
	doc.ID = "doc-1"

	panel := document.NewElement("panel", "box", 0, 0, 0, 0)
	panel.ID = "panel"
	panel.Width = document.Value{Value: 50, Unit: "pw"}
	panel.Height = document.Value{Value: 50, Unit: "ph"}
	panel.Z = 1

	button := document.NewElement("button", "box", 10, 10, 50, 50)
	button.ID = "button"
	button.Z = 2

	doc.Elements = []document.Element{panel, button}
	return doc
}

func TestHealth(t *testing.T) {
	c := testClient(t)
	if _, err := c.Health(t.Context()); err != nil {
		t.Fatal(err)
	}
}

func TestResolve(t *testing.T) {
	c := testClient(t)

	res, err := c.Resolve(t.Context(), testDoc(), pipeline.Options{
		Formats: []string{pipeline.FormatSVG},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Elements) != 2 {
		t.Fatalf("got %d elements", len(res.Elements))
	}
	if got := res.Elements[0].Rect; got.Width != 640 || got.Height != 400 {
		t.Errorf("panel rect = %+v", got)
	}
	if res.Elements[1].ParentID != "panel" {
		t.Errorf("button parent = %q", res.Elements[1].ParentID)
	}
	if len(res.Artifacts["svg"]) == 0 {
		t.Error("missing svg artifact")
	}
}

func TestResolveInvalidDocument(t *testing.T) {
	c := testClient(t)

	doc := testDoc()
	doc.Elements[0].X.Unit = "em"
	_, err := c.Resolve(t.Context(), doc, pipeline.Options{})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Code != "INVALID_UNIT" {
		t.Errorf("code = %q, want INVALID_UNIT", apiErr.Code)
	}
}

func TestDocumentLifecycle(t *testing.T) {
	c := testClient(t)
	ctx := t.Context()
	doc := testDoc()

	if err := c.Create(ctx, doc); err != nil {
		t.Fatal(err)
	}

	got, err := c.Get(ctx, "doc-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "dashboard" || len(got.Elements) != 2 {
		t.Errorf("got = %+v", got)
	}

	ids, err := c.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "doc-1" {
		t.Errorf("list = %v", ids)
	}

	got.Name = "dashboard-v2"
	if err := c.Put(ctx, "doc-1", got); err != nil {
		t.Fatal(err)
	}

	res, err := c.ResolveStored(ctx, "doc-1", pipeline.Options{
		ViewportWidth:  640,
		ViewportHeight: 400,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Viewport.Width != 640 {
		t.Errorf("viewport = %+v, want override", res.Viewport)
	}

	if err := c.Delete(ctx, "doc-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Get(ctx, "doc-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete: err = %v, want ErrNotFound", err)
	}
}

func TestRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","version":"test"}`))
	}))
	defer ts.Close()

	c := New(ts.URL)
	version, err := c.Health(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if version != "test" {
		t.Errorf("version = %q", version)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}
