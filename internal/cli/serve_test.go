package cli

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mapforge/mapforge/pkg/pipeline"
)

func testServer() *httptest.Server {
	logger := log.New(io.Discard)
	return httptest.NewServer(newRouter(pipeline.NewRunner(logger), logger))
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `"ok"`) {
		t.Errorf("body = %q", body)
	}
}

func TestRenderPlainText(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	source := "grid 2, 2\nrect at 0,0 width 2 height 2"
	resp, err := http.Post(srv.URL+"/render", "text/plain", strings.NewReader(source))
	if err != nil {
		t.Fatalf("POST /render: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.HasPrefix(string(body), "<svg") {
		t.Errorf("body is not SVG: %q", body)
	}
	if !strings.Contains(string(body), "<polygon") {
		t.Error("room polygon missing from response")
	}
}

func TestRenderJSONOptions(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	payload := `{"source": "grid 2, 2", "cell_size": 20}`
	resp, err := http.Post(srv.URL+"/render", "application/json", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("POST /render: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %q", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), `width="40" height="40"`) {
		t.Errorf("cell size not applied: %q", body)
	}
}

func TestRenderCompileErrorIs422(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	source := "grid 2, 2\nrect at 5,5 width 1 height 1"
	resp, err := http.Post(srv.URL+"/render", "text/plain", strings.NewReader(source))
	if err != nil {
		t.Fatalf("POST /render: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "[2,1] ERROR: Out-of-bounds point") {
		t.Errorf("diagnostic missing from %q", body)
	}
}

func TestRenderMalformedJSONIs400(t *testing.T) {
	srv := testServer()
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/render", "application/json", strings.NewReader("{"))
	if err != nil {
		t.Fatalf("POST /render: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
