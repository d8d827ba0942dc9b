package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"observe/internal/demo"
	"observe/internal/httpapi"
	"observe/internal/observable"
	"observe/pkg/types"
)

// newServerForDemo runs the walkthrough and serves the surviving handle.
func newServerForDemo(t *testing.T, opts demo.Options) (*httptest.Server, *observable.Handle, string) {
	t.Helper()
	var out bytes.Buffer
	h, err := demo.Run(&out, opts)
	if err != nil {
		t.Fatalf("demo: %v", err)
	}
	t.Cleanup(h.Release)
	srv := httptest.NewServer(httpapi.NewMux(h))
	t.Cleanup(srv.Close)
	return srv, h, out.String()
}

func getEntity(t *testing.T, base string) (types.EntityResponse, int) {
	t.Helper()
	resp, err := http.Get(base + "/entity")
	if err != nil {
		t.Fatalf("GET /entity: %v", err)
	}
	defer resp.Body.Close()
	var body types.EntityResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return body, resp.StatusCode
}

func projectRootFromThisFile(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("runtime.Caller failed")
	}
	// this file: <root>/internal/e2e/helpers_test.go
	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

func buildBinary(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not on PATH")
	}
	binPath := filepath.Join(t.TempDir(), "observe")
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/observe")
	cmd.Dir = projectRootFromThisFile(t)
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go build failed: %v\n%s", err, string(out))
	}
	return binPath
}
