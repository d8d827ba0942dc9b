package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"observe/internal/observable"
)

// TestMetrics_RoutePatternLabel verifies that requests served through the
// router show up in /metrics under the chi route pattern.
func TestMetrics_RoutePatternLabel(t *testing.T) {
	h := observable.New("m")
	defer h.Release()
	r := NewMux(h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/entity", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}

	mrr := httptest.NewRecorder()
	r.ServeHTTP(mrr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if mrr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", mrr.Code)
	}
	body := mrr.Body.String()
	if !strings.Contains(body, `observe_http_requests_total{method="GET",path="/entity",status="200"}`) {
		t.Fatalf("expected /entity request counter in metrics output")
	}
	if !strings.Contains(body, "observe_entity_handles") {
		t.Fatalf("expected entity gauges in metrics output")
	}
}

func TestRoutePatternOrPath_FallsBackToURLPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/plain", nil)
	if got := routePatternOrPath(req); got != "/plain" {
		t.Fatalf("got %q", got)
	}
}
