// Package health probes the upstream API at startup and classifies
// failures for operator visibility. The checks are diagnostics only:
// they never block or fail the caller, and a degraded backend simply
// shows up as warn-level log lines.
package health

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
)

// Cause classifies why an endpoint check failed.
type Cause string

const (
	CauseMissingConfig Cause = "missing-config"
	CauseTimeout       Cause = "timeout"
	CauseUnauthorized  Cause = "unauthorized"
	CauseNotFound      Cause = "not-found"
	CauseServerError   Cause = "server-error"
	CauseNetwork       Cause = "network"
	CauseUnknown       Cause = "unknown"
)

// Prober issues a GET and reports the response status without decoding
// the body. Satisfied by *api.Client.
type Prober interface {
	Probe(ctx context.Context, path string) (int, error)
	Configured() bool
}

// Result is the outcome of checking one endpoint.
type Result struct {
	Path    string `json:"path"`
	OK      bool   `json:"ok"`
	Status  int    `json:"status,omitempty"`
	Cause   Cause  `json:"cause,omitempty"`
	Message string `json:"message,omitempty"`
}

// StartupTargets are the endpoints probed at application startup.
var StartupTargets = []string{"/productos", "/regiones-comunas"}

// CheckEndpoint probes one endpoint and classifies the outcome.
func CheckEndpoint(ctx context.Context, p Prober, path string) Result {
	if !p.Configured() {
		return Result{
			Path:    path,
			Cause:   CauseMissingConfig,
			Message: "API base URL not configured",
		}
	}

	status, err := p.Probe(ctx, path)
	if err != nil {
		if isTimeout(err) {
			return Result{Path: path, Cause: CauseTimeout, Message: err.Error()}
		}
		return Result{Path: path, Cause: CauseNetwork, Message: err.Error()}
	}

	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return Result{Path: path, OK: true, Status: status}
	case status == http.StatusUnauthorized:
		return Result{
			Path:    path,
			Status:  status,
			Cause:   CauseUnauthorized,
			Message: "the API requires authentication for this endpoint",
		}
	case status == http.StatusNotFound:
		return Result{Path: path, Status: status, Cause: CauseNotFound, Message: "endpoint not found"}
	case status >= http.StatusInternalServerError:
		return Result{Path: path, Status: status, Cause: CauseServerError, Message: "server error"}
	default:
		return Result{Path: path, Status: status, Cause: CauseUnknown}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// RunStartupChecks probes every startup target and logs one line per
// endpoint. The results are returned for callers that want them, but
// most callers fire this in a goroutine and ignore the return value.
func RunStartupChecks(ctx context.Context, p Prober, log *slog.Logger) []Result {
	if log == nil {
		log = slog.Default()
	}

	results := make([]Result, 0, len(StartupTargets))
	for _, path := range StartupTargets {
		res := CheckEndpoint(ctx, p, path)
		results = append(results, res)

		if res.OK {
			log.Info("api endpoint reachable", "path", res.Path, "status", res.Status)
			continue
		}
		log.Warn("api endpoint check failed",
			"path", res.Path,
			"cause", res.Cause,
			"status", res.Status,
			"message", res.Message,
		)
	}
	return results
}
