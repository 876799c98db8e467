// Package middleware provides the inbound HTTP pipeline of the transform
// service. main wires it in this order:
//
//	Recovery, RequestID, CorrelationID, OpenTelemetry, Logging, Timeout, AppContext
//
// Timeout sits inside Logging so a 504 is logged and traced like any other
// response, and AppContext sits inside Timeout so container lookups memoized
// for the request run under the request deadline.
package middleware

import "net/http"

// statusRecorder captures what a handler wrote. Recovery, OpenTelemetry and
// Logging share one recorder per request through record.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int64
	wroteHeader bool
}

// record wraps w, or returns w itself when an outer middleware already
// wrapped it.
func record(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader keeps the first status; later calls are dropped.
func (sr *statusRecorder) WriteHeader(code int) {
	if sr.wroteHeader {
		return
	}
	sr.status = code
	sr.wroteHeader = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.wroteHeader = true
	n, err := sr.ResponseWriter.Write(b)
	sr.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
