// Package observability provides request logging and tracing middleware.
package observability

import (
	"net/http"
	"strings"
	"time"

	"github.com/developerdao/schoolofcode/internal/services/web/platform/httpx"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/developerdao/schoolofcode/internal/services/web"

// Option customizes RequestLogger.
type Option func(*options)

type options struct {
	tracerProvider trace.TracerProvider
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}

// RequestLogger wraps each request in a server span and logs one line once
// the response is written.
func RequestLogger(logger *zap.Logger, opts ...Option) httpx.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tp := cfg.tracerProvider
			if tp == nil {
				tp = otel.GetTracerProvider()
			}
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tp.Tracer(tracerName).Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w}
			// A panic still gets its span status and log line; the outer
			// recover middleware writes the 500.
			defer func() {
				recovered := recover()
				status := recorder.statusCode()
				if recovered != nil {
					status = http.StatusInternalServerError
				}

				span.SetAttributes(attribute.Int("http.response.status_code", status))
				if status >= http.StatusInternalServerError {
					span.SetStatus(codes.Error, http.StatusText(status))
				}

				requestID := strings.TrimSpace(r.Header.Get(httpx.RequestIDHeader))
				if requestID == "" {
					requestID = "-"
				}
				fields := []zap.Field{
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", status),
					zap.Int("bytes", recorder.bytes),
					zap.Duration("latency", time.Since(start)),
					zap.String("request_id", requestID),
				}
				if sc := span.SpanContext(); sc.HasTraceID() {
					fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
				}
				if recovered != nil {
					fields = append(fields, zap.Bool("panic", true))
				}
				logger.Info("http request", fields...)

				if recovered != nil {
					panic(recovered)
				}
			}()
			next.ServeHTTP(recorder, r.WithContext(ctx))
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *statusRecorder) statusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}
