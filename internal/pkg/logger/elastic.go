package logger

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"time"
)

const esBodyLimit = 1000

// ESTransport 记录每次 Elastic 请求的耗时与请求/响应体
type ESTransport struct {
	Transport     http.RoundTripper
	SlowThreshold time.Duration
}

func truncateBody(b []byte) string {
	if len(b) > esBodyLimit {
		return string(b[:esBodyLimit]) + "...[truncated]"
	}
	return string(b)
}

func (t *ESTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	var reqBody []byte
	if req.Body != nil {
		reqBody, _ = io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewBuffer(reqBody))
	}

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("url", req.URL.String()),
		log.Duration("latency", elapsed),
	}

	fields = append(fields, log.String("req_body", truncateBody(reqBody)))

	if err != nil {
		log.ErrorContext(req.Context(), "ES_QUERY_ERROR", append(fields, log.Any("err", err))...)
		return nil, err
	}

	var resBody []byte
	if resp.Body != nil {
		resBody, _ = io.ReadAll(resp.Body)
		resp.Body = io.NopCloser(bytes.NewBuffer(resBody))
	}

	fields = append(fields, log.Int("status", resp.StatusCode), log.String("res_body", truncateBody(resBody)))

	if resp.StatusCode >= http.StatusBadRequest {
		log.WarnContext(req.Context(), "ES_QUERY_FAILED", fields...)
	} else if t.SlowThreshold > 0 && elapsed > t.SlowThreshold {
		log.WarnContext(req.Context(), "ES_QUERY_SLOW", fields...)
	} else {
		log.InfoContext(req.Context(), "ES_QUERY", fields...)
	}

	return resp, nil
}
