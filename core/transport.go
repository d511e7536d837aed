package core

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const grpcWebContentType = "application/grpc-web+proto"

// FrameConsumer receives one borrowed DATA frame from a server-streaming
// call. Returning cont=false with a nil error tells the transport the
// caller is cancelling: it stops delivering further frames, closes the
// HTTP body, and the call returns ErrCancelled. Returning cont=false with
// errStreamComplete instead signals a clean, non-cancelling end to the
// stream — the call returns nil. The frame slice is only valid for the
// duration of the call.
type FrameConsumer func(frame []byte) (cont bool, err error)

// errStreamComplete is the sentinel a FrameConsumer returns to end a
// ServerStreaming call cleanly without it being mistaken for caller
// cancellation.
var errStreamComplete = fmt.Errorf("hederacore: stream complete")

// Transport is the capability the block stream engine and client façade
// depend on — a single gRPC-web unary call and a single gRPC-web
// server-streaming call. Exported as an interface so tests can substitute
// a fake transport without a real HTTP server.
type Transport interface {
	Unary(ctx context.Context, path string, requestBytes []byte) ([]byte, error)
	ServerStreaming(ctx context.Context, path string, requestBytes []byte, consumer FrameConsumer) error
}

// HTTPTransport implements Transport by speaking gRPC-web over HTTP, reusing
// connections through a ConnPool keyed by endpoint.
type HTTPTransport struct {
	endpoint string
	client   *http.Client
	pool     *ConnPool
	metrics  *TransportMetrics
	log      *logrus.Entry
}

// NewHTTPTransport constructs a transport against endpoint (a full base URL,
// e.g. "https://block-node.example.com:8080"), using pool for connection
// reuse. pool may be nil to disable the handle bookkeeping; calls then go
// straight to the underlying *http.Client, which keeps its own TCP
// connection reuse either way.
func NewHTTPTransport(endpoint string, pool *ConnPool) *HTTPTransport {
	return &HTTPTransport{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{},
		pool:     pool,
		log:      logrus.WithField("component", "transport"),
	}
}

// SetMetrics attaches a TransportMetrics sink. Safe to call once before the
// transport is used concurrently.
func (t *HTTPTransport) SetMetrics(m *TransportMetrics) { t.metrics = m }

// observeStatus records the outcome of a call for Prometheus, if a metrics
// sink is attached. grpcStatus is 0 for a successful call.
func (t *HTTPTransport) observeStatus(path string, started time.Time, grpcStatus int) {
	if t.metrics != nil {
		t.metrics.observe(path, started, grpcStatus)
	}
}

// frameDataCompressedFlag / frameTrailerFlag distinguish a DATA frame from a
// TRAILER frame via the high bit of the first frame byte.
const (
	frameDataCompressedFlag byte = 0x00
	frameTrailerFlag        byte = 0x80
)

// encodeDataFrame wraps payload as a gRPC-web DATA frame:
// [compressed:1=0][len:4 BE][payload].
func encodeDataFrame(payload []byte) []byte {
	out := make([]byte, 5+len(payload))
	out[0] = frameDataCompressedFlag
	binary.BigEndian.PutUint32(out[1:5], uint32(len(payload)))
	copy(out[5:], payload)
	return out
}

// readFrame reads one gRPC-web frame header+payload from r. It returns
// isTrailer based on the MSB of the first byte. A short or truncated
// length prefix yields ErrFramingError without attempting to resync.
func readFrame(r io.Reader) (isTrailer bool, payload []byte, err error) {
	var header [5]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if err == io.EOF {
			return false, nil, io.EOF
		}
		return false, nil, fmt.Errorf("%w: %v", ErrFramingError, err)
	}
	isTrailer = header[0]&frameTrailerFlag != 0
	n := binary.BigEndian.Uint32(header[1:5])
	payload = make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		return false, nil, fmt.Errorf("%w: %v", ErrFramingError, err)
	}
	return isTrailer, payload, nil
}

// parseTrailer parses a TRAILER frame's payload, which is an HTTP/1.1-style
// header block: "grpc-status: N\r\ngrpc-message: ...\r\n".
func parseTrailer(payload []byte) (code int, message string) {
	for _, line := range strings.Split(string(payload), "\r\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(strings.ToLower(parts[0]))
		val := strings.TrimSpace(parts[1])
		switch key {
		case "grpc-status":
			if n, err := strconv.Atoi(val); err == nil {
				code = n
			}
		case "grpc-message":
			message = val
		}
	}
	return code, message
}

func (t *HTTPTransport) newRequest(ctx context.Context, path string, body []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint+path, bytes.NewReader(encodeDataFrame(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", grpcWebContentType)
	req.Header.Set("X-Correlation-Id", uuid.NewString())
	return req, nil
}

// Unary issues one gRPC-web unary call: a single DATA frame request, a
// single DATA frame response, then a TRAILER frame. A non-zero grpc-status
// yields RpcStatusError; network-layer failures yield NetworkError.
func (t *HTTPTransport) Unary(ctx context.Context, path string, requestBytes []byte) ([]byte, error) {
	started := time.Now()
	req, err := t.newRequest(ctx, path, requestBytes)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	log := t.log.WithField("path", path).WithField("correlation_id", req.Header.Get("X-Correlation-Id"))

	resp, err := t.doWithPool(req)
	if err != nil {
		log.WithError(err).Warn("unary call failed")
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	isTrailer, payload, err := readFrame(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if isTrailer {
		code, msg := parseTrailer(payload)
		t.observeStatus(path, started, code)
		if code != 0 {
			return nil, &RpcStatusError{Code: code, Message: msg}
		}
		return nil, ErrMalformedResponse
	}
	dataFrame := payload

	isTrailer, trailerPayload, err := readFrame(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if !isTrailer {
		return nil, ErrFramingError
	}
	code, msg := parseTrailer(trailerPayload)
	t.observeStatus(path, started, code)
	if code != 0 {
		return nil, &RpcStatusError{Code: code, Message: msg}
	}
	log.Debug("unary call succeeded")
	return dataFrame, nil
}

// ServerStreaming issues one gRPC-web server-streaming call, invoking
// consumer synchronously for each inbound DATA frame until a TRAILER frame
// arrives, the connection closes, or the consumer signals cancellation.
func (t *HTTPTransport) ServerStreaming(ctx context.Context, path string, requestBytes []byte, consumer FrameConsumer) error {
	started := time.Now()
	req, err := t.newRequest(ctx, path, requestBytes)
	if err != nil {
		return &NetworkError{Cause: err}
	}
	log := t.log.WithField("path", path).WithField("correlation_id", req.Header.Get("X-Correlation-Id"))

	resp, err := t.doWithPool(req)
	if err != nil {
		log.WithError(err).Warn("streaming call failed")
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	for {
		isTrailer, payload, err := readFrame(resp.Body)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return classifyTransportError(err)
		}
		if isTrailer {
			code, msg := parseTrailer(payload)
			t.observeStatus(path, started, code)
			if code != 0 {
				return &RpcStatusError{Code: code, Message: msg}
			}
			return nil
		}
		cont, err := consumer(payload)
		if err != nil {
			if err == errStreamComplete {
				return nil
			}
			return err
		}
		if !cont {
			return ErrCancelled
		}
		if ctx.Err() != nil {
			return ErrDeadlineExceeded
		}
	}
}

// doWithPool issues req, acquiring and releasing a pooled connection handle
// around the call when a pool is configured. The pool only owns bookkeeping
// for connection reuse; the in-flight request's cancellation/timeout is
// entirely governed by ctx on req.
func (t *HTTPTransport) doWithPool(req *http.Request) (*http.Response, error) {
	if t.pool == nil {
		return t.client.Do(req)
	}
	handle, err := t.pool.Acquire(req.Context(), t.endpoint)
	if err != nil {
		return nil, err
	}
	resp, err := t.client.Do(req)
	t.pool.Release(handle)
	return resp, err
}

func classifyTransportError(err error) error {
	if err == nil {
		return nil
	}
	switch err.(type) {
	case *RpcStatusError, *NetworkError:
		return err
	}
	return &NetworkError{Cause: err}
}
