package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"imgfetch/pkg/config"
	errs "imgfetch/pkg/errors"
	"imgfetch/pkg/logger"
)

// ChunkSize is the buffer used to stream response bodies to disk
const ChunkSize = 8 * 1024

// Client performs streamed HTTP GETs
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	logger     logger.Logger
}

// NewClient creates a client from cfg. A zero cfg.Timeout leaves the
// request without a deadline.
func NewClient(cfg config.HTTPConfig, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	headers := map[string]string{
		"Accept": "image/avif,image/webp,image/*,*/*;q=0.8",
	}
	if cfg.UserAgent != "" {
		headers["User-Agent"] = cfg.UserAgent
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		headers: headers,
		logger:  log,
	}
}

// doRequest performs an HTTP request with the configured headers
func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	c.logger.DebugWithFields("sending HTTP request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.DebugWithFields("HTTP request failed", map[string]interface{}{
			"method":   req.Method,
			"url":      req.URL.String(),
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, errs.Network(err)
	}

	c.logger.DebugWithFields("HTTP response received", map[string]interface{}{
		"method":   req.Method,
		"url":      req.URL.String(),
		"status":   resp.StatusCode,
		"duration": duration,
	})

	return resp, nil
}

// checkResponseStatus fails on 4xx and 5xx. A terminal 3xx the client did
// not follow (for example 304) is accepted along with its body.
func (c *Client) checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}
	return errs.HTTPStatus(resp.StatusCode, resp.Status)
}

// Fetch GETs url and streams the body into w in ChunkSize pieces. No
// bytes are written when the response status is 4xx or 5xx. It returns
// the number of bytes written.
func (c *Client) Fetch(ctx context.Context, url string, w io.Writer) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, errs.Request(err)
	}

	resp, err := c.doRequest(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := c.checkResponseStatus(resp); err != nil {
		return 0, err
	}

	return copyChunks(w, resp.Body)
}

// copyChunks is io.CopyBuffer with read and write failures told apart
func copyChunks(w io.Writer, body io.Reader) (int64, error) {
	buf := make([]byte, ChunkSize)
	var written int64

	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			wn, writeErr := w.Write(buf[:n])
			written += int64(wn)
			if writeErr != nil {
				return written, errs.IO("failed to write file", writeErr)
			}
			if wn != n {
				return written, errs.IO("failed to write file", io.ErrShortWrite)
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, errs.Network(fmt.Errorf("reading response body: %w", readErr))
		}
	}
}
