package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"network", Network(errors.New("connection refused")), KindNetwork},
		{"status", HTTPStatus(404, "404 Not Found"), KindHTTPStatus},
		{"io", IO("create file", fs.ErrPermission), KindIO},
		{"request", Request(errors.New("bad url")), KindRequest},
		{"wrapped", fmt.Errorf("fetch: %w", HTTPStatus(500, "")), KindHTTPStatus},
		{"plain", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusCode(HTTPStatus(http.StatusNotFound, "404 Not Found")))
	assert.Equal(t, 0, StatusCode(Network(errors.New("reset"))))
	assert.Equal(t, 0, StatusCode(nil))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "unexpected HTTP status 404 Not Found", HTTPStatus(404, "404 Not Found").Error())
	assert.Equal(t, "unexpected HTTP status 503", HTTPStatus(503, "").Error())
	assert.Equal(t, "network error: connection reset", Network(errors.New("connection reset")).Error())
}

func TestUnwrap(t *testing.T) {
	err := IO("write file", fs.ErrPermission)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}
