package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/homequest/backend/config"
	"github.com/homequest/backend/pkg/errorx"
	"github.com/homequest/backend/pkg/logger"
	"github.com/stretchr/testify/require"
)

type greetRequest struct {
	Name string `json:"name" form:"name"`
}

type greetResponse struct {
	Greeting string `json:"greeting"`
}

func greet(ctx context.Context, req *greetRequest) (*greetResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	return &greetResponse{Greeting: "hello " + req.Name}, nil
}

func newTestRouter() *Router {
	return New(nil, config.Configs{}, logger.NewLogger(logger.SILENCE))
}

func serve(r *Router, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response {
	var resp response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRouterPost(t *testing.T) {
	r := newTestRouter()
	POST(r, "/greet", greet)

	req := httptest.NewRequest(http.MethodPost, "/greet",
		strings.NewReader(`{"name": "mina"}`))
	w := serve(r, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.Equal(t, int64(0), resp.Code)
	require.Empty(t, resp.Error)
	require.Equal(t, "hello mina", resp.Data.(map[string]any)["greeting"])
}

func TestRouterGet(t *testing.T) {
	r := newTestRouter()
	GET(r, "/greet", greet)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/greet?name=theo", nil))

	resp := decodeResponse(t, w)
	require.Equal(t, int64(0), resp.Code)
	require.Equal(t, "hello theo", resp.Data.(map[string]any)["greeting"])
}

func TestRouterCodedError(t *testing.T) {
	r := newTestRouter()
	POST(r, "/greet", greet)

	req := httptest.NewRequest(http.MethodPost, "/greet",
		strings.NewReader(`{"name": ""}`))
	w := serve(r, req)

	resp := decodeResponse(t, w)
	require.Equal(t, int64(errorx.BadRequest), resp.Code)
	require.Equal(t, "Not allow an empty name", resp.Error)
	require.Nil(t, resp.Data)
}

func TestRouterUncodedErrorCollapsesToUnknown(t *testing.T) {
	r := newTestRouter()
	POST(r, "/boom", func(ctx context.Context, req *greetRequest) (*greetResponse, error) {
		return nil, context.DeadlineExceeded
	})

	req := httptest.NewRequest(http.MethodPost, "/boom", strings.NewReader(`{}`))
	w := serve(r, req)

	resp := decodeResponse(t, w)
	require.Equal(t, int64(errorx.Unknown.Code), resp.Code)
	require.Equal(t, errorx.Unknown.Message, resp.Error)
}

func TestRouterBadBody(t *testing.T) {
	r := newTestRouter()
	POST(r, "/greet", greet)

	req := httptest.NewRequest(http.MethodPost, "/greet", strings.NewReader("not json"))
	w := serve(r, req)

	resp := decodeResponse(t, w)
	require.Equal(t, int64(errorx.BadRequest), resp.Code)
}

func TestRouterBranchMiddleware(t *testing.T) {
	r := newTestRouter()

	branch := r.Branch("")
	branch.Before(func(ctx context.Context, req *http.Request) (context.Context, error) {
		if req.Header.Get("X-Allow") == "" {
			return nil, errorx.New(errorx.Unauthenticated, "Missing header")
		}

		return ctx, nil
	})
	POST(branch, "/guarded", greet)

	// The branch middleware must not leak to routes on the parent router.
	POST(r, "/open", greet)

	req := httptest.NewRequest(http.MethodPost, "/guarded",
		strings.NewReader(`{"name": "mina"}`))
	w := serve(r, req)
	resp := decodeResponse(t, w)
	require.Equal(t, int64(errorx.Unauthenticated), resp.Code)

	req = httptest.NewRequest(http.MethodPost, "/guarded",
		strings.NewReader(`{"name": "mina"}`))
	req.Header.Set("X-Allow", "yes")
	resp = decodeResponse(t, serve(r, req))
	require.Equal(t, int64(0), resp.Code)

	req = httptest.NewRequest(http.MethodPost, "/open",
		strings.NewReader(`{"name": "mina"}`))
	resp = decodeResponse(t, serve(r, req))
	require.Equal(t, int64(0), resp.Code)
}
