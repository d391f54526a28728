package middleware

import (
	"context"
	"net/http"

	"github.com/homequest/backend/pkg/errorx"
	"github.com/homequest/backend/pkg/xcontext"
)

const userHeader = "X-User-Id"

// RequestUser reads the user id injected by the session layer in front of
// this service. PIN verification and session handling live there, not here.
func RequestUser() func(ctx context.Context, r *http.Request) (context.Context, error) {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		userID := r.Header.Get(userHeader)
		if userID == "" {
			return nil, errorx.New(errorx.Unauthenticated, "Missing user header")
		}

		return xcontext.WithRequestUserID(ctx, userID), nil
	}
}
