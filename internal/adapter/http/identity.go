package httpadapter

import (
	"context"
	"net/http"
	"strings"

	"mesa-fund/internal/core/domain"
)

// CallerHeader carries the caller identity asserted by the signing layer
// in front of the ledger. The ledger trusts it as given.
const CallerHeader = "X-Caller-Identity"

type callerKey struct{}

// callerIdentity stores the asserted identity, if any, in the request
// context.
func callerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := domain.Identity(strings.TrimSpace(r.Header.Get(CallerHeader)))
		if id.Valid() {
			r = r.WithContext(context.WithValue(r.Context(), callerKey{}, id))
		}
		next.ServeHTTP(w, r)
	})
}

// requireCaller rejects requests without an asserted identity.
func requireCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := callerFrom(r.Context()); !ok {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Code: "MISSING_IDENTITY", Message: "missing " + CallerHeader + " header"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func callerFrom(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(callerKey{}).(domain.Identity)
	return id, ok
}
