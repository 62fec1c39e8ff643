// Package auth implements bearer-token staff authorization. Tokens are
// static, provisioned through configuration; there is no user model or
// session handling behind them.
package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type Verifier struct {
	tokens map[string]struct{}
}

func NewVerifier(tokens []string) *Verifier {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return &Verifier{tokens: set}
}

// IsStaff reports whether the request carries a known staff token in
// the Authorization header ("Bearer <token>").
func (v *Verifier) IsStaff(r *http.Request) bool {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	_, known := v.tokens[token]
	return known
}

// NewToken mints a random staff token. main uses it to generate a
// one-off token when none is configured.
func NewToken() string {
	return uuid.NewString()
}
