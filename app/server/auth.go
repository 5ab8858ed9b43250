package server

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"golang.org/x/crypto/bcrypt"
)

// AdminUser is the basic auth user name for admin routes.
const AdminUser = "admin"

// dummy hash for constant-time comparison when the user name doesn't match.
const dummyHash = "$2a$10$C615A0mfUEFBupj9qcqhiuBEyf60EqrsakB90CozUoSON8d2Dc1uS"

// AdminAuth protects admin routes with basic auth checked against a bcrypt hash.
// Empty hash disables the check, the server then doesn't register admin routes at all.
type AdminAuth struct {
	hash []byte
}

// NewAdminAuth makes admin auth for the bcrypt hash, rejecting malformed hashes.
func NewAdminAuth(passwordHash string) (*AdminAuth, error) {
	if passwordHash == "" {
		return &AdminAuth{}, nil
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("invalid admin password hash: %w", err)
	}
	return &AdminAuth{hash: []byte(passwordHash)}, nil
}

// Enabled reports whether a password is configured.
func (a *AdminAuth) Enabled() bool {
	return len(a.hash) > 0
}

// Middleware returns 401 unless the request carries valid admin credentials.
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	if !a.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.check(r) {
			log.Printf("[INFO] admin access denied for %s %s", r.Method, r.URL.Path)
			w.Header().Set("WWW-Authenticate", `Basic realm="dusk"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Authorized reports whether the request carries valid admin credentials.
// Always false when no password is configured.
func (a *AdminAuth) Authorized(r *http.Request) bool {
	return a.Enabled() && a.check(r)
}

func (a *AdminAuth) check(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(AdminUser)) == 1
	hash := a.hash
	if !userOK {
		hash = []byte(dummyHash)
	}
	// always run bcrypt comparison to keep timing independent of the user name
	return bcrypt.CompareHashAndPassword(hash, []byte(pass)) == nil && userOK
}
