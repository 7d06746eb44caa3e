package ports

// TokenIssuer produces and checks the signed, time-bound proof of identity
// presented on each authenticated request. Tokens are stateless: there is no
// server-side session and no revocation list, only the embedded expiry.
type TokenIssuer interface {
	// Issue returns a signed token embedding the identity key.
	Issue(userID string) (string, error)
	// Verify returns the embedded identity key, domain.ErrExpiredToken when
	// the TTL has elapsed, or domain.ErrInvalidToken for anything malformed
	// or tampered with.
	Verify(token string) (string, error)
}
