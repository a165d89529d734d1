package store

import (
	"context"

	"taskctl/internal/service"
)

// Login signs in. On success the session holds the returned username.
// Concurrent logins are not coordinated; the last response wins.
func (s *Store) Login(ctx context.Context, req service.LoginRequest) error {
	s.Dispatch(Pending{Op: OpLogin})

	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return s.reject(OpLogin, 0, err, msgLogin)
	}
	s.Dispatch(LoginFulfilled{Response: resp})
	return nil
}

// Signup registers an account. The session stays as it was.
func (s *Store) Signup(ctx context.Context, req service.SignupRequest) error {
	s.Dispatch(Pending{Op: OpSignup})

	if err := s.auth.Signup(ctx, req); err != nil {
		return s.reject(OpSignup, 0, err, msgSignup)
	}
	s.Dispatch(SignupFulfilled{})
	return nil
}

// Logout forgets the persisted token and resets the session immediately.
// The session is reset even if the token could not be removed.
func (s *Store) Logout() error {
	err := s.auth.Logout()
	s.Dispatch(LoggedOut{})
	return err
}

// ExpireSession resets the session after the backend rejected the token.
func (s *Store) ExpireSession() {
	s.Dispatch(SessionExpired{})
}

// ClearAuthError resets the session error.
func (s *Store) ClearAuthError() {
	s.Dispatch(AuthErrorCleared{})
}
