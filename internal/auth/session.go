package auth

import "sync/atomic"

// Session answers whether the visitor is signed in. Route guards depend only
// on this interface.
type Session interface {
	Authenticated() bool
}

// Controller is a Session that can also be signed in and out.
type Controller interface {
	Session
	SignIn() bool
	SignOut()
}

// DemoSession is a process-wide sign-in flag. Sign in always succeeds.
type DemoSession struct {
	authenticated atomic.Bool
}

func NewDemoSession(authenticated bool) *DemoSession {
	s := &DemoSession{}
	s.authenticated.Store(authenticated)
	return s
}

func (s *DemoSession) Authenticated() bool {
	return s.authenticated.Load()
}

func (s *DemoSession) SignIn() bool {
	s.authenticated.Store(true)
	return true
}

func (s *DemoSession) SignOut() {
	s.authenticated.Store(false)
}
