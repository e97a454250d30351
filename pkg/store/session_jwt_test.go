package store

import (
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestJWTStore(t *testing.T, ttl time.Duration, revoker TokenRevoker) *JWTSessionStore {
	t.Helper()
	s, err := NewJWTSessionStore("test-secret", ttl, revoker, JWTOptions{})
	if err != nil {
		t.Fatalf("new jwt store: %v", err)
	}
	return s
}

func TestJWTSessionStoreRequiresSecret(t *testing.T) {
	if _, err := NewJWTSessionStore("  ", 0, nil, JWTOptions{}); err == nil {
		t.Fatalf("expected error for blank secret")
	}
}

func TestJWTSessionStoreIssueAndResolve(t *testing.T) {
	s := newTestJWTStore(t, 0, NewMemoryTokenRevoker())

	token, err := s.NewSession("u1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Fatalf("expected a JWT, got %q", token)
	}
	uid, ok, err := s.GetUserIDByToken(token)
	if err != nil || !ok || uid != "u1" {
		t.Fatalf("resolve: uid=%q ok=%v err=%v", uid, ok, err)
	}
}

func TestJWTSessionStoreRejectsGarbage(t *testing.T) {
	s := newTestJWTStore(t, 0, nil)
	if _, ok, err := s.GetUserIDByToken("not-a-jwt"); ok || err != nil {
		t.Fatalf("garbage token should not resolve (ok=%v err=%v)", ok, err)
	}
}

func TestJWTSessionStoreRejectsForeignSignature(t *testing.T) {
	issuer := newTestJWTStore(t, 0, nil)
	token, err := issuer.NewSession("u1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	other, err := NewJWTSessionStore("different-secret", 0, nil, JWTOptions{})
	if err != nil {
		t.Fatalf("new jwt store: %v", err)
	}
	if _, ok, _ := other.GetUserIDByToken(token); ok {
		t.Fatalf("token signed with another secret should not resolve")
	}
}

func TestJWTSessionStoreDeleteRevokesWithoutExpiry(t *testing.T) {
	s := newTestJWTStore(t, 0, NewMemoryTokenRevoker())
	token, err := s.NewSession("u1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.DeleteSession(token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.GetUserIDByToken(token); ok {
		t.Fatalf("revoked token should not resolve")
	}
}

func TestJWTSessionStoreRedisRevoker(t *testing.T) {
	redis := miniredis.RunT(t)
	s := newTestJWTStore(t, time.Hour, NewRedisTokenRevoker(redis.Addr(), ""))

	token, err := s.NewSession("u1")
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.DeleteSession(token); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.GetUserIDByToken(token); ok {
		t.Fatalf("revoked token should not resolve")
	}
}
