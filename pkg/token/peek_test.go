package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return raw
}

func TestPeek_ReadsClaimsWithoutVerifying(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{
		"sub":   "u1",
		"email": "a@b.com",
		"exp":   exp.Unix(),
	})

	info, err := Peek(raw)
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if info.Subject != "u1" || info.Email != "a@b.com" {
		t.Fatalf("info=%+v", info)
	}
	if !info.ExpiresAt.Equal(exp) {
		t.Fatalf("exp=%v, want %v", info.ExpiresAt, exp)
	}
}

func TestPeek_OpaqueToken(t *testing.T) {
	if _, err := Peek("not-a-jwt"); !errors.Is(err, ErrMalformed) {
		t.Fatalf("err=%v", err)
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()
	past := signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()})
	future := signedToken(t, jwt.MapClaims{"exp": now.Add(time.Minute).Unix()})
	noExp := signedToken(t, jwt.MapClaims{"sub": "u1"})

	if !Expired(past, now) {
		t.Fatal("past exp must read expired")
	}
	if Expired(future, now) {
		t.Fatal("future exp must not read expired")
	}
	if Expired(noExp, now) {
		t.Fatal("no exp claim never reads expired")
	}
	if Expired("garbage", now) {
		t.Fatal("unparseable tokens never read expired")
	}
}
