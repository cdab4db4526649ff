package auth

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	token, err := NewAccessToken(42, RoleAdmin, "admin@araucarias.cl", "Admin", secret, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := VerifyAccessToken(token, secret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 || claims.Role != RoleAdmin || claims.Email != "admin@araucarias.cl" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestVerifyAccessTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewAccessToken(1, RoleStaff, "staff@araucarias.cl", "Staff", "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := VerifyAccessToken(token, "secret-b"); err == nil {
		t.Fatalf("expected verification failure with wrong secret")
	}
}

func TestVerifyAccessTokenRejectsExpired(t *testing.T) {
	token, err := NewAccessToken(1, RoleAdmin, "admin@araucarias.cl", "Admin", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := VerifyAccessToken(token, "secret"); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestNewAccessTokenRequiresSecret(t *testing.T) {
	if _, err := NewAccessToken(1, RoleAdmin, "a@b.cl", "A", "", time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}

func TestParseBearerToken(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "standard", header: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", expected: "abc"},
		{name: "missing scheme", header: "abc", expected: ""},
		{name: "empty", header: "", expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseBearerToken(tc.header); got != tc.expected {
				t.Fatalf("got %q, want %q", got, tc.expected)
			}
		})
	}
}
