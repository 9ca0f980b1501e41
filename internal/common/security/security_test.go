package security

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CheckPasswordHash("s3cret", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGenerateTokenCarriesSubject(t *testing.T) {
	tokenAuth := NewTokenAuth([]byte("test-secret"))

	tokenString, err := GenerateToken(tokenAuth, "alice@example.com", 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwtauth.VerifyToken(tokenAuth, tokenString)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	sub, ok := token.Get("sub")
	if !ok || sub != "alice@example.com" {
		t.Errorf("sub claim = %v, want alice@example.com", sub)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	tokenAuth := NewTokenAuth([]byte("test-secret"))

	tokenString, err := GenerateToken(tokenAuth, "alice@example.com", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := jwtauth.VerifyToken(tokenAuth, tokenString); err == nil {
		t.Error("expired token verified successfully")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	tokenAuth := NewTokenAuth([]byte("test-secret"))
	other := NewTokenAuth([]byte("different-secret"))

	tokenString, err := GenerateToken(other, "alice@example.com", 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := jwtauth.VerifyToken(tokenAuth, tokenString); err == nil {
		t.Error("token signed with a different key verified successfully")
	}
}

func TestGetSubjectFromClaims(t *testing.T) {
	tests := []struct {
		name    string
		claims  map[string]interface{}
		want    string
		wantErr bool
	}{
		{name: "valid", claims: map[string]interface{}{"sub": "a@b.c"}, want: "a@b.c"},
		{name: "missing", claims: map[string]interface{}{}, wantErr: true},
		{name: "empty", claims: map[string]interface{}{"sub": ""}, wantErr: true},
		{name: "wrong type", claims: map[string]interface{}{"sub": 7}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetSubjectFromClaims(tt.claims)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("subject = %q, want %q", got, tt.want)
			}
		})
	}
}
