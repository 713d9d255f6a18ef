package auth_test

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/example/perfdash/internal/auth"
)

const testSecret = "a-long-and-secure-secret-used-only-in-tests"
const testUserID = "user-123"
const testRole = "employee"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		os.Unsetenv("JWT_SECRET")

		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when JWT_SECRET is empty")
			}
		}()

		auth.Init()
	})

	t.Run("ValidSecret", func(t *testing.T) {
		os.Setenv("JWT_SECRET", testSecret)
		auth.Init()
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	os.Setenv("JWT_SECRET", testSecret)
	auth.Init()

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute*5)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}

		if claims.UserID != testUserID {
			t.Errorf("wrong UserID. want %s, got %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("wrong Role. want %s, got %s", testRole, claims.Role)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Second)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if err == nil {
			t.Fatal("ValidateJWT should fail for an expired token")
		}
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("wrong error for expired token. want %v, got %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		// Flip the last byte of the signature segment.
		tampered := tokenStr[:len(tokenStr)-1]
		if tokenStr[len(tokenStr)-1] == 'A' {
			tampered += "B"
		} else {
			tampered += "A"
		}

		_, err = auth.ValidateJWT(tampered)
		if err == nil {
			t.Fatal("ValidateJWT should fail for a tampered token")
		}
		if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			t.Errorf("wrong error for tampered token: %v", err)
		}
	})

	t.Run("GarbageToken", func(t *testing.T) {
		if _, err := auth.ValidateJWT("not-a-jwt"); err == nil {
			t.Fatal("ValidateJWT should fail for a malformed token")
		}
	})
}
