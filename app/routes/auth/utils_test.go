package auth

import (
	"testing"

	"github.com/JhonyKing/think-chess-sub001/app/models"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &models.User{
		Username: "lrodriguez",
		UserType: "ADMINISTRADOR",
		Permissions: models.Permissions{
			Students: true,
			Payments: true,
			Mail:     true,
		},
	}

	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}

	if claims.Username != user.Username {
		t.Errorf("username = %q, want %q", claims.Username, user.Username)
	}
	if claims.UserType != user.UserType {
		t.Errorf("user type = %q, want %q", claims.UserType, user.UserType)
	}
	if claims.Permissions != user.Permissions {
		t.Errorf("permissions = %+v, want %+v", claims.Permissions, user.Permissions)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT(&models.User{Username: "x", UserType: "PROFESOR"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateJWT(tampered); err == nil {
		t.Fatal("expected error for tampered signature")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("super-secret-1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "super-secret-1" {
		t.Fatal("password stored in the clear")
	}

	if !CheckPasswordHash("super-secret-1", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}
