package utils

import "testing"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("a@co.com", "manager", "emp-1", "secret", 1)
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ParseAccessToken(token, "secret")
	if err != nil {
		t.Fatal(err)
	}
	if claims.Subject != "a@co.com" || claims.Role != "manager" || claims.EmployeeID != "emp-1" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("a@co.com", "employee", "emp-1", "secret", 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseAccessToken(token, "other"); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}
