package handler

import (
	"errors"
	"testing"

	"github.com/JakeKoks/aicomics/internal/core/domain"
)

func TestValidPassword(t *testing.T) {
	cases := []struct {
		password string
		want     bool
	}{
		{"Str0ng!pass", true},
		{"aB3@efgh", true},
		{"Sh0rt!a", false},       // 7 chars
		{"alllower3!", false},    // no uppercase
		{"ALLUPPER3!", false},    // no lowercase
		{"NoDigits!!", false},    // no digit
		{"NoSpecial33", false},   // no special
		{"Bad#Spec1al", false},   // # is outside the accepted set
		{"", false},
	}
	for _, tc := range cases {
		if got := validPassword(tc.password); got != tc.want {
			t.Errorf("validPassword(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestValidator_RegisterRequest(t *testing.T) {
	v := NewValidator()

	ok := registerRequest{
		Username: "inker_42",
		Email:    "inker@example.com",
		Password: "Str0ng!pass",
		FullName: "Ink Er",
	}
	if err := v.Validate(&ok); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	bad := registerRequest{
		Username: "a b",     // space not allowed
		Email:    "nope",    // not an email
		Password: "weak",    // fails complexity
		FullName: "x",       // below min=2
	}
	err := v.Validate(&bad)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	for _, field := range []string{"username", "email", "password", "fullName"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Errorf("missing message for field %q: %v", field, ve.Fields)
		}
	}
}

func TestValidator_UsernameRule(t *testing.T) {
	v := NewValidator()

	valid := []string{"abc", "user_name", "A1_", "x23456789012345678901234567890"} // 30 chars
	for _, u := range valid {
		req := registerRequest{Username: u, Email: "a@b.co", Password: "Str0ng!pass", FullName: "Ab"}
		if err := v.Validate(&req); err != nil {
			t.Errorf("username %q rejected: %v", u, err)
		}
	}

	invalid := []string{"ab", "has space", "dash-ed", "dot.ted", "x234567890123456789012345678901"} // 31 chars
	for _, u := range invalid {
		req := registerRequest{Username: u, Email: "a@b.co", Password: "Str0ng!pass", FullName: "Ab"}
		err := v.Validate(&req)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("username %q accepted, want validation error", u)
			continue
		}
		if _, ok := ve.Fields["username"]; !ok {
			t.Errorf("username %q: wrong field flagged: %v", u, ve.Fields)
		}
	}
}
