package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestRole_AtLeast(t *testing.T) {
	cases := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleGuest, RoleGuest, true},
		{RoleUser, RoleCreator, false},
		{RoleCreator, RoleCreator, true},
		{RoleAdmin, RoleCreator, true},
		{RoleSuperAdmin, RoleAdmin, true},
		{RoleUser, RoleSuperAdmin, false},
	}
	for _, tc := range cases {
		if got := tc.role.AtLeast(tc.min); got != tc.want {
			t.Errorf("Role(%d).AtLeast(%d) = %v, want %v", tc.role, tc.min, got, tc.want)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	for r := RoleGuest; r <= RoleSuperAdmin; r++ {
		if !r.Valid() {
			t.Errorf("Role(%d) should be valid", r)
		}
	}
	if Role(0).Valid() || Role(6).Valid() {
		t.Errorf("out-of-range roles must be invalid")
	}
}

func TestUser_JSONExcludesPasswordHash(t *testing.T) {
	u := User{
		ID:           1,
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$12$secret",
		FullName:     "Alice A",
		Role:         RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	out, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(out), "secret") || strings.Contains(string(out), "password") {
		t.Fatalf("password hash leaked into JSON: %s", out)
	}
}
