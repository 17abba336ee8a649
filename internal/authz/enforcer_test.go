// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package authz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestEmbeddedPolicy(t *testing.T) {
	t.Parallel()

	e, err := NewEnforcer(nil)
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}

	tests := []struct {
		role string
		perm Permission
		want bool
	}{
		{"user", PermRatingsWrite, true},
		{"user", PermPreferencesWrite, true},
		{"user", PermRecommendationsGenerate, true},
		{"user", PermRecommendationsGenerateAny, false},
		{"admin", PermRatingsWrite, true},
		{"admin", PermRecommendationsGenerateAny, true},
		{"viewer", PermRatingsWrite, false},
		{"", PermRatingsWrite, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.perm.String(), func(t *testing.T) {
			t.Parallel()
			for i := 0; i < 2; i++ {
				got, err := e.Allowed(tt.role, tt.perm)
				if err != nil {
					t.Fatalf("Allowed() error = %v", err)
				}
				if got != tt.want {
					t.Errorf("Allowed(%q, %s) = %v, want %v (pass %d)", tt.role, tt.perm, got, tt.want, i)
				}
			}
		})
	}
}

func TestRolesImplied(t *testing.T) {
	t.Parallel()

	e, err := NewEnforcer(nil)
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	got := e.RolesImplied("admin")
	if diff := cmp.Diff([]string{"admin", "user"}, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Errorf("RolesImplied(admin) mismatch (-want +got):\n%s", diff)
	}
}

func TestAddPolicyInvalidatesCache(t *testing.T) {
	t.Parallel()

	e, err := NewEnforcer(nil)
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	if ok, _ := e.Allowed("critic", PermRatingsWrite); ok {
		t.Fatal("critic allowed before policy change")
	}
	if err := e.AddPolicy("critic", PermRatingsWrite); err != nil {
		t.Fatalf("AddPolicy() error = %v", err)
	}
	if ok, _ := e.Allowed("critic", PermRatingsWrite); !ok {
		t.Error("critic denied after policy change")
	}
}

func TestPolicyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "policy.csv")
	policy := "p, moderator, ratings, *\n"
	if err := os.WriteFile(path, []byte(policy), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	e, err := NewEnforcer(&EnforcerConfig{PolicyPath: path})
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	if ok, _ := e.Allowed("moderator", PermRatingsWrite); !ok {
		t.Error("wildcard action not honored")
	}
	if ok, _ := e.Allowed("user", PermRatingsWrite); ok {
		t.Error("file policy should replace the embedded policy")
	}

	if _, err := NewEnforcer(&EnforcerConfig{PolicyPath: filepath.Join(t.TempDir(), "missing.csv")}); err == nil {
		t.Error("NewEnforcer(missing policy) = nil error")
	}
}

func TestPermissionNames(t *testing.T) {
	t.Parallel()

	got := []string{
		PermRatingsWrite.String(),
		PermPreferencesWrite.String(),
		PermRecommendationsGenerate.String(),
		PermRecommendationsGenerateAny.String(),
	}
	want := []string{
		"ratings:write",
		"preferences:write",
		"recommendations:generate",
		"recommendations:generate_any",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("permission names mismatch (-want +got):\n%s", diff)
	}
}
