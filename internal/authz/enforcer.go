// Movie Rating System - AI-Assisted Movie Scoring and Recommendations
// Copyright 2026 Nakad3rd
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Nakad3rd/AI-Assisted-Movie-Rating-System

package authz

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"

	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/cache"
	"github.com/Nakad3rd/AI-Assisted-Movie-Rating-System/internal/metrics"
)

//go:embed model.conf
var embeddedModel string

//go:embed policy.csv
var embeddedPolicy string

// Permission is an (object, action) pair checked against the policy.
type Permission struct {
	Object string
	Action string
}

func (p Permission) String() string {
	return p.Object + ":" + p.Action
}

// Permissions used by the API.
var (
	PermRatingsWrite               = Permission{Object: "ratings", Action: "write"}
	PermPreferencesWrite           = Permission{Object: "preferences", Action: "write"}
	PermRecommendationsGenerate    = Permission{Object: "recommendations", Action: "generate"}
	PermRecommendationsGenerateAny = Permission{Object: "recommendations", Action: "generate_any"}
)

// EnforcerConfig holds configuration for the Casbin enforcer.
type EnforcerConfig struct {
	// PolicyPath is a CSV policy file. Empty uses the embedded policy.
	PolicyPath string

	// CacheTTL is how long decisions are cached. Zero disables caching.
	CacheTTL time.Duration
}

// DefaultEnforcerConfig returns the embedded policy with a one minute
// decision cache.
func DefaultEnforcerConfig() *EnforcerConfig {
	return &EnforcerConfig{CacheTTL: time.Minute}
}

// Enforcer wraps a synced Casbin enforcer with a decision cache.
type Enforcer struct {
	enforcer *casbin.SyncedEnforcer
	cache    *cache.LRU[bool]
}

// NewEnforcer loads the model and policy.
func NewEnforcer(cfg *EnforcerConfig) (*Enforcer, error) {
	if cfg == nil {
		cfg = DefaultEnforcerConfig()
	}

	m, err := model.NewModelFromString(embeddedModel)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	var enforcer *casbin.SyncedEnforcer
	if cfg.PolicyPath != "" {
		if _, statErr := os.Stat(cfg.PolicyPath); statErr != nil {
			return nil, fmt.Errorf("policy file: %w", statErr)
		}
		enforcer, err = casbin.NewSyncedEnforcer(m, fileadapter.NewAdapter(cfg.PolicyPath))
	} else {
		enforcer, err = casbin.NewSyncedEnforcer(m)
		if err == nil {
			err = loadEmbeddedPolicy(enforcer, embeddedPolicy)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{enforcer: enforcer}
	if cfg.CacheTTL > 0 {
		e.cache = cache.NewLRU[bool](1024, cfg.CacheTTL)
	}
	return e, nil
}

// loadEmbeddedPolicy parses "p, sub, obj, act" and "g, sub, role" lines.
func loadEmbeddedPolicy(enforcer *casbin.SyncedEnforcer, policy string) error {
	for _, line := range strings.Split(policy, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Split(line, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		switch {
		case parts[0] == "p" && len(parts) == 4:
			if _, err := enforcer.AddPolicy(parts[1], parts[2], parts[3]); err != nil {
				return fmt.Errorf("failed to add policy %v: %w", parts[1:], err)
			}
		case parts[0] == "g" && len(parts) == 3:
			if _, err := enforcer.AddGroupingPolicy(parts[1], parts[2]); err != nil {
				return fmt.Errorf("failed to add grouping policy %v: %w", parts[1:], err)
			}
		default:
			return fmt.Errorf("malformed policy line %q", line)
		}
	}
	return nil
}

// Allowed reports whether role holds perm.
func (e *Enforcer) Allowed(role string, perm Permission) (bool, error) {
	key := role + "|" + perm.String()
	if e.cache != nil {
		if allowed, ok := e.cache.Get(key); ok {
			metrics.RecordAuthzDecision(allowed)
			return allowed, nil
		}
	}

	allowed, err := e.enforcer.Enforce(role, perm.Object, perm.Action)
	if err != nil {
		return false, fmt.Errorf("enforcement failed: %w", err)
	}
	metrics.RecordAuthzDecision(allowed)

	if e.cache != nil {
		e.cache.Add(key, allowed)
	}
	return allowed, nil
}

// AddPolicy grants perm to role at runtime and drops cached decisions.
func (e *Enforcer) AddPolicy(role string, perm Permission) error {
	if _, err := e.enforcer.AddPolicy(role, perm.Object, perm.Action); err != nil {
		return fmt.Errorf("failed to add policy: %w", err)
	}
	if e.cache != nil {
		e.cache.Clear()
	}
	return nil
}

// RolesImplied returns the roles role inherits from, including itself.
func (e *Enforcer) RolesImplied(role string) []string {
	implied, err := e.enforcer.GetImplicitRolesForUser(role)
	if err != nil {
		return []string{role}
	}
	return append([]string{role}, implied...)
}
