// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the authorization role of an account.
type Role string

const (
	RoleUser      Role = "user"
	RoleGuide     Role = "guide"
	RoleLeadGuide Role = "lead-guide"
	RoleAdmin     Role = "admin"
)

var allRoles = []Role{RoleUser, RoleGuide, RoleLeadGuide, RoleAdmin}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	for _, known := range allRoles {
		if r == known {
			return true
		}
	}
	return false
}

// Permission is a declarative access rule attached to a route: the request
// principal must hold one of Roles.
type Permission struct {
	// Name identifies the rule in logs, e.g. "tours:manage".
	Name string

	// Roles is the set of roles allowed through.
	Roles []Role
}

// Allows reports whether role is permitted by p.
func (p Permission) Allows(role Role) bool {
	for _, allowed := range p.Roles {
		if role == allowed {
			return true
		}
	}
	return false
}
