// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "github.com/MKhiriev/go-tours/models"

// Route permissions. Each is enforced by authorize after protect.
var (
	permManageUsers = models.Permission{
		Name:  "users:manage",
		Roles: []models.Role{models.RoleAdmin},
	}
	permManageTours = models.Permission{
		Name:  "tours:manage",
		Roles: []models.Role{models.RoleAdmin, models.RoleLeadGuide},
	}
	permMonthlyPlan = models.Permission{
		Name:  "tours:monthly-plan",
		Roles: []models.Role{models.RoleAdmin, models.RoleLeadGuide, models.RoleGuide},
	}
	permWriteReviews = models.Permission{
		Name:  "reviews:write",
		Roles: []models.Role{models.RoleUser},
	}
	permEditReviews = models.Permission{
		Name:  "reviews:edit",
		Roles: []models.Role{models.RoleUser, models.RoleAdmin},
	}
)
