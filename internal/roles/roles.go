// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package roles holds the static role model: the company and workspace
// role sets and their ordering. Higher ordinal means higher privilege.
package roles

const (
	CompanyOwner   = "owner"
	CompanyAdmin   = "admin"
	CompanyBilling = "billing"
	CompanyMember  = "member"

	WorkspaceAdmin  = "admin"
	WorkspaceWriter = "writer"
	WorkspaceReader = "reader"
)

var companyOrdinals = map[string]int{
	CompanyMember:  0,
	CompanyBilling: 1,
	CompanyAdmin:   2,
	CompanyOwner:   3,
}

var workspaceOrdinals = map[string]int{
	WorkspaceReader: 0,
	WorkspaceWriter: 1,
	WorkspaceAdmin:  2,
}

func ValidCompanyRole(role string) bool {
	_, ok := companyOrdinals[role]
	return ok
}

func ValidWorkspaceRole(role string) bool {
	_, ok := workspaceOrdinals[role]
	return ok
}

// CompanyRoleAtLeast reports whether role has privilege >= min.
// Unknown roles always compare lowest.
func CompanyRoleAtLeast(role, min string) bool {
	return companyOrdinals[role] >= companyOrdinals[min] && ValidCompanyRole(role)
}

// MergeCompanyRoles returns the higher-privilege of the two roles. This is
// the upgrade-only merge rule: reconciling a grant never lowers an
// existing role.
func MergeCompanyRoles(existing, granted string) string {
	if companyOrdinals[granted] > companyOrdinals[existing] {
		return granted
	}
	return existing
}

// MergeWorkspaceRoles returns the higher-privilege of the two roles under
// the reader < writer < admin ordering.
func MergeWorkspaceRoles(existing, granted string) string {
	if workspaceOrdinals[granted] > workspaceOrdinals[existing] {
		return granted
	}
	return existing
}
