package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for a deployment.
//
// Managers administer the record system: they open and close departments,
// delete records, unlink partners and read the audit trail. Staff handle the
// day-to-day patient work: create and update records, append log entries and
// run reports, but never delete.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := []PermissionPolicy{
		// SuperAdmin: god mode
		{RoleSysSuperAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},

		// Manager: full control over every clinical resource plus RBAC grants.
		{RoleHMSManager, DomainSys, ResourceDepartment, ActionManage, EffectAllow},
		{RoleHMSManager, DomainSys, ResourceDoctor, ActionManage, EffectAllow},
		{RoleHMSManager, DomainSys, ResourcePatient, ActionManage, EffectAllow},
		{RoleHMSManager, DomainSys, ResourcePatientLog, ActionManage, EffectAllow},
		{RoleHMSManager, DomainSys, ResourcePartner, ActionManage, EffectAllow},
		{RoleHMSManager, DomainSys, ResourceReport, ActionManage, EffectAllow},
		{RoleHMSManager, DomainSys, ResourceAudit, ActionRead, EffectAllow},
		{RoleHMSManager, DomainSys, ResourceRBAC, ActionGrant, EffectAllow},
		{RoleHMSManager, DomainSys, ResourceRBAC, ActionRevoke, EffectAllow},

		// Staff: create, read, update and list. No delete on anything.
		{RoleHMSStaff, DomainSys, ResourceDepartment, ActionRead, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourceDepartment, ActionList, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourceDoctor, ActionCreate, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourceDoctor, ActionRead, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourceDoctor, ActionUpdate, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourceDoctor, ActionList, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePatient, ActionCreate, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePatient, ActionRead, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePatient, ActionList, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePatientLog, ActionCreate, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePatientLog, ActionRead, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePatientLog, ActionList, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePartner, ActionCreate, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePartner, ActionRead, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePartner, ActionUpdate, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourcePartner, ActionList, EffectAllow},
		{RoleHMSStaff, DomainSys, ResourceReport, ActionRead, EffectAllow},
	}

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(policies))
	return nil
}

// AssignStaffRole grants a user one of the hospital roles.
// Valid roles: RoleHMSManager, RoleHMSStaff.
func AssignStaffRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleHMSManager, RoleHMSStaff:
	case RoleSysSuperAdmin:
		// valid but should be granted manually, with care
	default:
		return ErrInvalidArgs
	}

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainSys)
	return err
}

// RevokeStaffRole removes a hospital role from a user.
func RevokeStaffRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	_, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), role, DomainSys)
	return err
}

// StaffRoles returns all roles a user currently holds.
func StaffRoles(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	return auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainSys)
}
