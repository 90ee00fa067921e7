package entity

import "github.com/google/uuid"

// Permission names a single capability a mutation can require. Mutations declare
// the permission they need; roles map to permission sets below. Operations that
// also allow the owner of a row to act use CanOrOwns as the or-owner escape hatch.
type Permission string

const (
	// PermissionOrderCreate allows opening a new shared order.
	PermissionOrderCreate Permission = "order:create"
	// PermissionOrderSetStatusAny allows changing the status of any order.
	// Drivers transition their own orders through the or-owner escape hatch.
	PermissionOrderSetStatusAny Permission = "order:set_status:any"
	// PermissionOrderDelete allows deleting an order.
	PermissionOrderDelete Permission = "order:delete"

	// PermissionMenuCreate allows creating a menu item.
	PermissionMenuCreate Permission = "menu:create"
	// PermissionMenuWriteAny allows updating or deleting any menu item,
	// regardless of ownership.
	PermissionMenuWriteAny Permission = "menu:write:any"
	// PermissionMenuBulkImport allows importing menu items in bulk.
	PermissionMenuBulkImport Permission = "menu:bulk_import"
	// PermissionMenuDeleteAll allows wiping the whole catalog.
	PermissionMenuDeleteAll Permission = "menu:delete_all"

	// PermissionItemAddForOthers allows adding order items on behalf of another
	// participant. Note the asymmetry: drivers hold this for the add path but
	// have only self scope for updates and removals.
	PermissionItemAddForOthers Permission = "item:add:others"
	// PermissionItemWriteAny allows updating or removing any participant's items.
	PermissionItemWriteAny Permission = "item:write:any"

	// PermissionPaymentWriteAny allows recording or deleting any participant's payment.
	PermissionPaymentWriteAny Permission = "payment:write:any"

	// PermissionUserManage allows administrative user management.
	PermissionUserManage Permission = "user:manage"
)

// rolePermissions is the single authoritative role -> capability table. Every
// mutation authorizes against this map instead of repeating ad-hoc role lists.
var rolePermissions = map[Role]map[Permission]struct{}{
	RoleSuperAdmin: permissionSet(
		PermissionOrderCreate,
		PermissionOrderSetStatusAny,
		PermissionOrderDelete,
		PermissionMenuCreate,
		PermissionMenuWriteAny,
		PermissionMenuBulkImport,
		PermissionMenuDeleteAll,
		PermissionItemAddForOthers,
		PermissionItemWriteAny,
		PermissionPaymentWriteAny,
		PermissionUserManage,
	),
	RoleAdmin: permissionSet(
		PermissionOrderCreate,
		PermissionOrderSetStatusAny,
		PermissionOrderDelete,
		PermissionMenuCreate,
		PermissionMenuWriteAny,
		PermissionMenuBulkImport,
		PermissionMenuDeleteAll,
		PermissionItemAddForOthers,
		PermissionItemWriteAny,
		PermissionPaymentWriteAny,
		PermissionUserManage,
	),
	RoleDriver: permissionSet(
		PermissionOrderCreate,
		PermissionMenuCreate,
		PermissionMenuWriteAny,
		PermissionItemAddForOthers,
	),
	RoleUser: permissionSet(
		PermissionMenuCreate,
	),
}

func permissionSet(perms ...Permission) map[Permission]struct{} {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}

	return set
}

// Can reports whether the role holds the given permission.
func (r Role) Can(p Permission) bool {
	perms, ok := rolePermissions[r]
	if !ok {
		return false
	}
	_, ok = perms[p]

	return ok
}

// CanOrOwns reports whether the role holds the blanket permission, or the actor
// owns the row being mutated.
func (r Role) CanOrOwns(p Permission, actorID, ownerID uuid.UUID) bool {
	if r.Can(p) {
		return true
	}

	return actorID == ownerID
}
