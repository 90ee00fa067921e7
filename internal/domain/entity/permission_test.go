package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRole_Can_DriverAsymmetry(t *testing.T) {
	// Drivers may put items on the tray for anyone, but may not rewrite or
	// remove rows they do not own.
	assert.True(t, RoleDriver.Can(PermissionItemAddForOthers))
	assert.False(t, RoleDriver.Can(PermissionItemWriteAny))
	assert.False(t, RoleDriver.Can(PermissionPaymentWriteAny))
}

func TestRole_Can_Admins(t *testing.T) {
	for _, role := range []Role{RoleSuperAdmin, RoleAdmin} {
		assert.True(t, role.Can(PermissionOrderCreate))
		assert.True(t, role.Can(PermissionOrderDelete))
		assert.True(t, role.Can(PermissionMenuBulkImport))
		assert.True(t, role.Can(PermissionItemWriteAny))
		assert.True(t, role.Can(PermissionPaymentWriteAny))
		assert.True(t, role.Can(PermissionUserManage))
	}
}

func TestRole_Can_RegularUser(t *testing.T) {
	assert.True(t, RoleUser.Can(PermissionMenuCreate))
	assert.False(t, RoleUser.Can(PermissionOrderCreate))
	assert.False(t, RoleUser.Can(PermissionItemAddForOthers))
	assert.False(t, RoleUser.Can(PermissionMenuBulkImport))
	assert.False(t, RoleUser.Can(PermissionUserManage))
}

func TestRole_Can_UnknownRole(t *testing.T) {
	assert.False(t, Role("visitor").Can(PermissionMenuCreate))
}

func TestRole_CanOrOwns(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	// The owner escape hatch works regardless of role.
	assert.True(t, RoleUser.CanOrOwns(PermissionItemWriteAny, owner, owner))
	assert.False(t, RoleUser.CanOrOwns(PermissionItemWriteAny, stranger, owner))

	// Blanket permission wins even without ownership.
	assert.True(t, RoleAdmin.CanOrOwns(PermissionItemWriteAny, stranger, owner))
}
