package api

import (
	"context"

	"github.com/zenatech-mv/site-backend/models"
)

type keyType string

const adminUserKey keyType = "adminUser"

// ctxWithAdminUser adds the authenticated admin account to the context
func ctxWithAdminUser(ctx context.Context, user *models.AdminUser) context.Context {
	return context.WithValue(ctx, adminUserKey, user)
}

// adminUserFromCtx retrieves the authenticated admin account, or nil when the
// request did not pass the auth middleware.
func adminUserFromCtx(ctx context.Context) *models.AdminUser {
	user, _ := ctx.Value(adminUserKey).(*models.AdminUser)
	return user
}
