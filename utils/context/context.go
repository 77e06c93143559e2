package context

import (
	"context"

	"github.com/muhammadheryan/drims/constant"
)

func GetUserID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.UserIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

// GetActor returns the acting user name placed by the auth middleware.
func GetActor(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.ActorKey)
	if v == nil {
		return "", false
	}
	name, ok := v.(string)
	return name, ok && name != ""
}

func WithActor(ctx context.Context, userID uint64, userName string) context.Context {
	ctx = context.WithValue(ctx, constant.UserIDKey, userID)
	return context.WithValue(ctx, constant.ActorKey, userName)
}
