package context_test

import (
	"context"
	"testing"

	"github.com/muhammadheryan/drims/constant"
	ctxutil "github.com/muhammadheryan/drims/utils/context"
	"github.com/stretchr/testify/assert"
)

func TestActor(t *testing.T) {
	ctx := ctxutil.WithActor(context.Background(), 7, "lmanager")

	id, ok := ctxutil.GetUserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), id)

	name, ok := ctxutil.GetActor(ctx)
	assert.True(t, ok)
	assert.Equal(t, "lmanager", name)

	_, ok = ctxutil.GetActor(context.Background())
	assert.False(t, ok)

	_, ok = ctxutil.GetActor(context.WithValue(context.Background(), constant.ActorKey, ""))
	assert.False(t, ok)
}
