package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "drims:catalog:item:11", (&redis{namespace: "drims"}).key("catalog:item:11"))
	assert.Equal(t, "catalog:item:11", (&redis{}).key("catalog:item:11"))
	assert.Equal(t, "drims:session:abc", (&redis{namespace: "drims"}).key(sessionKey("abc")))
}

func TestRepository_NoClient(t *testing.T) {
	ctx := context.Background()
	r := NewRepository("drims")

	val, err := r.Get(ctx, "catalog:item:11")
	require.NoError(t, err)
	assert.Empty(t, val)

	assert.NoError(t, r.SetWithTTL(ctx, "catalog:item:11", "{}", time.Minute))
	assert.NoError(t, r.Delete(ctx, "catalog:item:11"))

	id, err := r.GetSession(ctx, "jti")
	require.NoError(t, err)
	assert.Zero(t, id)
}
