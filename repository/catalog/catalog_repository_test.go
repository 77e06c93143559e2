package catalog

import (
	"context"
	stderrors "errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/drims/constant"
	redismock "github.com/muhammadheryan/drims/mocks/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var itemCols = []string{"item_id", "item_code", "item_name", "is_batched_flag", "can_expire_flag", "reorder_qty", "default_uom_code"}

func newRepo(t *testing.T, cache *redismock.RedisRepository) (*SQL, sqlmock.Sqlmock) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &SQL{conn: sqlx.NewDb(db, "mysql"), cache: cache, ttl: time.Minute}, m
}

func TestGetItem(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(c *redismock.RedisRepository, m sqlmock.Sqlmock)
		wantName string
		wantNil  bool
		wantErr  bool
	}{
		{
			name: "cache hit skips the database",
			mockCall: func(c *redismock.RedisRepository, m sqlmock.Sqlmock) {
				c.On("Get", mock.Anything, "catalog:item:11").
					Return(`{"item_id":11,"item_code":"WATER","item_name":"Bottled Water","is_batched":true,"reorder_qty":"10"}`, nil)
			},
			wantName: "Bottled Water",
		},
		{
			name: "cache miss reads and fills",
			mockCall: func(c *redismock.RedisRepository, m sqlmock.Sqlmock) {
				c.On("Get", mock.Anything, "catalog:item:11").Return("", stderrors.New("redis: nil"))
				m.ExpectQuery(regexp.QuoteMeta(getItemQuery)).WithArgs(uint64(11)).
					WillReturnRows(sqlmock.NewRows(itemCols).AddRow(11, "WATER", "Bottled Water", true, false, "10", "BTL"))
				c.On("SetWithTTL", mock.Anything, "catalog:item:11", mock.AnythingOfType("string"), time.Minute).Return(nil)
			},
			wantName: "Bottled Water",
		},
		{
			name: "corrupt cache entry falls back to the database",
			mockCall: func(c *redismock.RedisRepository, m sqlmock.Sqlmock) {
				c.On("Get", mock.Anything, "catalog:item:11").Return("{", nil)
				m.ExpectQuery(regexp.QuoteMeta(getItemQuery)).WithArgs(uint64(11)).
					WillReturnRows(sqlmock.NewRows(itemCols).AddRow(11, "WATER", "Bottled Water", true, false, "10", "BTL"))
				c.On("SetWithTTL", mock.Anything, "catalog:item:11", mock.AnythingOfType("string"), time.Minute).
					Return(stderrors.New("connection refused"))
			},
			wantName: "Bottled Water",
		},
		{
			name: "unknown item is nil",
			mockCall: func(c *redismock.RedisRepository, m sqlmock.Sqlmock) {
				c.On("Get", mock.Anything, "catalog:item:11").Return("", nil)
				m.ExpectQuery(regexp.QuoteMeta(getItemQuery)).WithArgs(uint64(11)).
					WillReturnRows(sqlmock.NewRows(itemCols))
			},
			wantNil: true,
		},
		{
			name: "error: database",
			mockCall: func(c *redismock.RedisRepository, m sqlmock.Sqlmock) {
				c.On("Get", mock.Anything, "catalog:item:11").Return("", nil)
				m.ExpectQuery(regexp.QuoteMeta(getItemQuery)).WithArgs(uint64(11)).
					WillReturnError(stderrors.New("gone away"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := redismock.NewRedisRepository(t)
			repo, m := newRepo(t, cache)
			tt.mockCall(cache, m)

			got, err := repo.GetItem(context.Background(), 11)
			switch {
			case tt.wantErr:
				assert.Error(t, err)
			case tt.wantNil:
				require.NoError(t, err)
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Equal(t, tt.wantName, got.Name)
				assert.True(t, got.IsBatched)
				assert.Equal(t, "10", got.ReorderQty.String())
			}
			assert.NoError(t, m.ExpectationsWereMet())
		})
	}
}

func TestGetWarehouse_NoCache(t *testing.T) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewCatalogRepository(sqlx.NewDb(db, "mysql"), nil, time.Minute)

	m.ExpectQuery(regexp.QuoteMeta(getWarehouseQuery)).WithArgs(uint64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"warehouse_id", "warehouse_name", "status_code"}).AddRow(2, "Kingston Central", "A"))

	wh, err := repo.GetWarehouse(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Kingston Central", wh.Name)
	assert.Equal(t, constant.WarehouseStatusActive, wh.Status)
	assert.NoError(t, repo.InvalidateWarehouse(context.Background(), 2))
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestInvalidateWarehouse(t *testing.T) {
	cache := redismock.NewRedisRepository(t)
	repo, _ := newRepo(t, cache)
	cache.On("Delete", mock.Anything, "catalog:warehouse:2").Return(nil)

	assert.NoError(t, repo.InvalidateWarehouse(context.Background(), 2))
}
