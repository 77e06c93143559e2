package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/drims/model"
	redisrepo "github.com/muhammadheryan/drims/repository/redis"
	"github.com/muhammadheryan/drims/utils/logger"
	"go.uber.org/zap"
)

// CatalogRepository looks up master data. Items and warehouses are read-mostly, so lookups are
// served from redis when possible. A nil result with a nil error means not found.
type CatalogRepository interface {
	GetItem(ctx context.Context, itemID uint64) (*model.Item, error)
	GetItemByCode(ctx context.Context, code string) (*model.Item, error)
	GetWarehouse(ctx context.Context, warehouseID uint64) (*model.Warehouse, error)
	InvalidateWarehouse(ctx context.Context, warehouseID uint64) error
}

type SQL struct {
	conn  *sqlx.DB
	cache redisrepo.Repository
	ttl   time.Duration
}

func NewCatalogRepository(conn *sqlx.DB, cache redisrepo.Repository, ttl time.Duration) CatalogRepository {
	return &SQL{conn: conn, cache: cache, ttl: ttl}
}

const (
	itemColumns        = `SELECT item_id, item_code, item_name, is_batched_flag, can_expire_flag, reorder_qty, default_uom_code FROM item`
	getItemQuery       = itemColumns + ` WHERE item_id = ?`
	getItemByCodeQuery = itemColumns + ` WHERE item_code = ?`
	getWarehouseQuery  = `SELECT warehouse_id, warehouse_name, status_code FROM warehouse WHERE warehouse_id = ?`
)

func itemKey(id uint64) string      { return fmt.Sprintf("catalog:item:%d", id) }
func warehouseKey(id uint64) string { return fmt.Sprintf("catalog:warehouse:%d", id) }

func (s *SQL) GetItem(ctx context.Context, itemID uint64) (*model.Item, error) {
	var item model.Item
	if s.fromCache(ctx, itemKey(itemID), &item) {
		return &item, nil
	}
	if err := s.conn.QueryRowxContext(ctx, getItemQuery, itemID).StructScan(&item); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.toCache(ctx, itemKey(itemID), &item)
	return &item, nil
}

func (s *SQL) GetItemByCode(ctx context.Context, code string) (*model.Item, error) {
	var item model.Item
	if err := s.conn.QueryRowxContext(ctx, getItemByCodeQuery, code).StructScan(&item); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.toCache(ctx, itemKey(item.ID), &item)
	return &item, nil
}

func (s *SQL) GetWarehouse(ctx context.Context, warehouseID uint64) (*model.Warehouse, error) {
	var wh model.Warehouse
	if s.fromCache(ctx, warehouseKey(warehouseID), &wh) {
		return &wh, nil
	}
	if err := s.conn.QueryRowxContext(ctx, getWarehouseQuery, warehouseID).StructScan(&wh); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	s.toCache(ctx, warehouseKey(warehouseID), &wh)
	return &wh, nil
}

// InvalidateWarehouse drops the cached row after a status change.
func (s *SQL) InvalidateWarehouse(ctx context.Context, warehouseID uint64) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, warehouseKey(warehouseID))
}

// Cache failures degrade to a database read; they are never returned.
func (s *SQL) fromCache(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	val, err := s.cache.Get(ctx, key)
	if err != nil || val == "" {
		return false
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		logger.Warn("[catalog] bad cache entry", zap.String("key", key), zap.String("error", err.Error()))
		return false
	}
	return true
}

func (s *SQL) toCache(ctx context.Context, key string, v any) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.SetWithTTL(ctx, key, string(b), s.ttl); err != nil {
		logger.Debug("[catalog] cache set", zap.String("key", key), zap.String("error", err.Error()))
	}
}
