package model

import (
	"github.com/muhammadheryan/drims/constant"
	"github.com/shopspring/decimal"
)

type Item struct {
	ID             uint64          `db:"item_id" json:"item_id"`
	Code           string          `db:"item_code" json:"item_code"`
	Name           string          `db:"item_name" json:"item_name"`
	IsBatched      bool            `db:"is_batched_flag" json:"is_batched"`
	CanExpire      bool            `db:"can_expire_flag" json:"can_expire"`
	ReorderQty     decimal.Decimal `db:"reorder_qty" json:"reorder_qty"`
	DefaultUOMCode string          `db:"default_uom_code" json:"default_uom_code"`
}

type Warehouse struct {
	ID     uint64                   `db:"warehouse_id" json:"warehouse_id"`
	Name   string                   `db:"warehouse_name" json:"warehouse_name"`
	Status constant.WarehouseStatus `db:"status_code" json:"status_code"`
}
