package model

import (
	"time"

	"github.com/muhammadheryan/drims/constant"
	"github.com/shopspring/decimal"
)

// Inventory is the aggregate stock of one item in one warehouse.
type Inventory struct {
	WarehouseID  uint64                   `db:"inventory_id" json:"warehouse_id"`
	ItemID       uint64                   `db:"item_id" json:"item_id"`
	UsableQty    decimal.Decimal          `db:"usable_qty" json:"usable_qty"`
	ReservedQty  decimal.Decimal          `db:"reserved_qty" json:"reserved_qty"`
	DefectiveQty decimal.Decimal          `db:"defective_qty" json:"defective_qty"`
	ExpiredQty   decimal.Decimal          `db:"expired_qty" json:"expired_qty"`
	UOMCode      string                   `db:"uom_code" json:"uom_code"`
	Status       constant.WarehouseStatus `db:"status_code" json:"status_code"`
	Audit
}

// ItemBatch is one receipt lot. BatchNo is nil for items that are not lot tracked.
type ItemBatch struct {
	ID           uint64               `db:"batch_id" json:"batch_id"`
	WarehouseID  uint64               `db:"inventory_id" json:"warehouse_id"`
	ItemID       uint64               `db:"item_id" json:"item_id"`
	BatchNo      *string              `db:"batch_no" json:"batch_no"`
	BatchDate    *time.Time           `db:"batch_date" json:"batch_date"`
	ExpiryDate   *time.Time           `db:"expiry_date" json:"expiry_date"`
	UsableQty    decimal.Decimal      `db:"usable_qty" json:"usable_qty"`
	ReservedQty  decimal.Decimal      `db:"reserved_qty" json:"reserved_qty"`
	DefectiveQty decimal.Decimal      `db:"defective_qty" json:"defective_qty"`
	ExpiredQty   decimal.Decimal      `db:"expired_qty" json:"expired_qty"`
	UOMCode      string               `db:"uom_code" json:"uom_code"`
	AvgUnitValue decimal.Decimal      `db:"avg_unit_value" json:"avg_unit_value"`
	Status       constant.BatchStatus `db:"status_code" json:"status_code"`
	Audit
}

// StockDelta is an additive change to the usable/defective/expired buckets.
type StockDelta struct {
	Usable    decimal.Decimal
	Defective decimal.Decimal
	Expired   decimal.Decimal
}

func (d StockDelta) Total() decimal.Decimal {
	return d.Usable.Add(d.Defective).Add(d.Expired)
}

// BatchRequest describes a batch to create or merge into.
type BatchRequest struct {
	WarehouseID  uint64
	ItemID       uint64
	BatchNo      *string
	BatchDate    *time.Time
	ExpiryDate   *time.Time
	UOMCode      string
	AvgUnitValue decimal.Decimal
	Delta        StockDelta
	Actor        string
}

type BatchNumberRequest struct {
	ItemCode    string `json:"item_code" validate:"required"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	Date        string `json:"date"`
}

type BatchNumberResponse struct {
	BatchNo string `json:"batch_no"`
}

// ReceiptRequest posts stock directly into a warehouse outside the donation workflow.
type ReceiptRequest struct {
	ItemID       uint64 `json:"item_id" validate:"required"`
	BatchNo      string `json:"batch_no"`
	BatchDate    string `json:"batch_date"`
	ExpiryDate   string `json:"expiry_date"`
	UOMCode      string `json:"uom_code" validate:"required"`
	AvgUnitValue string `json:"avg_unit_value" validate:"decimalstr"`
	UsableQty    string `json:"usable_qty" validate:"required,decimalstr"`
	DefectiveQty string `json:"defective_qty" validate:"decimalstr"`
	ExpiredQty   string `json:"expired_qty" validate:"decimalstr"`
}

type ReceiptResponse struct {
	BatchID uint64  `json:"batch_id"`
	BatchNo *string `json:"batch_no"`
}
