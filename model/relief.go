package model

import (
	"time"

	"github.com/muhammadheryan/drims/constant"
	"github.com/shopspring/decimal"
)

type ReliefRequest struct {
	ID          uint64                       `db:"reliefrqst_id" json:"reliefrqst_id"`
	AgencyID    uint64                       `db:"agency_id" json:"agency_id"`
	Status      constant.ReliefRequestStatus `db:"status_code" json:"status_code"`
	ActionByID  *string                      `db:"action_by_id" json:"action_by_id,omitempty"`
	ActionDtime *time.Time                   `db:"action_dtime" json:"action_dtime,omitempty"`
	Audit
}

type ReliefRequestItem struct {
	RequestID  uint64          `db:"reliefrqst_id" json:"reliefrqst_id"`
	ItemID     uint64          `db:"item_id" json:"item_id"`
	RequestQty decimal.Decimal `db:"request_qty" json:"request_qty"`
	IssueQty   decimal.Decimal `db:"issue_qty" json:"issue_qty"`
	Audit
}

type ReliefPackage struct {
	ID            uint64                 `db:"reliefpkg_id" json:"reliefpkg_id"`
	RequestID     uint64                 `db:"reliefrqst_id" json:"reliefrqst_id"`
	ToWarehouseID *uint64                `db:"to_inventory_id" json:"to_inventory_id,omitempty"`
	Status        constant.PackageStatus `db:"status_code" json:"status_code"`
	DispatchDtime *time.Time             `db:"dispatch_dtime" json:"dispatch_dtime,omitempty"`
	VerifyAudit
	Audit
}

// ReliefPackageItem rows are never deleted; a dropped allocation is zeroed in place.
type ReliefPackageItem struct {
	PackageID   uint64          `db:"reliefpkg_id" json:"reliefpkg_id"`
	WarehouseID uint64          `db:"fr_inventory_id" json:"fr_inventory_id"`
	BatchID     uint64          `db:"batch_id" json:"batch_id"`
	ItemID      uint64          `db:"item_id" json:"item_id"`
	ItemQty     decimal.Decimal `db:"item_qty" json:"item_qty"`
	UOMCode     string          `db:"uom_code" json:"uom_code"`
	Audit
}

func (p *ReliefPackageItem) Key() AllocationKey {
	return AllocationKey{WarehouseID: p.WarehouseID, BatchID: p.BatchID, ItemID: p.ItemID}
}

// AllocationKey identifies one package line by source warehouse, batch and item.
type AllocationKey struct {
	WarehouseID uint64
	BatchID     uint64
	ItemID      uint64
}

// Allocation is one line of a final dispatch plan.
type Allocation struct {
	WarehouseID uint64          `json:"fr_inventory_id" validate:"required"`
	BatchID     uint64          `json:"batch_id" validate:"required"`
	ItemID      uint64          `json:"item_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity"`
	UOMCode     string          `json:"uom_code"`
}

func (a Allocation) Key() AllocationKey {
	return AllocationKey{WarehouseID: a.WarehouseID, BatchID: a.BatchID, ItemID: a.ItemID}
}

// StockKey identifies an Inventory aggregate row.
type StockKey struct {
	WarehouseID uint64
	ItemID      uint64
}

type DispatchRequest struct {
	VersionNbr  int64        `json:"version_nbr" validate:"required"`
	Allocations []Allocation `json:"allocations" validate:"dive"`
}

type DispatchResponse struct {
	PackageID uint64 `json:"reliefpkg_id"`
	Message   string `json:"message"`
}
