package model

import "github.com/shopspring/decimal"

type StockListItem struct {
	ItemID       uint64          `db:"item_id" json:"item_id"`
	ItemCode     string          `db:"item_code" json:"item_code"`
	ItemName     string          `db:"item_name" json:"item_name"`
	UsableQty    decimal.Decimal `db:"usable_qty" json:"usable_qty"`
	ReservedQty  decimal.Decimal `db:"reserved_qty" json:"reserved_qty"`
	DefectiveQty decimal.Decimal `db:"defective_qty" json:"defective_qty"`
	ExpiredQty   decimal.Decimal `db:"expired_qty" json:"expired_qty"`
	UOMCode      string          `db:"uom_code" json:"uom_code"`
	BelowReorder bool            `db:"below_reorder" json:"below_reorder"`
}

type StockListResponse struct {
	Items      []StockListItem `json:"items"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	PerPage    int             `json:"per_page"`
}

// BatchTotals is the sum of every batch bucket for one (warehouse, item).
type BatchTotals struct {
	UsableQty    decimal.Decimal `db:"usable_qty"`
	ReservedQty  decimal.Decimal `db:"reserved_qty"`
	DefectiveQty decimal.Decimal `db:"defective_qty"`
	ExpiredQty   decimal.Decimal `db:"expired_qty"`
}

type ReconcileReport struct {
	WarehouseID uint64           `json:"warehouse_id"`
	ItemID      uint64           `json:"item_id"`
	Consistent  bool             `json:"consistent"`
	Drift       []ReconcileDrift `json:"drift,omitempty"`
}

type ReconcileDrift struct {
	Bucket    string          `json:"bucket"`
	Inventory decimal.Decimal `json:"inventory"`
	Batches   decimal.Decimal `json:"batches"`
}
