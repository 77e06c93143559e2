package model

import (
	"time"

	"github.com/muhammadheryan/drims/constant"
	"github.com/shopspring/decimal"
)

type Donation struct {
	ID          uint64                  `db:"donation_id" json:"donation_id"`
	Description string                  `db:"donation_desc" json:"donation_desc"`
	Status      constant.DonationStatus `db:"status_code" json:"status_code"`
	Audit
}

// DonationItem carries the authoritative donated quantity for one item.
type DonationItem struct {
	DonationID   uint64                `db:"donation_id"`
	ItemID       uint64                `db:"item_id"`
	ItemName     string                `db:"item_name"`
	DonationType constant.DonationType `db:"donation_type"`
	ItemQty      decimal.Decimal       `db:"item_qty"`
	UOMCode      string                `db:"uom_code"`
}

type DonationIntake struct {
	DonationID   uint64                `db:"donation_id" json:"donation_id"`
	WarehouseID  uint64                `db:"inventory_id" json:"warehouse_id"`
	IntakeDate   time.Time             `db:"intake_date" json:"intake_date"`
	CommentsText *string               `db:"comments_text" json:"comments_text,omitempty"`
	Status       constant.IntakeStatus `db:"status_code" json:"status_code"`
	VerifyAudit
	Audit
}

type DonationIntakeItem struct {
	ID           uint64                    `db:"intake_item_id" json:"intake_item_id"`
	DonationID   uint64                    `db:"donation_id" json:"donation_id"`
	WarehouseID  uint64                    `db:"inventory_id" json:"warehouse_id"`
	ItemID       uint64                    `db:"item_id" json:"item_id"`
	BatchNo      *string                   `db:"batch_no" json:"batch_no"`
	BatchDate    *time.Time                `db:"batch_date" json:"batch_date"`
	ExpiryDate   *time.Time                `db:"expiry_date" json:"expiry_date"`
	UOMCode      string                    `db:"uom_code" json:"uom_code"`
	AvgUnitValue decimal.Decimal           `db:"avg_unit_value" json:"avg_unit_value"`
	ExtItemCost  decimal.Decimal           `db:"ext_item_cost" json:"ext_item_cost"`
	UsableQty    decimal.Decimal           `db:"usable_qty" json:"usable_qty"`
	DefectiveQty decimal.Decimal           `db:"defective_qty" json:"defective_qty"`
	ExpiredQty   decimal.Decimal           `db:"expired_qty" json:"expired_qty"`
	Status       constant.IntakeItemStatus `db:"status_code" json:"status_code"`
	CommentsText *string                   `db:"comments_text" json:"comments_text,omitempty"`
	Audit
}

func (i *DonationIntakeItem) TotalQty() decimal.Decimal {
	return i.UsableQty.Add(i.DefectiveQty).Add(i.ExpiredQty)
}

// BatchKey identifies a lot number of one item across the whole network.
type BatchKey struct {
	ItemID  uint64
	BatchNo string
}

// IntakeEntryForm is the raw phase A submission.
type IntakeEntryForm struct {
	IntakeDate string            `json:"intake_date"`
	Comments   string            `json:"comments_text"`
	Lines      []IntakeEntryLine `json:"lines" validate:"dive"`
}

type IntakeEntryLine struct {
	ItemID       uint64 `json:"item_id" validate:"required"`
	BatchNo      string `json:"batch_no"`
	BatchDate    string `json:"batch_date"`
	ExpiryDate   string `json:"expiry_date"`
	UOMCode      string `json:"uom_code"`
	AvgUnitValue string `json:"avg_unit_value"`
	UsableQty    string `json:"usable_qty"`
	DefectiveQty string `json:"defective_qty"`
	ExpiredQty   string `json:"expired_qty"`
	Comments     string `json:"comments_text"`
}

// IntakeVerifyForm is the raw phase B submission. Lines are keyed by intake item id;
// lines absent from the form keep their entered values.
type IntakeVerifyForm struct {
	Lines []IntakeVerifyLine `json:"lines" validate:"dive"`
}

type IntakeVerifyLine struct {
	IntakeItemID uint64 `json:"intake_item_id" validate:"required"`
	BatchNo      string `json:"batch_no"`
	BatchDate    string `json:"batch_date"`
	ExpiryDate   string `json:"expiry_date"`
	DefectiveQty string `json:"defective_qty"`
	ExpiredQty   string `json:"expired_qty"`
	Comments     string `json:"comments_text"`
}

// WorkflowResult is the outcome envelope for the intake workflow.
type WorkflowResult struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}
