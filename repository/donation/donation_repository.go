package donation

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/drims/model"
	"github.com/muhammadheryan/drims/repository/guard"
)

type DonationRepository interface {
	GetDonationForUpdateTx(ctx context.Context, tx *sqlx.Tx, donationID uint64) (*model.Donation, error)
	GetDonationItemsTx(ctx context.Context, tx *sqlx.Tx, donationID uint64) ([]model.DonationItem, error)
	UpdateDonationStatusTx(ctx context.Context, tx *sqlx.Tx, d *model.Donation) error

	GetIntakeForUpdateTx(ctx context.Context, tx *sqlx.Tx, donationID, warehouseID uint64) (*model.DonationIntake, error)
	GetIntakeItemsForUpdateTx(ctx context.Context, tx *sqlx.Tx, donationID, warehouseID uint64) ([]model.DonationIntakeItem, error)
	InsertIntakeTx(ctx context.Context, tx *sqlx.Tx, in *model.DonationIntake) error
	InsertIntakeItemTx(ctx context.Context, tx *sqlx.Tx, it *model.DonationIntakeItem) (uint64, error)
	UpdateIntakeTx(ctx context.Context, tx *sqlx.Tx, in *model.DonationIntake) error
	UpdateIntakeItemTx(ctx context.Context, tx *sqlx.Tx, it *model.DonationIntakeItem) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewDonationRepository(conn *sqlx.DB) DonationRepository {
	return &SQL{conn: conn}
}

const (
	getDonationForUpdate = `SELECT donation_id, donation_desc, status_code, create_by_id, create_dtime, update_by_id, update_dtime, version_nbr
FROM donation WHERE donation_id = ? FOR UPDATE`

	getDonationItems = `SELECT di.donation_id, di.item_id, it.item_name, di.donation_type, di.item_qty, di.uom_code
FROM donation_item di
JOIN item it ON it.item_id = di.item_id
WHERE di.donation_id = ?
ORDER BY di.item_id`

	getIntakeForUpdate = `SELECT donation_id, inventory_id, intake_date, comments_text, status_code, verify_by_id, verify_dtime,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr
FROM dnintake WHERE donation_id = ? AND inventory_id = ? FOR UPDATE`

	getIntakeItemsForUpdate = `SELECT intake_item_id, donation_id, inventory_id, item_id, batch_no, batch_date, expiry_date, uom_code,
avg_unit_value, ext_item_cost, usable_qty, defective_qty, expired_qty, status_code, comments_text,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr
FROM dnintake_item WHERE donation_id = ? AND inventory_id = ? ORDER BY intake_item_id FOR UPDATE`

	insertIntake = `INSERT INTO dnintake (donation_id, inventory_id, intake_date, comments_text, status_code,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	insertIntakeItem = `INSERT INTO dnintake_item (donation_id, inventory_id, item_id, batch_no, batch_date, expiry_date, uom_code,
avg_unit_value, ext_item_cost, usable_qty, defective_qty, expired_qty, status_code, comments_text,
create_by_id, create_dtime, update_by_id, update_dtime, version_nbr)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
)

func (r *SQL) GetDonationForUpdateTx(ctx context.Context, tx *sqlx.Tx, donationID uint64) (*model.Donation, error) {
	var d model.Donation
	if err := tx.QueryRowxContext(ctx, getDonationForUpdate, donationID).StructScan(&d); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *SQL) GetDonationItemsTx(ctx context.Context, tx *sqlx.Tx, donationID uint64) ([]model.DonationItem, error) {
	items := make([]model.DonationItem, 0)
	if err := tx.SelectContext(ctx, &items, getDonationItems, donationID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) UpdateDonationStatusTx(ctx context.Context, tx *sqlx.Tx, d *model.Donation) error {
	row := guard.Row{Table: "donation", Key: guard.KeyOf("donation_id", d.ID), Where: "donation_id = ?", Args: []any{d.ID}}
	return guard.Update(ctx, tx, row, d, "status_code = ?, update_by_id = ?, update_dtime = ?",
		d.Status, d.UpdateByID, d.UpdateDtime)
}

func (r *SQL) GetIntakeForUpdateTx(ctx context.Context, tx *sqlx.Tx, donationID, warehouseID uint64) (*model.DonationIntake, error) {
	var in model.DonationIntake
	if err := tx.QueryRowxContext(ctx, getIntakeForUpdate, donationID, warehouseID).StructScan(&in); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &in, nil
}

func (r *SQL) GetIntakeItemsForUpdateTx(ctx context.Context, tx *sqlx.Tx, donationID, warehouseID uint64) ([]model.DonationIntakeItem, error) {
	items := make([]model.DonationIntakeItem, 0)
	if err := tx.SelectContext(ctx, &items, getIntakeItemsForUpdate, donationID, warehouseID); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SQL) InsertIntakeTx(ctx context.Context, tx *sqlx.Tx, in *model.DonationIntake) error {
	_, err := tx.ExecContext(ctx, insertIntake,
		in.DonationID, in.WarehouseID, in.IntakeDate, in.CommentsText, in.Status,
		in.CreateByID, in.CreateDtime, in.UpdateByID, in.UpdateDtime, in.VersionNbr)
	return err
}

func (r *SQL) InsertIntakeItemTx(ctx context.Context, tx *sqlx.Tx, it *model.DonationIntakeItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertIntakeItem,
		it.DonationID, it.WarehouseID, it.ItemID, it.BatchNo, it.BatchDate, it.ExpiryDate, it.UOMCode,
		it.AvgUnitValue, it.ExtItemCost, it.UsableQty, it.DefectiveQty, it.ExpiredQty, it.Status, it.CommentsText,
		it.CreateByID, it.CreateDtime, it.UpdateByID, it.UpdateDtime, it.VersionNbr)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	it.ID = uint64(id)
	return it.ID, nil
}

func (r *SQL) UpdateIntakeTx(ctx context.Context, tx *sqlx.Tx, in *model.DonationIntake) error {
	row := guard.Row{
		Table: "dnintake",
		Key:   "donation_id=" + strconv.FormatUint(in.DonationID, 10) + ",inventory_id=" + strconv.FormatUint(in.WarehouseID, 10),
		Where: "donation_id = ? AND inventory_id = ?",
		Args:  []any{in.DonationID, in.WarehouseID},
	}
	return guard.Update(ctx, tx, row, in,
		"status_code = ?, verify_by_id = ?, verify_dtime = ?, update_by_id = ?, update_dtime = ?",
		in.Status, in.VerifyByID, in.VerifyDtime, in.UpdateByID, in.UpdateDtime)
}

func (r *SQL) UpdateIntakeItemTx(ctx context.Context, tx *sqlx.Tx, it *model.DonationIntakeItem) error {
	row := guard.Row{Table: "dnintake_item", Key: guard.KeyOf("intake_item_id", it.ID), Where: "intake_item_id = ?", Args: []any{it.ID}}
	return guard.Update(ctx, tx, row, it,
		`batch_no = ?, batch_date = ?, expiry_date = ?, usable_qty = ?, defective_qty = ?, expired_qty = ?,
ext_item_cost = ?, status_code = ?, comments_text = ?, update_by_id = ?, update_dtime = ?`,
		it.BatchNo, it.BatchDate, it.ExpiryDate, it.UsableQty, it.DefectiveQty, it.ExpiredQty,
		it.ExtItemCost, it.Status, it.CommentsText, it.UpdateByID, it.UpdateDtime)
}
