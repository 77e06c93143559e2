package intake_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appintake "github.com/muhammadheryan/drims/application/intake"
	"github.com/muhammadheryan/drims/constant"
	batchmocks "github.com/muhammadheryan/drims/mocks/application/batch"
	catalogmocks "github.com/muhammadheryan/drims/mocks/repository/catalog"
	donationmocks "github.com/muhammadheryan/drims/mocks/repository/donation"
	inventorymocks "github.com/muhammadheryan/drims/mocks/repository/inventory"
	txmocks "github.com/muhammadheryan/drims/mocks/repository/tx"
	rabbitmocks "github.com/muhammadheryan/drims/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/drims/model"
	"github.com/muhammadheryan/drims/thirdparty/rabbitmq"
	"github.com/muhammadheryan/drims/utils/clock"
	cerr "github.com/muhammadheryan/drims/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	now       = time.Date(2025, 3, 10, 14, 30, 0, 0, clock.Jamaica)
	warehouse = &model.Warehouse{ID: 2, Name: "KINGSTON CENTRAL", Status: constant.WarehouseStatusActive}
	water     = &model.Item{ID: 11, Code: "WATER", Name: "Bottled Water", IsBatched: true, DefaultUOMCode: "CASE"}
	rice      = &model.Item{ID: 12, Code: "RICE", Name: "Rice 5kg", CanExpire: true, DefaultUOMCode: "BAG"}
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

type fields struct {
	txRepo        *txmocks.TxRepository
	donationRepo  *donationmocks.DonationRepository
	inventoryRepo *inventorymocks.InventoryRepository
	catalogRepo   *catalogmocks.CatalogRepository
	batchApp      *batchmocks.BatchApp
	publisher     *rabbitmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:        txmocks.NewTxRepository(t),
		donationRepo:  donationmocks.NewDonationRepository(t),
		inventoryRepo: inventorymocks.NewInventoryRepository(t),
		catalogRepo:   catalogmocks.NewCatalogRepository(t),
		batchApp:      batchmocks.NewBatchApp(t),
		publisher:     rabbitmocks.NewEventPublisher(t),
	}
}

func (f fields) app() appintake.IntakeApp {
	return appintake.NewIntakeApp(clock.Fixed(now), f.txRepo, f.donationRepo, f.inventoryRepo, f.catalogRepo, f.batchApp, f.publisher)
}

func donatedGoods() []model.DonationItem {
	return []model.DonationItem{
		{DonationID: 5, ItemID: 11, ItemName: "Bottled Water", DonationType: constant.DonationTypeGoods, ItemQty: dec("100"), UOMCode: "CASE"},
		{DonationID: 5, ItemID: 12, ItemName: "Rice 5kg", DonationType: constant.DonationTypeGoods, ItemQty: dec("40"), UOMCode: "BAG"},
		{DonationID: 5, ItemID: 99, DonationType: constant.DonationTypeFunds, ItemQty: dec("5000")},
	}
}

func expectGoods(f fields, tx *sqlx.Tx) {
	f.donationRepo.On("GetDonationItemsTx", mock.Anything, tx, uint64(5)).Return(donatedGoods(), nil).Once()
	f.catalogRepo.On("GetItem", mock.Anything, uint64(11)).Return(water, nil).Once()
	f.catalogRepo.On("GetItem", mock.Anything, uint64(12)).Return(rice, nil).Once()
}

func validEntryForm() *model.IntakeEntryForm {
	return &model.IntakeEntryForm{
		IntakeDate: "2025-03-10",
		Comments:   "received at dock 3",
		Lines: []model.IntakeEntryLine{
			{ItemID: 11, BatchNo: "wtr-0310", BatchDate: "2025-03-01", UOMCode: "case", AvgUnitValue: "12.50", UsableQty: "90", DefectiveQty: "10"},
			{ItemID: 12, ExpiryDate: "2026-01-31", UOMCode: "BAG", AvgUnitValue: "8", UsableQty: "40"},
		},
	}
}

func TestIntakeApp_CreateIntakeEntry(t *testing.T) {
	tests := []struct {
		name     string
		form     *model.IntakeEntryForm
		actor    string
		mockCall func(f fields, tx *sqlx.Tx)
		wantMsg  string
		wantErr  bool
		errCode  constant.ErrorType
		errMsgs  []string
	}{
		{
			name:  "success: entry staged without touching stock",
			form:  validEntryForm(),
			actor: "clerk1",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.donationRepo.On("GetDonationForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.Donation{ID: 5, Status: constant.DonationStatusVerified}, nil).Once()
				f.donationRepo.On("GetIntakeForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).Return(nil, nil).Once()
				expectGoods(f, tx)
				f.inventoryRepo.On("BatchNumberExists", mock.Anything, uint64(11), "WTR-0310").Return(false, nil).Once()
				f.donationRepo.On("InsertIntakeTx", mock.Anything, tx, mock.MatchedBy(func(in *model.DonationIntake) bool {
					return in.Status == constant.IntakeStatusEntered && in.CreateByID == "CLERK1" && in.VersionNbr == 1 &&
						in.CommentsText != nil && *in.CommentsText == "RECEIVED AT DOCK 3"
				})).Return(nil).Once()
				f.donationRepo.On("InsertIntakeItemTx", mock.Anything, tx, mock.MatchedBy(func(it *model.DonationIntakeItem) bool {
					return it.ItemID == 11 && it.UOMCode == "CASE" && it.ExtItemCost.Equal(dec("1250")) &&
						it.Status == constant.IntakeItemStatusPending && it.WarehouseID == 2
				})).Return(uint64(1), nil).Once()
				f.donationRepo.On("InsertIntakeItemTx", mock.Anything, tx, mock.MatchedBy(func(it *model.DonationIntakeItem) bool {
					return it.ItemID == 12 && it.ExpiryDate != nil && it.BatchNo == nil
				})).Return(uint64(2), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
			},
			wantMsg: "Intake entry for Donation #5 submitted for verification",
		},
		{
			name: "error: zero usable is rejected before any write",
			form: func() *model.IntakeEntryForm {
				f := validEntryForm()
				f.Lines[1].UsableQty = "0"
				f.Lines[1].DefectiveQty = "40"
				return f
			}(),
			actor: "clerk1",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.donationRepo.On("GetDonationForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.Donation{ID: 5, Status: constant.DonationStatusVerified}, nil).Once()
				f.donationRepo.On("GetIntakeForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).Return(nil, nil).Once()
				expectGoods(f, tx)
				f.inventoryRepo.On("BatchNumberExists", mock.Anything, uint64(11), "WTR-0310").Return(false, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidationFailed,
			errMsgs: []string{"Rice 5kg: Usable quantity cannot be zero. At least some portion of the donation must be usable."},
		},
		{
			name:  "error: donation not verified",
			form:  validEntryForm(),
			actor: "clerk1",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.donationRepo.On("GetDonationForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.Donation{ID: 5, Status: constant.DonationStatusEntered}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidDonationStatus,
		},
		{
			name:  "error: intake already exists",
			form:  validEntryForm(),
			actor: "clerk1",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.donationRepo.On("GetDonationForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.Donation{ID: 5, Status: constant.DonationStatusVerified}, nil).Once()
				f.donationRepo.On("GetIntakeForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).
					Return(&model.DonationIntake{DonationID: 5, WarehouseID: 2, Status: constant.IntakeStatusEntered}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDuplicateIntake,
		},
		{
			name:  "error: batch number already on file",
			form:  validEntryForm(),
			actor: "clerk1",
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.donationRepo.On("GetDonationForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.Donation{ID: 5, Status: constant.DonationStatusVerified}, nil).Once()
				f.donationRepo.On("GetIntakeForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).Return(nil, nil).Once()
				expectGoods(f, tx)
				f.inventoryRepo.On("BatchNumberExists", mock.Anything, uint64(11), "WTR-0310").Return(true, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidationFailed,
		},
		{
			name:    "error: blank actor",
			form:    validEntryForm(),
			actor:   "   ",
			wantErr: true,
			errCode: constant.ErrInvalidActor,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(f, tx)
			}

			got, err := f.app().CreateIntakeEntry(context.Background(), 5, 2, tt.actor, tt.form)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				if tt.errMsgs != nil {
					var verr *cerr.ValidationError
					require.True(t, errors.As(err, &verr))
					assert.Equal(t, tt.errMsgs, verr.Messages)
				}
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Success)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}

func enteredIntake() *model.DonationIntake {
	in := &model.DonationIntake{DonationID: 5, WarehouseID: 2, Status: constant.IntakeStatusEntered}
	in.VersionNbr = 1
	return in
}

func enteredItems() []model.DonationIntakeItem {
	expiry := time.Date(2026, 1, 31, 0, 0, 0, 0, clock.Jamaica)
	batchDate := time.Date(2025, 3, 1, 0, 0, 0, 0, clock.Jamaica)
	return []model.DonationIntakeItem{
		{ID: 21, DonationID: 5, WarehouseID: 2, ItemID: 12, ExpiryDate: &expiry, UOMCode: "BAG", AvgUnitValue: dec("8"),
			UsableQty: dec("40"), DefectiveQty: decimal.Zero, ExpiredQty: decimal.Zero, Status: constant.IntakeItemStatusPending},
		{ID: 20, DonationID: 5, WarehouseID: 2, ItemID: 11, BatchNo: strPtr("WTR-0310"), BatchDate: &batchDate, UOMCode: "CASE",
			AvgUnitValue: dec("12.5"), UsableQty: dec("90"), DefectiveQty: dec("10"), ExpiredQty: decimal.Zero, Status: constant.IntakeItemStatusPending},
	}
}

func TestIntakeApp_VerifyIntakeEntry(t *testing.T) {
	tests := []struct {
		name     string
		form     *model.IntakeVerifyForm
		mockCall func(f fields, tx *sqlx.Tx)
		wantMsg  string
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: reviewer moves stock to defective and posts inventory",
			form: &model.IntakeVerifyForm{Lines: []model.IntakeVerifyLine{
				{IntakeItemID: 20, BatchNo: "WTR-0310", BatchDate: "2025-03-01", DefectiveQty: "15"},
			}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.donationRepo.On("GetDonationForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.Donation{ID: 5, Status: constant.DonationStatusVerified}, nil).Once()
				f.donationRepo.On("GetIntakeForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).Return(enteredIntake(), nil).Once()
				f.donationRepo.On("GetIntakeItemsForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).Return(enteredItems(), nil).Once()
				expectGoods(f, tx)
				f.inventoryRepo.On("BatchNumberExistsTx", mock.Anything, tx, uint64(11), "WTR-0310").Return(false, nil).Once()
				f.donationRepo.On("UpdateIntakeTx", mock.Anything, tx, mock.MatchedBy(func(in *model.DonationIntake) bool {
					return in.Status == constant.IntakeStatusVerified && in.VerifyByID != nil && *in.VerifyByID == "SUPERVISOR"
				})).Return(nil).Once()

				f.donationRepo.On("UpdateIntakeItemTx", mock.Anything, tx, mock.MatchedBy(func(it *model.DonationIntakeItem) bool {
					return it.ID == 20 && it.UsableQty.Equal(dec("85")) && it.DefectiveQty.Equal(dec("15")) &&
						it.Status == constant.IntakeItemStatusVerified
				})).Return(nil).Once()
				// aggregate before batch on every line
				water := f.batchApp.On("PostInventoryTx", mock.Anything, tx, uint64(2), uint64(11), "CASE", mock.Anything, "supervisor").
					Return(&model.Inventory{}, nil).Once()
				f.batchApp.On("FindOrCreateBatchTx", mock.Anything, tx, mock.MatchedBy(func(r *model.BatchRequest) bool {
					return r.ItemID == 11 && r.Delta.Usable.Equal(dec("85")) && r.Delta.Defective.Equal(dec("15"))
				})).Return(&model.ItemBatch{ID: 300, ItemID: 11}, nil).Once().NotBefore(water)

				f.donationRepo.On("UpdateIntakeItemTx", mock.Anything, tx, mock.MatchedBy(func(it *model.DonationIntakeItem) bool {
					return it.ID == 21 && it.UsableQty.Equal(dec("40"))
				})).Return(nil).Once()
				tarp := f.batchApp.On("PostInventoryTx", mock.Anything, tx, uint64(2), uint64(12), "BAG", mock.Anything, "supervisor").
					Return(&model.Inventory{}, nil).Once()
				f.batchApp.On("FindOrCreateBatchTx", mock.Anything, tx, mock.MatchedBy(func(r *model.BatchRequest) bool {
					return r.ItemID == 12 && r.BatchNo == nil
				})).Return(&model.ItemBatch{ID: 301, ItemID: 12}, nil).Once().NotBefore(tarp)

				f.donationRepo.On("UpdateDonationStatusTx", mock.Anything, tx, mock.MatchedBy(func(d *model.Donation) bool {
					return d.Status == constant.DonationStatusProcessed
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.publisher.On("PublishIntakeVerified", mock.Anything, mock.MatchedBy(func(m rabbitmq.IntakeVerifiedMessage) bool {
					return m.DonationID == 5 && len(m.Lines) == 2 && m.Lines[0].BatchID == 300
				})).Return(nil).Once()
			},
			wantMsg: "Intake for Donation #5 verified and inventory updated",
		},
		{
			name: "error: already verified",
			form: &model.IntakeVerifyForm{},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.donationRepo.On("GetDonationForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.Donation{ID: 5, Status: constant.DonationStatusProcessed}, nil).Once()
				in := enteredIntake()
				in.Status = constant.IntakeStatusVerified
				f.donationRepo.On("GetIntakeForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).Return(in, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidIntakeStatus,
		},
		{
			name: "error: defective exceeds line total",
			form: &model.IntakeVerifyForm{Lines: []model.IntakeVerifyLine{
				{IntakeItemID: 21, DefectiveQty: "30", ExpiredQty: "11"},
			}},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.donationRepo.On("GetDonationForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.Donation{ID: 5, Status: constant.DonationStatusVerified}, nil).Once()
				f.donationRepo.On("GetIntakeForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).Return(enteredIntake(), nil).Once()
				f.donationRepo.On("GetIntakeItemsForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).Return(enteredItems(), nil).Once()
				expectGoods(f, tx)
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidationFailed,
		},
		{
			name: "error: concurrent verifier wins the header",
			form: &model.IntakeVerifyForm{},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(2)).Return(warehouse, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.donationRepo.On("GetDonationForUpdateTx", mock.Anything, tx, uint64(5)).
					Return(&model.Donation{ID: 5, Status: constant.DonationStatusVerified}, nil).Once()
				f.donationRepo.On("GetIntakeForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).Return(enteredIntake(), nil).Once()
				f.donationRepo.On("GetIntakeItemsForUpdateTx", mock.Anything, tx, uint64(5), uint64(2)).Return(enteredItems(), nil).Once()
				expectGoods(f, tx)
				f.inventoryRepo.On("BatchNumberExistsTx", mock.Anything, tx, uint64(11), "WTR-0310").Return(false, nil).Once()
				f.donationRepo.On("UpdateIntakeTx", mock.Anything, tx, mock.Anything).
					Return(&cerr.StaleVersionError{Entity: "dnintake", Key: "donation_id=5", ExpectedVersion: 1}).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrStaleVersion,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tx := &sqlx.Tx{}
			if tt.mockCall != nil {
				tt.mockCall(f, tx)
			}

			got, err := f.app().VerifyIntakeEntry(context.Background(), 5, 2, "supervisor", tt.form)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Success)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}
}
