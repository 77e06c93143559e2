package dispatch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appdispatch "github.com/muhammadheryan/drims/application/dispatch"
	"github.com/muhammadheryan/drims/constant"
	catalogmocks "github.com/muhammadheryan/drims/mocks/repository/catalog"
	inventorymocks "github.com/muhammadheryan/drims/mocks/repository/inventory"
	reliefmocks "github.com/muhammadheryan/drims/mocks/repository/relief"
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

var now = time.Date(2025, 6, 2, 9, 0, 0, 0, clock.Jamaica)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fields struct {
	txRepo        *txmocks.TxRepository
	reliefRepo    *reliefmocks.ReliefRepository
	inventoryRepo *inventorymocks.InventoryRepository
	catalogRepo   *catalogmocks.CatalogRepository
	publisher     *rabbitmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:        txmocks.NewTxRepository(t),
		reliefRepo:    reliefmocks.NewReliefRepository(t),
		inventoryRepo: inventorymocks.NewInventoryRepository(t),
		catalogRepo:   catalogmocks.NewCatalogRepository(t),
		publisher:     rabbitmocks.NewEventPublisher(t),
	}
}

func (f fields) app() appdispatch.DispatchApp {
	return appdispatch.NewDispatchApp(clock.Fixed(now), f.txRepo, f.reliefRepo, f.inventoryRepo, f.catalogRepo, f.publisher)
}

func pendingPackage(version int64) *model.ReliefPackage {
	p := &model.ReliefPackage{ID: 40, RequestID: 8, Status: constant.PackageStatusPending}
	p.VersionNbr = version
	return p
}

func openRequest(status constant.ReliefRequestStatus) *model.ReliefRequest {
	r := &model.ReliefRequest{ID: 8, AgencyID: 3, Status: status}
	r.VersionNbr = 2
	return r
}

// reservedItems is the officer's plan: 20 of item 11 from batch 100 in warehouse 1.
func reservedItems() []model.ReliefPackageItem {
	it := model.ReliefPackageItem{PackageID: 40, WarehouseID: 1, BatchID: 100, ItemID: 11, ItemQty: dec("20"), UOMCode: "CASE"}
	it.VersionNbr = 1
	return []model.ReliefPackageItem{it}
}

func batch(id, wh, item uint64, usable, reserved string) *model.ItemBatch {
	b := &model.ItemBatch{ID: id, WarehouseID: wh, ItemID: item, UsableQty: dec(usable), ReservedQty: dec(reserved), UOMCode: "CASE", Status: constant.BatchStatusActive}
	b.VersionNbr = 3
	return b
}

func inventory(wh, item uint64, usable, reserved string) *model.Inventory {
	inv := &model.Inventory{WarehouseID: wh, ItemID: item, UsableQty: dec(usable), ReservedQty: dec(reserved), UOMCode: "CASE"}
	inv.VersionNbr = 5
	return inv
}

func expectHeader(f fields, tx *sqlx.Tx, pkg *model.ReliefPackage, req *model.ReliefRequest, items []model.ReliefPackageItem) {
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.reliefRepo.On("GetPackageForUpdateTx", mock.Anything, tx, uint64(40)).Return(pkg, nil).Once()
	f.reliefRepo.On("GetRequestForUpdateTx", mock.Anything, tx, uint64(8)).Return(req, nil).Once()
	f.reliefRepo.On("GetPackageItemsForUpdateTx", mock.Anything, tx, uint64(40)).Return(items, nil).Once()
}

func expectFinalize(f fields, tx *sqlx.Tx, issued map[uint64]string) {
	f.reliefRepo.On("UpdatePackageTx", mock.Anything, tx, mock.MatchedBy(func(p *model.ReliefPackage) bool {
		return p.Status == constant.PackageStatusDispatched && p.DispatchDtime != nil &&
			p.VerifyByID != nil && *p.VerifyByID == "MANAGER1" && p.UpdateByID == "MANAGER1"
	})).Return(nil).Once()
	for itemID, qty := range issued {
		itemID := itemID
		ri := &model.ReliefRequestItem{RequestID: 8, ItemID: itemID, RequestQty: dec("100"), IssueQty: dec("10")}
		want := dec("10").Add(dec(qty))
		f.reliefRepo.On("GetRequestItemForUpdateTx", mock.Anything, tx, uint64(8), itemID).Return(ri, nil).Once()
		f.reliefRepo.On("UpdateRequestItemIssueTx", mock.Anything, tx, mock.MatchedBy(func(r *model.ReliefRequestItem) bool {
			return r.ItemID == itemID && r.IssueQty.Equal(want)
		})).Return(nil).Once()
	}
	f.reliefRepo.On("UpdateRequestTx", mock.Anything, tx, mock.MatchedBy(func(r *model.ReliefRequest) bool {
		return r.Status == constant.ReliefRequestStatusPartFilled && r.ActionByID != nil && *r.ActionByID == "MANAGER1"
	})).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()
	f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
}

func TestDispatchApp_SubmitForDispatch(t *testing.T) {
	type args struct {
		plan            []model.Allocation
		expectedVersion int64
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields, tx *sqlx.Tx)
		wantMsg  string
		wantErr  bool
		errCode  constant.ErrorType
		check    func(t *testing.T, err error)
	}{
		{
			name: "success: manager trims one line and adds another",
			args: args{
				plan: []model.Allocation{
					{WarehouseID: 1, BatchID: 200, ItemID: 12, Quantity: dec("10")},
					{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("15"), UOMCode: "case"},
					{WarehouseID: 1, BatchID: 300, ItemID: 11, Quantity: dec("0")},
				},
				expectedVersion: 4,
			},
			mockCall: func(f fields, tx *sqlx.Tx) {
				expectHeader(f, tx, pendingPackage(4), openRequest(constant.ReliefRequestStatusSubmitted), reservedItems())
				f.inventoryRepo.On("GetBatchForUpdateTx", mock.Anything, tx, uint64(100)).Return(batch(100, 1, 11, "50", "20"), nil).Once()
				f.inventoryRepo.On("GetBatchForUpdateTx", mock.Anything, tx, uint64(200)).Return(batch(200, 1, 12, "30", "0"), nil).Once()
				f.inventoryRepo.On("GetInventoryForUpdateTx", mock.Anything, tx, uint64(1), uint64(11)).Return(inventory(1, 11, "50", "20"), nil).Once()
				f.inventoryRepo.On("GetInventoryForUpdateTx", mock.Anything, tx, uint64(1), uint64(12)).Return(inventory(1, 12, "30", "0"), nil).Once()

				// undo
				f.inventoryRepo.On("UpdateBatchQtyTx", mock.Anything, tx, mock.MatchedBy(func(b *model.ItemBatch) bool {
					return b.ID == 100 && b.ReservedQty.IsZero() && b.UsableQty.Equal(dec("50"))
				})).Return(nil).Once()
				f.inventoryRepo.On("UpdateInventoryQtyTx", mock.Anything, tx, mock.MatchedBy(func(inv *model.Inventory) bool {
					return inv.ItemID == 11 && inv.ReservedQty.IsZero() && inv.UsableQty.Equal(dec("50"))
				})).Return(nil).Once()

				// overwrite
				f.reliefRepo.On("UpdatePackageItemQtyTx", mock.Anything, tx, mock.MatchedBy(func(it *model.ReliefPackageItem) bool {
					return it.BatchID == 100 && it.ItemQty.Equal(dec("15")) && it.UOMCode == "CASE"
				})).Return(nil).Once()
				f.reliefRepo.On("InsertPackageItemTx", mock.Anything, tx, mock.MatchedBy(func(it *model.ReliefPackageItem) bool {
					return it.PackageID == 40 && it.BatchID == 200 && it.ItemQty.Equal(dec("10")) && it.UOMCode == "CASE" &&
						it.VersionNbr == 1 && it.CreateByID == "MANAGER1"
				})).Return(nil).Once()

				// deplete
				f.inventoryRepo.On("UpdateBatchQtyTx", mock.Anything, tx, mock.MatchedBy(func(b *model.ItemBatch) bool {
					return b.ID == 100 && b.UsableQty.Equal(dec("35"))
				})).Return(nil).Once()
				f.inventoryRepo.On("UpdateBatchQtyTx", mock.Anything, tx, mock.MatchedBy(func(b *model.ItemBatch) bool {
					return b.ID == 200 && b.UsableQty.Equal(dec("20"))
				})).Return(nil).Once()
				f.inventoryRepo.On("UpdateInventoryQtyTx", mock.Anything, tx, mock.MatchedBy(func(inv *model.Inventory) bool {
					return inv.ItemID == 11 && inv.UsableQty.Equal(dec("35"))
				})).Return(nil).Once()
				f.inventoryRepo.On("UpdateInventoryQtyTx", mock.Anything, tx, mock.MatchedBy(func(inv *model.Inventory) bool {
					return inv.ItemID == 12 && inv.UsableQty.Equal(dec("20"))
				})).Return(nil).Once()

				expectFinalize(f, tx, map[uint64]string{11: "15", 12: "10"})
				f.publisher.On("PublishPackageDispatched", mock.Anything, mock.MatchedBy(func(m rabbitmq.PackageDispatchedMessage) bool {
					return m.PackageID == 40 && m.RequestID == 8 && len(m.Lines) == 2 && m.DispatchedBy == "MANAGER1"
				})).Return(nil).Once()
			},
			wantMsg: "Package #40 dispatched",
		},
		{
			name: "error: 50 requested from a batch holding 30",
			args: args{
				plan:            []model.Allocation{{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("50")}},
				expectedVersion: 4,
			},
			mockCall: func(f fields, tx *sqlx.Tx) {
				expectHeader(f, tx, pendingPackage(4), openRequest(constant.ReliefRequestStatusSubmitted), reservedItems())
				f.inventoryRepo.On("GetBatchForUpdateTx", mock.Anything, tx, uint64(100)).Return(batch(100, 1, 11, "30", "20"), nil).Once()
				f.inventoryRepo.On("GetInventoryForUpdateTx", mock.Anything, tx, uint64(1), uint64(11)).Return(inventory(1, 11, "30", "20"), nil).Once()
				f.inventoryRepo.On("UpdateBatchQtyTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.inventoryRepo.On("UpdateInventoryQtyTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.reliefRepo.On("UpdatePackageItemQtyTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.catalogRepo.On("GetItem", mock.Anything, uint64(11)).Return(&model.Item{ID: 11, Name: "Bottled Water"}, nil).Once()
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1, Name: "MONTEGO BAY"}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
			check: func(t *testing.T, err error) {
				var se *cerr.InsufficientStockError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, "Bottled Water", se.ItemName)
				assert.Equal(t, "MONTEGO BAY", se.WarehouseName)
				assert.True(t, se.Available.Equal(dec("30")))
				assert.False(t, se.Aggregate)
			},
		},
		{
			name: "error: aggregate short while batch is not",
			args: args{
				plan:            []model.Allocation{{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("20")}},
				expectedVersion: 4,
			},
			mockCall: func(f fields, tx *sqlx.Tx) {
				expectHeader(f, tx, pendingPackage(4), openRequest(constant.ReliefRequestStatusSubmitted), reservedItems())
				f.inventoryRepo.On("GetBatchForUpdateTx", mock.Anything, tx, uint64(100)).Return(batch(100, 1, 11, "30", "20"), nil).Once()
				f.inventoryRepo.On("GetInventoryForUpdateTx", mock.Anything, tx, uint64(1), uint64(11)).Return(inventory(1, 11, "15", "20"), nil).Once()
				f.inventoryRepo.On("UpdateBatchQtyTx", mock.Anything, tx, mock.Anything).Return(nil).Twice()
				f.inventoryRepo.On("UpdateInventoryQtyTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.catalogRepo.On("GetItem", mock.Anything, uint64(11)).Return(nil, errors.New("cache down")).Once()
				f.catalogRepo.On("GetWarehouse", mock.Anything, uint64(1)).Return(&model.Warehouse{ID: 1, Name: "MONTEGO BAY"}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
			check: func(t *testing.T, err error) {
				var se *cerr.InsufficientStockError
				require.True(t, errors.As(err, &se))
				assert.True(t, se.Aggregate)
				assert.Equal(t, "Item ID 11", se.ItemName)
			},
		},
		{
			name: "error: stale package version",
			args: args{
				plan:            []model.Allocation{{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("20")}},
				expectedVersion: 3,
			},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.reliefRepo.On("GetPackageForUpdateTx", mock.Anything, tx, uint64(40)).Return(pendingPackage(4), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrStaleVersion,
		},
		{
			name: "error: package already dispatched",
			args: args{
				plan:            []model.Allocation{{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("20")}},
				expectedVersion: 4,
			},
			mockCall: func(f fields, tx *sqlx.Tx) {
				pkg := pendingPackage(4)
				pkg.Status = constant.PackageStatusDispatched
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.reliefRepo.On("GetPackageForUpdateTx", mock.Anything, tx, uint64(40)).Return(pkg, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPackageStatus,
			check: func(t *testing.T, err error) {
				assert.Equal(t, "Package has already been dispatched.", err.Error())
			},
		},
		{
			name: "error: request cancelled",
			args: args{
				plan:            []model.Allocation{{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("20")}},
				expectedVersion: 4,
			},
			mockCall: func(f fields, tx *sqlx.Tx) {
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.reliefRepo.On("GetPackageForUpdateTx", mock.Anything, tx, uint64(40)).Return(pendingPackage(4), nil).Once()
				f.reliefRepo.On("GetRequestForUpdateTx", mock.Anything, tx, uint64(8)).
					Return(openRequest(constant.ReliefRequestStatusCancelled), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequestStatus,
		},
		{
			name: "error: batch reserved less than the officer allocated",
			args: args{
				plan:            []model.Allocation{{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("20")}},
				expectedVersion: 4,
			},
			mockCall: func(f fields, tx *sqlx.Tx) {
				expectHeader(f, tx, pendingPackage(4), openRequest(constant.ReliefRequestStatusSubmitted), reservedItems())
				f.inventoryRepo.On("GetBatchForUpdateTx", mock.Anything, tx, uint64(100)).Return(batch(100, 1, 11, "50", "5"), nil).Once()
				f.inventoryRepo.On("GetInventoryForUpdateTx", mock.Anything, tx, uint64(1), uint64(11)).Return(inventory(1, 11, "50", "20"), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInconsistentReservation,
			check: func(t *testing.T, err error) {
				assert.Equal(t, "Inconsistent reservation state: batch 100 has reserved_qty 5 but LO allocated 20", err.Error())
				assert.True(t, cerr.IsDispatchError(err))
			},
		},
		{
			name: "error: batch belongs to another warehouse",
			args: args{
				plan:            []model.Allocation{{WarehouseID: 2, BatchID: 100, ItemID: 11, Quantity: dec("20")}},
				expectedVersion: 4,
			},
			mockCall: func(f fields, tx *sqlx.Tx) {
				expectHeader(f, tx, pendingPackage(4), openRequest(constant.ReliefRequestStatusSubmitted), reservedItems())
				f.inventoryRepo.On("GetInventoryForUpdateTx", mock.Anything, tx, uint64(1), uint64(11)).Return(inventory(1, 11, "50", "20"), nil).Once()
				f.inventoryRepo.On("GetInventoryForUpdateTx", mock.Anything, tx, uint64(2), uint64(11)).Return(inventory(2, 11, "0", "0"), nil).Once()
				f.inventoryRepo.On("GetBatchForUpdateTx", mock.Anything, tx, uint64(100)).Return(batch(100, 1, 11, "50", "20"), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDispatch,
		},
		{
			name: "error: guarded write loses a race",
			args: args{
				plan:            []model.Allocation{{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("20")}},
				expectedVersion: 4,
			},
			mockCall: func(f fields, tx *sqlx.Tx) {
				expectHeader(f, tx, pendingPackage(4), openRequest(constant.ReliefRequestStatusSubmitted), reservedItems())
				f.inventoryRepo.On("GetBatchForUpdateTx", mock.Anything, tx, uint64(100)).Return(batch(100, 1, 11, "50", "20"), nil).Once()
				f.inventoryRepo.On("GetInventoryForUpdateTx", mock.Anything, tx, uint64(1), uint64(11)).Return(inventory(1, 11, "50", "20"), nil).Once()
				f.inventoryRepo.On("UpdateBatchQtyTx", mock.Anything, tx, mock.Anything).
					Return(&cerr.StaleVersionError{Entity: "itembatch", Key: "batch_id=100", ExpectedVersion: 3}).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrStaleVersion,
		},
		{
			name: "error: negative quantity rejected before any read",
			args: args{
				plan:            []model.Allocation{{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("-1")}},
				expectedVersion: 4,
			},
			wantErr: true,
			errCode: constant.ErrDispatch,
		},
		{
			name: "error: duplicate allocation line",
			args: args{
				plan: []model.Allocation{
					{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("5")},
					{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("6")},
				},
				expectedVersion: 4,
			},
			wantErr: true,
			errCode: constant.ErrDispatch,
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

			got, err := f.app().SubmitForDispatch(context.Background(), 40, tt.args.plan, "manager1", tt.args.expectedVersion)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.errCode, cerr.TypeOf(err))
				if tt.check != nil {
					tt.check(t, err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMsg, got)
		})
	}
}

func TestDispatchApp_Dispatch_AsIsLeavesAvailabilityUnchanged(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	items := reservedItems()
	b := batch(100, 1, 11, "50", "20")
	inv := inventory(1, 11, "50", "20")
	batchAvail := b.UsableQty.Sub(b.ReservedQty)
	invAvail := inv.UsableQty.Sub(inv.ReservedQty)

	f.reliefRepo.On("GetPackageItems", mock.Anything, uint64(40)).Return(items, nil).Once()
	expectHeader(f, tx, pendingPackage(4), openRequest(constant.ReliefRequestStatusPartFilled), reservedItems())
	lockAggregate := f.inventoryRepo.On("GetInventoryForUpdateTx", mock.Anything, tx, uint64(1), uint64(11)).Return(inv, nil).Once()
	// aggregate before batch, the order intake verification and receipts use
	f.inventoryRepo.On("GetBatchForUpdateTx", mock.Anything, tx, uint64(100)).Return(b, nil).Once().NotBefore(lockAggregate)
	f.inventoryRepo.On("UpdateBatchQtyTx", mock.Anything, tx, b).Return(nil).Twice()
	f.inventoryRepo.On("UpdateInventoryQtyTx", mock.Anything, tx, inv).Return(nil).Twice()
	expectFinalize(f, tx, map[uint64]string{11: "20"})
	f.publisher.On("PublishPackageDispatched", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	got, err := f.app().Dispatch(context.Background(), 40, "manager1", &model.DispatchRequest{VersionNbr: 4})
	require.NoError(t, err)
	assert.Equal(t, uint64(40), got.PackageID)

	assert.True(t, b.ReservedQty.IsZero())
	assert.True(t, b.UsableQty.Equal(dec("30")))
	assert.True(t, batchAvail.Equal(b.UsableQty.Sub(b.ReservedQty)))
	assert.True(t, invAvail.Equal(inv.UsableQty.Sub(inv.ReservedQty)))
	f.reliefRepo.AssertNotCalled(t, "UpdatePackageItemQtyTx", mock.Anything, mock.Anything, mock.Anything)
	f.reliefRepo.AssertNotCalled(t, "InsertPackageItemTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchApp_BuildPlanFromExistingAllocations(t *testing.T) {
	f := newFields(t)
	items := reservedItems()
	zeroed := model.ReliefPackageItem{PackageID: 40, WarehouseID: 1, BatchID: 101, ItemID: 11, ItemQty: decimal.Zero, UOMCode: "CASE"}
	items = append(items, zeroed)
	f.reliefRepo.On("GetPackageItems", mock.Anything, uint64(40)).Return(items, nil).Once()

	plan, err := f.app().BuildPlanFromExistingAllocations(context.Background(), 40)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, model.Allocation{WarehouseID: 1, BatchID: 100, ItemID: 11, Quantity: dec("20"), UOMCode: "CASE"}, plan[0])
}
