package dispatch

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/drims/constant"
	"github.com/muhammadheryan/drims/model"
	catalogrepo "github.com/muhammadheryan/drims/repository/catalog"
	inventoryrepo "github.com/muhammadheryan/drims/repository/inventory"
	reliefrepo "github.com/muhammadheryan/drims/repository/relief"
	txrepo "github.com/muhammadheryan/drims/repository/tx"
	"github.com/muhammadheryan/drims/thirdparty/rabbitmq"
	"github.com/muhammadheryan/drims/utils/audit"
	"github.com/muhammadheryan/drims/utils/clock"
	"github.com/muhammadheryan/drims/utils/errors"
	"github.com/muhammadheryan/drims/utils/logger"
	"go.uber.org/zap"
)

// DispatchApp turns a package's reservation into a depletion. The officer's reserved plan is
// released, the manager's final plan replaces it, stock leaves the warehouse and the request
// is marked partly filled, all in one transaction.
type DispatchApp interface {
	SubmitForDispatch(ctx context.Context, packageID uint64, plan []model.Allocation, actor string, expectedVersion int64) (string, error)
	BuildPlanFromExistingAllocations(ctx context.Context, packageID uint64) ([]model.Allocation, error)
	// Dispatch submits req's plan, or the package's current allocations when req carries none.
	Dispatch(ctx context.Context, packageID uint64, actor string, req *model.DispatchRequest) (*model.DispatchResponse, error)
}

type dispatchAppImpl struct {
	clock         clock.Clock
	txRepo        txrepo.TxRepository
	reliefRepo    reliefrepo.ReliefRepository
	inventoryRepo inventoryrepo.InventoryRepository
	catalogRepo   catalogrepo.CatalogRepository
	publisher     rabbitmq.EventPublisher
}

func NewDispatchApp(clk clock.Clock, txRepo txrepo.TxRepository, reliefRepo reliefrepo.ReliefRepository, inventoryRepo inventoryrepo.InventoryRepository,
	catalogRepo catalogrepo.CatalogRepository, publisher rabbitmq.EventPublisher) DispatchApp {
	return &dispatchAppImpl{
		clock:         clk,
		txRepo:        txRepo,
		reliefRepo:    reliefRepo,
		inventoryRepo: inventoryRepo,
		catalogRepo:   catalogRepo,
		publisher:     publisher,
	}
}

func (s *dispatchAppImpl) Dispatch(ctx context.Context, packageID uint64, actor string, req *model.DispatchRequest) (*model.DispatchResponse, error) {
	plan := req.Allocations
	if len(plan) == 0 {
		var err error
		if plan, err = s.BuildPlanFromExistingAllocations(ctx, packageID); err != nil {
			return nil, err
		}
	}
	msg, err := s.SubmitForDispatch(ctx, packageID, plan, actor, req.VersionNbr)
	if err != nil {
		return nil, err
	}
	return &model.DispatchResponse{PackageID: packageID, Message: msg}, nil
}

// BuildPlanFromExistingAllocations returns the package's live allocations as a final plan, so
// an approve-as-is runs through the same reconciliation as an edited plan.
func (s *dispatchAppImpl) BuildPlanFromExistingAllocations(ctx context.Context, packageID uint64) ([]model.Allocation, error) {
	items, err := s.reliefRepo.GetPackageItems(ctx, packageID)
	if err != nil {
		logger.Error("[BuildPlanFromExistingAllocations] get package items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	plan := make([]model.Allocation, 0, len(items))
	for _, it := range items {
		if !it.ItemQty.IsPositive() {
			continue
		}
		plan = append(plan, model.Allocation{
			WarehouseID: it.WarehouseID,
			BatchID:     it.BatchID,
			ItemID:      it.ItemID,
			Quantity:    it.ItemQty,
			UOMCode:     it.UOMCode,
		})
	}
	return plan, nil
}

func (s *dispatchAppImpl) SubmitForDispatch(ctx context.Context, packageID uint64, plan []model.Allocation, actor string, expectedVersion int64) (string, error) {
	who, err := audit.NormalizeActor(actor)
	if err != nil {
		return "", err
	}
	final, err := normalizePlan(plan)
	if err != nil {
		return "", err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[SubmitForDispatch] begin tx", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	pkg, err := s.reliefRepo.GetPackageForUpdateTx(ctx, tx, packageID)
	if err != nil {
		return "", s.fail("[SubmitForDispatch] get package", err)
	}
	if pkg == nil {
		return "", errors.SetCustomErrorMessage(constant.ErrNotFound, fmt.Sprintf("Package #%d not found", packageID))
	}
	if pkg.VersionNbr != expectedVersion {
		logger.Info("[SubmitForDispatch] stale package version", zap.Uint64("package_id", packageID),
			zap.Int64("expected", expectedVersion), zap.Int64("actual", pkg.VersionNbr))
		return "", &errors.StaleVersionError{Entity: "reliefpkg", Key: fmt.Sprintf("reliefpkg_id=%d", packageID), ExpectedVersion: expectedVersion}
	}
	switch pkg.Status {
	case constant.PackageStatusPending, constant.PackageStatusVerified:
	case constant.PackageStatusDispatched:
		return "", errors.SetCustomErrorMessage(constant.ErrInvalidPackageStatus, "Package has already been dispatched.")
	default:
		return "", errors.SetCustomErrorMessage(constant.ErrInvalidPackageStatus,
			fmt.Sprintf("Package #%d cannot be dispatched from status %s", packageID, pkg.Status))
	}

	request, err := s.reliefRepo.GetRequestForUpdateTx(ctx, tx, pkg.RequestID)
	if err != nil {
		return "", s.fail("[SubmitForDispatch] get request", err)
	}
	if request == nil {
		return "", errors.SetCustomErrorMessage(constant.ErrNotFound, fmt.Sprintf("Relief request #%d not found", pkg.RequestID))
	}
	if !request.Status.AcceptsDispatch() {
		return "", errors.SetCustomErrorMessage(constant.ErrInvalidRequestStatus,
			fmt.Sprintf("Relief request #%d no longer accepts dispatches", request.ID))
	}

	oldItems, err := s.reliefRepo.GetPackageItemsForUpdateTx(ctx, tx, packageID)
	if err != nil {
		return "", s.fail("[SubmitForDispatch] get package items", err)
	}

	r := &reconciler{
		app:   s,
		tx:    tx,
		actor: who,
		now:   s.clock.Now(),
		pkg:   pkg,
		old:   oldItems,
		final: final,
	}
	if err := r.lockStock(ctx); err != nil {
		return "", s.fail("[SubmitForDispatch] lock stock", err)
	}
	if err := r.undoReservations(ctx); err != nil {
		return "", s.fail("[SubmitForDispatch] undo reservations", err)
	}
	if err := r.overwritePackageItems(ctx); err != nil {
		return "", s.fail("[SubmitForDispatch] overwrite package items", err)
	}
	if err := r.depleteStock(ctx); err != nil {
		return "", s.fail("[SubmitForDispatch] deplete stock", err)
	}
	if err := r.finalize(ctx, request); err != nil {
		return "", s.fail("[SubmitForDispatch] finalize", err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[SubmitForDispatch] commit tx", zap.String("error", err.Error()))
		return "", errors.Classify(err)
	}
	committed = true

	logger.Info("[SubmitForDispatch] package dispatched", zap.Uint64("package_id", packageID),
		zap.Uint64("request_id", request.ID), zap.Int("lines", len(final)), zap.String("actor", who))
	if s.publisher != nil {
		if err := s.publisher.PublishPackageDispatched(ctx, r.event(request)); err != nil {
			logger.Error("[SubmitForDispatch] publish package dispatched", zap.String("error", err.Error()))
		}
	}
	return fmt.Sprintf("Package #%d dispatched", packageID), nil
}

// fail classifies err for the caller. Business rejections are expected and logged quietly.
func (s *dispatchAppImpl) fail(op string, err error) error {
	out := errors.Classify(err)
	if errors.TypeOf(out) == constant.ErrInternal {
		logger.Error(op, zap.String("error", err.Error()))
	} else {
		logger.Info(op, zap.String("reason", err.Error()))
	}
	return out
}

func (s *dispatchAppImpl) itemName(ctx context.Context, itemID uint64) string {
	item, err := s.catalogRepo.GetItem(ctx, itemID)
	if err != nil || item == nil {
		return fmt.Sprintf("Item ID %d", itemID)
	}
	return item.Name
}

func (s *dispatchAppImpl) warehouseName(ctx context.Context, warehouseID uint64) string {
	wh, err := s.catalogRepo.GetWarehouse(ctx, warehouseID)
	if err != nil || wh == nil {
		return fmt.Sprintf("Warehouse ID %d", warehouseID)
	}
	return wh.Name
}
