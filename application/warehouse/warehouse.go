package warehouse

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/muhammadheryan/drims/constant"
	catalogrepo "github.com/muhammadheryan/drims/repository/catalog"
	txrepo "github.com/muhammadheryan/drims/repository/tx"
	warehouserepo "github.com/muhammadheryan/drims/repository/warehouse"
	"github.com/muhammadheryan/drims/utils/audit"
	"github.com/muhammadheryan/drims/utils/clock"
	"github.com/muhammadheryan/drims/utils/errors"
	"github.com/muhammadheryan/drims/utils/logger"
	"go.uber.org/zap"
)

type WarehouseApp interface {
	ActivateWarehouse(ctx context.Context, warehouseID uint64, actor string) error
	// DeactivateWarehouse refuses while any stock in the warehouse is still reserved.
	DeactivateWarehouse(ctx context.Context, warehouseID uint64, actor string) error
}

type warehouseAppImpl struct {
	clock         clock.Clock
	txRepo        txrepo.TxRepository
	warehouseRepo warehouserepo.WarehouseRepository
	catalogRepo   catalogrepo.CatalogRepository
}

func NewWarehouseApp(clk clock.Clock, txRepo txrepo.TxRepository, warehouseRepo warehouserepo.WarehouseRepository, catalogRepo catalogrepo.CatalogRepository) WarehouseApp {
	return &warehouseAppImpl{
		clock:         clk,
		txRepo:        txRepo,
		warehouseRepo: warehouseRepo,
		catalogRepo:   catalogRepo,
	}
}

func (s *warehouseAppImpl) ActivateWarehouse(ctx context.Context, warehouseID uint64, actor string) error {
	return s.setStatus(ctx, "[ActivateWarehouse]", warehouseID, actor, constant.WarehouseStatusActive)
}

func (s *warehouseAppImpl) DeactivateWarehouse(ctx context.Context, warehouseID uint64, actor string) error {
	return s.setStatus(ctx, "[DeactivateWarehouse]", warehouseID, actor, constant.WarehouseStatusInactive)
}

func (s *warehouseAppImpl) setStatus(ctx context.Context, op string, warehouseID uint64, actor string, status constant.WarehouseStatus) error {
	who, err := audit.NormalizeActor(actor)
	if err != nil {
		return err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error(op+" begin tx failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	// Check if warehouse exists
	warehouse, err := s.warehouseRepo.GetWarehouseForUpdateTx(ctx, tx, warehouseID)
	if err != nil {
		logger.Error(op+" get warehouse failed", zap.String("error", err.Error()))
		return errors.Classify(err)
	}
	if warehouse == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if warehouse.Status == status {
		return nil
	}

	if status == constant.WarehouseStatusInactive {
		reserved, err := s.warehouseRepo.CheckReservedStockTx(ctx, tx, warehouseID)
		if err != nil {
			logger.Error(op+" check reserved stock failed", zap.String("error", err.Error()))
			return errors.Classify(err)
		}
		if reserved.IsPositive() {
			return errors.SetCustomErrorMessage(constant.ErrWarehouseHasReservedStock,
				fmt.Sprintf("Warehouse %s still holds %s reserved units", warehouse.Name, reserved.String()))
		}
	}

	err = s.warehouseRepo.UpdateWarehouseStatusTx(ctx, tx, warehouseID, status, who, s.clock.Now())
	if err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error(op+" update status failed", zap.String("error", err.Error()))
		return errors.Classify(err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error(op+" commit tx failed", zap.String("error", err.Error()))
		return errors.Classify(err)
	}
	committed = true

	// The cached copy still carries the old status; intake and receipts read through it.
	if err := s.catalogRepo.InvalidateWarehouse(ctx, warehouseID); err != nil {
		logger.Warn(op+" invalidate cached warehouse failed", zap.Uint64("warehouse_id", warehouseID), zap.String("error", err.Error()))
	}
	return nil
}
