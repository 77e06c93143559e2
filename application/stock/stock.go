package stock

import (
	"context"

	"github.com/muhammadheryan/drims/constant"
	"github.com/muhammadheryan/drims/model"
	catalogrepo "github.com/muhammadheryan/drims/repository/catalog"
	inventoryrepo "github.com/muhammadheryan/drims/repository/inventory"
	"github.com/muhammadheryan/drims/utils/errors"
	"github.com/muhammadheryan/drims/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type StockApp interface {
	ListStock(ctx context.Context, warehouseID uint64, page, perPage int) (*model.StockListResponse, error)
	// Reconcile compares the Inventory aggregate with the sum of its batches. It only reports;
	// nothing is corrected.
	Reconcile(ctx context.Context, warehouseID, itemID uint64) (*model.ReconcileReport, error)
}

type stockAppImpl struct {
	inventoryRepo inventoryrepo.InventoryRepository
	catalogRepo   catalogrepo.CatalogRepository
}

func NewStockApp(inventoryRepo inventoryrepo.InventoryRepository, catalogRepo catalogrepo.CatalogRepository) StockApp {
	return &stockAppImpl{inventoryRepo: inventoryRepo, catalogRepo: catalogRepo}
}

func (s *stockAppImpl) ListStock(ctx context.Context, warehouseID uint64, page, perPage int) (*model.StockListResponse, error) {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 10
	}

	wh, err := s.catalogRepo.GetWarehouse(ctx, warehouseID)
	if err != nil {
		logger.Error("[ListStock] error catalogRepo.GetWarehouse", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if wh == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	items, total, err := s.inventoryRepo.ListStock(ctx, warehouseID, page, perPage)
	if err != nil {
		logger.Error("[ListStock] error inventoryRepo.ListStock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.StockListResponse{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
	}, nil
}

func (s *stockAppImpl) Reconcile(ctx context.Context, warehouseID, itemID uint64) (*model.ReconcileReport, error) {
	inv, err := s.inventoryRepo.GetInventory(ctx, warehouseID, itemID)
	if err != nil {
		logger.Error("[Reconcile] error inventoryRepo.GetInventory", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if inv == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	totals, err := s.inventoryRepo.GetBatchTotals(ctx, warehouseID, itemID)
	if err != nil {
		logger.Error("[Reconcile] error inventoryRepo.GetBatchTotals", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if totals == nil {
		totals = &model.BatchTotals{}
	}

	report := &model.ReconcileReport{WarehouseID: warehouseID, ItemID: itemID}
	buckets := []struct {
		name      string
		inventory decimal.Decimal
		batches   decimal.Decimal
	}{
		{"usable", inv.UsableQty, totals.UsableQty},
		{"reserved", inv.ReservedQty, totals.ReservedQty},
		{"defective", inv.DefectiveQty, totals.DefectiveQty},
		{"expired", inv.ExpiredQty, totals.ExpiredQty},
	}
	for _, b := range buckets {
		if !b.inventory.Equal(b.batches) {
			report.Drift = append(report.Drift, model.ReconcileDrift{Bucket: b.name, Inventory: b.inventory, Batches: b.batches})
		}
	}
	report.Consistent = len(report.Drift) == 0
	if !report.Consistent {
		logger.Warn("[Reconcile] inventory drifted from batches", zap.Uint64("warehouse_id", warehouseID),
			zap.Uint64("item_id", itemID), zap.Int("buckets", len(report.Drift)))
	}
	return report, nil
}
