package transport

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	batchapp "github.com/muhammadheryan/drims/application/batch"
	dispatchapp "github.com/muhammadheryan/drims/application/dispatch"
	intakeapp "github.com/muhammadheryan/drims/application/intake"
	stockapp "github.com/muhammadheryan/drims/application/stock"
	userapp "github.com/muhammadheryan/drims/application/user"
	warehouseapp "github.com/muhammadheryan/drims/application/warehouse"
	"github.com/muhammadheryan/drims/constant"
	"github.com/muhammadheryan/drims/model"
	utilsContext "github.com/muhammadheryan/drims/utils/context"
	"github.com/muhammadheryan/drims/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	IntakeApp    intakeapp.IntakeApp
	DispatchApp  dispatchapp.DispatchApp
	BatchApp     batchapp.BatchApp
	StockApp     stockapp.StockApp
	WarehouseApp warehouseapp.WarehouseApp
}

// Options carries what the router needs beyond the handlers.
type Options struct {
	InternalAPIKey string
}

func NewTransport(rh *RestHandler, opt Options) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Intake
	mux.HandleFunc("/donations/{donationID}/intakes/{warehouseID}", rh.CreateIntakeEntry).Methods(http.MethodPost)
	mux.HandleFunc("/donations/{donationID}/intakes/{warehouseID}/verify", rh.VerifyIntakeEntry).Methods(http.MethodPost)

	// Dispatch
	mux.HandleFunc("/packages/{packageID}/plan", rh.GetDispatchPlan).Methods(http.MethodGet)
	mux.HandleFunc("/packages/{packageID}/dispatch", rh.Dispatch).Methods(http.MethodPost)

	// Batches and stock
	mux.HandleFunc("/batches/number", rh.GenerateBatchNumber).Methods(http.MethodPost)
	mux.HandleFunc("/warehouses/{warehouseID}/receipts", rh.ReceiveStock).Methods(http.MethodPost)
	mux.HandleFunc("/warehouses/{warehouseID}/stock", rh.ListStock).Methods(http.MethodGet)
	mux.HandleFunc("/warehouses/{warehouseID}/items/{itemID}/reconcile", rh.Reconcile).Methods(http.MethodGet)
	mux.HandleFunc("/warehouses/{warehouseID}/activate", rh.ActivateWarehouse).Methods(http.MethodPost)
	mux.HandleFunc("/warehouses/{warehouseID}/deactivate", rh.DeactivateWarehouse).Methods(http.MethodPost)

	// internal routes, called by workers with the service key
	internal := mux.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(opt.InternalAPIKey))
	internal.HandleFunc("/warehouses/{warehouseID}/items/{itemID}/reconcile", rh.Reconcile).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user. The user name becomes the audit identity and is stored upper-cased.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} Response{data=model.RegisterResponse}
// @Failure 400 {object} Response
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := bindJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} Response{data=model.LoginResponse}
// @Failure 400 {object} Response
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := bindJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateIntakeEntry handler
// @Summary Submit intake entry
// @Description Records the received quantities of a verified donation at one warehouse, awaiting verification.
// @Tags Intake
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param donationID path int true "Donation ID"
// @Param warehouseID path int true "Warehouse ID"
// @Param request body model.IntakeEntryForm true "Intake lines"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /donations/{donationID}/intakes/{warehouseID} [post]
func (s *RestHandler) CreateIntakeEntry(w http.ResponseWriter, r *http.Request) {
	donationID, warehouseID, actor, err := intakeParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var form model.IntakeEntryForm
	if err := bindJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.IntakeApp.CreateIntakeEntry(r.Context(), donationID, warehouseID, actor, &form)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, res.Message, nil)
}

// VerifyIntakeEntry handler
// @Summary Verify intake entry
// @Description Confirms an intake, creating or merging batches and posting stock in one transaction.
// @Tags Intake
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param donationID path int true "Donation ID"
// @Param warehouseID path int true "Warehouse ID"
// @Param request body model.IntakeVerifyForm true "Verified lines"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /donations/{donationID}/intakes/{warehouseID}/verify [post]
func (s *RestHandler) VerifyIntakeEntry(w http.ResponseWriter, r *http.Request) {
	donationID, warehouseID, actor, err := intakeParams(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var form model.IntakeVerifyForm
	if err := bindJSON(r, &form); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.IntakeApp.VerifyIntakeEntry(r.Context(), donationID, warehouseID, actor, &form)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, res.Message, nil)
}

func intakeParams(r *http.Request) (donationID, warehouseID uint64, actor string, err error) {
	if actor, err = requireActor(r); err != nil {
		return
	}
	if donationID, err = pathID(r, "donationID"); err != nil {
		return
	}
	warehouseID, err = pathID(r, "warehouseID")
	return
}

// GetDispatchPlan handler
// @Summary Current allocations of a package
// @Tags Dispatch
// @Produce json
// @Security BearerAuth
// @Param packageID path int true "Package ID"
// @Success 200 {object} Response{data=[]model.Allocation}
// @Router /packages/{packageID}/plan [get]
func (s *RestHandler) GetDispatchPlan(w http.ResponseWriter, r *http.Request) {
	packageID, err := pathID(r, "packageID")
	if err != nil {
		writeError(w, err)
		return
	}

	plan, err := s.DispatchApp.BuildPlanFromExistingAllocations(r.Context(), packageID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, plan)
}

// Dispatch handler
// @Summary Dispatch package
// @Description Releases the package's reservations and depletes the final plan. An empty allocation list dispatches the package as allocated.
// @Tags Dispatch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param packageID path int true "Package ID"
// @Param request body model.DispatchRequest true "Version and final plan"
// @Success 200 {object} Response{data=model.DispatchResponse}
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Router /packages/{packageID}/dispatch [post]
func (s *RestHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	actor, err := requireActor(r)
	if err != nil {
		writeError(w, err)
		return
	}
	packageID, err := pathID(r, "packageID")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.DispatchRequest
	if err := bindJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DispatchApp.Dispatch(r.Context(), packageID, actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, res.Message, res)
}

// GenerateBatchNumber handler
// @Summary Propose a batch number
// @Tags Batch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.BatchNumberRequest true "Item, warehouse and date"
// @Success 200 {object} Response{data=model.BatchNumberResponse}
// @Router /batches/number [post]
func (s *RestHandler) GenerateBatchNumber(w http.ResponseWriter, r *http.Request) {
	var req model.BatchNumberRequest
	if err := bindJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BatchApp.GenerateBatchNumber(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReceiveStock handler
// @Summary Receive stock
// @Description Posts stock into a warehouse outside the donation workflow.
// @Tags Batch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param warehouseID path int true "Warehouse ID"
// @Param request body model.ReceiptRequest true "Receipt"
// @Success 200 {object} Response{data=model.ReceiptResponse}
// @Router /warehouses/{warehouseID}/receipts [post]
func (s *RestHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	actor, err := requireActor(r)
	if err != nil {
		writeError(w, err)
		return
	}
	warehouseID, err := pathID(r, "warehouseID")
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ReceiptRequest
	if err := bindJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.BatchApp.ReceiveStock(r.Context(), warehouseID, actor, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListStock handler
// @Summary List warehouse stock
// @Tags Stock
// @Produce json
// @Security BearerAuth
// @Param warehouseID path int true "Warehouse ID"
// @Param page query int false "Page" default(1)
// @Param per_page query int false "Per page" default(10)
// @Success 200 {object} Response{data=model.StockListResponse}
// @Router /warehouses/{warehouseID}/stock [get]
func (s *RestHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := pathID(r, "warehouseID")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.ListStock(r.Context(), warehouseID, queryInt(r, "page", 1), queryInt(r, "per_page", 10))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Reconcile handler
// @Summary Reconcile inventory against batches
// @Tags Stock
// @Produce json
// @Security BearerAuth
// @Param warehouseID path int true "Warehouse ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} Response{data=model.ReconcileReport}
// @Router /warehouses/{warehouseID}/items/{itemID}/reconcile [get]
func (s *RestHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := pathID(r, "warehouseID")
	if err != nil {
		writeError(w, err)
		return
	}
	itemID, err := pathID(r, "itemID")
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.StockApp.Reconcile(r.Context(), warehouseID, itemID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ActivateWarehouse handler
// @Summary Activate warehouse
// @Tags Warehouse
// @Produce json
// @Security BearerAuth
// @Param warehouseID path int true "Warehouse ID"
// @Success 200 {object} Response
// @Router /warehouses/{warehouseID}/activate [post]
func (s *RestHandler) ActivateWarehouse(w http.ResponseWriter, r *http.Request) {
	s.setWarehouseStatus(w, r, s.WarehouseApp.ActivateWarehouse)
}

// DeactivateWarehouse handler
// @Summary Deactivate warehouse
// @Description Refused while the warehouse still holds reserved stock.
// @Tags Warehouse
// @Produce json
// @Security BearerAuth
// @Param warehouseID path int true "Warehouse ID"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /warehouses/{warehouseID}/deactivate [post]
func (s *RestHandler) DeactivateWarehouse(w http.ResponseWriter, r *http.Request) {
	s.setWarehouseStatus(w, r, s.WarehouseApp.DeactivateWarehouse)
}

func (s *RestHandler) setWarehouseStatus(w http.ResponseWriter, r *http.Request,
	apply func(ctx context.Context, warehouseID uint64, actor string) error) {
	actor, err := requireActor(r)
	if err != nil {
		writeError(w, err)
		return
	}
	warehouseID, err := pathID(r, "warehouseID")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := apply(r.Context(), warehouseID, actor); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

func requireActor(r *http.Request) (string, error) {
	actor, ok := utilsContext.GetActor(r.Context())
	if !ok {
		return "", errors.SetCustomError(constant.ErrUnauthorize)
	}
	return actor, nil
}
