package constant

type ctxKey string

const (
	UserIDKey ctxKey = "user_id"
	ActorKey  ctxKey = "actor"
)

type WarehouseStatus string

const (
	WarehouseStatusActive   WarehouseStatus = "A"
	WarehouseStatusInactive WarehouseStatus = "I"
)

type DonationStatus string

const (
	DonationStatusEntered   DonationStatus = "E"
	DonationStatusVerified  DonationStatus = "V"
	DonationStatusProcessed DonationStatus = "P"
)

type DonationType string

const (
	DonationTypeGoods DonationType = "GOODS"
	DonationTypeFunds DonationType = "FUNDS"
)

// IntakeStatus is the dnintake header status.
type IntakeStatus string

const (
	IntakeStatusEntered  IntakeStatus = "C"
	IntakeStatusVerified IntakeStatus = "V"
)

type IntakeItemStatus string

const (
	IntakeItemStatusPending  IntakeItemStatus = "P"
	IntakeItemStatusVerified IntakeItemStatus = "V"
)

type BatchStatus string

const (
	BatchStatusActive      BatchStatus = "A"
	BatchStatusUnavailable BatchStatus = "U"
)

type PackageStatus string

const (
	PackageStatusPending    PackageStatus = "P"
	PackageStatusVerified   PackageStatus = "V"
	PackageStatusDispatched PackageStatus = "D"
)

type ReliefRequestStatus int

const (
	ReliefRequestStatusDraft      ReliefRequestStatus = 0
	ReliefRequestStatusAwaiting   ReliefRequestStatus = 1
	ReliefRequestStatusCancelled  ReliefRequestStatus = 2
	ReliefRequestStatusSubmitted  ReliefRequestStatus = 3
	ReliefRequestStatusDenied     ReliefRequestStatus = 4
	ReliefRequestStatusPartFilled ReliefRequestStatus = 5
	ReliefRequestStatusClosed     ReliefRequestStatus = 6
	ReliefRequestStatusFilled     ReliefRequestStatus = 7
	ReliefRequestStatusIneligible ReliefRequestStatus = 8
)

// AcceptsDispatch reports whether packages may still be dispatched against the request.
func (s ReliefRequestStatus) AcceptsDispatch() bool {
	switch s {
	case ReliefRequestStatusCancelled, ReliefRequestStatusDenied, ReliefRequestStatusClosed,
		ReliefRequestStatusFilled, ReliefRequestStatusIneligible:
		return false
	}
	return true
}

// Audit identities are stored upper-cased and truncated to this length.
const AuditIDMaxLen = 20

// BatchNumberMaxLen matches itembatch.batch_no.
const BatchNumberMaxLen = 30

const CommentsMaxLen = 255
