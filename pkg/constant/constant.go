package constant

// Caller roles (supplied by the identity gate)
const (
	RoleUser    = "user"
	RolePartner = "partner"
	RoleAdmin   = "admin"
)

// Message sender types
const (
	SenderTypeUser    = "user"
	SenderTypePartner = "partner"
)

// Message types
const (
	MsgTypeText   = "text"
	MsgTypeAction = "action"
)

// Message status
const (
	MsgStatusSent = "sent"
	MsgStatusRead = "read"
)

// Booking status
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Partner status
const (
	PartnerStatusPending   = "pending"
	PartnerStatusActive    = "active"
	PartnerStatusSuspended = "suspended"
	PartnerStatusRejected  = "rejected"
)

// Partner verification status
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Partner business types
const (
	PartnerTypeSpace   = "space"
	PartnerTypeService = "service"
	PartnerTypeEvent   = "event"
)

// Commission rule types
const (
	CommissionTypePercentage = "percentage"
	CommissionTypeFixed      = "fixed"
)

// Finance configuration keys
const (
	FinanceKeyDefaultCommissionRate = "default_commission_rate"
	FinanceKeyCurrency              = "currency"
	FinanceKeyPayoutSchedule        = "payout_schedule"
	FinanceKeyMinPayoutAmount       = "min_payout_amount"
)

// Admin permissions
const (
	PermPartnersManage = "partners:manage"
	PermBookingsManage = "bookings:manage"
	PermFinanceManage  = "finance:manage"
	PermRolesManage    = "roles:manage"
	PermMessagesView   = "messages:view"
)

// Pagination bounds, shared by every list endpoint
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Redis key patterns (without prefix, use RedisKey() to get full key)
const (
	redisKeyRevokedUser = "revoked:%s" // revoked:{user_id}
)

// redisKeyPrefix is the global prefix for all Redis keys
var redisKeyPrefix = "cowors:"

// InitRedisKeyPrefix initializes the Redis key prefix from config
func InitRedisKeyPrefix(prefix string) {
	if prefix != "" {
		redisKeyPrefix = prefix
	}
}

// GetRedisKeyPrefix returns the current Redis key prefix
func GetRedisKeyPrefix() string {
	return redisKeyPrefix
}

// RedisKeyRevokedUser returns the key pattern for user token revocation marks
func RedisKeyRevokedUser() string { return redisKeyPrefix + redisKeyRevokedUser }
