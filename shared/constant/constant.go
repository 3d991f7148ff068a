package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID  contextKey = "user_id"
	ContextKeyIsAdmin contextKey = "is_admin"
	ContextKeyScopes  contextKey = "scopes"
	ContextKeyTokenID contextKey = "token_id"
)

// Token scopes gating mutating office operations.
const (
	ScopeOfficeCreate = "office.create"
	ScopeOfficeUpdate = "office.update"
	ScopeOfficeDelete = "office.delete"
)

const (
	RequestParamPage      = "page"
	RequestParamUserID    = "user_id"
	RequestParamVisitorID = "visitor_id"
	RequestParamLat       = "lat"
	RequestParamLng       = "lng"
)

const (
	RequestParamID      = "id"
	RequestParamImageID = "imageID"
	RequestMaxMemory    = 10 << 20 // 10 MB
)

const (
	DefaultValuePage  = 1
	OfficePageSize    = 20
	ImageMaxSizeKB    = 5000
	ImageAllowedMimes = "image/png image/jpg image/jpeg"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelNotifierScopeName   = "notifier"

	OtelQueryAttributeKey = "query"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderAPIKey             = "X-API-Key"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	FormFileImage   = "image"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
