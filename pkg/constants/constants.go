package constants

// Activity types recorded in the audit trail.
const (
	ActivityTypeDeployment    = "Deployment"
	ActivityTypeSync          = "Sync"
	ActivityTypeApplication   = "Application"
	ActivityTypeRepository    = "Repository"
	ActivityTypeConfiguration = "Configuration"
)

// Application sync states.
const (
	SyncStatusSynced    = "Synced"
	SyncStatusOutOfSync = "OutOfSync"
	SyncStatusUnknown   = "Unknown"
)

// Deployment states.
const (
	DeploymentStatusSuccessful = "Successful"
	DeploymentStatusFailed     = "Failed"
	DeploymentStatusPending    = "Pending"
	DeploymentStatusRollback   = "Rollback"
)

// Defaults applied by the store on create.
const (
	DefaultBranch    = "main"
	DefaultAppStatus = "unknown"
	DefaultAppHealth = "unknown"
	DefaultUserRole  = "user"
)

// SystemUser is the actor recorded when a request carries no user.
const SystemUser = "system"

// JWT token types.
const (
	JWTTypeAccess  = "access"
	JWTTypeRefresh = "refresh"
)

// HTTP auth header handling.
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)
