package dto

// ForceSyncRequest optionally pins the revision recorded for a
// repository-wide sync.
type ForceSyncRequest struct {
	Revision *string `json:"revision" binding:"omitempty,max=255"`
}
