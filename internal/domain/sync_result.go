package domain

import "fmt"

// SyncKind tags the outcome of a reconciliation attempt.
type SyncKind string

// Sync outcomes.
const (
	SyncSuccess SyncKind = "success"
	SyncError   SyncKind = "error"
)

// SyncResult is the outcome of a sync or initialization call. It is never persisted.
// QuotesCount is only meaningful for SyncSuccess.
type SyncResult struct {
	Kind        SyncKind `json:"kind"`
	Message     string   `json:"message"`
	QuotesCount int      `json:"quotesCount"`
}

// NewSyncSuccess builds a successful result.
func NewSyncSuccess(message string, count int) SyncResult {
	return SyncResult{Kind: SyncSuccess, Message: message, QuotesCount: count}
}

// NewSyncError builds a failed result.
func NewSyncError(message string) SyncResult {
	return SyncResult{Kind: SyncError, Message: message}
}

// NewSyncErrorf builds a failed result with a formatted message.
func NewSyncErrorf(format string, args ...any) SyncResult {
	return NewSyncError(fmt.Sprintf(format, args...))
}

// OK reports whether the result is a success.
func (r SyncResult) OK() bool {
	return r.Kind == SyncSuccess
}

func (r SyncResult) String() string {
	if r.OK() {
		return fmt.Sprintf("success: %s (%d quotes)", r.Message, r.QuotesCount)
	}

	return "error: " + r.Message
}
