package repositories

import "errors"

var (
	ErrNotFound   = errors.New("record not found")
	ErrEmailTaken = errors.New("email already registered")
)

// FailedResultID is returned by AnalysisRepository.Save when the row could not be written.
const FailedResultID int64 = -1
