package interfaces

import "errors"

// ErrConditionFailed is returned by repositories when a conditional write lost
// against the stored state (row missing, status moved, unique key taken).
// Callers re-read and decide; it never means the write partially happened.
var ErrConditionFailed = errors.New("repository: condition failed")
