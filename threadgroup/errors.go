// File: threadgroup/errors.go
// Author: jfcameron
// License: MIT
//
// Error definitions for the threadgroup package.

package threadgroup

import "errors"

var (
	// ErrGroupClosed indicates the group has been closed or moved from;
	// its queue no longer accepts tasks.
	ErrGroupClosed = errors.New("thread group is closed")
)
