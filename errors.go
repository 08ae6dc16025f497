// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package tactile

import "errors"

// These are the error kinds returned by the package. They are always
// wrapped with more detail, so check for them with errors.Is.
var (
	// ErrInvalidState means an operation was called before whatever it
	// depends on, for example resizing with no image loaded.
	ErrInvalidState = errors.New("invalid state")
	// ErrNotFound means a referenced file does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedFormat means a file's extension is not one we handle.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
