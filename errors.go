// SPDX-License-Identifier: EPL-2.0

package wavkit

import "errors"

var (
	// ErrSameFile is returned when the processor would overwrite its own input.
	ErrSameFile = errors.New("input and output are the same file")
)
