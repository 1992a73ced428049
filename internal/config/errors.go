// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	// ErrUsage is returned for a wrong argument count or an unrecognized mode.
	ErrUsage = errors.New("usage error")
	// ErrInvalidNumber is returned when a numeric argument does not parse.
	ErrInvalidNumber = errors.New("invalid number")
)
