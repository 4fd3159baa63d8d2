// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/cockroachdb/errors"
)

// Bootstrap failure kinds. Every error returned out of the bootstrap
// sequence is marked with exactly one of these, so callers can
// classify failures with errors.Is without parsing messages.
var (
	// ErrValidationLayerUnavailable means a layer the configuration
	// requires is not installed on the host
	ErrValidationLayerUnavailable = errors.New("required validation layer unavailable")

	// ErrInstanceCreationFailed covers loader setup, instance
	// creation and physical device enumeration failures
	ErrInstanceCreationFailed = errors.New("instance creation failed")

	// ErrDebugCallbackInstallFailed means the debug report hook
	// could not be registered on the instance
	ErrDebugCallbackInstallFailed = errors.New("debug callback installation failed")

	// ErrNoSuitableDevice means no enumerated device has a queue
	// family covering the required capabilities
	ErrNoSuitableDevice = errors.New("no suitable device")

	// ErrLogicalDeviceCreationFailed means the selected device
	// rejected logical device creation
	ErrLogicalDeviceCreationFailed = errors.New("logical device creation failed")
)
