// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// installDebugCallback hooks driver diagnostics into logrus
func (v *VulkanInstance) installDebugCallback() error {
	drci := vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vk.DebugReportFlags(vk.DebugReportErrorBit |
			vk.DebugReportWarningBit |
			vk.DebugReportPerformanceWarningBit),
		PfnCallback: debugReportCallback,
	}

	var callback vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(v.instance, &drci, nil, &callback)); err != nil {
		return errors.Mark(errors.Wrap(err, "vk.CreateDebugReportCallback()"), ErrDebugCallbackInstallFailed)
	}

	v.debugCallback = callback
	v.debugInstalled = true
	return nil
}

func debugReportCallback(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint, messageCode int32, layerPrefix string,
	message string, userData unsafe.Pointer) vk.Bool32 {

	entry := log.WithFields(log.Fields{
		"layer": layerPrefix,
		"code":  messageCode,
	})

	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		entry.Error(message)
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		entry.Warning(message)
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		entry.Warning(message)
	case flags&vk.DebugReportFlags(vk.DebugReportDebugBit) != 0:
		entry.Debug(message)
	default:
		entry.Info(message)
	}
	return vk.Bool32(vk.False)
}
