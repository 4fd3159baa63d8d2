// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// NewVulkanContext selects a physical device satisfying cfg and
// creates a logical device with a single queue on the qualifying
// family. Selection runs over the queue family state the driver
// reports at call time.
func NewVulkanContext(instance Instance, cfg DeviceConfiguration) (Context, error) {
	profiles := instance.DeviceProfiles()
	selection, err := SelectDevice(profiles, cfg.RequiredCapabilities)
	if err != nil {
		return nil, err
	}
	physicalDevice := instance.AvailableDevices()[selection.DeviceIndex]

	log.WithFields(log.Fields{
		"device":      profiles[selection.DeviceIndex].Name,
		"queueFamily": selection.FamilyIndex,
	}).Debugf("selected device for %s", cfg.RequiredCapabilities)

	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: selection.FamilyIndex,
		QueueCount:       1,
		PQueuePriorities: []float32{1.0},
	}}

	dci := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
	}

	var device vk.Device
	if err := vk.Error(vk.CreateDevice(physicalDevice, &dci, nil, &device)); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "vk.CreateDevice()"), ErrLogicalDeviceCreationFailed)
	}

	var queue vk.Queue
	vk.GetDeviceQueue(device, selection.FamilyIndex, 0, &queue)

	return &VulkanContext{
		physicalDevice: physicalDevice,
		device:         device,
		queue:          queue,
		familyIndex:    selection.FamilyIndex,
	}, nil
}

// VulkanContext is a logical device with its single bound queue
type VulkanContext struct {
	physicalDevice vk.PhysicalDevice
	device         vk.Device
	queue          vk.Queue
	familyIndex    uint32
}

// PhysicalDevice implements interface
func (c *VulkanContext) PhysicalDevice() vk.PhysicalDevice {
	return c.physicalDevice
}

// QueueFamilyIndex implements interface
func (c *VulkanContext) QueueFamilyIndex() uint32 {
	return c.familyIndex
}

// Queue implements interface
func (c *VulkanContext) Queue() vk.Queue {
	return c.queue
}

// Inner implements interface
func (c *VulkanContext) Inner() interface{} {
	return c.device
}

// Destroy implements interface
func (c *VulkanContext) Destroy() {
	vk.DeviceWaitIdle(c.device)
	vk.DestroyDevice(c.device, nil)
}
