// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	vk "github.com/vulkan-go/vulkan"
)

// Instance describes a Vulkan instance and supporting methods.
// Once created it is ready to use.
type Instance interface {
	// PhysicalDevicesInfo returns a struct for each physical device
	// along with info about those devices
	PhysicalDevicesInfo() []PhysicalDeviceInfo

	// AvailableDevices returns handles of physical devices
	// from the Vulkan API, in driver enumeration order
	AvailableDevices() []vk.PhysicalDevice

	// DeviceProfiles returns the queue family layout of every
	// available device. Profiles are positionally aligned with
	// AvailableDevices, so a Selection made over them indexes
	// directly into the handle slice
	DeviceProfiles() []DeviceProfile

	// Extensions returns the instance extensions the instance
	// was created with
	Extensions() []string

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys internal members
	Destroy()
}

// Context describes a logical device bound to a single queue
// on a capability-selected queue family.
type Context interface {
	// PhysicalDevice returns the handle of the selected physical device
	PhysicalDevice() vk.PhysicalDevice

	// QueueFamilyIndex returns the queue family the context
	// queue was created on
	QueueFamilyIndex() uint32

	// Queue returns the device queue
	Queue() vk.Queue

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys internal members
	Destroy()
}

// PhysicalDeviceInfo describes available physical properties of a rendering device
type PhysicalDeviceInfo struct {
	ID            int           `json:"id"`
	VendorID      int           `json:"vendorId"`
	DriverVersion int           `json:"driverVersion"`
	Name          string        `json:"name"`
	Invalid       bool          `json:"invalid"`
	Extensions    []string      `json:"extensions"`
	Layers        []string      `json:"layers"`
	Memory        uint          `json:"memory"`
	Families      []QueueFamily `json:"families"`
}
