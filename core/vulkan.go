// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// DefaultApplicationInfo describes a vkboot application to the driver
var DefaultApplicationInfo = &vk.ApplicationInfo{
	SType:              vk.StructureTypeApplicationInfo,
	ApiVersion:         vk.MakeVersion(1, 0, 0),
	ApplicationVersion: vk.MakeVersion(1, 0, 0),
	PApplicationName:   "VkBoot\x00",
	PEngineName:        "https://github.com/devblok/vkboot\x00",
}

// Validation layers accepted for DebugMode, in order of preference.
// The LunarG meta layer is kept for pre-1.1.106 SDK installs.
var validationLayerNames = []string{
	"VK_LAYER_KHRONOS_validation",
	"VK_LAYER_LUNARG_standard_validation",
}

const debugReportExtensionName = "VK_EXT_debug_report"

// NewVulkanInstance creates a Vulkan instance. When procAddr is nil
// the default loader entry point is used, otherwise it should come
// from the windowing layer (e.g. SDL). With cfg.DebugMode set, the
// validation layer availability is probed first and the debug report
// callback is installed right after instance creation.
func NewVulkanInstance(appInfo *vk.ApplicationInfo, procAddr unsafe.Pointer, cfg InstanceConfiguration) (Instance, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "vk.SetDefaultGetInstanceProcAddr()"), ErrInstanceCreationFailed)
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "vk.Init()"), ErrInstanceCreationFailed)
	}

	if cfg.DebugMode {
		supported, err := supportedLayers()
		if err != nil {
			return nil, errors.Mark(err, ErrValidationLayerUnavailable)
		}
		layer, ok := firstPresent(validationLayerNames, supported)
		if !ok {
			return nil, errors.Wrapf(ErrValidationLayerUnavailable,
				"none of %v is installed, install the LunarG Vulkan SDK", validationLayerNames)
		}
		if !allPresent(cfg.Layers, supported) {
			return nil, errors.Wrapf(ErrValidationLayerUnavailable,
				"required layers %v are not all installed", cfg.Layers)
		}
		cfg.Layers = append(cfg.Layers, layer)
		cfg.Extensions = append(cfg.Extensions, debugReportExtensionName)
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
		EnabledLayerCount:       uint32(len(cfg.Layers)),
		PpEnabledLayerNames:     safeStrings(cfg.Layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "vk.CreateInstance()"), ErrInstanceCreationFailed)
	}
	vk.InitInstance(instance)

	v := &VulkanInstance{
		configuration: cfg,
		instance:      instance,
	}

	if cfg.DebugMode {
		if err := v.installDebugCallback(); err != nil {
			vk.DestroyInstance(instance, nil)
			return nil, err
		}
	}

	physicalDevices, err := enumerateDevices(instance)
	if err != nil {
		v.Destroy()
		return nil, errors.Mark(err, ErrInstanceCreationFailed)
	}
	v.availableDevices = physicalDevices

	return v, nil
}

// VulkanInstance describes a Vulkan API Instance
type VulkanInstance struct {
	configuration InstanceConfiguration

	availableDevices []vk.PhysicalDevice
	instance         vk.Instance

	debugCallback  vk.DebugReportCallback
	debugInstalled bool
}

func enumerateDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumeratePhysicalDevices()")
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, availableDevices)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumeratePhysicalDevices()")
	}
	return availableDevices, nil
}

// supportedLayers returns the names of all installed instance layers
func supportedLayers() ([]string, error) {
	var layerCount uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceLayerProperties()")
	}
	layers := make([]vk.LayerProperties, layerCount)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&layerCount, layers)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceLayerProperties()")
	}
	names := make([]string, 0, layerCount)
	for _, layer := range layers {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// SupportedExtensions returns the names of all installed instance extensions
func SupportedExtensions() ([]string, error) {
	var extCount uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &extCount, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceExtensionProperties()")
	}
	extensions := make([]vk.ExtensionProperties, extCount)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &extCount, extensions)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceExtensionProperties()")
	}
	names := make([]string, 0, extCount)
	for _, ext := range extensions {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// DeviceProfiles implements interface
func (v VulkanInstance) DeviceProfiles() []DeviceProfile {
	profiles := make([]DeviceProfile, len(v.availableDevices))
	for i, device := range v.availableDevices {
		var properties vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(device, &properties)
		properties.Deref()
		profiles[i] = DeviceProfile{
			Name:     vk.ToString(properties.DeviceName[:]),
			Families: queueFamilies(device),
		}
	}
	return profiles
}

// queueFamilies reads the queue family table of a device in the
// order the driver reports it
func queueFamilies(device vk.PhysicalDevice) []QueueFamily {
	var familyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(device, &familyCount, nil)
	if familyCount == 0 {
		return nil
	}
	properties := make([]vk.QueueFamilyProperties, familyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(device, &familyCount, properties)

	families := make([]QueueFamily, familyCount)
	for i := range properties {
		properties[i].Deref()
		families[i] = QueueFamily{
			Count:        properties[i].QueueCount,
			Capabilities: capabilitiesFromFlags(properties[i].QueueFlags),
		}
	}
	return families
}

func capabilitiesFromFlags(flags vk.QueueFlags) QueueCapability {
	var caps QueueCapability
	if flags&vk.QueueFlags(vk.QueueGraphicsBit) != 0 {
		caps |= QueueGraphics
	}
	if flags&vk.QueueFlags(vk.QueueComputeBit) != 0 {
		caps |= QueueCompute
	}
	if flags&vk.QueueFlags(vk.QueueTransferBit) != 0 {
		caps |= QueueTransfer
	}
	if flags&vk.QueueFlags(vk.QueueSparseBindingBit) != 0 {
		caps |= QueueSparseBinding
	}
	return caps
}

// PhysicalDevicesInfo implements interface
func (v VulkanInstance) PhysicalDevicesInfo() []PhysicalDeviceInfo {
	pdi := make([]PhysicalDeviceInfo, len(v.availableDevices))
	for i := 0; i < len(v.availableDevices); i++ {
		// Get extension info
		var numDeviceExtensions uint32
		if err := vk.Error(vk.EnumerateDeviceExtensionProperties(v.availableDevices[i], "", &numDeviceExtensions, nil)); err != nil {
			pdi[i].Invalid = true
		}
		deviceExt := make([]vk.ExtensionProperties, numDeviceExtensions)
		if err := vk.Error(vk.EnumerateDeviceExtensionProperties(v.availableDevices[i], "", &numDeviceExtensions, deviceExt)); err != nil {
			pdi[i].Invalid = true
		}
		for _, ext := range deviceExt {
			ext.Deref()
			pdi[i].Extensions = append(pdi[i].Extensions, vk.ToString(ext.ExtensionName[:]))
		}

		// Get layers info
		var numDeviceLayers uint32
		if err := vk.Error(vk.EnumerateDeviceLayerProperties(v.availableDevices[i], &numDeviceLayers, nil)); err != nil {
			pdi[i].Invalid = true
		}
		deviceLayers := make([]vk.LayerProperties, numDeviceLayers)
		if err := vk.Error(vk.EnumerateDeviceLayerProperties(v.availableDevices[i], &numDeviceLayers, deviceLayers)); err != nil {
			pdi[i].Invalid = true
		}
		for _, layer := range deviceLayers {
			layer.Deref()
			pdi[i].Layers = append(pdi[i].Layers, vk.ToString(layer.LayerName[:]))
		}

		// Get memory info
		var memoryProperties vk.PhysicalDeviceMemoryProperties
		vk.GetPhysicalDeviceMemoryProperties(v.availableDevices[i], &memoryProperties)
		memoryProperties.Deref()
		for iMem := (uint32)(0); iMem < memoryProperties.MemoryHeapCount; iMem++ {
			memoryProperties.MemoryHeaps[iMem].Deref()
			pdi[i].Memory = pdi[i].Memory + uint(memoryProperties.MemoryHeaps[iMem].Size)
		}

		// Get general device info
		var physicalDeviceProperties vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(v.availableDevices[i], &physicalDeviceProperties)
		physicalDeviceProperties.Deref()
		pdi[i].ID = (int)(physicalDeviceProperties.DeviceID)
		pdi[i].VendorID = (int)(physicalDeviceProperties.VendorID)
		pdi[i].Name = vk.ToString(physicalDeviceProperties.DeviceName[:])
		pdi[i].DriverVersion = (int)(physicalDeviceProperties.DriverVersion)

		pdi[i].Families = queueFamilies(v.availableDevices[i])
	}
	return pdi
}

// AvailableDevices implements interface
func (v VulkanInstance) AvailableDevices() []vk.PhysicalDevice {
	return v.availableDevices
}

// Extensions implements interface
func (v VulkanInstance) Extensions() []string {
	return v.configuration.Extensions
}

// Inner implements interface
func (v *VulkanInstance) Inner() interface{} {
	return v.instance
}

// Destroy implements interface
func (v *VulkanInstance) Destroy() {
	v.availableDevices = nil
	if v.debugInstalled {
		vk.DestroyDebugReportCallback(v.instance, v.debugCallback, nil)
		v.debugInstalled = false
	}
	vk.DestroyInstance(v.instance, nil)
}
