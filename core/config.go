// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gobuffalo/envy"
)

// Configuration defines a global bootstrap configuration setting
type Configuration struct {
	Instance InstanceConfiguration
	Device   DeviceConfiguration
	Time     TimeConfiguration
}

// InstanceConfiguration is used to configure the Vulkan instance
type InstanceConfiguration struct {
	// DebugMode enables the validation layers and installs
	// the debug report callback
	DebugMode bool

	// Layers the instance is required to be created with,
	// on top of the validation layer DebugMode adds
	Layers []string

	// Extensions the instance is created with. The windowing
	// layer appends its surface extensions here
	Extensions []string
}

// DeviceConfiguration is used to configure device selection
// and logical device creation
type DeviceConfiguration struct {
	// RequiredCapabilities every candidate queue family is
	// matched against
	RequiredCapabilities QueueCapability

	// Extensions the logical device is created with
	Extensions []string
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// EventPollDelay is the delay between event queue polls,
	// in milliseconds
	EventPollDelay int
}

// Environment variables recognized by FromEnv
const (
	envDebug            = "VKBOOT_DEBUG"
	envLayers           = "VKBOOT_LAYERS"
	envCapabilities     = "VKBOOT_CAPABILITIES"
	envDeviceExtensions = "VKBOOT_DEVICE_EXTENSIONS"
	envEventPollDelay   = "VKBOOT_POLL_DELAY"
)

// FromEnv assembles a Configuration from VKBOOT_* environment
// variables, falling back to defaults where a variable is unset
func FromEnv() (Configuration, error) {
	var cfg Configuration

	debug, err := strconv.ParseBool(envy.Get(envDebug, "false"))
	if err != nil {
		return cfg, errors.Wrapf(err, "%s", envDebug)
	}
	cfg.Instance.DebugMode = debug
	cfg.Instance.Layers = splitList(envy.Get(envLayers, ""))

	caps, err := ParseCapabilities(envy.Get(envCapabilities, "graphics"))
	if err != nil {
		return cfg, errors.Wrapf(err, "%s", envCapabilities)
	}
	cfg.Device.RequiredCapabilities = caps
	cfg.Device.Extensions = splitList(envy.Get(envDeviceExtensions, ""))

	pollDelay, err := strconv.Atoi(envy.Get(envEventPollDelay, "10"))
	if err != nil {
		return cfg, errors.Wrapf(err, "%s", envEventPollDelay)
	}
	cfg.Time.EventPollDelay = pollDelay

	return cfg, nil
}

func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
