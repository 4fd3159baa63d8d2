package main

import (
	"encoding/json"
	"fmt"

	"github.com/devblok/vkboot/core"
	log "github.com/sirupsen/logrus"
)

// report is what gets printed to stdout, one JSON document
type report struct {
	Required  string                    `json:"required"`
	Devices   []core.PhysicalDeviceInfo `json:"devices"`
	Selection *core.Selection           `json:"selection,omitempty"`
}

func main() {
	configuration, err := core.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	// Headless inspection, the debug hook stays out of the way
	configuration.Instance.DebugMode = false

	instance, err := core.NewVulkanInstance(core.DefaultApplicationInfo, nil, configuration.Instance)
	if err != nil {
		log.Fatal(err)
	}
	defer instance.Destroy()

	out := report{
		Required: configuration.Device.RequiredCapabilities.String(),
		Devices:  instance.PhysicalDevicesInfo(),
	}

	if selection, err := core.SelectDevice(instance.DeviceProfiles(), configuration.Device.RequiredCapabilities); err == nil {
		out.Selection = &selection
	}

	bytes, err := json.Marshal(out)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s", bytes)
}
