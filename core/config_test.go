// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gobuffalo/envy"

	"github.com/devblok/vkboot/core"
)

func TestFromEnvDefaults(t *testing.T) {
	c := qt.New(t)

	envy.Temp(func() {
		cfg, err := core.FromEnv()
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Instance.DebugMode, qt.IsFalse)
		c.Assert(cfg.Device.RequiredCapabilities, qt.Equals, core.QueueGraphics)
		c.Assert(cfg.Time.EventPollDelay, qt.Equals, 10)
	})
}

func TestFromEnvOverrides(t *testing.T) {
	c := qt.New(t)

	envy.Temp(func() {
		envy.Set("VKBOOT_DEBUG", "true")
		envy.Set("VKBOOT_CAPABILITIES", "graphics,compute")
		envy.Set("VKBOOT_LAYERS", "VK_LAYER_LUNARG_api_dump")
		envy.Set("VKBOOT_DEVICE_EXTENSIONS", "VK_KHR_swapchain")
		envy.Set("VKBOOT_POLL_DELAY", "25")

		cfg, err := core.FromEnv()
		c.Assert(err, qt.IsNil)
		c.Assert(cfg.Instance.DebugMode, qt.IsTrue)
		c.Assert(cfg.Instance.Layers, qt.DeepEquals, []string{"VK_LAYER_LUNARG_api_dump"})
		c.Assert(cfg.Device.RequiredCapabilities, qt.Equals, core.QueueGraphics|core.QueueCompute)
		c.Assert(cfg.Device.Extensions, qt.DeepEquals, []string{"VK_KHR_swapchain"})
		c.Assert(cfg.Time.EventPollDelay, qt.Equals, 25)
	})
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	c := qt.New(t)

	envy.Temp(func() {
		envy.Set("VKBOOT_CAPABILITIES", "raytracing")
		_, err := core.FromEnv()
		c.Assert(err, qt.IsNotNil)
	})

	envy.Temp(func() {
		envy.Set("VKBOOT_POLL_DELAY", "soon")
		_, err := core.FromEnv()
		c.Assert(err, qt.IsNotNil)
	})
}
