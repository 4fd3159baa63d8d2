// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/devblok/vkboot/core"
)

func family(caps core.QueueCapability) core.QueueFamily {
	return core.QueueFamily{Count: 1, Capabilities: caps}
}

func TestSelectDevicePicksFirstQualifyingDevice(t *testing.T) {
	c := qt.New(t)

	devices := []core.DeviceProfile{
		{Name: "A", Families: []core.QueueFamily{family(core.QueueCompute)}},
		{Name: "B", Families: []core.QueueFamily{family(core.QueueGraphics | core.QueueTransfer)}},
		{Name: "C", Families: []core.QueueFamily{family(core.QueueGraphics)}},
	}

	selection, err := core.SelectDevice(devices, core.QueueGraphics|core.QueueTransfer)
	c.Assert(err, qt.IsNil)
	c.Assert(selection, qt.Equals, core.Selection{DeviceIndex: 1, FamilyIndex: 0})
}

func TestSelectDevicePicksFirstQualifyingFamily(t *testing.T) {
	c := qt.New(t)

	// Family 0 qualifies partially, families 1 and 2 both qualify
	// fully, enumeration order breaks the tie.
	devices := []core.DeviceProfile{{
		Name: "A",
		Families: []core.QueueFamily{
			family(core.QueueTransfer),
			family(core.QueueGraphics | core.QueueTransfer),
			family(core.QueueGraphics | core.QueueCompute | core.QueueTransfer),
		},
	}}

	selection, err := core.SelectDevice(devices, core.QueueGraphics|core.QueueTransfer)
	c.Assert(err, qt.IsNil)
	c.Assert(selection.FamilyIndex, qt.Equals, uint32(1))
}

func TestSelectDeviceNoQualifyingDevice(t *testing.T) {
	c := qt.New(t)

	devices := []core.DeviceProfile{
		{Name: "A", Families: []core.QueueFamily{family(core.QueueCompute)}},
		{Name: "B", Families: []core.QueueFamily{family(core.QueueTransfer)}},
	}

	_, err := core.SelectDevice(devices, core.QueueGraphics)
	c.Assert(err, qt.ErrorIs, core.ErrNoSuitableDevice)
}

func TestSelectDeviceEmptyDeviceList(t *testing.T) {
	c := qt.New(t)

	_, err := core.SelectDevice(nil, core.QueueGraphics)
	c.Assert(err, qt.ErrorIs, core.ErrNoSuitableDevice)
}

func TestSelectDeviceZeroMaskSkipsEmptyFamilies(t *testing.T) {
	c := qt.New(t)

	// A's only family has no queues, the trivially matching zero
	// mask must not select it.
	devices := []core.DeviceProfile{
		{Name: "A", Families: []core.QueueFamily{{Count: 0, Capabilities: 0}}},
		{Name: "B", Families: []core.QueueFamily{family(core.QueueGraphics)}},
	}

	selection, err := core.SelectDevice(devices, 0)
	c.Assert(err, qt.IsNil)
	c.Assert(selection, qt.Equals, core.Selection{DeviceIndex: 1, FamilyIndex: 0})
}

func TestSelectDeviceIdempotent(t *testing.T) {
	c := qt.New(t)

	devices := []core.DeviceProfile{
		{Name: "A", Families: []core.QueueFamily{family(core.QueueCompute), family(core.QueueGraphics)}},
	}

	first, err := core.SelectDevice(devices, core.QueueGraphics)
	c.Assert(err, qt.IsNil)
	second, err := core.SelectDevice(devices, core.QueueGraphics)
	c.Assert(err, qt.IsNil)
	c.Assert(second, qt.Equals, first)
}

func TestFindQueueFamilyEmptyList(t *testing.T) {
	c := qt.New(t)
	c.Assert(core.FindQueueFamily(nil, core.QueueGraphics), qt.Equals, -1)
}

func TestFindQueueFamilyRequiresSuperset(t *testing.T) {
	c := qt.New(t)

	families := []core.QueueFamily{family(core.QueueGraphics)}
	c.Assert(core.FindQueueFamily(families, core.QueueGraphics|core.QueueTransfer), qt.Equals, -1)
}

func TestParseCapabilities(t *testing.T) {
	c := qt.New(t)

	caps, err := core.ParseCapabilities("graphics, transfer")
	c.Assert(err, qt.IsNil)
	c.Assert(caps, qt.Equals, core.QueueGraphics|core.QueueTransfer)

	caps, err = core.ParseCapabilities("")
	c.Assert(err, qt.IsNil)
	c.Assert(caps, qt.Equals, core.QueueCapability(0))

	_, err = core.ParseCapabilities("graphics,tessellation")
	c.Assert(err, qt.IsNotNil)
}

func TestCapabilityString(t *testing.T) {
	c := qt.New(t)

	c.Assert((core.QueueGraphics | core.QueueTransfer).String(), qt.Equals, "graphics|transfer")
	c.Assert(core.QueueCapability(0).String(), qt.Equals, "none")
}

func BenchmarkSelectDeviceWide(b *testing.B) {
	devices := make([]core.DeviceProfile, 100)
	for idx := range devices {
		devices[idx] = core.DeviceProfile{
			Families: []core.QueueFamily{family(core.QueueTransfer)},
		}
	}
	devices[len(devices)-1].Families = []core.QueueFamily{family(core.QueueGraphics)}

	for idx := 0; idx < b.N; idx++ {
		core.SelectDevice(devices, core.QueueGraphics)
	}
}
