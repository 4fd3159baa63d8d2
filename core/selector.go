// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

// QueueCapability is a bit set of capabilities a queue family supports.
// Bit positions match the Vulkan queue flag bits.
type QueueCapability uint32

// Capabilities a queue family may advertise
const (
	QueueGraphics QueueCapability = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

var capabilityNames = []struct {
	name string
	bit  QueueCapability
}{
	{"graphics", QueueGraphics},
	{"compute", QueueCompute},
	{"transfer", QueueTransfer},
	{"sparsebinding", QueueSparseBinding},
}

// String implements fmt.Stringer
func (c QueueCapability) String() string {
	var names []string
	for _, cn := range capabilityNames {
		if c&cn.bit != 0 {
			names = append(names, cn.name)
		}
	}
	if names == nil {
		return "none"
	}
	return strings.Join(names, "|")
}

// MarshalJSON implements json.Marshaler
func (c QueueCapability) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// ParseCapabilities parses a comma separated capability list,
// e.g. "graphics,transfer". An empty string yields the empty set.
func ParseCapabilities(s string) (QueueCapability, error) {
	var caps QueueCapability
Parse:
	for _, field := range strings.Split(s, ",") {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		for _, cn := range capabilityNames {
			if field == cn.name {
				caps |= cn.bit
				continue Parse
			}
		}
		return 0, errors.Newf("unknown queue capability %q", field)
	}
	return caps, nil
}

// QueueFamily describes a single queue family as reported by the driver
type QueueFamily struct {
	// Count is the number of queues in the family
	Count uint32 `json:"count"`

	// Capabilities the family supports
	Capabilities QueueCapability `json:"capabilities"`
}

// Supports reports whether the family has at least one queue and
// covers every capability in required
func (f QueueFamily) Supports(required QueueCapability) bool {
	return f.Count > 0 && f.Capabilities&required == required
}

// DeviceProfile is the queue family layout of a single physical
// device, families in driver-reported order
type DeviceProfile struct {
	Name     string        `json:"name"`
	Families []QueueFamily `json:"families"`
}

// Selection is the result of a successful device selection
type Selection struct {
	// DeviceIndex is the position of the selected device in the
	// enumeration order the profiles were supplied in
	DeviceIndex int `json:"deviceIndex"`

	// FamilyIndex is the queue family the device qualified with
	FamilyIndex uint32 `json:"familyIndex"`
}

// FindQueueFamily returns the index of the first queue family in
// driver-reported order that satisfies required, or -1 when none does
func FindQueueFamily(families []QueueFamily, required QueueCapability) int {
	for idx, family := range families {
		if family.Supports(required) {
			return idx
		}
	}
	return -1
}

// SelectDevice picks the first device whose queue families satisfy
// required, along with the first qualifying family within it. Devices
// are examined in the order given, which is the driver enumeration
// order, and the scan stops at the first match. The call is a pure
// function of its inputs and can be repeated safely.
//
// TODO: enumeration order is not ranked, so an integrated GPU that
// enumerates before a discrete one wins the selection.
func SelectDevice(devices []DeviceProfile, required QueueCapability) (Selection, error) {
	for idx, device := range devices {
		if familyIdx := FindQueueFamily(device.Families, required); familyIdx >= 0 {
			return Selection{DeviceIndex: idx, FamilyIndex: uint32(familyIdx)}, nil
		}
	}
	return Selection{}, errors.Wrapf(ErrNoSuitableDevice,
		"none of %d enumerated devices has a queue family supporting %s", len(devices), required)
}
