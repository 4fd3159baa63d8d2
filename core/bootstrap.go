// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"unsafe"
)

// destroyable is anything with scoped teardown
type destroyable interface {
	Destroy()
}

// Bootstrap runs the full context acquisition sequence: instance
// creation, debug hook, device selection, logical device and queue.
// The first failure aborts the sequence and releases everything
// acquired up to that point in reverse order. There are no retries.
func Bootstrap(cfg Configuration, procAddr unsafe.Pointer) (*GraphicsContext, error) {
	var acquired []destroyable
	release := func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			acquired[i].Destroy()
		}
	}

	instance, err := NewVulkanInstance(DefaultApplicationInfo, procAddr, cfg.Instance)
	if err != nil {
		release()
		return nil, err
	}
	acquired = append(acquired, instance)

	context, err := NewVulkanContext(instance, cfg.Device)
	if err != nil {
		release()
		return nil, err
	}
	acquired = append(acquired, context)

	return &GraphicsContext{
		instance: instance,
		context:  context,
	}, nil
}

// GraphicsContext owns every resource the bootstrap sequence acquires
// and releases them in reverse acquisition order
type GraphicsContext struct {
	instance Instance
	context  Context
}

// Instance returns the owned instance
func (g *GraphicsContext) Instance() Instance {
	return g.instance
}

// Context returns the owned device context
func (g *GraphicsContext) Context() Context {
	return g.context
}

// Destroy implements interface
func (g *GraphicsContext) Destroy() {
	g.context.Destroy()
	g.instance.Destroy()
}
