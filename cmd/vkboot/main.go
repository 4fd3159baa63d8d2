package main

import (
	"runtime"

	"github.com/devblok/vkboot/core"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

const (
	windowTitle  = "VkBoot"
	windowWidth  = 800
	windowHeight = 600
)

func newWindow() (*sdl.Window, error) {
	return sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		windowWidth,
		windowHeight,
		sdl.WINDOW_VULKAN)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err == nil {
		log.Info("loaded configuration overrides from .env")
	}

	configuration, err := core.FromEnv()
	if err != nil {
		return err
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		return err
	}
	defer sdl.VulkanUnloadLibrary()

	window, err := newWindow()
	if err != nil {
		return err
	}
	defer window.Destroy()

	configuration.Instance.Extensions = append(
		configuration.Instance.Extensions,
		window.VulkanGetInstanceExtensions()...)

	graphics, err := core.Bootstrap(configuration, sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return err
	}
	defer graphics.Destroy()

	log.WithFields(log.Fields{
		"queueFamily": graphics.Context().QueueFamilyIndex(),
		"extensions":  graphics.Instance().Extensions(),
	}).Info("vulkan context ready")

	time := core.NewTime(configuration.Time)
	defer time.Stop()
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-time.EventTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
		}
	}

	return nil
}
