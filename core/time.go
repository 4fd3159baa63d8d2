// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"time"
)

// NewTime creates a new time service
func NewTime(cfg TimeConfiguration) Time {
	delay := cfg.EventPollDelay
	if delay <= 0 {
		delay = 1
	}

	return Time{
		eventPollDelay: delay,
		eventTicker:    time.NewTicker(time.Duration(delay) * time.Millisecond),
	}
}

// Time contains the tickers driving the event loop
type Time struct {
	eventPollDelay int
	eventTicker    *time.Ticker
}

// EventTicker gets the initialized event ticker for the event loop
func (t *Time) EventTicker() *time.Ticker {
	return t.eventTicker
}

// Stop releases the tickers
func (t *Time) Stop() {
	t.eventTicker.Stop()
}
