// Copyright (c) 2020 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"
)

func safeString(s string) string {
	return fmt.Sprintf("%s\x00", s)
}

func safeStrings(sgs []string) []string {
	safe := []string{}
	for _, s := range sgs {
		safe = append(safe, fmt.Sprintf("%s\x00", s))
	}
	return safe
}

// allPresent reports whether every name in required appears in available
func allPresent(required, available []string) bool {
	for _, req := range required {
		found := false
		for _, av := range available {
			if req == av {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// firstPresent returns the first candidate that appears in available
func firstPresent(candidates, available []string) (string, bool) {
	for _, candidate := range candidates {
		for _, av := range available {
			if candidate == av {
				return candidate, true
			}
		}
	}
	return "", false
}
