// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// RefLength is the number of hex characters in a review reference
const RefLength = 8

// ReviewRef derives a short reference for a review from its text and
// submission time in nanoseconds.
func ReviewRef(text string, at time.Time) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte(strconv.FormatInt(at.UnixNano(), 10)))
	return hex.EncodeToString(h.Sum(nil))[:RefLength]
}
