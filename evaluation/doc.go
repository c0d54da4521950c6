// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package evaluation measures a sentiment classifier against a small fixed
// set of labeled airline reviews. It reports accuracy plus macro-averaged
// precision, recall and F1; a label with no predictions scores 0.
package evaluation
