// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var labelPrinter = message.NewPrinter(language.English)

// SizeLabel formats a size for display with thousands separators,
// for example 1000000 becomes "1,000,000".
func SizeLabel(n int) string {
	return labelPrinter.Sprintf("%d", n)
}

// SizeLabels formats each of sizes with SizeLabel.
func SizeLabels(sizes []int) []string {
	labels := make([]string, len(sizes))
	for i, n := range sizes {
		labels[i] = SizeLabel(n)
	}
	return labels
}
