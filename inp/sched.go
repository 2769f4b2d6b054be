// Copyright 2026 The Pipeflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// PipeSize is one row of a pipe schedule table
type PipeSize struct {
	Nominal  string  `csv:"nominal"`  // nominal size, e.g. "DN100"
	Schedule string  `csv:"schedule"` // schedule designation, e.g. "40"
	Di       float64 `csv:"di_mm"`    // inside diameter [mm]
}

// Dm returns the inside diameter in metres
func (o PipeSize) Dm() float64 {
	return o.Di / 1000.0
}

// ReadSched reads a pipe schedule table from a CSV file
func ReadSched(dir, fn string) (sizes []*PipeSize, err error) {
	f, err := os.Open(filepath.Join(dir, fn))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	err = gocsv.UnmarshalFile(f, &sizes)
	return
}

// FindSize returns the row matching nominal size and schedule
//  Note: returns nil if not found
func FindSize(sizes []*PipeSize, nominal, schedule string) *PipeSize {
	for _, s := range sizes {
		if s.Nominal == nominal && s.Schedule == schedule {
			return s
		}
	}
	return nil
}
