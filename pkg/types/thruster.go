// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data and configuration structs shared by the
// thruster-csv packages.
package types

import (
	"encoding/json"
	"strconv"
)

// Column labels of the CSV output, in order.
const (
	ColumnLevel        = "Level"
	ColumnAcceleration = "Average Acceleration (m/s^2)"
	ColumnForce        = "Thruster Force (N)"
)

// Header returns the CSV header row.
func Header() []string {
	return []string{ColumnLevel, ColumnAcceleration, ColumnForce}
}

// ThrusterRecord is one element of the input profile. Values keep the
// literal number text from the JSON document so they can be written back
// out without reformatting.
type ThrusterRecord struct {
	// Acceleration is the average acceleration in m/s^2.
	Acceleration json.Number `json:"acceleration"`

	// Force is the thruster force in newtons.
	Force json.Number `json:"force"`
}

// OutputRow is one CSV data row. Level is the 1-based position of the
// source record in the input profile.
type OutputRow struct {
	Level               int
	AverageAcceleration json.Number
	ThrusterForce       json.Number
}

// RowFor builds the output row for the record at the given 0-based index.
func RowFor(index int, r ThrusterRecord) OutputRow {
	return OutputRow{
		Level:               index + 1,
		AverageAcceleration: r.Acceleration,
		ThrusterForce:       r.Force,
	}
}

// Record returns the row as CSV fields.
func (r OutputRow) Record() []string {
	return []string{
		strconv.Itoa(r.Level),
		r.AverageAcceleration.String(),
		r.ThrusterForce.String(),
	}
}
