//go:build mage

// Package main contains Mage build targets for thruster-csv developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "thruster-csv"
	cmdPkg  = "./cmd/thruster-csv"
)

// sampleProfile is a small profile for trying the CLI by hand.
const sampleProfile = `[
  {"acceleration": 1.2, "force": 500},
  {"acceleration": 2.4, "force": 950},
  {"acceleration": 3.1, "force": 1240},
  {"acceleration": 4.05, "force": 1620}
]
`

var Default = Build

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Sample writes thruster_profile.json to the working directory unless one
// already exists, then converts it with a fresh build.
func Sample() error {
	mg.Deps(Build)

	if _, err := os.Stat("thruster_profile.json"); os.IsNotExist(err) {
		if err := os.WriteFile("thruster_profile.json", []byte(sampleProfile), 0o644); err != nil {
			return fmt.Errorf("writing sample profile: %w", err)
		}
		fmt.Println("Wrote thruster_profile.json")
	}
	return sh.RunV(filepath.Join(binDir, binName))
}

// Clean removes build output and files produced by Sample.
func Clean() error {
	for _, p := range []string{binDir, "thruster_profile.csv", ".thruster-csv"} {
		if err := sh.Rm(p); err != nil {
			return fmt.Errorf("removing %s: %w", p, err)
		}
	}
	return nil
}
