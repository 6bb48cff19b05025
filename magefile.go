//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - run the test suite
var Default = Test

// Build compiles all packages
func Build() error {
	return sh.RunV("go", "build", "./...")
}

// Test runs the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet across the module
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs lint then the tests
func QA() error {
	mg.SerialDeps(Lint, Test)
	return nil
}
