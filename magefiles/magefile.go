//go:build mage

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - lint and race tests
var Default = QA

// optionalPackages hold the categories that only exist when imported.
var optionalPackages = []string{"./jsonerr", "./yamlerr", "./tomlerr"}

type Test mg.Namespace

// All runs every package's tests.
func (Test) All() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs the tests under the race detector. The cross-goroutine tests are
// only meaningful here.
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Core runs the core package alone, so the optional kinds are not linked in.
func (Test) Core() error {
	return sh.RunV("go", "test", "-race", ".")
}

// Optional runs each optional category package in its own test binary.
func (Test) Optional() error {
	for _, pkg := range optionalPackages {
		if err := sh.RunV("go", "test", "-race", pkg); err != nil {
			return fmt.Errorf("%s: %w", pkg, err)
		}
	}
	return nil
}

// Fuzz runs the message rendering fuzz target briefly.
func (Test) Fuzz() error {
	return sh.RunV("go", "test", "-run=^$", "-fuzz=FuzzErrorText", "-fuzztime=30s", ".")
}

type Lint mg.Namespace

// All runs every lint check.
func (Lint) All() {
	mg.SerialDeps(Lint.Format, Lint.Vet)
}

// Format fails when gofmt would change any module source file.
// Underscore-prefixed directories are skipped.
func (Lint) Format() error {
	var files []string
	for _, pattern := range []string{"*.go", "*/*.go"} {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return err
		}
		for _, m := range matches {
			if !strings.HasPrefix(m, "_") {
				files = append(files, m)
			}
		}
	}
	out, err := sh.Output("gofmt", append([]string{"-l"}, files...)...)
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("gofmt needed on:\n%s", out)
	}
	return nil
}

// Vet runs go vet.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// QA runs lint and the race-enabled test suite.
func QA() {
	mg.SerialDeps(Lint.All, Test.Race)
}
