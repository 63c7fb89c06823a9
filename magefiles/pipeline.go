package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Pipeline builds the CLI, runs the clean stage over every CSV in
// data/raw into data/cleaned, and prints a summary report.
func Pipeline() error {
	mg.Deps(Build)

	inputs, err := filepath.Glob(filepath.Join("data", "raw", "*.csv"))
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no CSV files in data/raw; run mage init and add inventory exports")
	}

	output := filepath.Join("data", "cleaned", "cleaned_devices.csv")
	args := append([]string{"clean", "--output", output}, inputs...)
	if err := run(args...); err != nil {
		return err
	}

	return run("report", output)
}

// Sync builds the CLI and syncs every cleaned CSV into the catalog.
func Sync() error {
	mg.Deps(Build)

	inputs, err := filepath.Glob(filepath.Join("data", "cleaned", "*.csv"))
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no CSV files in data/cleaned; run mage pipeline first")
	}

	return run(append([]string{"catalog", "sync"}, inputs...)...)
}

// run executes the built CLI with args, streaming its output.
func run(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
