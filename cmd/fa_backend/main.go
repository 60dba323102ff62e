// Package main is the entry point for the bookkeeping backend.
package main

import (
	"os"

	"github.com/SscSPs/fin_automation_app/cmd/fa_backend/cmd"
)

// @title Financial Automation API
// @version 1.0
// @description Journal templates, ledger and expenses for a small Indonesian business.

// @host localhost:8080
// @BasePath /api
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
