package main

import (
	"fmt"
	"os"
)

// @title finacc API
// @version 1.0
// @description Small-business accounting: account balances, invoice settlement, P&L and cash flow reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
