package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/IsuruSandaruwan97/react-score-dashboard/cmd/app"
)

// @title           Competition Score Dashboard API
// @description     Competition management API - players, judges, weighted criteria and published results.
//
// @license.name  MIT
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
