package main

import "github.com/Shruthi-d-official/WareHouse/internal/app"

// @title           Warehouse Management API
// @version         1.0
// @description     Four-tier access control (admin, vendor, team leader, worker) with worker OTP login and counting sessions.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	app.Run()
}
