package main

import "storefront/internal/app"

// @title           Storefront API
// @version         1.0
// @description     Catalog, auth and order API for the storefront backend.
// @BasePath        /api/v1
func main() {
	app.Run()
}
