package main

// @title Festival Catalog API
// @version 1.0
// @description Seasonal festival catalog: flavours, vendor locations, map markers and per-device favourites.

// @license.name MIT

// @host localhost:9100
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the device token.

// @tag.name Catalog
// @tag.description Flavour and location list/detail endpoints

// @tag.name Devices
// @tag.description Anonymous device registration

// @tag.name Favourites
// @tag.description Per-device favourite and tasted sets
