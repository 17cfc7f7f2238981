package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           eventhost API
// @version         1.0
// @description     HTTP API for the eventhost game server core.
//
// @contact.name   eventhost maintainers
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
