// Package docs holds the Swagger spec served when built with -tags=swagger.
// Regenerate docs.go with `swag init -g cmd/eventhost/docs.go -o docs`.
package docs
