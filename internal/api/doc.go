// Package api contains the HTTP handlers, request/response models, and
// error mapping for the biological-age API. Handlers stay thin: decode,
// validate, call a service, encode. All error responses go through the
// sanitizing helpers so internal details never reach clients.
package api
