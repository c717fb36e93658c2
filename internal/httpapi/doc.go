// Package httpapi exposes the member, catalog, and order services as a
// thin JSON API. Handlers translate HTTP to service calls and map domain
// errors to status codes; no business rule lives here.
package httpapi
