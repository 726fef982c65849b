// Package service exposes the course lookups behind the HTTP and CLI
// surfaces. It validates caller input before any upstream request and maps
// empty lookups to ErrNotFound.
package service
