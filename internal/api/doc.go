// Package api turns HTTP requests into calls on the signup use case.
//
// Controllers work on the transport-neutral HTTPRequest and HTTPResponse
// types; AdaptRoute binds a Controller to net/http. Client-visible errors
// come from the taxonomy in errors.go and never carry internal causes.
package api
