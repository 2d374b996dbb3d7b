// Package http implements the REST transport of the blog application.
//
// It wires the chi router, request handlers for users, posts and comments,
// and the middleware chain in front of them: panic recovery, real client
// IP, CORS, trace ids, access logging, gzip and the bearer-token guard on
// the protected routes. Handlers decode requests, call the service layer
// and translate its sentinel errors into status codes.
package http
