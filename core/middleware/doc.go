// Package middleware groups the fiber middleware registered by the start command.
//
// rayid runs first and tags each request with an X-Ray-ID, reusing the
// caller's when present. requestlog writes one line per request
// carrying that ray ID. auth rejects requests without the configured
// X-API-Key; it is only installed when server.api_key is set, after the
// public swagger route.
package middleware
