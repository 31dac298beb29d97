// Package api implements the signed REST client for the device cloud.
//
// Every request carries a set of vendor system parameters (timestamp,
// app ID, source ID, access token and friends) plus an HMAC-SHA256
// signature over the request target, the Date header, and the app ID
// header. GET requests put the parameters in the query string and the
// access token in a header; POST requests merge everything into the JSON
// body.
//
// Responses share a common envelope with a resultCode field. A non-zero
// resultCode is surfaced as an *APIError carrying the server's message.
// A 401 response triggers exactly one forced token refresh and retry
// before the error is surfaced.
package api
