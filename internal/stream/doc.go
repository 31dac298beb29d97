// Package stream consumes the cloud's push channel over a websocket and
// delivers device status updates as they happen, as an alternative to
// polling the device list.
package stream
