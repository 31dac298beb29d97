// Package devices carries the attribute schemas for the supported device
// types. A schema names every known status key, its type, its accepted
// values, and whether it is writable; SchemaFor resolves the right schema
// from a device's type and feature codes, falling back to the generic
// bean attribute set for the standard air conditioner types.
package devices
