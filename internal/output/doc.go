// Package output renders command results for the terminal. Tables are
// the default; a JSON mode replaces every renderer with indented JSON
// for scripting.
package output
