// Package xrect is the root of a collection of value-type geometry
// utilities. See the geom subpackage for the rectangle and range types
// themselves.
package xrect
