/*
Package pmgorilla has middleware to time requests routed through the
gorilla muxer.

After attaching the middleware with router.Use, every request records a
section named by the matched route's path template (or registered route
name) and the response status. See the examples/gorilla folder at the
top level of this repository for a sample program.
*/
package pmgorilla
