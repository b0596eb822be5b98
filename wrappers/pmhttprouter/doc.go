/*
Package pmhttprouter has middleware to time requests handled by the
julienschmidt httprouter.

Wrap each handle you register; every invocation records a section named
by the route shape and response status.
*/
package pmhttprouter
