/*
Package pmecho has middleware to time requests served by the Echo
framework.

Create a wrapper with New and attach its Middleware with e.Use; every
request then records a section named by the matched route path and
response status.
*/
package pmecho
