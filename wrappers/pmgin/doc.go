/*
Package pmgin has middleware to time requests served by the gin-gonic
framework.

Attach it with router.Use; every request then records a section named by
the matched route pattern and response status.
*/
package pmgin
