/*
Package pmnethttp provides perfmon wrappers for net/http Handlers.

Summary

pmnethttp wraps all the standard `net/http` types: Handler, HandlerFunc,
and ServeMux. Each wrapped invocation records one section on the registry
you pass in, named by method, path, and response status, so a later
Render shows how long each request took.

For best results, wrap the mux passed to http.ListenAndServe - this will
get you a section for every HTTP request handled by the server. Wrapping
individual handlers or HandleFuncs records sections only for the
endpoints that are wrapped; 404s, for example, will not be tracked.

See the examples/http-mux folder at the top level of this repository for
a sample program.
*/
package pmnethttp
