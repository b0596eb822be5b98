// Package perfmon helps you time named sections of a Go app and print
// the results as a readable table.
//
// Summary
//
// This package and its subpackages contain bits of code to mark the
// start and end of named code sections ("sections"), render the elapsed
// durations as a fixed-width report, and optionally export each ended
// section as a structured event.
//
// The perfmon package provides the entry point - initialization and a
// package-level begin/end/render API over a default registry. Inside the
// wrappers directory you find middlewares for specific HTTP frameworks,
// gRPC, and SQL packages that record one section per request or call.
// The `track` package offers direct control: create your own registries
// and own their lifetime explicitly.
//
// Regardless of which subpackages are used, there is a small amount of
// global configuration to add to your application's startup process:
//
//   func main() {
//     perfmon.Init(perfmon.Config{
//       Dataset: "myapp",
//     })
//     defer perfmon.Close()
//
//     id := perfmon.Begin("load config", track.Milliseconds)
//     loadConfig()
//     perfmon.End(id)
//     perfmon.Render("Startup")
//     ...
//
// Once configured, use one of the subpackages to wrap HTTP handlers and
// SQL db objects.
//
// Examples
//
// There are runnable examples in the examples directory at the top level
// of this repository and examples of each wrapper in the godoc.
package perfmon
