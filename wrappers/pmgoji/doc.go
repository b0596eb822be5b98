/*
Package pmgoji has middleware to time requests routed by goji.

Attach it with mux.Use; every request then records a section named by
the matched pat pattern and response status. See the examples/goji
folder at the top level of this repository for a sample program.
*/
package pmgoji
