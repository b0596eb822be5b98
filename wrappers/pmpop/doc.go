/*
Package pmpop lets apps built on gobuffalo/pop record a section per
database call.

Build a pmpop.DB around a pmsqlx-wrapped connection and hand it to your
pop connection's store; see the examples/pop folder at the top level of
this repository for a sample program.
*/
package pmpop
