/*
Package pmsql wraps database/sql handles so every call records a
section.

Open your *sql.DB as usual and replace it with the result of WrapDB;
each Exec, Query, Ping, transaction begin/commit/rollback and so on then
records one microsecond-resolution section named by the verb and query
text. See the examples/sql folder at the top level of this repository
for a sample program.
*/
package pmsql
