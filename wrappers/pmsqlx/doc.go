/*
Package pmsqlx wraps jmoiron/sqlx handles so every call records a
section, the same way pmsql does for database/sql.

See the examples/sqlx folder at the top level of this repository for a
sample program.
*/
package pmsqlx
