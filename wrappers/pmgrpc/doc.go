/*
Package pmgrpc has a unary server interceptor to time gRPC method
handlers.

Install it with grpc.UnaryInterceptor when creating the server; every
unary RPC then records a section named by the full method and the
response's gRPC status code.
*/
package pmgrpc
