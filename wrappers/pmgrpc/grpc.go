package pmgrpc

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/perfmonio/perfmon-go/track"
	"github.com/perfmonio/perfmon-go/wrappers/common"
)

// UnaryServerInterceptor records one section on reg per RPC the server
// handles, named by the full method and the gRPC status code of the
// response, e.g. "/helloworld.Greeter/SayHello (OK)".
func UnaryServerInterceptor(reg *track.Registry) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		name := fmt.Sprintf("%s (%s)", info.FullMethod, status.Code(err))
		common.Record(reg, name, start)
		return resp, err
	}
}
