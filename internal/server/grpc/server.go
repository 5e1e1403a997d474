// Package grpc exposes the accounts service over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/gophgram/internal/logging"
	pb "github.com/dmitrijs2005/gophgram/internal/proto"
	"github.com/dmitrijs2005/gophgram/internal/server/accounts"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AccountService is the part of accounts.Service the handlers use.
type AccountService interface {
	CreateAccount(ctx context.Context, in accounts.NewAccount) (*accounts.Account, error)
	GetSalt(ctx context.Context, email string) ([]byte, error)
	EstablishSession(ctx context.Context, email string, verifier []byte) (*accounts.Grant, error)
	CheckSession(ctx context.Context, token string) (*accounts.Account, error)
	RevokeSession(ctx context.Context, token string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	address  string
	accounts AccountService
	metrics  *Metrics
	logger   logging.Logger
}

// NewGRPCServer builds a server listening on address. metrics may be nil.
func NewGRPCServer(address string, l logging.Logger, as AccountService, m *Metrics) *GRPCServer {
	return &GRPCServer{
		address:  address,
		accounts: as,
		metrics:  m,
		logger:   l.With("module", "grpc_server"),
	}
}

// NewServer returns a grpc.Server with the auth service, the standard health
// service and interceptors registered. Calls are traced through otelgrpc.
func (s *GRPCServer) NewServer() *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{}
	if s.metrics != nil {
		interceptors = append(interceptors, s.metrics.UnaryInterceptor)
	}
	interceptors = append(interceptors, s.accessTokenInterceptor)

	srv := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(interceptors...),
	)
	pb.RegisterAuthServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(pb.AuthService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}
