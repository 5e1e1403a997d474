package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophgram/internal/common"
	pb "github.com/dmitrijs2005/gophgram/internal/proto"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults, which tests use to plug in a bufconn dialer.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}

	return &GRPCClient{
		endpointURL: endpointURL,
		conn:        conn,
		client:      pb.NewAuthServiceClient(conn),
	}, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) CreateAccount(ctx context.Context, name, username, email string, salt, verifier []byte) (string, error) {
	req := &pb.CreateAccountRequest{Name: name, Username: username, Email: email, Salt: salt, Verifier: verifier}

	resp, err := s.client.CreateAccount(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetAccountId(), nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, email string) ([]byte, error) {
	resp, err := s.client.GetSalt(ctx, &pb.GetSaltRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetSalt(), nil
}

func (s *GRPCClient) EstablishSession(ctx context.Context, email string, verifier []byte) (Session, error) {
	resp, err := s.client.EstablishSession(ctx, &pb.EstablishSessionRequest{Email: email, Verifier: verifier})
	if err != nil {
		return Session{}, s.mapError(err)
	}

	return Session{
		AccountID:   resp.GetAccountId(),
		AccessToken: resp.GetAccessToken(),
		ExpiresAt:   resp.GetExpiresAt().AsTime(),
	}, nil
}

func (s *GRPCClient) CheckSession(ctx context.Context, accessToken string) (SessionInfo, error) {
	resp, err := s.client.CheckSession(withAccessToken(ctx, accessToken), &pb.CheckSessionRequest{})
	if err != nil {
		return SessionInfo{}, s.mapError(err)
	}

	return SessionInfo{Valid: resp.GetValid(), AccountID: resp.GetAccountId(), Username: resp.GetUsername()}, nil
}

func (s *GRPCClient) RevokeSession(ctx context.Context, accessToken string) error {
	_, err := s.client.RevokeSession(withAccessToken(ctx, accessToken), &pb.RevokeSessionRequest{})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
