package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophgram/internal/common"
	pb "github.com/dmitrijs2005/gophgram/internal/proto"
	"github.com/dmitrijs2005/gophgram/internal/server/accounts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) CreateAccount(ctx context.Context, req *pb.CreateAccountRequest) (*pb.CreateAccountResponse, error) {
	a, err := s.accounts.CreateAccount(ctx, accounts.NewAccount{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Salt:     req.Salt,
		Verifier: req.Verifier,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			return nil, status.Error(codes.AlreadyExists, "account already exists")
		case errors.Is(err, common.ErrorValidation):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.logger.Error(ctx, "create account failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.CreateAccountResponse{AccountId: a.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {
	if req.Email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}

	salt, err := s.accounts.GetSalt(ctx, req.Email)
	if err != nil {
		s.logger.Error(ctx, "get salt failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetSaltResponse{Salt: salt}, nil
}

func (s *GRPCServer) EstablishSession(ctx context.Context, req *pb.EstablishSessionRequest) (*pb.EstablishSessionResponse, error) {
	grant, err := s.accounts.EstablishSession(ctx, req.Email, req.Verifier)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		s.logger.Error(ctx, "establish session failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.EstablishSessionResponse{
		AccountId:   grant.AccountID,
		AccessToken: grant.AccessToken,
		ExpiresAt:   timestamppb.New(grant.ExpiresAt),
	}, nil
}

// CheckSession answers Valid=false for tokens that do not resolve to a live
// session. Only a missing token is rejected outright.
func (s *GRPCServer) CheckSession(ctx context.Context, _ *pb.CheckSessionRequest) (*pb.CheckSessionResponse, error) {
	token, ok := accessTokenFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	a, err := s.accounts.CheckSession(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Debug(ctx, "session not valid", "error", err)
			return &pb.CheckSessionResponse{Valid: false}, nil
		}
		s.logger.Error(ctx, "check session failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.CheckSessionResponse{Valid: true, AccountId: a.ID, Username: a.Username}, nil
}

func (s *GRPCServer) RevokeSession(ctx context.Context, _ *pb.RevokeSessionRequest) (*pb.RevokeSessionResponse, error) {
	token, ok := accessTokenFrom(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	if err := s.accounts.RevokeSession(ctx, token); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		s.logger.Error(ctx, "revoke session failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RevokeSessionResponse{}, nil
}

func (s *GRPCServer) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
