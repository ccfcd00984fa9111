package lingo

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// LanguagePreferencesFromGrpc reads the accept-language metadata entry of
// an incoming gRPC request, if any.
func LanguagePreferencesFromGrpc(ctx context.Context) []string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}

	header := md.Get("accept-language")
	if len(header) == 0 {
		return nil
	}

	return header
}

// UnaryInterceptor mints a language context per unary call from the
// accept-language metadata.
func (s *Service) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		_ *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		lc := s.ContextFor(LanguagePreferencesFromGrpc(ctx)...)

		return handler(ToContext(ctx, lc), req)
	}
}

// StreamInterceptor mints a language context per stream from the
// accept-language metadata.
func (s *Service) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx := ss.Context()
		lc := s.ContextFor(LanguagePreferencesFromGrpc(ctx)...)

		// Wrap the original stream so handlers always receive a stream
		// whose context carries the language context.
		wrapped := &serverStreamWrapper{ctx: ToContext(ctx, lc), ServerStream: ss}

		return handler(srv, wrapped)
	}
}

type serverStreamWrapper struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *serverStreamWrapper) Context() context.Context {
	return w.ctx
}
