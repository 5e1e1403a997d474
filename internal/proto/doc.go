// Package proto holds the generated gRPC contract of the GophGram auth
// service. The source is api/proto/auth.proto.
package proto

//go:generate protoc --proto_path=../.. --go_out=../.. --go_opt=module=github.com/dmitrijs2005/gophgram --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/gophgram api/proto/auth.proto
