// Package pb holds the generated protobuf and gRPC code for the settlement
// API.
package pb

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative api/pb/settlement.proto
