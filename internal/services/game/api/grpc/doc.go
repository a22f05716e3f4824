// Package grpc groups the battle service's gRPC packages.
package grpc
