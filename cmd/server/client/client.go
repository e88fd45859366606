// Package client provides test commands for the atlas gRPC services
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/atlas-api/internal/handlers/atlas/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// Request flags
	language       string
	acceptLanguage string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the atlas API",
	Long:  `Client commands allow you to test the atlas API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&language, "lang", "", "Explicit language code")
	ClientCmd.PersistentFlags().StringVar(&acceptLanguage, "accept-language", "", "Accept-Language header value")

	// Catalog commands
	ClientCmd.AddCommand(getItemCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(listCodesCmd)

	// Preference commands
	ClientCmd.AddCommand(registerClientCmd)
	ClientCmd.AddCommand(toggleMarkerCmd)
}

// createClient connects to the server
func createClient() (*v1alpha1.Client, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewClient(conn), cleanup, nil
}

// requestContext applies the timeout and language metadata
func requestContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if acceptLanguage != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, v1alpha1.AcceptLanguageHeader, acceptLanguage)
	}
	return ctx, cancel
}

// call runs one request and prints the response document
func call(service, method string, req map[string]any) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	if language != "" {
		req["language"] = language
	}

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.Call(ctx, service, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	return printJSON(resp)
}

func printJSON(resp *structpb.Struct) error {
	marshaler := protojson.MarshalOptions{
		Indent: "  ",
	}
	jsonBytes, err := marshaler.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response to JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
