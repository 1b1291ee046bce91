package main

import (
	"github.com/spf13/cobra"

	"github.com/tmorimoto/writedesk/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start an HTTP server exposing the correction, review, and chat pipelines as REST endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to WRITEDESK_PORT or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	client, cfg, err := newClient(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	port := cfg.Port
	if servePort != 0 {
		port = servePort
	}

	srv := server.New(server.Config{Port: port}, client)
	return srv.Start()
}
