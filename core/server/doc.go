// Package server wraps http.Server with graceful shutdown and timeouts
// suitable for production.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//
//	// Serves until ctx is cancelled, then drains connections for up to
//	// the configured shutdown timeout.
//	if err := srv.Run(ctx, router)(); err != nil {
//		return err
//	}
//
// Config reads HTTP_ADDR, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT,
// HTTP_IDLE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT and HTTP_MAX_HEADER_BYTES.
package server
