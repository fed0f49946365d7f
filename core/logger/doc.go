// Package logger provides structured logging built on log/slog: a small
// factory with environment presets and attribute helpers with nil safety.
//
//	log := logger.New(
//		logger.WithProduction("patchdemo"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//
//	log.Info("book patched",
//		logger.Component("books"),
//		logger.ID("book_id", id),
//		logger.Fields(patch.Touched().Names()),
//	)
//
//	log.Warn("bind failed", logger.Error(err), logger.Source("route"))
//
// Helpers return an empty slog.Attr for nil or empty input, which slog drops.
package logger
