// Package logger provides a small factory over log/slog plus typed
// attribute helpers for the attributes this module logs most.
//
// The factory keeps configuration declarative:
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(slog.String("service", "notify")),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers return empty attrs for zero values, so call sites can
// pass them unconditionally:
//
//	log.LogAttrs(ctx, slog.LevelWarn, "Failed to notify subscriber",
//	    logger.Recipient(name),
//	    logger.Error(err),
//	)
package logger
