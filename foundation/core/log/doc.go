// Package log provides structured logging for Lovelace.
//
// Package: log
// Title: Lovelace Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              a per-run id, JSON and text output and integration with the
//              structured error type of foundation/core/error.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-03
// Modified: 2025-02-03
//
// Change History:
// - 2025-02-03 v0.1.0: Initial implementation
//
// Usage:
//
//	import mdwlog "github.com/msto63/lovelace/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatText,
//		Output: os.Stderr,
//	})
//	logger = logger.WithField("component", "lovelace-parser")
//	logger.Debug("Parsing statement", mdwlog.Fields{"token": "WHILE"})
package log
