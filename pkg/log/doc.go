// Package log is the structured logging port used across wireletter.
//
// Pipeline stages, adapters and the HTTP boundary log through the Logger
// interface so they never import a concrete logging library. A zerolog
// adapter backs the CLI and server; NoopLogger keeps tests quiet.
//
//	logger := log.NewZerologLogger(zerolog.New(os.Stderr))
//	logger.Info("letter rendered", log.String("reference", ref), log.Int("pages", n))
package log
