// Package ports defines the boundaries between the wire-transfer pipeline
// and the infrastructure it drives.
//
//   - [LetterRenderer]: paints a request as a PDF letter
//   - [Dispatcher]: sends a rendered letter and its summary
//   - [Mailer]: hands a finished message to the delivery channel
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//
// Ports depend on internal/domain alone. The application layer
// (internal/app) depends only on these interfaces; internal/render and
// internal/adapters provide the implementations.
package ports
