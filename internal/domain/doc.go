// Package domain holds the wire-transfer entities shared by every stage of
// the pipeline: the inbound request, the table rows derived from it, the
// dispatch summary and the error taxonomy.
//
// Nothing here depends on PDF, HTTP or logging code. Values are built once
// per submission and never mutated while a letter is being rendered.
package domain
