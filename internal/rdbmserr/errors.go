// Package rdbmserr defines the sentinel error categories surfaced at the
// executor boundary (spec §7): Syntax, Schema, Constraint, Type,
// Cardinality, Safety, and Arity. Every error the parser, storage
// engine, or executor raises itself wraps exactly one of these with %w
// so callers can classify a failure with errors.Is while the
// human-readable message stays whatever string the spec mandates. File
// I/O errors from persistence are returned as they come, unwrapped.
package rdbmserr

import "errors"

var (
	ErrSyntax      = errors.New("syntax error")
	ErrSchema      = errors.New("schema error")
	ErrConstraint  = errors.New("constraint violation")
	ErrType        = errors.New("type error")
	ErrCardinality = errors.New("cardinality error")
	ErrSafety      = errors.New("safety error")
	ErrArity       = errors.New("arity error")
)
