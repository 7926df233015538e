// Package gmerr holds the sentinel errors shared across the engine's
// packages, so callers can use errors.Is regardless of which package a
// failure originated in.
package gmerr

import "errors"

var (
	// ErrInvalidInputLength marks a key, IV, or buffer of the wrong size.
	ErrInvalidInputLength = errors.New("gmsm: invalid input length")

	// ErrInvalidEncoding marks a malformed point prefix or codec input.
	ErrInvalidEncoding = errors.New("gmsm: invalid encoding")

	// ErrPointNotOnCurve marks a decoded public key that fails the curve equation.
	ErrPointNotOnCurve = errors.New("gmsm: point not on curve")

	// ErrScalarOutOfRange marks a private key or ephemeral scalar outside [1, n-1].
	ErrScalarOutOfRange = errors.New("gmsm: scalar out of range")

	// ErrKDFAllZero marks a KDF output that was all-zero bytes.
	ErrKDFAllZero = errors.New("gmsm: KDF output was all zero")

	// ErrAuthenticationFailed marks a GCM tag mismatch or SM2 C3 mismatch.
	ErrAuthenticationFailed = errors.New("gmsm: authentication failed")

	// ErrPaddingInvalid marks a malformed PKCS#7 padding on CBC/ECB decrypt.
	ErrPaddingInvalid = errors.New("gmsm: invalid padding")

	// ErrRetryBudgetExhausted marks a rejection-sampling loop that exceeded its attempt cap.
	ErrRetryBudgetExhausted = errors.New("gmsm: retry budget exhausted")

	// ErrInversionFailed marks a modular inverse of zero or a non-coprime input.
	ErrInversionFailed = errors.New("gmsm: modular inverse failed")
)
