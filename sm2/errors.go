package sm2

import (
	"fmt"

	"github.com/vastbase/gmsm/internal/gmerr"
)

var (
	errScalarOutOfRange    = fmt.Errorf("sm2: private key out of range: %w", gmerr.ErrScalarOutOfRange)
	errSigComponentRange   = fmt.Errorf("sm2: signature component out of range: %w", gmerr.ErrScalarOutOfRange)
	errSigRejectZeroT      = fmt.Errorf("sm2: verification failed (t=0): %w", gmerr.ErrAuthenticationFailed)
	errSigRejectInfinity   = fmt.Errorf("sm2: verification failed ([s]G+[t]P is infinity): %w", gmerr.ErrAuthenticationFailed)
	errSigMismatch         = fmt.Errorf("sm2: signature verification failed: %w", gmerr.ErrAuthenticationFailed)
	errSignatureLength     = fmt.Errorf("sm2: signature must be 64 bytes: %w", gmerr.ErrInvalidInputLength)
	errCiphertextTooShort  = fmt.Errorf("sm2: ciphertext shorter than the 97-byte C1+C3 overhead: %w", gmerr.ErrInvalidInputLength)
	errKDFAllZero          = fmt.Errorf("sm2: KDF output was all zero: %w", gmerr.ErrKDFAllZero)
	errC3Mismatch          = fmt.Errorf("sm2: C3 hash mismatch: %w", gmerr.ErrAuthenticationFailed)
	errRetryBudgetExceeded = fmt.Errorf("sm2: exceeded retry budget: %w", gmerr.ErrRetryBudgetExhausted)
)
