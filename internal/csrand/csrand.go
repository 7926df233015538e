// Package csrand wraps the OS CSPRNG for the two things the engine needs
// random bytes for: raw key material, and rejection-sampled scalars in
// [1, N-1]. The source this project is modeled on seeded a non-cryptographic
// rand() from wall-clock time; every call here instead goes through
// crypto/rand, which is the OS CSPRNG (getrandom/BCryptGenRandom/
// arc4random, depending on platform) — there is no third-party CSPRNG
// wrapper in the example corpus to defer to, because crypto/rand already
// is the ecosystem's binding to that OS facility.
package csrand

import (
	"crypto/rand"
	"io"

	"github.com/vastbase/gmsm/internal/bigint256"
	"github.com/vastbase/gmsm/internal/gfn"
	"github.com/vastbase/gmsm/internal/gmerr"
)

// MaxRejectionSamples bounds the scalar rejection-sampling loop. The
// bound the engine this is modeled on hardcodes in both its keygen/sign
// path and its KDF-all-zero retry; named here so tests can override the
// source and the budget together to exercise ErrRetryBudgetExhausted
// deterministically.
var MaxRejectionSamples = 100

// Source abstracts the byte source so tests can inject a biased or
// deterministic reader without touching the real CSPRNG.
type Source interface {
	Read(p []byte) (n int, err error)
}

// Bytes fills buf from the OS CSPRNG.
func Bytes(buf []byte) error {
	return ReadFrom(rand.Reader, buf)
}

// ReadFrom fills buf from src, failing if src cannot provide a full read.
func ReadFrom(src Source, buf []byte) error {
	_, err := io.ReadFull(src, buf)
	return err
}

// Scalar draws a uniform element of [1, N-1] by rejection sampling: draw
// 32 bytes, interpret as a big-endian integer, reject 0 and values >= N.
// Rejection probability is on the order of 2^-128, so MaxRejectionSamples
// attempts is an enormous safety margin rather than an expected case.
func Scalar() (gfn.Elt, error) {
	return ScalarFrom(rand.Reader)
}

// ScalarFrom is Scalar with an injectable byte source, for tests.
func ScalarFrom(src Source) (gfn.Elt, error) {
	var buf [32]byte
	for attempt := 0; attempt < MaxRejectionSamples; attempt++ {
		if err := ReadFrom(src, buf[:]); err != nil {
			return gfn.Elt{}, err
		}
		u, ok := bigint256.FromBytesBE(buf[:])
		if !ok {
			continue
		}
		if u.IsZero() {
			continue
		}
		e, err := gfn.FromBytesStrict(buf[:])
		if err != nil {
			continue
		}
		return e, nil
	}
	return gfn.Elt{}, gmerr.ErrRetryBudgetExhausted
}
