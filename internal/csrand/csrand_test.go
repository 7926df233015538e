package csrand

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/vastbase/gmsm/internal/gmerr"
)

func TestBytesFillsBuffer(t *testing.T) {
	buf := make([]byte, 32)
	if err := Bytes(buf); err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if bytes.Equal(buf, make([]byte, 32)) {
		t.Fatalf("Bytes returned all zeros (astronomically unlikely, check wiring)")
	}
}

func TestScalarInRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		e, err := Scalar()
		if err != nil {
			t.Fatalf("Scalar: %v", err)
		}
		if e.IsZero() {
			t.Fatalf("Scalar returned zero")
		}
	}
}

// allZeroSource always yields zero bytes, forcing every draw to be
// rejected so the retry budget is exhausted deterministically.
type allZeroSource struct{}

func (allZeroSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestScalarExhaustsRetryBudget(t *testing.T) {
	_, err := ScalarFrom(allZeroSource{})
	if !errors.Is(err, gmerr.ErrRetryBudgetExhausted) {
		t.Fatalf("expected ErrRetryBudgetExhausted, got %v", err)
	}
}

// shortSource fails every read without yielding any bytes.
type shortSource struct{}

func (shortSource) Read(p []byte) (int, error) {
	return 0, errors.New("short read")
}

func TestScalarPropagatesSourceError(t *testing.T) {
	_, err := ScalarFrom(shortSource{})
	if err == nil {
		t.Fatalf("expected error from failing source")
	}
}

func TestScalarFromRealCSPRNG(t *testing.T) {
	e, err := ScalarFrom(rand.Reader)
	if err != nil {
		t.Fatalf("ScalarFrom(rand.Reader): %v", err)
	}
	if e.IsZero() {
		t.Fatalf("scalar is zero")
	}
}
