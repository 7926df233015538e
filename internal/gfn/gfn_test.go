package gfn

import (
	"math/big"
	"math/rand"
	"testing"
)

func nBig() *big.Int {
	b := N.BytesBE()
	return new(big.Int).SetBytes(b[:])
}

func randElt(r *rand.Rand, n *big.Int) (Elt, *big.Int) {
	x := new(big.Int).Rand(r, n)
	var buf [32]byte
	xb := x.Bytes()
	copy(buf[32-len(xb):], xb)
	e, err := FromBytes(buf[:])
	if err != nil {
		panic(err)
	}
	return e, x
}

func eltBig(e Elt) *big.Int {
	b := e.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func TestArithmeticAgainstBig(t *testing.T) {
	n := nBig()
	r := rand.New(rand.NewSource(20))
	for i := 0; i < 500; i++ {
		e, x := randElt(r, n)
		f, y := randElt(r, n)

		wantSum := new(big.Int).Mod(new(big.Int).Add(x, y), n)
		if eltBig(e.Add(f)).Cmp(wantSum) != 0 {
			t.Fatalf("Add mismatch")
		}

		wantDiff := new(big.Int).Mod(new(big.Int).Sub(x, y), n)
		if eltBig(e.Sub(f)).Cmp(wantDiff) != 0 {
			t.Fatalf("Sub mismatch")
		}

		wantProd := new(big.Int).Mod(new(big.Int).Mul(x, y), n)
		if eltBig(e.Mul(f)).Cmp(wantProd) != 0 {
			t.Fatalf("Mul mismatch: %x * %x mod n, got %x want %x", x, y, eltBig(e.Mul(f)), wantProd)
		}
	}
}

func TestMulWorstCaseNearNSquared(t *testing.T) {
	n := nBig()
	nMinus1 := new(big.Int).Sub(n, big.NewInt(1))
	var buf [32]byte
	xb := nMinus1.Bytes()
	copy(buf[32-len(xb):], xb)
	e, err := FromBytes(buf[:])
	if err != nil {
		t.Fatal(err)
	}
	got := e.Mul(e)
	want := new(big.Int).Mod(new(big.Int).Mul(nMinus1, nMinus1), n)
	if eltBig(got).Cmp(want) != 0 {
		t.Fatalf("(n-1)^2 mod n mismatch: got %x want %x", eltBig(got), want)
	}
}

func TestInverse(t *testing.T) {
	n := nBig()
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 200; i++ {
		e, x := randElt(r, n)
		if x.Sign() == 0 {
			continue
		}
		inv, err := e.Inverse()
		if err != nil {
			t.Fatalf("Inverse failed: %v", err)
		}
		if !e.Mul(inv).Equal(One) {
			t.Fatalf("e * e^-1 != 1")
		}
	}
}

func TestFromBytesStrictRejectsOutOfRange(t *testing.T) {
	buf := N.BytesBE()
	if _, err := FromBytesStrict(buf[:]); err == nil {
		t.Fatalf("expected rejection of N itself")
	}
	if _, err := FromBytes(buf[:]); err != nil {
		t.Fatalf("FromBytes should silently reduce N to 0: %v", err)
	}
}

func TestInRange(t *testing.T) {
	if Zero.InRange() {
		t.Fatalf("zero should not be in range")
	}
	if !One.InRange() {
		t.Fatalf("one should be in range")
	}
}
