package bigint256

import (
	"math/big"
	"math/rand"
	"testing"
)

func toBig(u U256) *big.Int {
	b := u.BytesBE()
	return new(big.Int).SetBytes(b[:])
}

func fromBig(x *big.Int) U256 {
	b := x.Bytes()
	var buf [32]byte
	copy(buf[32-len(b):], b)
	u, _ := FromBytesBE(buf[:])
	return u
}

func TestBytesBERoundTrip(t *testing.T) {
	cases := [][]byte{
		make([]byte, 32),
		{0x01},
	}
	for _, c := range cases {
		var buf [32]byte
		copy(buf[32-len(c):], c)
		u, ok := FromBytesBE(buf[:])
		if !ok {
			t.Fatalf("FromBytesBE rejected a 32-byte input")
		}
		got := u.BytesBE()
		if got != buf {
			t.Fatalf("round trip mismatch: got %x want %x", got, buf)
		}
	}
}

func TestFromBytesBEWrongLength(t *testing.T) {
	if _, ok := FromBytesBE(make([]byte, 31)); ok {
		t.Fatalf("expected failure on 31-byte input")
	}
	if _, ok := FromBytesBE(make([]byte, 33)); ok {
		t.Fatalf("expected failure on 33-byte input")
	}
}

func TestCmp(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := randBig(r)
		b := randBig(r)
		u, v := fromBig(a), fromBig(b)
		want := a.Cmp(b)
		got := Cmp(&u, &v)
		if (want < 0) != (got < 0) || (want > 0) != (got > 0) || (want == 0) != (got == 0) {
			t.Fatalf("Cmp mismatch for %x vs %x: want %d got %d", a, b, want, got)
		}
	}
}

func randBig(r *rand.Rand) *big.Int {
	buf := make([]byte, 32)
	r.Read(buf)
	return new(big.Int).SetBytes(buf)
}

func TestAddSub(t *testing.T) {
	mask := new(big.Int).Lsh(big.NewInt(1), 256)
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		a := randBig(r)
		b := randBig(r)
		u, v := fromBig(a), fromBig(b)

		var sum U256
		carry := Add(&sum, &u, &v)
		wantSum := new(big.Int).Add(a, b)
		wantCarry := uint32(0)
		if wantSum.Cmp(mask) >= 0 {
			wantCarry = 1
			wantSum.Mod(wantSum, mask)
		}
		if carry != wantCarry || toBig(sum).Cmp(wantSum) != 0 {
			t.Fatalf("Add mismatch: %x + %x", a, b)
		}

		var diff U256
		borrow := Sub(&diff, &u, &v)
		wantDiff := new(big.Int).Sub(a, b)
		wantBorrow := uint32(0)
		if wantDiff.Sign() < 0 {
			wantBorrow = 1
			wantDiff.Add(wantDiff, mask)
		}
		if borrow != wantBorrow || toBig(diff).Cmp(wantDiff) != 0 {
			t.Fatalf("Sub mismatch: %x - %x", a, b)
		}
	}
}

func TestMul(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		a := randBig(r)
		b := randBig(r)
		u, v := fromBig(a), fromBig(b)
		prod := Mul(&u, &v)
		want := new(big.Int).Mul(a, b)

		lo := toBig(prod.Lo())
		hi := toBig(prod.Hi())
		got := new(big.Int).Lsh(hi, 256)
		got.Add(got, lo)
		if got.Cmp(want) != 0 {
			t.Fatalf("Mul mismatch: %x * %x = %x, want %x", a, b, got, want)
		}
	}
}

func TestShr1AndBit(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		a := randBig(r)
		u := fromBig(a)
		for bit := 0; bit < 8; bit++ {
			want := a.Bit(bit)
			if got := u.Bit(bit); uint(got) != want {
				t.Fatalf("Bit(%d) mismatch for %x", bit, a)
			}
		}
		u.Shr1()
		want := new(big.Int).Rsh(a, 1)
		if toBig(u).Cmp(want) != 0 {
			t.Fatalf("Shr1 mismatch for %x", a)
		}
	}
}

func TestBinaryInverse(t *testing.T) {
	p, _ := new(big.Int).SetString("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF", 16)
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		a := new(big.Int).Mod(randBig(r), p)
		if a.Sign() == 0 {
			continue
		}
		au, pu := fromBig(a), fromBig(p)
		inv, ok := BinaryInverse(au, pu)
		if !ok {
			t.Fatalf("BinaryInverse failed for %x mod %x", a, p)
		}
		want := new(big.Int).ModInverse(a, p)
		if want == nil {
			t.Fatalf("no modular inverse for %x mod %x (test setup bug)", a, p)
		}
		if toBig(inv).Cmp(want) != 0 {
			t.Fatalf("BinaryInverse(%x, %x) = %x, want %x", a, p, toBig(inv), want)
		}
	}
}

func TestBinaryInverseZero(t *testing.T) {
	p, _ := new(big.Int).SetString("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFF", 16)
	pu := fromBig(p)
	if _, ok := BinaryInverse(U256{}, pu); ok {
		t.Fatalf("expected failure inverting zero")
	}
}

func TestIsZero(t *testing.T) {
	var z U256
	if !z.IsZero() {
		t.Fatalf("zero value should report IsZero")
	}
	z[3] = 1
	if z.IsZero() {
		t.Fatalf("nonzero value reported IsZero")
	}
}
