package bigint256

// BinaryInverse computes the modular inverse of a mod m using the binary
// extended GCD: maintain (u, v, x1, x2) with u = a, v = m, and the loop
// invariant x1*a ≡ u (mod m), x2*a ≡ v (mod m). Halving an odd xi first
// adds m to keep the invariant exact; when both u and v are odd, the
// smaller is subtracted from the larger (mod m on the paired xi). The loop
// terminates when either u or v reaches 1, and the corresponding xi is the
// inverse.
//
// Returns ok=false if a is zero or gcd(a, m) != 1.
func BinaryInverse(a, m U256) (U256, bool) {
	if a.IsZero() {
		return U256{}, false
	}

	one := U256{1}
	u := a
	v := m
	x1 := U256{1}
	x2 := U256{}

	for Cmp(&u, &one) != 0 && Cmp(&v, &one) != 0 {
		for u[0]&1 == 0 && !u.IsZero() {
			u.Shr1()
			halveMod(&x1, &m)
		}
		for v[0]&1 == 0 && !v.IsZero() {
			v.Shr1()
			halveMod(&x2, &m)
		}
		if u.IsZero() || v.IsZero() {
			return U256{}, false
		}
		if Cmp(&u, &v) >= 0 {
			Sub(&u, &u, &v)
			subMod(&x1, &x1, &x2, &m)
		} else {
			Sub(&v, &v, &u)
			subMod(&x2, &x2, &x1, &m)
		}
	}

	if Cmp(&u, &one) == 0 {
		return reduceOnce(x1, m), true
	}
	return reduceOnce(x2, m), true
}

// halveMod halves x in place modulo m: if x is odd, m is added first (the
// extra bit produced by that addition becomes the new top bit after the
// shift) so that x*a ≡ (original invariant) mod m is preserved.
func halveMod(x *U256, m *U256) {
	if x[0]&1 == 0 {
		x.Shr1()
		return
	}
	var sum U256
	carry := Add(&sum, x, m)
	sum.Shr1()
	if carry != 0 {
		sum[Limbs-1] |= 1 << 31
	}
	*x = sum
}

// subMod computes (a-b) mod m, adding m back once if the raw subtraction
// borrows.
func subMod(out, a, b, m *U256) {
	var diff U256
	borrow := Sub(&diff, a, b)
	if borrow != 0 {
		Add(&diff, &diff, m)
	}
	*out = diff
}

// reduceOnce subtracts m from x while x >= m (x is known to be within a
// small constant number of additions of being reduced).
func reduceOnce(x, m U256) U256 {
	for Cmp(&x, &m) >= 0 {
		Sub(&x, &x, &m)
	}
	return x
}
