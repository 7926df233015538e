// Package curve implements the SM2 elliptic curve group: affine point
// arithmetic, scalar multiplication, on-curve validation, and wire
// encode/decode.
//
// The group identity is modeled as a Go nil *Point rather than an affine
// point carrying a side "is infinity" boolean — a nil check at the handful
// of call sites that care is simpler to audit than a flag that every
// arithmetic routine must remember to test and propagate.
package curve

import (
	"github.com/vastbase/gmsm/internal/bigint256"
	"github.com/vastbase/gmsm/internal/gfn"
	"github.com/vastbase/gmsm/internal/gfp"
	"github.com/vastbase/gmsm/internal/gmerr"
)

// Point is an affine point (X, Y) on the curve. A nil *Point denotes the
// point at infinity, the group identity.
type Point struct {
	X, Y gfp.Elt
}

func hexElt(s string) gfp.Elt {
	var buf [32]byte
	for i := 0; i < 32; i++ {
		buf[i] = unhex(s[2*i])<<4 | unhex(s[2*i+1])
	}
	e, err := gfp.FromBytes(buf[:])
	if err != nil {
		panic("curve: bad constant: " + err.Error())
	}
	return e
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	}
	panic("curve: bad hex digit")
}

// A and B are the curve's Weierstrass coefficients (y^2 = x^3 + A*x + B).
// A is the field element P-3, per GM/T 32918.5.
var (
	A = hexElt("FFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF00000000FFFFFFFFFFFFFFFC")
	B = hexElt("28E9FA9E9D9F5E344D5A9E4BCF6509A7F39789F515AB8F92DDBCBD414D940E93")
)

// G is the base point (generator).
var G = &Point{
	X: hexElt("32C4AE2C1F1981195F9904466A39C9948FE30BBFF2660BE1715A4589334C74C7"),
	Y: hexElt("BC3736A2F4F6779C59BDCEE36B692153D0A9877CC62A474002DF32E52139F0A0"),
}

var three = gfp.One.Add(gfp.One).Add(gfp.One)

// IsOnCurve reports whether p satisfies y^2 = x^3 + A*x + B mod p. The
// identity is considered on-curve by convention (callers that must reject
// it check for nil separately).
func IsOnCurve(p *Point) bool {
	if p == nil {
		return true
	}
	lhs := p.Y.Square()
	rhs := p.X.Square().Mul(p.X).Add(A.Mul(p.X)).Add(B)
	return lhs.Equal(rhs)
}

// Double returns 2*p. Doubling the identity, or a point with Y=0 (a
// 2-torsion point), yields the identity.
func Double(p *Point) *Point {
	if p == nil || p.Y.IsZero() {
		return nil
	}
	twoY := p.Y.Double()
	twoYInv, err := twoY.Inverse()
	if err != nil {
		return nil
	}
	threeXSq := p.X.Square().Mul(three)
	lambda := threeXSq.Add(A).Mul(twoYInv)
	x3 := lambda.Square().Sub(p.X.Double())
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return &Point{X: x3, Y: y3}
}

// Add returns p+q.
func Add(p, q *Point) *Point {
	if p == nil {
		return q
	}
	if q == nil {
		return p
	}
	if p.X.Equal(q.X) {
		if p.Y.Equal(q.Y) {
			return Double(p)
		}
		// x1 == x2, y1 == -y2: sum is the identity.
		return nil
	}
	dx := q.X.Sub(p.X)
	dxInv, err := dx.Inverse()
	if err != nil {
		return nil
	}
	lambda := q.Y.Sub(p.Y).Mul(dxInv)
	x3 := lambda.Square().Sub(p.X).Sub(q.X)
	y3 := lambda.Mul(p.X.Sub(x3)).Sub(p.Y)
	return &Point{X: x3, Y: y3}
}

// ScalarMult computes [k]p for a scalar given as a raw 256-bit integer
// (the caller is responsible for ensuring k < N where that matters; the
// group law is defined for any k via repeated doubling).
//
// This is a right-to-left double-and-add scanning all 256 bit positions
// unconditionally — the loop always runs 256 iterations and always
// doubles, branching only on whether to accumulate the current power of
// p into the running total. spec.md's Open Question on scalar-mult
// algorithm choice explicitly allows a plain double-and-add and does not
// require full constant-time hardening; this implementation does not
// claim it (the conditional accumulate is still a data-dependent branch),
// but avoids the cheaper shortcut of varying the number of iterations
// with the scalar's bit length.
func ScalarMult(k bigint256.U256, p *Point) *Point {
	var acc *Point
	q := p
	for i := 0; i < bigint256.Limbs*32; i++ {
		if k.Bit(i) == 1 {
			acc = Add(acc, q)
		}
		q = Double(q)
	}
	return acc
}

// ScalarMultElt is ScalarMult taking the scalar as a gfn.Elt.
func ScalarMultElt(k gfn.Elt, p *Point) *Point {
	return ScalarMult(k.Raw(), p)
}

// BaseScalarMult computes [k]G.
func BaseScalarMult(k gfn.Elt) *Point {
	return ScalarMultElt(k, G)
}

// Encode emits the uncompressed wire form: 0x04 || X || Y, 65 bytes.
// Encoding the identity is not supported (external API never produces it).
func Encode(p *Point) []byte {
	out := make([]byte, 65)
	out[0] = 0x04
	x := p.X.Bytes()
	y := p.Y.Bytes()
	copy(out[1:33], x[:])
	copy(out[33:65], y[:])
	return out
}

// Decode parses either the 64-byte bare X||Y form or the 65-byte
// 0x04-prefixed form, rejecting any other length, any other prefix byte,
// and any point that fails the curve equation.
func Decode(buf []byte) (*Point, error) {
	var xb, yb []byte
	switch len(buf) {
	case 64:
		xb, yb = buf[0:32], buf[32:64]
	case 65:
		if buf[0] != 0x04 {
			return nil, gmerr.ErrInvalidEncoding
		}
		xb, yb = buf[1:33], buf[33:65]
	default:
		return nil, gmerr.ErrInvalidInputLength
	}
	x, err := gfp.FromBytes(xb)
	if err != nil {
		return nil, gmerr.ErrInvalidEncoding
	}
	y, err := gfp.FromBytes(yb)
	if err != nil {
		return nil, gmerr.ErrInvalidEncoding
	}
	p := &Point{X: x, Y: y}
	if !IsOnCurve(p) {
		return nil, gmerr.ErrPointNotOnCurve
	}
	return p, nil
}
