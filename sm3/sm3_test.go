package sm3

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func TestVectorAbc(t *testing.T) {
	want, _ := hex.DecodeString("66c7f0f462eeedd9d1f2d46bdc10e4e24167c4875cf2f7a2297da02b8f4ba8e0")
	got := Sum([]byte("abc"))
	if !bytes.Equal(got, want) {
		t.Fatalf("SM3(\"abc\") = %x, want %x", got, want)
	}
}

func TestVectorAbcdRepeated(t *testing.T) {
	want, _ := hex.DecodeString("debe9ff92275b8a138604889c18e5a4d6fdb70e5387e5765293dcba39c0c5732")
	msg := bytes.Repeat([]byte("abcd"), 16)
	got := Sum(msg)
	if !bytes.Equal(got, want) {
		t.Fatalf("SM3(\"abcd\"x16) = %x, want %x", got, want)
	}
}

func TestStreamingMatchesOneShot(t *testing.T) {
	msg := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog"), 37)
	want := Sum(msg)

	chunkSizes := []int{1, 3, 7, 13, 64, 65, 127, 128, 200}
	for _, chunk := range chunkSizes {
		d := New()
		for i := 0; i < len(msg); i += chunk {
			end := i + chunk
			if end > len(msg) {
				end = len(msg)
			}
			d.Write(msg[i:end])
		}
		got := d.Sum(nil)
		if !bytes.Equal(got, want) {
			t.Fatalf("chunk size %d: streaming digest mismatch, got %x want %x", chunk, got, want)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	got := Sum(nil)
	if len(got) != Size {
		t.Fatalf("digest length = %d, want %d", len(got), Size)
	}
}

func TestSumDoesNotMutateHasher(t *testing.T) {
	d := New()
	d.Write([]byte("partial"))
	first := d.Sum(nil)
	second := d.Sum(nil)
	if !bytes.Equal(first, second) {
		t.Fatalf("calling Sum twice produced different digests")
	}
	d.Write([]byte(" more"))
	third := d.Sum(nil)
	if bytes.Equal(first, third) {
		t.Fatalf("Sum after further Write should differ from before")
	}
}

func TestResetAllowsReuse(t *testing.T) {
	d := New()
	d.Write([]byte("abc"))
	d.Reset()
	d.Write([]byte("abc"))
	want := Sum([]byte("abc"))
	got := d.Sum(nil)
	if !bytes.Equal(got, want) {
		t.Fatalf("digest after Reset mismatch")
	}
}

func TestBlockBoundaryLengths(t *testing.T) {
	for _, n := range []int{55, 56, 57, 63, 64, 65, 119, 120, 121} {
		msg := bytes.Repeat([]byte{0x5a}, n)
		d := New()
		d.Write(msg)
		streamed := d.Sum(nil)
		oneShot := Sum(msg)
		if !bytes.Equal(streamed, oneShot) {
			t.Fatalf("length %d: streaming/one-shot mismatch", n)
		}
	}
}
