package rc4

import "testing"

func TestXORKeyStreamIsInvolution(t *testing.T) {
	plain := []byte("the quick brown fox jumps over the lazy dog, 0123456789")

	enc := New(OutgoingKey[:])
	cipherText := make([]byte, len(plain))
	enc.XORKeyStream(cipherText, plain)

	dec := New(OutgoingKey[:])
	roundTrip := make([]byte, len(plain))
	dec.XORKeyStream(roundTrip, cipherText)

	if string(roundTrip) != string(plain) {
		t.Fatalf("round trip mismatch: got %q want %q", roundTrip, plain)
	}
}

func TestResetReproducesKeystream(t *testing.T) {
	c := New(IncomingKey[:])
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	first := make([]byte, len(src))
	c.XORKeyStream(first, src)

	c.Reset()
	second := make([]byte, len(src))
	c.XORKeyStream(second, src)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("keystream not reproduced after reset at byte %d: %x vs %x", i, first[i], second[i])
		}
	}
}

func TestPairDirectionsAreIndependent(t *testing.T) {
	p := NewPair()
	msg := []byte("hello world")

	out := make([]byte, len(msg))
	p.Outgoing.XORKeyStream(out, msg)

	in := make([]byte, len(msg))
	p.Incoming.XORKeyStream(in, msg)

	same := true
	for i := range out {
		if out[i] != in[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("outgoing and incoming ciphers produced identical keystreams despite distinct keys")
	}
}

func TestPairResetRestoresInitialKeystream(t *testing.T) {
	p := NewPair()
	msg := []byte{0xde, 0xad, 0xbe, 0xef}

	before := make([]byte, len(msg))
	p.Outgoing.XORKeyStream(before, msg)

	p.Reset()
	after := make([]byte, len(msg))
	p.Outgoing.XORKeyStream(after, msg)

	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("pair reset did not restore initial outgoing keystream at byte %d", i)
		}
	}
}
