package buffer

import "testing"

func TestFinalizeFramesPacket(t *testing.T) {
	b := NewWithHeader()
	b.WriteU16(7)
	b.WriteString("hi")

	framed := b.Finalize(42)

	if len(framed) != HeaderSize+2+2+2 {
		t.Fatalf("unexpected frame length: %d", len(framed))
	}
	total := uint32(framed[0])<<24 | uint32(framed[1])<<16 | uint32(framed[2])<<8 | uint32(framed[3])
	if int(total) != len(framed) {
		t.Fatalf("length prefix %d does not match frame length %d", total, len(framed))
	}
	if framed[4] != 42 {
		t.Fatalf("packet id byte = %d, want 42", framed[4])
	}
}

func TestReadWriteRoundTrip(t *testing.T) {
	b := New()
	b.WriteU8(0xAB)
	b.WriteU16(0x1234)
	b.WriteU32(0xDEADBEEF)
	b.WriteU64(0x0102030405060708)
	b.WriteI32(-42)
	b.WriteF32(3.5)
	b.WriteBool(true)
	b.WriteString("gg")
	b.WriteUTFString("a longer chat message")

	r := NewFromBytes(b.Data)

	if v, err := r.ReadU8(); err != nil || v != 0xAB {
		t.Fatalf("ReadU8 = %v, %v", v, err)
	}
	if v, err := r.ReadU16(); err != nil || v != 0x1234 {
		t.Fatalf("ReadU16 = %v, %v", v, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 0xDEADBEEF {
		t.Fatalf("ReadU32 = %v, %v", v, err)
	}
	if v, err := r.ReadU64(); err != nil || v != 0x0102030405060708 {
		t.Fatalf("ReadU64 = %v, %v", v, err)
	}
	if v, err := r.ReadI32(); err != nil || v != -42 {
		t.Fatalf("ReadI32 = %v, %v", v, err)
	}
	if v, err := r.ReadF32(); err != nil || v != 3.5 {
		t.Fatalf("ReadF32 = %v, %v", v, err)
	}
	if v, err := r.ReadBool(); err != nil || v != true {
		t.Fatalf("ReadBool = %v, %v", v, err)
	}
	if v, err := r.ReadString(); err != nil || v != "gg" {
		t.Fatalf("ReadString = %q, %v", v, err)
	}
	if v, err := r.ReadUTFString(); err != nil || v != "a longer chat message" {
		t.Fatalf("ReadUTFString = %q, %v", v, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected buffer fully consumed, %d bytes remaining", r.Remaining())
	}
}

func TestReadPastEndReturnsShortBuffer(t *testing.T) {
	r := NewFromBytes([]byte{1, 2})
	if _, err := r.ReadU32(); err != ErrShortBuffer {
		t.Fatalf("expected ErrShortBuffer, got %v", err)
	}
}

func TestResizeGrowsToDeclaredLength(t *testing.T) {
	b := &Buffer{Data: []byte{0, 0, 0, 10, 99}}
	total, err := b.Resize()
	if err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if total != 10 {
		t.Fatalf("total = %d, want 10", total)
	}
	if len(b.Data) != 10 {
		t.Fatalf("Data len = %d, want 10", len(b.Data))
	}
	if b.Data[4] != 99 {
		t.Fatalf("expected first 5 bytes preserved, got %v", b.Data[:5])
	}
}

func TestFloatBitCastPreservesExactValue(t *testing.T) {
	b := New()
	b.WriteF32(0.00961)
	r := NewFromBytes(b.Data)
	v, err := r.ReadF32()
	if err != nil {
		t.Fatalf("ReadF32: %v", err)
	}
	if v != float32(0.00961) {
		t.Fatalf("bit-cast round trip changed value: got %v", v)
	}
}
