package gb

import "testing"

// Each case names an ALU vector: inputs, the function under test, and the
// expected (result, packed-flag-nibble) pair.
func TestAdd(t *testing.T) {
	cases := []struct {
		name        string
		left, right uint16
		carryIn     int
		result      uint16
		flags       byte
	}{
		{"carry out of low byte", 0x3A, 0xC6, 0, 0x100, rZ | rH | rC},
		{"half carry only", 0x0F, 0x01, 0, 0x10, rH},
		{"no flags", 0x01, 0x01, 0, 0x02, 0},
		{"carry in propagates", 0x0E, 0x01, 1, 0x10, rH},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, flags := Add(c.left, c.right, c.carryIn)
			if result != c.result || flags != c.flags {
				t.Fatalf("Add(%#x,%#x,%d) = (%#x,%04b), want (%#x,%04b)",
					c.left, c.right, c.carryIn, result, flags, c.result, c.flags)
			}
		})
	}
}

func TestSub(t *testing.T) {
	cases := []struct {
		name        string
		left, right uint16
		carryIn     int
		result      uint16
		flags       byte
	}{
		{"zero result", 0x3E, 0x3E, 0, 0x00, rN | rZ},
		{"half borrow", 0x10, 0x01, 0, 0x0F, rN | rH},
		{"full borrow", 0x00, 0x01, 0, 0xFFFF, rN | rH | rC},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result, flags := Sub(c.left, c.right, c.carryIn)
			if result != c.result || flags != c.flags {
				t.Fatalf("Sub(%#x,%#x,%d) = (%#x,%04b), want (%#x,%04b)",
					c.left, c.right, c.carryIn, result, flags, c.result, c.flags)
			}
		})
	}
}

func TestAndOrXor(t *testing.T) {
	if result, flags := And(0xF0, 0x0F); result != 0 || flags != rH|rZ {
		t.Fatalf("And(0xF0,0x0F) = (%#x,%04b), want (0,%04b)", result, flags, rH|rZ)
	}
	if result, flags := Or(0x00, 0x00); result != 0 || flags != rZ {
		t.Fatalf("Or(0,0) = (%#x,%04b), want (0,%04b)", result, flags, rZ)
	}
	if result, flags := Xor(0xFF, 0xFF); result != 0 || flags != rZ {
		t.Fatalf("Xor(0xFF,0xFF) = (%#x,%04b), want (0,%04b)", result, flags, rZ)
	}
}

func TestSwap(t *testing.T) {
	if result, flags := Swap(0xAB); result != 0xBA || flags != 0 {
		t.Fatalf("Swap(0xAB) = (%#x,%04b), want (0xBA,0)", result, flags)
	}
	if result, flags := Swap(0x00); result != 0 || flags != rZ {
		t.Fatalf("Swap(0) = (%#x,%04b), want (0,%04b)", result, flags, rZ)
	}
}

func TestRshRotateCircular(t *testing.T) {
	result, flags := Rsh(ShiftRC, 0x01, 0)
	if result != 0x80 || flags&rC == 0 {
		t.Fatalf("Rsh(RC,0x01) = (%#x,%04b), want bit7 set and C set", result, flags)
	}
}

func TestLshRotateThroughCarry(t *testing.T) {
	result, flags := Lsh(ShiftR, 0x80, 0)
	if result != 0x00 || flags&rC == 0 || flags&rZ == 0 {
		t.Fatalf("Lsh(R,0x80,carryIn=0) = (%#x,%04b), want 0 with Z and C set", result, flags)
	}
}

func TestBitTest(t *testing.T) {
	if flags := BitTest(0x80, 7); flags&rZ != 0 {
		t.Fatal("BitTest(0x80,7) should report Z clear (bit is set)")
	}
	if flags := BitTest(0x00, 7); flags&rZ == 0 {
		t.Fatal("BitTest(0x00,7) should report Z set (bit is clear)")
	}
}

func TestBitSetReset(t *testing.T) {
	if v := BitSet(0x00, 3); v != 0x08 {
		t.Fatalf("BitSet(0,3) = %#x, want 0x08", v)
	}
	if v := BitReset(0xFF, 3); v != 0xF7 {
		t.Fatalf("BitReset(0xFF,3) = %#x, want 0xF7", v)
	}
}

func TestAds_SignedOffset(t *testing.T) {
	// SP=0xFFFF + (-1) = 0xFFFE, with unsigned low-byte half/full carry set
	result, flags := Ads(0xFFFF, 0xFF)
	if result != 0xFFFE {
		t.Fatalf("Ads(0xFFFF,-1) = %#x, want 0xFFFE", result)
	}
	if flags&rH == 0 || flags&rC == 0 {
		t.Fatalf("Ads(0xFFFF,-1) flags = %04b, want H and C set", flags)
	}
}
