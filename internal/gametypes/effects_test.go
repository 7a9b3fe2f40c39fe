package gametypes

import "testing"

func TestHasEffectFirstField(t *testing.T) {
	// DAZED=6 -> EFFECTS bit 5
	effectsField := int32(1 << 5)
	if !HasEffect(Dazed, effectsField, 0) {
		t.Fatalf("expected DAZED set")
	}
	if HasEffect(Speedy, effectsField, 0) {
		t.Fatalf("did not expect SPEEDY set")
	}
}

func TestHasEffectSecondField(t *testing.T) {
	// SILENCED=48 -> EFFECTS2 bit (48-32)%32 = 16
	effects2Field := int32(1 << 16)
	if !HasEffect(Silenced, 0, effects2Field) {
		t.Fatalf("expected SILENCED set")
	}
}

func TestHasEffectGroundDamageWraps(t *testing.T) {
	// GROUNDDAMAGE=99 -> EFFECTS2 bit (99-32)%32 = 3
	effects2Field := int32(1 << 3)
	if !HasEffect(GroundDamage, 0, effects2Field) {
		t.Fatalf("expected GROUNDDAMAGE set via wrapped bit 3")
	}
}

func TestHasEffectNothingIsNeverSet(t *testing.T) {
	if HasEffect(Nothing, ^int32(0), ^int32(0)) {
		t.Fatalf("NOTHING should never report as set")
	}
}

func TestEffectByteRoundTrip(t *testing.T) {
	if Weak.Byte() != 3 {
		t.Fatalf("WEAK byte = %d, want 3", Weak.Byte())
	}
	if Energized.String() != "ENERGIZED" {
		t.Fatalf("Energized.String() = %q", Energized.String())
	}
}
