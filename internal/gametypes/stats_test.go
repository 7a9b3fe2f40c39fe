package gametypes

import "testing"

func TestStatByteRoundTrip(t *testing.T) {
	cases := []Stat{MaximumHP, HP, Level, Attack, Speed, Effects, Name, AccountID,
		OwnerAccountID, GuildName, PetName, Effects2, Something}
	for _, s := range cases {
		got := StatFromByte(s.Byte())
		if got != s {
			t.Fatalf("round trip failed for %s: got %s", s, got)
		}
	}
}

func TestUnknownStatByteMapsToUnknown(t *testing.T) {
	if got := StatFromByte(250); got != UnknownStat {
		t.Fatalf("StatFromByte(250) = %s, want UNKNOWN", got)
	}
}

func TestIsStringStat(t *testing.T) {
	stringStats := []Stat{Name, AccountID, OwnerAccountID, GuildName, PetName}
	for _, s := range stringStats {
		if !s.IsStringStat() {
			t.Fatalf("%s should be a string stat", s)
		}
	}
	numericStats := []Stat{MaximumHP, Attack, Speed, Level}
	for _, s := range numericStats {
		if s.IsStringStat() {
			t.Fatalf("%s should not be a string stat", s)
		}
	}
}

func TestStatFromNameRoundTrip(t *testing.T) {
	s, ok := StatFromName("DEXTERITY")
	if !ok || s != Dexterity {
		t.Fatalf("StatFromName(DEXTERITY) = %v, %v", s, ok)
	}
}

func TestAllStatsHaveDistinctBytes(t *testing.T) {
	seen := make(map[uint8]Stat)
	for s := range statNames {
		if s == UnknownStat {
			continue
		}
		b := s.Byte()
		if other, exists := seen[b]; exists && other != s {
			t.Fatalf("byte %d assigned to both %s and %s", b, other, s)
		}
		seen[b] = s
	}
	if len(seen) != 102 {
		t.Fatalf("expected 102 distinct stat codes, got %d", len(seen))
	}
}
