package gametypes

// Effect identifies one of the status conditions packed as bitflags across
// the EFFECTS and EFFECTS2 stat fields.
type Effect uint8

const (
	Nothing            Effect = 0
	Dead               Effect = 1
	Quiet              Effect = 2
	Weak               Effect = 3
	Slowed             Effect = 4
	Sick               Effect = 5
	Dazed              Effect = 6
	Stunned            Effect = 7
	Blind              Effect = 8
	Hallucinating      Effect = 9
	Drunk              Effect = 10
	Confused           Effect = 11
	StunImmune         Effect = 12
	Invisible          Effect = 13
	Paralyzed          Effect = 14
	Speedy             Effect = 15
	Bleeding           Effect = 16
	ArmorBrokenImmune  Effect = 17
	Healing            Effect = 18
	Damaging           Effect = 19
	Berserk            Effect = 20
	Paused             Effect = 21
	Stasis             Effect = 22
	StasisImmune       Effect = 23
	Invincible         Effect = 24
	Invulnerable       Effect = 25
	Armored            Effect = 26
	ArmorBroken        Effect = 27
	Hexed              Effect = 28
	NinjaSpeedy        Effect = 29
	Unstable           Effect = 30
	Darkness           Effect = 31
	SlowImmune         Effect = 32
	DazeImmune         Effect = 33
	ParalyzeImmune     Effect = 34
	Petrified          Effect = 35
	PetrifiedImmune    Effect = 36
	PetStasis          Effect = 37
	Curse              Effect = 38
	CurseImmune        Effect = 39
	HPBoost            Effect = 40
	MPBoost            Effect = 41
	AtkBoost           Effect = 42
	DefBoost           Effect = 43
	SpdBoost           Effect = 44
	VitBoost           Effect = 45
	WisBoost           Effect = 46
	DexBoost           Effect = 47
	Silenced           Effect = 48
	Exposed            Effect = 49
	Energized          Effect = 50
	GroundDamage       Effect = 99
)

var effectNames = map[Effect]string{
	Nothing: "NOTHING", Dead: "DEAD", Quiet: "QUIET", Weak: "WEAK", Slowed: "SLOWED",
	Sick: "SICK", Dazed: "DAZED", Stunned: "STUNNED", Blind: "BLIND",
	Hallucinating: "HALLUCINATING", Drunk: "DRUNK", Confused: "CONFUSED",
	StunImmune: "STUNIMMUNE", Invisible: "INVISIBLE", Paralyzed: "PARALYZED",
	Speedy: "SPEEDY", Bleeding: "BLEEDING", ArmorBrokenImmune: "ARMORBROKENIMMUNE",
	Healing: "HEALING", Damaging: "DAMAGING", Berserk: "BERSERK", Paused: "PAUSED",
	Stasis: "STASIS", StasisImmune: "STASISIMMUNE", Invincible: "INVINCIBLE",
	Invulnerable: "INVULNERABLE", Armored: "ARMORED", ArmorBroken: "ARMORBROKEN",
	Hexed: "HEXED", NinjaSpeedy: "NINJASPEEDY", Unstable: "UNSTABLE", Darkness: "DARKNESS",
	SlowImmune: "SLOWIMMUNE", DazeImmune: "DAZEIMMUNE", ParalyzeImmune: "PARALYZEIMMUNE",
	Petrified: "PETRIFIED", PetrifiedImmune: "PETRIFIEDIMMUNE", PetStasis: "PETSTASIS",
	Curse: "CURSE", CurseImmune: "CURSEIMMUNE", HPBoost: "HPBOOST", MPBoost: "MPBOOST",
	AtkBoost: "ATKBOOST", DefBoost: "DEFBOOST", SpdBoost: "SPDBOOST", VitBoost: "VITBOOST",
	WisBoost: "WISBOOST", DexBoost: "DEXBOOST", Silenced: "SILENCED", Exposed: "EXPOSED",
	Energized: "ENERGIZED", GroundDamage: "GROUNDDAMAGE",
}

// Byte returns the wire code for e.
func (e Effect) Byte() uint8 { return uint8(e) }

// String returns e's symbolic name.
func (e Effect) String() string {
	if n, ok := effectNames[e]; ok {
		return n
	}
	return "UNKNOWN"
}

// bitPosition returns which of the two effect stat fields e belongs to
// (0 for EFFECTS, 1 for EFFECTS2) and the bit index within that field's
// 32-bit value. Codes 1..31 pack into EFFECTS bits 0..30; codes 32..50 and
// 99 pack into EFFECTS2, with GROUNDDAMAGE(99) landing on bit (99-32)%32=3.
func (e Effect) bitPosition() (field int, bit uint) {
	code := uint8(e)
	if code == 0 {
		return -1, 0
	}
	if code <= 31 {
		return 0, uint(code - 1)
	}
	return 1, uint((code - 32) % 32)
}

// HasEffect reports whether e is set given the raw EFFECTS and EFFECTS2
// stat values from an object's status data.
func HasEffect(e Effect, effectsField, effects2Field int32) bool {
	field, bit := e.bitPosition()
	switch field {
	case 0:
		return effectsField&(1<<bit) != 0
	case 1:
		return effects2Field&(1<<bit) != 0
	default:
		return false
	}
}
