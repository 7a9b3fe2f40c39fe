package gametypes

// Stat identifies one of the server's ~100 numeric/string object attributes,
// as carried in ObjectStatusData/Update/NewTick status records.
type Stat uint8

const (
	MaximumHP                   Stat = 0
	HP                          Stat = 1
	Size                        Stat = 2
	MaximumMP                   Stat = 3
	MP                          Stat = 4
	NextLevelExperience         Stat = 5
	Experience                  Stat = 6
	Level                       Stat = 7
	Inventory0                  Stat = 8
	Inventory1                  Stat = 9
	Inventory2                  Stat = 10
	Inventory3                  Stat = 11
	Inventory4                  Stat = 12
	Inventory5                  Stat = 13
	Inventory6                  Stat = 14
	Inventory7                  Stat = 15
	Inventory8                  Stat = 16
	Inventory9                  Stat = 17
	Inventory10                 Stat = 18
	Inventory11                 Stat = 19
	Attack                      Stat = 20
	Defense                     Stat = 21
	Speed                       Stat = 22
	Placeholder1                Stat = 23
	Placeholder2                Stat = 24
	Placeholder3                Stat = 25
	Vitality                    Stat = 26
	Wisdom                      Stat = 27
	Dexterity                   Stat = 28
	Effects                     Stat = 29
	Stars                       Stat = 30
	Name                        Stat = 31 // string
	Texture1                    Stat = 32
	Texture2                    Stat = 33
	MerchandiseType             Stat = 34
	Credits                     Stat = 35
	MerchandisePrice            Stat = 36
	PortalUsable                Stat = 37
	AccountID                   Stat = 38 // string
	AccountFame                 Stat = 39
	MerchandiseCurrency         Stat = 40
	ObjectConnection            Stat = 41
	MerchandiseRemainingCount   Stat = 42
	MerchandiseRemainingMinutes Stat = 43
	MerchandiseDiscount         Stat = 44
	MerchandiseRankRequirement  Stat = 45
	HealthBonus                 Stat = 46
	ManaBonus                   Stat = 47
	AttackBonus                 Stat = 48
	DefenseBonus                Stat = 49
	SpeedBonus                  Stat = 50
	VitalityBonus               Stat = 51
	WisdomBonus                 Stat = 52
	DexterityBonus              Stat = 53
	OwnerAccountID              Stat = 54 // string
	RankRequired                Stat = 55
	NameChosen                  Stat = 56
	CharacterFame               Stat = 57
	CharacterFameGoal           Stat = 58
	Glowing                     Stat = 59
	SinkLevel                   Stat = 60
	AltTextureIndex             Stat = 61
	GuildName                   Stat = 62 // string
	GuildRank                   Stat = 63
	OxygenBar                   Stat = 64
	XPBoosterActive             Stat = 65
	XPBoostTime                 Stat = 66
	LootDropBoostTime           Stat = 67
	LootTierBoostTime           Stat = 68
	HealthPotionCount           Stat = 69
	MagicPotionCount            Stat = 70
	Backpack0                   Stat = 71
	Backpack1                   Stat = 72
	Backpack2                   Stat = 73
	Backpack3                   Stat = 74
	Backpack4                   Stat = 75
	Backpack5                   Stat = 76
	Backpack6                   Stat = 77
	Backpack7                   Stat = 78
	HasBackpack                 Stat = 79
	Skin                        Stat = 80
	PetInstanceID               Stat = 81
	PetName                     Stat = 82 // string
	PetType                     Stat = 83
	PetRarity                   Stat = 84
	PetMaximumLevel             Stat = 85
	PetFamily                   Stat = 86
	PetPoints0                  Stat = 87
	PetPoints1                  Stat = 88
	PetPoints2                  Stat = 89
	PetLevel0                   Stat = 90
	PetLevel1                   Stat = 91
	PetLevel2                   Stat = 92
	PetAbilityType0             Stat = 93
	PetAbilityType1             Stat = 94
	PetAbilityType2             Stat = 95
	Effects2                    Stat = 96 // curse, petrify, and the rest of the new stats
	FortuneTokens               Stat = 97
	SupporterPoints             Stat = 98
	Supporter                   Stat = 99
	ChallengerStarBGStat        Stat = 100
	Something                   Stat = 101
	UnknownStat                 Stat = 255
)

var statNames = map[Stat]string{
	MaximumHP: "MAXIMUMHP", HP: "HP", Size: "SIZE", MaximumMP: "MAXIMUMMP",
	MP: "MP", NextLevelExperience: "NEXTLEVELEXPERIENCE", Experience: "EXPERIENCE",
	Level: "LEVEL", Inventory0: "INVENTORY0", Inventory1: "INVENTORY1",
	Inventory2: "INVENTORY2", Inventory3: "INVENTORY3", Inventory4: "INVENTORY4",
	Inventory5: "INVENTORY5", Inventory6: "INVENTORY6", Inventory7: "INVENTORY7",
	Inventory8: "INVENTORY8", Inventory9: "INVENTORY9", Inventory10: "INVENTORY10",
	Inventory11: "INVENTORY11", Attack: "ATTACK", Defense: "DEFENSE", Speed: "SPEED",
	Placeholder1: "PLACEHOLDER1", Placeholder2: "PLACEHOLDER2", Placeholder3: "PLACEHOLDER3",
	Vitality: "VITALITY", Wisdom: "WISDOM", Dexterity: "DEXTERITY", Effects: "EFFECTS",
	Stars: "STARS", Name: "NAME", Texture1: "TEXTURE1", Texture2: "TEXTURE2",
	MerchandiseType: "MERCHANDISETYPE", Credits: "CREDITS", MerchandisePrice: "MERCHANDISEPRICE",
	PortalUsable: "PORTALUSABLE", AccountID: "ACCOUNTID", AccountFame: "ACCOUNTFAME",
	MerchandiseCurrency: "MERCHANDISECURRENCY", ObjectConnection: "OBJECTCONNECTION",
	MerchandiseRemainingCount: "MERCHANDISEREMAININGCOUNT", MerchandiseRemainingMinutes: "MERCHANDISEREMAININGMINUTES",
	MerchandiseDiscount: "MERCHANDISEDISCOUNT", MerchandiseRankRequirement: "MERCHANDISERANKREQUIREMENT",
	HealthBonus: "HEALTHBONUS", ManaBonus: "MANABONUS", AttackBonus: "ATTACKBONUS",
	DefenseBonus: "DEFENSEBONUS", SpeedBonus: "SPEEDBONUS", VitalityBonus: "VITALITYBONUS",
	WisdomBonus: "WISDOMBONUS", DexterityBonus: "DEXTERITYBONUS", OwnerAccountID: "OWNERACCOUNTID",
	RankRequired: "RANKREQUIRED", NameChosen: "NAMECHOSEN", CharacterFame: "CHARACTERFAME",
	CharacterFameGoal: "CHARACTERFAMEGOAL", Glowing: "GLOWING", SinkLevel: "SINKLEVEL",
	AltTextureIndex: "ALTTEXTUREINDEX", GuildName: "GUILDNAME", GuildRank: "GUILDRANK",
	OxygenBar: "OXYGENBAR", XPBoosterActive: "XPBOOSTERACTIVE", XPBoostTime: "XPBOOSTTIME",
	LootDropBoostTime: "LOOTDROPBOOSTTIME", LootTierBoostTime: "LOOTTIERBOOSTTIME",
	HealthPotionCount: "HEALTHPOTIONCOUNT", MagicPotionCount: "MAGICPOTIONCOUNT",
	Backpack0: "BACKPACK0", Backpack1: "BACKPACK1", Backpack2: "BACKPACK2", Backpack3: "BACKPACK3",
	Backpack4: "BACKPACK4", Backpack5: "BACKPACK5", Backpack6: "BACKPACK6", Backpack7: "BACKPACK7",
	HasBackpack: "HASBACKPACK", Skin: "SKIN", PetInstanceID: "PETINSTANCEID", PetName: "PETNAME",
	PetType: "PETTYPE", PetRarity: "PETRARITY", PetMaximumLevel: "PETMAXIMUMLEVEL",
	PetFamily: "PETFAMILY", PetPoints0: "PETPOINTS0", PetPoints1: "PETPOINTS1", PetPoints2: "PETPOINTS2",
	PetLevel0: "PETLEVEL0", PetLevel1: "PETLEVEL1", PetLevel2: "PETLEVEL2",
	PetAbilityType0: "PETABILITYTYPE0", PetAbilityType1: "PETABILITYTYPE1", PetAbilityType2: "PETABILITYTYPE2",
	Effects2: "EFFECTS2", FortuneTokens: "FORTUNETOKENS", SupporterPoints: "SUPPORTERPOINTS",
	Supporter: "SUPPORTER", ChallengerStarBGStat: "CHALLENGERSTARBGSTAT", Something: "SOMETHING",
	UnknownStat: "UNKNOWN",
}

var namesToStat = func() map[string]Stat {
	m := make(map[string]Stat, len(statNames))
	for s, n := range statNames {
		m[n] = s
	}
	return m
}()

// StatFromByte maps a raw wire byte to its Stat, returning UnknownStat for
// any value the table does not recognize (mirrors u8_to_stat's catch-all).
func StatFromByte(v uint8) Stat {
	s := Stat(v)
	if _, ok := statNames[s]; ok {
		return s
	}
	return UnknownStat
}

// Byte returns the wire encoding of s.
func (s Stat) Byte() uint8 {
	if s == UnknownStat {
		return 255
	}
	return uint8(s)
}

// String returns the stat's symbolic name, or "UNKNOWN" if unrecognized.
func (s Stat) String() string {
	if n, ok := statNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// StatFromName looks up a Stat by its symbolic name.
func StatFromName(name string) (Stat, bool) {
	s, ok := namesToStat[name]
	return s, ok
}

// IsStringStat reports whether s carries a string value rather than an
// integer value in StatData (NAME, ACCOUNTID, OWNERACCOUNTID, GUILDNAME,
// PETNAME).
func (s Stat) IsStringStat() bool {
	switch s {
	case Name, AccountID, OwnerAccountID, GuildName, PetName:
		return true
	default:
		return false
	}
}

// StatData is a single stat record as read from an ObjectStatusData.
type StatData struct {
	Type      Stat
	Value     int32
	StrValue  string
}
