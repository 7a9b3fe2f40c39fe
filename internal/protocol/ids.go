// Package protocol implements the packet codec: typed structs for every
// wire packet kind, their encode/decode functions, and the dispatcher that
// routes a decoded frame to a session's handler by packet id.
package protocol

// Packet id constants, as assigned by the server. Every id the protocol
// defines is listed here even though only a subset has a typed decoder;
// the rest decode to RawPacket and are logged, never treated as an error.
// Prefixed with ID to keep the namespace clear of the packet struct types
// themselves (IDHello the constant vs. Hello the struct).
const (
	IDFailure             uint8 = 0
	IDHello               uint8 = 1
	IDLoginRewardSend     uint8 = 3
	IDDeletePet           uint8 = 4
	IDRequestTrade        uint8 = 5
	IDQuestFetchResponse  uint8 = 6
	IDJoinGuild           uint8 = 7
	IDPing                uint8 = 8
	IDNewTick             uint8 = 9
	IDPlayerText          uint8 = 10
	IDUseItem             uint8 = 11
	IDServerPlayerShoot   uint8 = 12
	IDShowEffect          uint8 = 13
	IDTradeAccepted       uint8 = 14
	IDGuildRemove         uint8 = 15
	IDPetUpgradeRequest   uint8 = 16
	IDEnterArena          uint8 = 17
	IDGoto                uint8 = 18
	IDInvSwap             uint8 = 19
	IDOtherHit            uint8 = 20
	IDNameResult          uint8 = 21
	IDBuyResult           uint8 = 22
	IDHatchPet            uint8 = 23
	IDActivePetUpdateSend uint8 = 24
	IDEnemyHit            uint8 = 25
	IDCreateGuildResult   uint8 = 26
	IDEditAccountList     uint8 = 27
	IDTradeChanged        uint8 = 28
	IDTradeDone           uint8 = 34
	IDEnemyShoot          uint8 = 35
	IDAcceptTrade         uint8 = 36
	IDChangeGuildRank     uint8 = 37
	IDPlaySound           uint8 = 38
	IDVerifyEmail         uint8 = 39
	IDSquareHit           uint8 = 40
	IDNewAbility          uint8 = 41
	IDMove                uint8 = 42
	IDText                uint8 = 44
	IDReconnect           uint8 = 45
	IDDeath               uint8 = 46
	IDUsePortal           uint8 = 47
	IDQuestRoomMessage    uint8 = 48
	IDAllyShoot           uint8 = 49
	IDImminentArenaWave   uint8 = 50
	IDReSkin              uint8 = 51
	IDResetDailyQuests    uint8 = 52
	IDPetChangeFormMsg    uint8 = 53
	IDChangeTrade         uint8 = 56
	IDLoad                uint8 = 57
	IDQuestRedeem         uint8 = 58
	IDCreateGuild         uint8 = 59
	IDSetCondition        uint8 = 60
	IDCreate              uint8 = 61
	IDUpdate              uint8 = 62
	IDKeyInfoResponse     uint8 = 63
	IDAoE                 uint8 = 64
	IDGotoAck             uint8 = 65
	IDGlobalNotification  uint8 = 66
	IDNotification        uint8 = 67
	IDArenaDeath          uint8 = 68
	IDClientStat          uint8 = 69
	IDActivePetUpdateRecv uint8 = 76
	IDInvitedToGuild      uint8 = 77
	IDPetYardUpdate       uint8 = 78
	IDPasswordPrompt      uint8 = 79
	IDAcceptArenaDeath    uint8 = 80
	IDUpdateAck           uint8 = 81
	IDQuestObjID          uint8 = 82
	IDPic                 uint8 = 83
	IDRealmHeroLeft       uint8 = 84
	IDBuy                 uint8 = 85
	IDTradeStart          uint8 = 86
	IDEvolvePet           uint8 = 87
	IDTradeRequested      uint8 = 88
	IDAoEAck              uint8 = 89
	IDPlayerHit           uint8 = 90
	IDCancelTrade         uint8 = 91
	IDMapInfo             uint8 = 92
	IDLoginRewardRecv     uint8 = 93
	IDKeyInfoRequest      uint8 = 94
	IDInvResult           uint8 = 95
	IDQuestRedeemResponse uint8 = 96
	IDChooseName          uint8 = 97
	IDQuestFetchAsk       uint8 = 98
	IDAccountList         uint8 = 99
	IDShootAck            uint8 = 100
	IDCreateSuccess       uint8 = 101
	IDCheckCredits        uint8 = 102
	IDGroundDamage        uint8 = 103
	IDGuildInvite         uint8 = 104
	IDEscape              uint8 = 105
	IDFile                uint8 = 106
	IDReSkinUnlock        uint8 = 107
	IDDamage              uint8 = 75
	IDInvDrop             uint8 = 55
	IDPong                uint8 = 31
	IDTeleport            uint8 = 74
	IDPlayerShoot         uint8 = 30
)

// Name returns the symbolic name of a packet id, for logging unknown or
// unhandled ids without a giant switch at every call site.
func Name(id uint8) string {
	if n, ok := idNames[id]; ok {
		return n
	}
	return "UNKNOWN"
}

var idNames = map[uint8]string{
	IDFailure: "FAILURE", IDHello: "HELLO", IDLoginRewardSend: "LOGINREWARDSEND",
	IDDeletePet: "DELETEPET", IDRequestTrade: "REQUESTTRADE", IDQuestFetchResponse: "QUESTFETCHRESPONSE",
	IDJoinGuild: "JOINGUILD", IDPing: "PING", IDNewTick: "NEWTICK", IDPlayerText: "PLAYERTEXT",
	IDUseItem: "USEITEM", IDServerPlayerShoot: "SERVERPLAYERSHOOT", IDShowEffect: "SHOWEFFECT",
	IDTradeAccepted: "TRADEACCEPTED", IDGuildRemove: "GUILDREMOVE", IDPetUpgradeRequest: "PETUPGRADEREQUEST",
	IDEnterArena: "ENTERARENA", IDGoto: "GOTO", IDInvSwap: "INVSWAP", IDOtherHit: "OTHERHIT",
	IDNameResult: "NAMERESULT", IDBuyResult: "BUYRESULT", IDHatchPet: "HATCHPET",
	IDActivePetUpdateSend: "ACTIVEPETUPDATESEND", IDEnemyHit: "ENEMYHIT", IDCreateGuildResult: "CREATEGUILDRESULT",
	IDEditAccountList: "EDITACCOUNTLIST", IDTradeChanged: "TRADECHANGED", IDTradeDone: "TRADEDONE",
	IDEnemyShoot: "ENEMYSHOOT", IDAcceptTrade: "ACCEPTTRADE", IDChangeGuildRank: "CHANGEGUILDRANK",
	IDPlaySound: "PLAYSOUND", IDVerifyEmail: "VERIFYEMAIL", IDSquareHit: "SQUAREHIT", IDNewAbility: "NEWABILITY",
	IDMove: "MOVE", IDText: "TEXT", IDReconnect: "RECONNECT", IDDeath: "DEATH", IDUsePortal: "USEPORTAL",
	IDQuestRoomMessage: "QUESTROOMMESSAGE", IDAllyShoot: "ALLYSHOOT", IDImminentArenaWave: "IMMINENTARENAWAVE",
	IDReSkin: "RESKIN", IDResetDailyQuests: "RESETDAILYQUESTS", IDPetChangeFormMsg: "PETCHANGEFORMMSG",
	IDChangeTrade: "CHANGETRADE", IDLoad: "LOAD", IDQuestRedeem: "QUESTREDEEM", IDCreateGuild: "CREATEGUILD",
	IDSetCondition: "SETCONDITION", IDCreate: "CREATE", IDUpdate: "UPDATE", IDKeyInfoResponse: "KEYINFORESPONSE",
	IDAoE: "AOE", IDGotoAck: "GOTOACK", IDGlobalNotification: "GLOBALNOTIFICATION", IDNotification: "NOTIFICATION",
	IDArenaDeath: "ARENADEATH", IDClientStat: "CLIENTSTAT", IDActivePetUpdateRecv: "ACTIVEPETUPDATERECV",
	IDInvitedToGuild: "INVITEDTOGUILD", IDPetYardUpdate: "PETYARDUPDATE", IDPasswordPrompt: "PASSWORDPROMPT",
	IDAcceptArenaDeath: "ACCEPTARENADEATH", IDUpdateAck: "UPDATEACK", IDQuestObjID: "QUESTOBJID", IDPic: "PIC",
	IDRealmHeroLeft: "REALMHEROLEFT", IDBuy: "BUY", IDTradeStart: "TRADESTART", IDEvolvePet: "EVOLVEPET",
	IDTradeRequested: "TRADEREQUESTED", IDAoEAck: "AOEACK", IDPlayerHit: "PLAYERHIT", IDCancelTrade: "CANCELTRADE",
	IDMapInfo: "MAPINFO", IDLoginRewardRecv: "LOGINREWARDRECV", IDKeyInfoRequest: "KEYINFOREQUEST",
	IDInvResult: "INVRESULT", IDQuestRedeemResponse: "QUESTREDEEMRESPONSE", IDChooseName: "CHOOSENAME",
	IDQuestFetchAsk: "QUESTFETCHASK", IDAccountList: "ACCOUNTLIST", IDShootAck: "SHOOTACK",
	IDCreateSuccess: "CREATESUCCESS", IDCheckCredits: "CHECKCREDITS", IDGroundDamage: "GROUNDDAMAGE",
	IDGuildInvite: "GUILDINVITE", IDEscape: "ESCAPE", IDFile: "FILE", IDReSkinUnlock: "RESKINUNLOCK",
	IDDamage: "DAMAGE", IDInvDrop: "INVDROP", IDPong: "PONG", IDTeleport: "TELEPORT", IDPlayerShoot: "PLAYERSHOOT",
}
