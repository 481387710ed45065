package core

// RoomType is the semantic role assigned to a room node.
type RoomType string

// Standard room types. Configurations may introduce additional types; the
// pipeline treats the set as open except for Spawn, Boss and Standard, which
// have fixed roles in assignment.
const (
	RoomSpawn    RoomType = "spawn"
	RoomBoss     RoomType = "boss"
	RoomStandard RoomType = "standard"
	RoomTreasure RoomType = "treasure"
	RoomShop     RoomType = "shop"
	RoomAltar    RoomType = "altar"
	RoomGuard    RoomType = "guard"
	RoomSecret   RoomType = "secret"
)
