package constants

// User roles
const (
	RoleGuest = 0
	RoleStaff = 1
	RoleAdmin = 2
)

// Room variants
const (
	RoomTypeStandard = "STANDARD"
	RoomTypeLuxury   = "LUXURY"
)
