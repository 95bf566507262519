package models

// Package is a bookable session definition. Read-only for the engine;
// managed by the admin surface.
type Package struct {
	ID              string   `bson:"id" json:"id"`
	Name            string   `bson:"name" json:"name"`
	DurationMinutes int      `bson:"duration_minutes" json:"durationMinutes"`
	CleanupMinutes  int      `bson:"cleanup_minutes" json:"cleanupMinutes"`
	Price           float64  `bson:"price" json:"price"`
	AllowedRoomIDs  []string `bson:"allowed_room_ids" json:"allowedRoomIds"`
	// RoomPriority orders AllowedRoomIDs for allocation. When empty the
	// allocator falls back to AllowedRoomIDs in their configured order.
	RoomPriority []string `bson:"room_priority" json:"roomPriority"`
}

// Room is a physical space that hosts one session at a time.
type Room struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Holiday is a date ("YYYY-MM-DD") fully excluded from availability.
type Holiday struct {
	Date string `bson:"date" json:"date"`
}

// ExtraItem is an optional add-on priced per unit.
type ExtraItem struct {
	ID    string  `bson:"id" json:"id"`
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}
