package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// RoomID derives the chat room identifier for a pair of users. The two ids
// are sorted lexicographically so both participants compute the same room.
func RoomID(a, b uuid.UUID) string {
	ids := []string{a.String(), b.String()}
	if ids[0] > ids[1] {
		ids[0], ids[1] = ids[1], ids[0]
	}
	return strings.Join(ids, "-")
}

// RoomMembers splits a room id back into its two participant ids.
func RoomMembers(roomID string) (uuid.UUID, uuid.UUID, error) {
	parts := strings.Split(roomID, "-")
	// a UUID itself contains four dashes
	if len(parts) != 10 {
		return uuid.Nil, uuid.Nil, fmt.Errorf("malformed room id: %s", roomID)
	}
	first, err := uuid.Parse(strings.Join(parts[:5], "-"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	second, err := uuid.Parse(strings.Join(parts[5:], "-"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return first, second, nil
}

// RoomHasMember reports whether the given user participates in the room.
func RoomHasMember(roomID string, userID uuid.UUID) bool {
	first, second, err := RoomMembers(roomID)
	if err != nil {
		return false
	}
	return first == userID || second == userID
}
