package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomID_Symmetric(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	assert.Equal(t, RoomID(a, b), RoomID(b, a))
}

func TestRoomID_Sorted(t *testing.T) {
	a := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	b := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

	roomID := RoomID(b, a)
	assert.Equal(t, a.String()+"-"+b.String(), roomID)
}

func TestRoomMembers_RoundTrip(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	first, second, err := RoomMembers(RoomID(a, b))
	require.NoError(t, err)

	members := []uuid.UUID{first, second}
	assert.Contains(t, members, a)
	assert.Contains(t, members, b)
}

func TestRoomMembers_Malformed(t *testing.T) {
	testCases := []string{
		"",
		"not-a-room",
		uuid.New().String(),
		uuid.New().String() + "-" + "short",
	}

	for _, roomID := range testCases {
		_, _, err := RoomMembers(roomID)
		assert.Error(t, err, "room id %q should be rejected", roomID)
	}
}

func TestRoomHasMember(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	roomID := RoomID(a, b)

	assert.True(t, RoomHasMember(roomID, a))
	assert.True(t, RoomHasMember(roomID, b))
	assert.False(t, RoomHasMember(roomID, uuid.New()))
	assert.False(t, RoomHasMember("malformed", a))
}
