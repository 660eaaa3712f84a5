package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tukangku/server/internal/pkg/apperr"
	"github.com/tukangku/server/internal/pkg/models"
	"github.com/tukangku/server/internal/utils"
	"github.com/tukangku/server/services/chat/mocks"
)

func setupChatUC(t *testing.T) (*ChatUC, *mocks.MockMessageRepo, *mocks.MockChatGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockMessageRepo(ctrl)
	mockGW := mocks.NewMockChatGW(ctrl)
	uc := NewChatUC(mockRepo, mockGW, &models.Config{})
	return uc, mockRepo, mockGW, ctrl
}

func TestChatUC_SendMessage(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupChatUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	receiverID := uuid.New()
	messageID := uuid.New()
	room := utils.RoomID(senderID, receiverID)

	mockRepo.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, msg *models.Message) error {
			assert.Equal(t, senderID, msg.SenderID)
			assert.Equal(t, receiverID, msg.ReceiverID)
			assert.Equal(t, room, msg.RoomID)
			assert.Equal(t, "hello there", msg.Body)
			msg.ID = messageID
			return nil
		})

	mockGW.EXPECT().
		PublishChatMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *models.ChatMessageEvent) error {
			assert.Equal(t, receiverID, event.ReceiverID)
			assert.Equal(t, messageID, event.Message.ID)
			return nil
		})

	msg, err := uc.SendMessage(context.Background(), senderID, &models.SendMessageRequest{
		ReceiverID: receiverID.String(),
		Message:    "  hello there  ",
	})

	require.NoError(t, err)
	assert.Equal(t, messageID, msg.ID)
}

func TestChatUC_SendMessage_PublishFailureIsNonFatal(t *testing.T) {
	uc, mockRepo, mockGW, ctrl := setupChatUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()
	receiverID := uuid.New()

	mockRepo.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishChatMessage(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	msg, err := uc.SendMessage(context.Background(), senderID, &models.SendMessageRequest{
		ReceiverID: receiverID.String(),
		Message:    "hello",
	})

	// persisted messages survive a delivery failure
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Body)
}

func TestChatUC_SendMessage_Validation(t *testing.T) {
	uc, _, _, ctrl := setupChatUC(t)
	defer ctrl.Finish()

	senderID := uuid.New()

	testCases := []struct {
		name string
		req  *models.SendMessageRequest
		code string
	}{
		{
			name: "bad receiver id",
			req:  &models.SendMessageRequest{ReceiverID: "nope", Message: "hi"},
			code: "invalid_receiver_id",
		},
		{
			name: "self message",
			req:  &models.SendMessageRequest{ReceiverID: senderID.String(), Message: "hi"},
			code: "self_message",
		},
		{
			name: "blank message",
			req:  &models.SendMessageRequest{ReceiverID: uuid.New().String(), Message: "   "},
			code: "empty_message",
		},
		{
			name: "oversized message",
			req: &models.SendMessageRequest{
				ReceiverID: uuid.New().String(),
				Message:    strings.Repeat("a", maxMessageLength+1),
			},
			code: "message_too_long",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, err := uc.SendMessage(context.Background(), senderID, tc.req)
			assert.Nil(t, msg)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.Equal(t, tc.code, apperr.CodeOf(err))
		})
	}
}

func TestChatUC_History(t *testing.T) {
	uc, mockRepo, _, ctrl := setupChatUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	otherID := uuid.New()
	room := utils.RoomID(userID, otherID)

	mockRepo.EXPECT().
		History(gomock.Any(), room, 50, 10).
		Return([]models.Message{{RoomID: room, Body: "hi"}}, nil)

	messages, err := uc.History(context.Background(), userID, room, 50, 10)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestChatUC_History_ClampsPaging(t *testing.T) {
	uc, mockRepo, _, ctrl := setupChatUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	room := utils.RoomID(userID, uuid.New())

	mockRepo.EXPECT().
		History(gomock.Any(), room, defaultHistoryLimit, 0).
		Return([]models.Message{}, nil)
	_, err := uc.History(context.Background(), userID, room, 0, -5)
	require.NoError(t, err)

	mockRepo.EXPECT().
		History(gomock.Any(), room, maxHistoryLimit, 0).
		Return([]models.Message{}, nil)
	_, err = uc.History(context.Background(), userID, room, 9999, 0)
	require.NoError(t, err)
}

func TestChatUC_History_NotAMember(t *testing.T) {
	uc, _, _, ctrl := setupChatUC(t)
	defer ctrl.Finish()

	room := utils.RoomID(uuid.New(), uuid.New())

	_, err := uc.History(context.Background(), uuid.New(), room, 10, 0)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "room_not_found", apperr.CodeOf(err))
}

func TestChatUC_MarkRead(t *testing.T) {
	uc, mockRepo, _, ctrl := setupChatUC(t)
	defer ctrl.Finish()

	userID := uuid.New()
	room := utils.RoomID(userID, uuid.New())

	mockRepo.EXPECT().MarkRead(gomock.Any(), room, userID).Return(int64(4), nil)
	assert.NoError(t, uc.MarkRead(context.Background(), userID, room))

	// repeating the call is harmless
	mockRepo.EXPECT().MarkRead(gomock.Any(), room, userID).Return(int64(0), nil)
	assert.NoError(t, uc.MarkRead(context.Background(), userID, room))
}

func TestChatUC_MarkRead_NotAMember(t *testing.T) {
	uc, _, _, ctrl := setupChatUC(t)
	defer ctrl.Finish()

	err := uc.MarkRead(context.Background(), uuid.New(), "malformed")
	assert.Equal(t, "room_not_found", apperr.CodeOf(err))
}
