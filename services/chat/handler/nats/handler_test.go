package nats

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	natsio "github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tukangku/server/internal/pkg/constants"
	jwtpkg "github.com/tukangku/server/internal/pkg/jwt"
	"github.com/tukangku/server/internal/pkg/models"
	wspkg "github.com/tukangku/server/internal/pkg/websocket"
)

func connectClient(t *testing.T, manager *wspkg.Manager, userID uuid.UUID) (*websocket.Conn, func()) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "tukangku-test"}
	token, _, err := jwtpkg.GenerateToken(userID, models.RoleCustomer, cfg)
	require.NoError(t, err)

	connected := make(chan struct{})
	done := make(chan struct{})

	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return manager.HandleConnection(c, func(client *models.WebSocketClient, ws *websocket.Conn) error {
			client.Conn = ws
			manager.AddClient(client)
			close(connected)
			<-done
			return nil
		})
	})
	server := httptest.NewServer(e)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	header := http.Header{"Authorization": []string{"Bearer " + token}}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	<-connected

	cleanup := func() {
		conn.Close()
		close(done)
		server.Close()
	}
	return conn, cleanup
}

func TestNatsHandler_DeliversToConnectedReceiver(t *testing.T) {
	manager := wspkg.NewManager(models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "tukangku-test"})
	natsHandler := NewNatsHandler(nil, manager)

	receiverID := uuid.New()
	conn, cleanup := connectClient(t, manager, receiverID)
	defer cleanup()

	event := models.ChatMessageEvent{
		ReceiverID: receiverID,
		Message: models.Message{
			ID:     uuid.New(),
			RoomID: "room-a",
			Body:   "hello",
		},
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	natsHandler.handleChatMessage(&natsio.Msg{Subject: constants.SubjectChatMessage, Data: data})

	var msg models.WSMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventReceiveMessage, msg.Event)

	var delivered models.Message
	require.NoError(t, json.Unmarshal(msg.Data, &delivered))
	assert.Equal(t, event.Message.ID, delivered.ID)
	assert.Equal(t, "hello", delivered.Body)
}

func TestNatsHandler_OfflineReceiverIsSkipped(t *testing.T) {
	manager := wspkg.NewManager(models.JWTConfig{Secret: "test-secret", Expiration: 60})
	natsHandler := NewNatsHandler(nil, manager)

	event := models.ChatMessageEvent{ReceiverID: uuid.New()}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		natsHandler.handleChatMessage(&natsio.Msg{Subject: constants.SubjectChatMessage, Data: data})
	})
}

func TestNatsHandler_BadPayloadIsIgnored(t *testing.T) {
	manager := wspkg.NewManager(models.JWTConfig{Secret: "test-secret", Expiration: 60})
	natsHandler := NewNatsHandler(nil, manager)

	assert.NotPanics(t, func() {
		natsHandler.handleChatMessage(&natsio.Msg{Subject: constants.SubjectChatMessage, Data: []byte("{not json")})
	})
}
