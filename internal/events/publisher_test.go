package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingConn struct {
	subject string
	data    []byte
	err     error
}

func (c *recordingConn) Publish(subject string, data []byte) error {
	c.subject = subject
	c.data = data
	return c.err
}

func TestNATSPublisher_Publish(t *testing.T) {
	t.Run("событие публикуется в subject с префиксом", func(t *testing.T) {
		conn := &recordingConn{}
		p := NewNATSPublisher(conn, "championship")
		matchID := uuid.New()

		err := p.Publish(context.Background(), New(TypeMatchScored, MatchPayload{MatchID: matchID, Action: "teamA_plif", ScoreA: 55, ScoreB: 50}))

		require.NoError(t, err)
		assert.Equal(t, "championship.match.scored", conn.subject)

		var decoded struct {
			Type    string `json:"eventType"`
			Payload struct {
				MatchID string `json:"matchId"`
				ScoreA  int    `json:"scoreA"`
			} `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(conn.data, &decoded))
		assert.Equal(t, TypeMatchScored, decoded.Type)
		assert.Equal(t, matchID.String(), decoded.Payload.MatchID)
		assert.Equal(t, 55, decoded.Payload.ScoreA)
	})

	t.Run("ошибка соединения возвращается", func(t *testing.T) {
		conn := &recordingConn{err: errors.New("nats: connection closed")}
		p := NewNATSPublisher(conn, "")

		err := p.Publish(context.Background(), New(TypeTeamCreated, TeamPayload{Name: "Lions"}))

		require.Error(t, err)
		assert.Equal(t, "team.created", conn.subject)
	})

	t.Run("отмененный контекст", func(t *testing.T) {
		conn := &recordingConn{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewNATSPublisher(conn, "x").Publish(ctx, New(TypeTeamDeleted, nil))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, conn.subject)
	})
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), New(TypeBracketGenerated, BracketPayload{})))
}
