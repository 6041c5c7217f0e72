package pinnacle_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle"
)

func TestProcessWebhook(t *testing.T) {
	t.Parallel()

	typing := `{"type":"USER.TYPING","startedAt":"2025-06-01T10:00:00Z","conversation":{"id":"conv_1","from":"+1","to":"agent"}}`
	future := `{"type":"MESSAGE.EDITED","conversation":{"id":"conv_2","from":"+1","to":"+2"},"status":"DELIVERED","direction":"OUTBOUND","segments":1,"sentAt":"t","message":{"type":"SMS","id":"msg_1","text":"hi"}}`

	tests := map[string]struct {
		header string
		secret string
		body   string

		wantType         pinnacle.WebhookEventType
		wantConversation string
		wantUserEvent    bool
		wantErr          error
	}{
		"Message event":              {header: "s3cret", secret: "s3cret", body: receivedRCS, wantType: pinnacle.WebhookEventMessageReceived, wantConversation: "conv_1"},
		"User typing event":          {header: "s3cret", secret: "s3cret", body: typing, wantType: pinnacle.WebhookEventUserTyping, wantConversation: "conv_1", wantUserEvent: true},
		"Unknown event is a message": {header: "s3cret", secret: "s3cret", body: future, wantType: "MESSAGE.EDITED", wantConversation: "conv_2"},

		"Error on missing header":      {secret: "s3cret", body: typing, wantErr: pinnacle.ErrUnauthorized},
		"Error on wrong secret":        {header: "guess", secret: "s3cret", body: typing, wantErr: pinnacle.ErrUnauthorized},
		"Error on invalid JSON":        {header: "s3cret", secret: "s3cret", body: `{"type":`, wantErr: pinnacle.ErrBadRequest},
		"Error on non object body":     {header: "s3cret", secret: "s3cret", body: `["USER.TYPING"]`, wantErr: pinnacle.ErrBadRequest},
		"Error on mistyped event body": {header: "s3cret", secret: "s3cret", body: `{"type":"USER.TYPING","conversation":"conv_1"}`, wantErr: pinnacle.ErrBadRequest},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			h := http.Header{}
			if tc.header != "" {
				h.Set(pinnacle.SigningSecretHeader, tc.header)
			}

			ev, err := pinnacle.ProcessWebhook(h, []byte(tc.body), tc.secret)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr, "ProcessWebhook should return the expected error")
				return
			}
			require.NoError(t, err, "ProcessWebhook should not return an error")

			assert.Equal(t, tc.wantType, ev.EventType())
			assert.Equal(t, tc.wantConversation, ev.ConversationID())
			_, isUser := ev.Variant.(pinnacle.UserEvent)
			assert.Equal(t, tc.wantUserEvent, isUser, "Unexpected event member")
		})
	}
}

func TestProcessWebhookSecretFromEnv(t *testing.T) {
	t.Setenv(pinnacle.SigningSecretEnv, "from-env")

	h := http.Header{}
	h.Set(pinnacle.SigningSecretHeader, "from-env")
	_, err := pinnacle.ProcessWebhook(h, []byte(receivedRCS), "")
	require.NoError(t, err, "The secret should be read from the environment")

	t.Setenv(pinnacle.SigningSecretEnv, "")
	_, err = pinnacle.ProcessWebhook(h, []byte(receivedRCS), "")
	require.ErrorIs(t, err, pinnacle.ErrUnauthorized, "Deliveries cannot be verified without a secret")
}

func TestParseWebhookEvent(t *testing.T) {
	t.Parallel()

	ev, err := pinnacle.ParseWebhookEvent([]byte(receivedRCS))
	require.NoError(t, err, "ParseWebhookEvent should not fail on a valid body")
	assert.Equal(t, pinnacle.WebhookEventMessageReceived, ev.EventType())

	_, err = pinnacle.ParseWebhookEvent([]byte(`"MESSAGE.RECEIVED"`))
	require.ErrorIs(t, err, pinnacle.ErrBadRequest, "A non object body should be rejected")
}
