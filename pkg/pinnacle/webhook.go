package pinnacle

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"os"

	"github.com/tidwall/gjson"
	"github.com/trypinnacle/pinnacle-go/pkg/pinnacle/internal/codec"
)

// SigningSecretHeader is the header carrying the signing secret of the webhook on every delivery.
const SigningSecretHeader = "PINNACLE-SIGNING-SECRET"

// Process authenticates and decodes a webhook delivery.
//
// The PINNACLE-SIGNING-SECRET header must match secret, or the PINNACLE_SIGNING_SECRET
// environment variable when secret is empty. Otherwise ErrUnauthorized is returned.
// A body which is not a JSON object, or does not match the event it claims to be, returns
// ErrBadRequest.
//
// USER.TYPING deliveries decode to a UserEvent and all others, including unknown types, to
// a MessageEvent.
func (s *MessagesService) Process(header http.Header, body []byte, secret string) (WebhookEvent, error) {
	return ProcessWebhook(header, body, secret)
}

// ProcessWebhook is Messages.Process without a Client.
func ProcessWebhook(header http.Header, body []byte, secret string) (WebhookEvent, error) {
	if err := VerifySignature(header, secret); err != nil {
		return WebhookEvent{}, err
	}

	return ParseWebhookEvent(body)
}

// ParseWebhookEvent decodes an already authenticated webhook body.
// It fails with ErrBadRequest the same way ProcessWebhook does.
func ParseWebhookEvent(body []byte) (WebhookEvent, error) {
	if !gjson.ValidBytes(body) {
		return WebhookEvent{}, fmt.Errorf("%w: webhook body is not valid JSON", ErrBadRequest)
	}
	res := gjson.ParseBytes(body)
	if !res.IsObject() {
		return WebhookEvent{}, fmt.Errorf("%w: webhook body is not a JSON object", ErrBadRequest)
	}

	var ev WebhookEvent
	if err := codec.Unmarshal(body, &ev); err != nil {
		return WebhookEvent{}, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	return ev, nil
}

// VerifySignature checks the signing secret of a webhook delivery against secret, or the
// PINNACLE_SIGNING_SECRET environment variable when secret is empty.
func VerifySignature(header http.Header, secret string) error {
	if secret == "" {
		secret = os.Getenv(SigningSecretEnv)
	}
	if secret == "" {
		return fmt.Errorf("%w: no signing secret configured", ErrUnauthorized)
	}
	got := header.Get(SigningSecretHeader)
	if got == "" {
		return fmt.Errorf("%w: missing %s header", ErrUnauthorized, SigningSecretHeader)
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
		return fmt.Errorf("%w: invalid signing secret", ErrUnauthorized)
	}
	return nil
}
