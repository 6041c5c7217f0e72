package pinnacle

import (
	"context"
	"net/http"
)

// MessagesService sends, validates and looks up messages.
type MessagesService struct {
	c *Client
}

// SendSMS sends an SMS, or schedules it when params.Options.Schedule is set.
func (s *MessagesService) SendSMS(ctx context.Context, params SendSMSParams) (SendSMSResponse, error) {
	return call[SendSMSResponse](ctx, s.c, http.MethodPost, "messages/send/sms", nil, params)
}

// SendMMS sends an MMS, or schedules it when params.Options.Schedule is set.
func (s *MessagesService) SendMMS(ctx context.Context, params SendMMSParams) (SendMMSResponse, error) {
	return call[SendMMSResponse](ctx, s.c, http.MethodPost, "messages/send/mms", nil, params)
}

// SendRCS sends a rich message from an RCS agent.
func (s *MessagesService) SendRCS(ctx context.Context, params RichMessage) (SendRCSResponse, error) {
	return call[SendRCSResponse](ctx, s.c, http.MethodPost, "messages/send/rcs", nil, params)
}

// SendTyping shows a typing indicator to the recipient of an RCS conversation.
func (s *MessagesService) SendTyping(ctx context.Context, params SendTypingParams) (SendTypingResponse, error) {
	return call[SendTypingResponse](ctx, s.c, http.MethodPost, "messages/send/typing", nil, params)
}

// ValidateSMS returns the segments and the cost of an SMS without sending it.
func (s *MessagesService) ValidateSMS(ctx context.Context, params ValidateSMSParams) (SMSValidationResult, error) {
	return call[SMSValidationResult](ctx, s.c, http.MethodPost, "messages/validate/sms", nil, params)
}

// ValidateMMS returns the segments and the cost of an MMS without sending it.
func (s *MessagesService) ValidateMMS(ctx context.Context, params ValidateMMSParams) (MMSValidationResult, error) {
	return call[MMSValidationResult](ctx, s.c, http.MethodPost, "messages/validate/mms", nil, params)
}

// ValidateRCS returns the cost of a rich message without sending it.
func (s *MessagesService) ValidateRCS(ctx context.Context, params RCSContent) (RCSValidationResult, error) {
	return call[RCSValidationResult](ctx, s.c, http.MethodPost, "messages/validate/rcs", nil, params)
}

func (s *MessagesService) Get(ctx context.Context, id string) (Message, error) {
	return call[Message](ctx, s.c, http.MethodGet, "messages/"+pathEscape(id), nil, nil)
}

// React adds a reaction to a message, or removes it when params.Reaction is null.
func (s *MessagesService) React(ctx context.Context, params ReactParams) (ReactionResult, error) {
	return call[ReactionResult](ctx, s.c, http.MethodPost, "messages/react", nil, params)
}

// CancelScheduled cancels a scheduled message or blast.
func (s *MessagesService) CancelScheduled(ctx context.Context, scheduleID string) (SuccessResponse, error) {
	return call[SuccessResponse](ctx, s.c, http.MethodDelete, "messages/schedule/"+pathEscape(scheduleID), nil, nil)
}

// BlastSMS sends an SMS to every contact of an audience.
func (s *MessagesService) BlastSMS(ctx context.Context, params BlastSMSParams) (BlastResponse, error) {
	return call[BlastResponse](ctx, s.c, http.MethodPost, "messages/blast/sms", nil, params)
}

// BlastMMS sends an MMS to every contact of an audience.
func (s *MessagesService) BlastMMS(ctx context.Context, params BlastMMSParams) (BlastResponse, error) {
	return call[BlastResponse](ctx, s.c, http.MethodPost, "messages/blast/mms", nil, params)
}

// BlastRCS sends a rich message to every contact of an audience.
func (s *MessagesService) BlastRCS(ctx context.Context, params BlastRCSParams) (BlastResponse, error) {
	return call[BlastResponse](ctx, s.c, http.MethodPost, "messages/blast/rcs", nil, params)
}
