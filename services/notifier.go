package services

import (
	"bookwise-backend/apperrors"
	"bookwise-backend/config"

	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier sends an outbound message to a customer phone number. Failures are
// caught per appointment by the reminder engine, never propagated out of a tick.
type Notifier interface {
	Send(phoneNumber, message string) error
}

// TwilioNotifier dispatches SMS via the Twilio REST API.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier(accountSID, authToken, fromNumber string) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: fromNumber,
	}
}

func (n *TwilioNotifier) Send(phoneNumber, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phoneNumber)
	params.SetFrom(n.from)
	params.SetBody(message)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return apperrors.Downstream(err)
	}

	if resp.Sid != nil {
		log.Debug().Str("to", phoneNumber).Str("sid", *resp.Sid).Msg("SMS sent")
	} else {
		log.Debug().Str("to", phoneNumber).Msg("SMS sent, no SID returned")
	}

	return nil
}

// LogNotifier writes messages to the log instead of sending them. Used when
// Twilio credentials are not configured.
type LogNotifier struct{}

func (LogNotifier) Send(phoneNumber, message string) error {
	log.Info().Str("to", phoneNumber).Str("message", message).Msg("SMS (not configured)")
	return nil
}

// NewNotifier picks the Twilio notifier when credentials are present,
// otherwise the logging fallback.
func NewNotifier(cfg *config.Config) Notifier {
	if cfg.TwilioAccountSID == "" {
		return LogNotifier{}
	}
	return NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
}
