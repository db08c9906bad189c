package notification

import (
	"context"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/wb-go/wbf/logger"
)

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// SMSReporter texts failure reports to the studio owner through Twilio.
type SMSReporter struct {
	api    messageCreator
	from   string
	to     string
	logger logger.Logger
}

func NewSMSReporter(accountSID, authToken, from, to string, logger logger.Logger) *SMSReporter {
	if accountSID == "" || to == "" {
		logger.Warn("twilio credentials or recipient missing, sms reports disabled")
		return &SMSReporter{logger: logger}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &SMSReporter{api: client.Api, from: from, to: to, logger: logger}
}

func (r *SMSReporter) Report(ctx context.Context, message string) {
	if r.api == nil {
		r.logger.Debug("sms report skipped (twilio disabled)", logger.String("text", message))
		return
	}

	if err := ctx.Err(); err != nil {
		r.logger.Debug("sms report skipped (context cancelled)", logger.String("to", r.to))
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(r.to)
	params.SetFrom(r.from)
	params.SetBody(message)

	resp, err := r.api.CreateMessage(params)
	if err != nil {
		r.logger.Error("failed to send sms report",
			logger.String("to", r.to),
			logger.String("error", err.Error()),
		)
		return
	}
	if resp != nil && resp.Sid != nil {
		r.logger.Debug("sms report sent", logger.String("sid", *resp.Sid))
	}
}
