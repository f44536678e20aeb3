package alert

import (
	"context"
	"fmt"

	"Smart-Fridge-Backend/internal/utils/mailing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gen2brain/beeep"
)

// Channel is one notification delivery path. Channels fail independently;
// the dispatcher logs and swallows errors so a broken channel never blocks
// the others or rolls back the persisted alert.
type Channel interface {
	Name() string
	Send(title, message string) error
}

type desktopChannel struct{}

func NewDesktopChannel() Channel {
	return &desktopChannel{}
}

func (c *desktopChannel) Name() string {
	return "desktop"
}

func (c *desktopChannel) Send(title, message string) error {
	return beeep.Notify(title, message, "")
}

type emailChannel struct {
	recipient string
}

func NewEmailChannel(recipient string) Channel {
	return &emailChannel{recipient: recipient}
}

func (c *emailChannel) Name() string {
	return "email"
}

func (c *emailChannel) Send(title, message string) error {
	body := fmt.Sprintf("<p><strong>%s</strong></p><p>%s</p>", title, message)
	return mailing.SendMail(c.recipient, title, body)
}

type smsChannel struct {
	client      *sns.Client
	phoneNumber string
}

func NewSMSChannel(client *sns.Client, phoneNumber string) Channel {
	return &smsChannel{client: client, phoneNumber: phoneNumber}
}

func (c *smsChannel) Name() string {
	return "sms"
}

func (c *smsChannel) Send(title, message string) error {
	_, err := c.client.Publish(context.TODO(), &sns.PublishInput{
		PhoneNumber: aws.String(c.phoneNumber),
		Message:     aws.String(fmt.Sprintf("%s: %s", title, message)),
	})
	return err
}
