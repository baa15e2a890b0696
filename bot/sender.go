package bot

import (
	"github.com/sirupsen/logrus"
)

// Sender delivers outbound bot replies. The WhatsApp Cloud API integration
// is not wired up yet, so the only implementation logs what would be sent.
type Sender interface {
	SendWelcome(phoneNumber string) error
	SendHelp(phoneNumber string) error
	SendDefault(phoneNumber, originalMessage string) error
}

type LogSender struct{}

func (LogSender) SendWelcome(phoneNumber string) error {
	logrus.WithField("to", phoneNumber).Info("sending welcome message")
	return nil
}

func (LogSender) SendHelp(phoneNumber string) error {
	logrus.WithField("to", phoneNumber).Info("sending help message")
	return nil
}

func (LogSender) SendDefault(phoneNumber, originalMessage string) error {
	logrus.WithFields(logrus.Fields{
		"to":       phoneNumber,
		"original": originalMessage,
	}).Info("sending default response")
	return nil
}
