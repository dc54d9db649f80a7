package notifier

import (
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"

	"leadgate/models"
)

// Mailer delivers an operator alert for a persisted lead.
type Mailer interface {
	SendLeadAlert(lead models.Lead) error
}

// Notifier dispatches best-effort operator notifications. Failures are
// recorded for diagnostics and never reach the caller.
type Notifier struct {
	mailer Mailer
	logger *logrus.Entry
}

func New(mailer Mailer, logger *logrus.Entry) *Notifier {
	return &Notifier{
		mailer: mailer,
		logger: logger,
	}
}

// Notify spawns the dispatch and returns immediately. The caller never
// awaits the outcome; the already-sent response must not depend on it.
func (n *Notifier) Notify(lead models.Lead) {
	go n.dispatch(lead)
}

// dispatch performs the single delivery attempt. All failure modes,
// panics included, stop here.
func (n *Notifier) dispatch(lead models.Lead) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.WithFields(logrus.Fields{
				"lead_id": lead.ID,
				"panic":   r,
			}).Error("Lead notification panicked")
		}
	}()

	if err := n.mailer.SendLeadAlert(lead); err != nil {
		n.logger.WithFields(logrus.Fields{
			"lead_id": lead.ID,
			"email":   lead.Email,
		}).WithError(err).Error("Failed to send lead notification")
		sentry.CaptureException(err)
		return
	}

	n.logger.WithField("lead_id", lead.ID).Info("Lead notification sent")
}
