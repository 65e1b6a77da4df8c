package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/GraziArcH/domain-sales/internal/shared/logger"
)

func TestAsyncNotifier_SendsInBackground(t *testing.T) {
	sender := &mockSender{}
	mailer := NewCancellationMailerWithSender(enabledConfig(), sender, logger.NewNopLogger())
	n := NewAsyncNotifier(mailer, logger.NewNopLogger())
	sub, c := testCancellation(t)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, n.CancellationRequested(ctx, sub, c))
	cancel()
	require.NoError(t, n.CancellationConfirmed(ctx, sub, c))
	n.Wait()

	assert.Len(t, sender.sent, 2)
}

func TestAsyncNotifier_SwallowsSendFailure(t *testing.T) {
	sender := &mockSender{DialAndSendFunc: func(m ...*gomail.Message) error {
		return errors.New("smtp down")
	}}
	mailer := NewCancellationMailerWithSender(enabledConfig(), sender, logger.NewNopLogger())
	n := NewAsyncNotifier(mailer, logger.NewNopLogger())
	sub, c := testCancellation(t)

	assert.NoError(t, n.CancellationRequested(context.Background(), sub, c))
	n.Wait()
	assert.Len(t, sender.sent, 1)
}
