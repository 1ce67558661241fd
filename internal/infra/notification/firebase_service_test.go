package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []*messaging.Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.sent = append(r.sent, message)

	return "projects/test/messages/1", nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender, logger: discardLogger()}

	err := svc.SendTopicNotification(context.Background(), "operators", "Panic alert", "Tourist needs help",
		map[string]string{"alert_id": "a1"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "operators", msg.Topic)
	assert.Empty(t, msg.Token)
	assert.Equal(t, "Panic alert", msg.Notification.Title)
	assert.Equal(t, "a1", msg.Data["alert_id"])
	assert.Equal(t, "high", msg.Android.Priority)
}

func TestFirebaseService_SendFailure(t *testing.T) {
	svc := &firebaseService{client: &recordingSender{err: errors.New("unavailable")}, logger: discardLogger()}

	err := svc.SendTopicNotification(context.Background(), "operators", "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operators")
}

func TestNewNotificationService_WithoutFirebase(t *testing.T) {
	svc, err := NewNotificationService(Params{Logger: discardLogger()})
	require.NoError(t, err)

	assert.IsType(t, &logService{}, svc)
	assert.NoError(t, svc.SendTopicNotification(context.Background(), "operators", "t", "b", nil))
}
