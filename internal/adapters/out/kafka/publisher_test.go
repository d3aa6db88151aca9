package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWriter records messages written and can simulate broker failures.
type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublisher_Publish(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewPublisherWithWriter(writer, testLogger())

	err := publisher.Publish(context.Background(), "plan.route.selected", map[string]string{"shipmentId": "SHP-100"})
	require.NoError(t, err)
	require.Len(t, writer.msgs, 1)

	assert.Equal(t, "plan.route.selected", string(writer.msgs[0].Key))

	var env envelope
	require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &env))
	assert.Equal(t, "plan.route.selected", env.EventType)
	assert.NotEmpty(t, env.EventID)
	assert.False(t, env.OccurredAt.IsZero())
	assert.Equal(t, map[string]any{"shipmentId": "SHP-100"}, env.Payload)
}

func TestPublisher_PublishWriteError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unreachable")}
	publisher := NewPublisherWithWriter(writer, testLogger())

	err := publisher.Publish(context.Background(), "shipment.planned", map[string]string{})
	require.Error(t, err)
}

func TestPublisher_Close(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewPublisherWithWriter(writer, testLogger())

	require.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}
