package notifier_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/notifykit/notifykit/pkg/channel"
	"github.com/notifykit/notifykit/pkg/logger"
	"github.com/notifykit/notifykit/pkg/notifier"
)

// MockObserver for testing Notifier dispatch.
type MockObserver struct {
	mock.Mock
	name string
}

func NewMockObserver(name string) *MockObserver {
	return &MockObserver{name: name}
}

func (m *MockObserver) Name() string { return m.name }

func (m *MockObserver) Notify(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// orderObserver records the dispatch order it was notified in.
type orderObserver struct {
	name  string
	calls *[]string
}

func (o *orderObserver) Name() string { return o.name }

func (o *orderObserver) Notify(ctx context.Context, message string) error {
	*o.calls = append(*o.calls, o.name)
	return nil
}

func TestNotifier_PublishOrder(t *testing.T) {
	var calls []string
	n := notifier.NewNotifier(notifier.WithTranscript(io.Discard))

	first := &orderObserver{name: "first", calls: &calls}
	second := &orderObserver{name: "second", calls: &calls}
	third := &orderObserver{name: "third", calls: &calls}

	require.NoError(t, n.Subscribe(first))
	require.NoError(t, n.Subscribe(second))
	require.NoError(t, n.Subscribe(third))

	require.NoError(t, n.Publish(context.Background(), "hola"))
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestNotifier_UnsubscribedNotNotified(t *testing.T) {
	var calls []string
	n := notifier.NewNotifier(notifier.WithTranscript(io.Discard))

	stays := &orderObserver{name: "stays", calls: &calls}
	leaves := &orderObserver{name: "leaves", calls: &calls}

	require.NoError(t, n.Subscribe(stays))
	require.NoError(t, n.Subscribe(leaves))
	require.NoError(t, n.Unsubscribe(leaves))

	require.NoError(t, n.Publish(context.Background(), "hola"))
	assert.Equal(t, []string{"stays"}, calls)
	assert.Equal(t, 1, n.Len())
}

func TestNotifier_DuplicateSubscriptionNotifiesTwice(t *testing.T) {
	n := notifier.NewNotifier(notifier.WithTranscript(io.Discard))

	obs := NewMockObserver("Ana")
	obs.On("Notify", mock.Anything, "hola").Return(nil).Twice()

	require.NoError(t, n.Subscribe(obs))
	require.NoError(t, n.Subscribe(obs))
	assert.Equal(t, 2, n.Len())

	require.NoError(t, n.Publish(context.Background(), "hola"))
	obs.AssertNumberOfCalls(t, "Notify", 2)
}

func TestNotifier_UnsubscribeRemovesFirstMatchOnly(t *testing.T) {
	n := notifier.NewNotifier(notifier.WithTranscript(io.Discard))

	obs := NewMockObserver("Ana")
	obs.On("Notify", mock.Anything, "hola").Return(nil).Once()

	require.NoError(t, n.Subscribe(obs))
	require.NoError(t, n.Subscribe(obs))
	require.NoError(t, n.Unsubscribe(obs))
	assert.Equal(t, 1, n.Len())

	require.NoError(t, n.Publish(context.Background(), "hola"))
	obs.AssertNumberOfCalls(t, "Notify", 1)
}

func TestNotifier_UnsubscribeAbsent(t *testing.T) {
	n := notifier.NewNotifier(notifier.WithTranscript(io.Discard))

	err := n.Unsubscribe(NewMockObserver("Luis"))
	require.Error(t, err)
	assert.ErrorIs(t, err, notifier.ErrNotSubscribed)
	assert.Contains(t, err.Error(), "Luis")
}

func TestNotifier_NilObserver(t *testing.T) {
	n := notifier.NewNotifier(notifier.WithTranscript(io.Discard))

	assert.ErrorIs(t, n.Subscribe(nil), notifier.ErrNilObserver)
	assert.ErrorIs(t, n.Unsubscribe(nil), notifier.ErrNilObserver)
}

func TestNotifier_StrictModeAbortsOnFirstFailure(t *testing.T) {
	n := notifier.NewNotifier(notifier.WithTranscript(io.Discard))

	failing := NewMockObserver("failing")
	failing.On("Notify", mock.Anything, "hola").Return(fmt.Errorf("boom"))

	after := NewMockObserver("after")

	require.NoError(t, n.Subscribe(failing))
	require.NoError(t, n.Subscribe(after))

	err := n.Publish(context.Background(), "hola")
	require.Error(t, err)

	// The observer after the failure is never reached.
	after.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestNotifier_FailureIsolationDeliversToRest(t *testing.T) {
	var logs bytes.Buffer
	n := notifier.NewNotifier(
		notifier.WithTranscript(io.Discard),
		notifier.WithFailureIsolation(),
		notifier.WithLogger(logger.New(logger.WithOutput(&logs))),
	)

	failing := NewMockObserver("failing")
	failing.On("Notify", mock.Anything, "hola").Return(fmt.Errorf("boom"))

	after := NewMockObserver("after")
	after.On("Notify", mock.Anything, "hola").Return(nil).Once()

	require.NoError(t, n.Subscribe(failing))
	require.NoError(t, n.Subscribe(after))

	err := n.Publish(context.Background(), "hola")
	require.Error(t, err)

	after.AssertNumberOfCalls(t, "Notify", 1)
	assert.Contains(t, logs.String(), "failing")
}

func TestNotifier_TranscriptLines(t *testing.T) {
	var out bytes.Buffer
	n := notifier.NewNotifier(notifier.WithTranscript(&out))

	obs := NewMockObserver("Ana")
	obs.On("Notify", mock.Anything, "hola").Return(nil)

	require.NoError(t, n.Subscribe(obs))
	require.NoError(t, n.Publish(context.Background(), "hola"))
	require.NoError(t, n.Unsubscribe(obs))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[INFO] Ana suscrito.", lines[0])
	assert.Equal(t, "[NOTIFICADOR] Enviando mensaje a 1 observador(es)...", lines[1])
	assert.Equal(t, "[INFO] Ana dado de baja.", lines[2])
}

func TestNotifier_IndependentInstances(t *testing.T) {
	var callsA, callsB []string
	a := notifier.NewNotifier(notifier.WithTranscript(io.Discard))
	b := notifier.NewNotifier(notifier.WithTranscript(io.Discard))

	require.NoError(t, a.Subscribe(&orderObserver{name: "a", calls: &callsA}))
	require.NoError(t, b.Subscribe(&orderObserver{name: "b", calls: &callsB}))

	require.NoError(t, a.Publish(context.Background(), "hola"))
	assert.Equal(t, []string{"a"}, callsA)
	assert.Empty(t, callsB)
}

// Compile-time checks that package types satisfy their interfaces.
var (
	_ notifier.Observer       = (*notifier.Recipient)(nil)
	_ notifier.ChannelFactory = (*channel.Factory)(nil)
	_ notifier.Journal        = (*notifier.MemoryJournal)(nil)
)
