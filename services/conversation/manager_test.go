package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"infibot/services/conversation/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	cat := new(mocks.MockCatalog)
	cat.On("ListCities", mock.Anything).Return(testCities, nil)
	cat.On("ListCategories", mock.Anything).Return(testCategories, nil)

	m := NewManager(Deps{Catalog: cat, Writer: mocks.StubWriter{}}, 30*time.Minute)
	t.Cleanup(m.Stop)
	return m
}

func TestManager_CreateAndGet(t *testing.T) {
	m := newTestManager(t)

	conv, err := m.Create(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, conv.ID)
	assert.Equal(t, 1, m.Count())

	got, err := m.Get(conv.ID)
	require.NoError(t, err)
	assert.Same(t, conv, got)
}

func TestManager_GetUnknown(t *testing.T) {
	m := newTestManager(t)

	_, err := m.Get("no-such-session")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_CreateFailureRegistersNothing(t *testing.T) {
	cat := new(mocks.MockCatalog)
	cat.On("ListCities", mock.Anything).Return(nil, errors.New("catalog down"))

	m := NewManager(Deps{Catalog: cat, Writer: mocks.StubWriter{}}, time.Minute)
	t.Cleanup(m.Stop)

	_, err := m.Create(context.Background())

	require.Error(t, err)
	assert.Equal(t, 0, m.Count())
}

func TestManager_Delete(t *testing.T) {
	m := newTestManager(t)
	conv, err := m.Create(context.Background())
	require.NoError(t, err)

	m.Delete(conv.ID)

	_, err = m.Get(conv.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, m.Count())
}

func TestConversation_RejectsConcurrentOperation(t *testing.T) {
	conv, _ := newTestConversation(t)

	// Hold the conversation's operation slot and submit on top of it.
	require.True(t, conv.mu.TryLock())
	defer conv.mu.Unlock()

	err := conv.Submit(context.Background(), "Mumbai")

	assert.ErrorIs(t, err, ErrBusy)
}
