package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Iniyavan-Mahendran/sree-ranga-department-stores/internal/store"
)

// Short TTL keeps these tests fast; the default is 5s in production.
const testTTL = 40 * time.Millisecond

func TestNotifierAutoDismissAfterTTL(t *testing.T) {
	n := store.NewNotifier(testTTL)
	n.Show(store.NotifySuccess, "Added to Cart", "Basmati Rice has been added.")

	require.NotNil(t, n.Current())
	time.Sleep(3 * testTTL)
	assert.Nil(t, n.Current())
}

func TestNotifierNewestWinsAndOldTimerIsCancelled(t *testing.T) {
	n := store.NewNotifier(testTTL)
	n.Show(store.NotifyInfo, "First", "first message")

	// Replace just before the first timer would fire. The first timer
	// must not dismiss the replacement early.
	time.Sleep(testTTL / 2)
	n.Show(store.NotifyError, "Second", "second message")

	time.Sleep(testTTL * 3 / 4) // past the first TTL, within the second
	cur := n.Current()
	require.NotNil(t, cur, "stale timer dismissed the newer notification")
	assert.Equal(t, "Second", cur.Title)

	time.Sleep(2 * testTTL)
	assert.Nil(t, n.Current())
}

func TestNotifierDismissCancelsPendingTimer(t *testing.T) {
	n := store.NewNotifier(testTTL)
	n.Show(store.NotifyWarning, "Session Expired", "Please log in again.")
	n.Dismiss()
	assert.Nil(t, n.Current())

	// show again; the cancelled timer must not touch it
	n.Show(store.NotifyInfo, "New", "new message")
	time.Sleep(testTTL / 2)
	require.NotNil(t, n.Current())
}

func TestNotifierSingleSlot(t *testing.T) {
	n := store.NewNotifier(time.Minute)
	n.Show(store.NotifySuccess, "One", "1")
	n.Show(store.NotifySuccess, "Two", "2")
	n.Show(store.NotifySuccess, "Three", "3")

	cur := n.Current()
	require.NotNil(t, cur)
	assert.Equal(t, "Three", cur.Title)
	n.Dismiss()
	assert.Nil(t, n.Current())
}

func TestNotifierNotifiesSubscribers(t *testing.T) {
	n := store.NewNotifier(time.Minute)
	var fired int
	n.Subscribe(func() { fired++ })

	n.Show(store.NotifyInfo, "A", "a")
	n.Dismiss()
	n.Dismiss() // already clear: no change, no signal

	assert.Equal(t, 2, fired)
}

func TestNotifierKindsAndTimestamps(t *testing.T) {
	n := store.NewNotifier(time.Minute)
	before := time.Now()
	n.Show(store.NotifyError, "Payment Failed", "Please try again.")

	cur := n.Current()
	require.NotNil(t, cur)
	assert.Equal(t, store.NotifyError, cur.Kind)
	assert.False(t, cur.CreatedAt.Before(before))
	assert.NotZero(t, cur.ID)
}
