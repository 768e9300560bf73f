package bnb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkoshelev/atsp/matrix"
)

// protocolTimeout bounds every blocking coordinator test; a protocol bug
// shows up as a deadlock, and the timeout turns it into a failure.
const protocolTimeout = 10 * time.Second

func TestCoordinator_SoloWorkerTerminatesImmediately(t *testing.T) {
	c := newCoordinator(1)

	s, done := c.awaitWork()
	require.True(t, done)
	require.Nil(t, s)
}

func TestCoordinator_AllIdleTerminates(t *testing.T) {
	const workers = 4
	c := newCoordinator(workers)

	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		go func() {
			_, done := c.awaitWork()
			results <- done
		}()
	}

	for i := 0; i < workers; i++ {
		select {
		case done := <-results:
			require.True(t, done, "every worker must observe global termination")
		case <-time.After(protocolTimeout):
			t.Fatal("termination protocol deadlocked")
		}
	}
}

func TestCoordinator_DonationHandsWorkToIdleWorker(t *testing.T) {
	c := newCoordinator(2)

	type outcome struct {
		stack *workStack
		done  bool
	}
	got := make(chan outcome, 1)
	go func() {
		s, done := c.awaitWork()
		got <- outcome{stack: s, done: done}
	}()

	// Retry the donation until it lands, like a running worker would: the
	// fast path no-ops until the peer is registered idle, and TryLock may
	// lose a race. Success is observed through the donor's own stack
	// shrinking — the mailbox flag is transient (the signaled recipient
	// may consume it between polls) and must not be waited on.
	donor := newWorkStack(4)
	for _, n := range mkNodes(4) {
		donor.push(n)
	}
	deadline := time.Now().Add(protocolTimeout)
	for donor.len() == 4 {
		require.True(t, time.Now().Before(deadline), "donation never landed")
		c.maybeDonate(donor)
		time.Sleep(time.Millisecond)
	}

	select {
	case out := <-got:
		require.False(t, out.done, "a donation must not read as termination")
		require.Equal(t, []int{1, 3}, cities(out.stack), "recipient gets the odd positions")
		require.Equal(t, []int{0, 2}, cities(donor), "donor keeps the even positions")
	case <-time.After(protocolTimeout):
		t.Fatal("idle worker was never woken by the donation")
	}

	// Drain the protocol: the recipient goes idle again, then the donor
	// (now empty) arrives last and both observe global termination.
	go func() {
		_, done := c.awaitWork()
		got <- outcome{done: done}
	}()
	// The recipient must be registered idle before the donor's final check.
	for c.idleHint.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	_, done := c.awaitWork()
	require.True(t, done)
	select {
	case out := <-got:
		require.True(t, out.done)
	case <-time.After(protocolTimeout):
		t.Fatal("recipient never observed termination")
	}
}

func TestCoordinator_MaybeDonateFastPathGuards(t *testing.T) {
	c := newCoordinator(2)

	// One frame is never donated, idle peers or not.
	s := newWorkStack(1)
	s.push(frontierNode{tour: newTour(2), city: 1, cost: matrix.Weight(1)})
	c.maybeDonate(s)
	require.Equal(t, 1, s.len())
	require.False(t, c.mailFull.Load())

	// With no idle peer the fast path must not touch the stack.
	s.push(frontierNode{tour: newTour(2), city: 2, cost: matrix.Weight(2)})
	c.maybeDonate(s)
	require.Equal(t, 2, s.len())
	require.False(t, c.mailFull.Load())
}
