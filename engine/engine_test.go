package engine

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enryu8191/Creator-Bot/db"
)

func newTestEngine(t *testing.T) (*Engine, *db.Store) {
	t.Helper()
	store, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store), store
}

func submit(t *testing.T, e *Engine, userID, link string) {
	t.Helper()
	_, err := e.Submit(userID, userID, link, "msg-"+userID, "chan")
	require.NoError(t, err)
}

func TestSubmit_Lifecycle(t *testing.T) {
	e, _ := newTestEngine(t)

	active, err := e.ActiveSubmission("A")
	require.NoError(t, err)
	require.Nil(t, active, "no active submission before first post")

	sub, err := e.Submit("A", "Alice", "http://x/1", "m1", "c1")
	require.NoError(t, err)
	require.NotZero(t, sub.ID)

	active, err = e.ActiveSubmission("A")
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "http://x/1", active.Link)
	assert.Equal(t, sub.ID, active.ID)
}

func TestSubmit_RejectsSecondActiveSubmission(t *testing.T) {
	e, _ := newTestEngine(t)

	submit(t, e, "A", "http://x/1")

	_, err := e.Submit("A", "Alice", "http://x/2", "m2", "c1")
	assert.ErrorIs(t, err, ErrAlreadyActive)

	// The original submission is untouched.
	active, err := e.ActiveSubmission("A")
	require.NoError(t, err)
	assert.Equal(t, "http://x/1", active.Link)
}

func TestRecordEngagement_AwardsOnePoint(t *testing.T) {
	e, store := newTestEngine(t)

	submit(t, e, "A", "http://x/a")
	submit(t, e, "B", "http://x/b")

	require.NoError(t, e.RecordEngagement("B", "A"))

	user, err := store.GetUser("B")
	require.NoError(t, err)
	assert.Equal(t, 1, user.TotalPoints)

	// Second delivery of the same reaction is an idempotent no-op.
	err = e.RecordEngagement("B", "A")
	assert.ErrorIs(t, err, ErrAlreadyEngaged)

	user, err = store.GetUser("B")
	require.NoError(t, err)
	assert.Equal(t, 1, user.TotalPoints, "duplicate engagement must not double-award")
}

func TestRecordEngagement_ConcurrentDuplicatesAwardOnce(t *testing.T) {
	e, store := newTestEngine(t)

	submit(t, e, "A", "http://x/a")
	submit(t, e, "B", "http://x/b")

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)
	for n := 0; n < attempts; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- e.RecordEngagement("B", "A")
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyEngaged)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one delivery should win")

	user, err := store.GetUser("B")
	require.NoError(t, err)
	assert.Equal(t, 1, user.TotalPoints)
}

func TestRecordEngagement_RejectsSelfEngagement(t *testing.T) {
	e, _ := newTestEngine(t)

	// Self-engagement is rejected even before the submission exists.
	assert.ErrorIs(t, e.RecordEngagement("A", "A"), ErrSelfEngagement)

	submit(t, e, "A", "http://x/a")
	assert.ErrorIs(t, e.RecordEngagement("A", "A"), ErrSelfEngagement)
}

func TestRecordEngagement_NoActiveSubmission(t *testing.T) {
	e, _ := newTestEngine(t)

	// A reaction arriving before the submission row is visible, or after a
	// reset, resolves to no active submission and is dropped by callers.
	assert.ErrorIs(t, e.RecordEngagement("B", "A"), ErrNoActiveSubmission)
}

func TestStatusFor_TracksEngagersOfOwnSubmission(t *testing.T) {
	e, _ := newTestEngine(t)

	submit(t, e, "A", "http://x/a")
	submit(t, e, "B", "http://x/b")
	submit(t, e, "C", "http://x/c")

	// B and C both engage with A's content.
	require.NoError(t, e.RecordEngagement("B", "A"))
	require.NoError(t, e.RecordEngagement("C", "A"))

	statusA, err := e.StatusFor("A")
	require.NoError(t, err)
	assert.Equal(t, 2, statusA.RequiredCount)
	assert.Equal(t, 2, statusA.EngagedCount)
	assert.Empty(t, statusA.PendingUserIDs)

	// B engaged with others, but nobody engaged with B: status counts the
	// engagers of B's own submission, not whom B engaged with.
	statusB, err := e.StatusFor("B")
	require.NoError(t, err)
	assert.Equal(t, 2, statusB.RequiredCount)
	assert.Equal(t, 0, statusB.EngagedCount)
	assert.Equal(t, []string{"A", "C"}, statusB.PendingUserIDs)
}

func TestStatusFor_NoSubmission(t *testing.T) {
	e, _ := newTestEngine(t)
	_, err := e.StatusFor("A")
	assert.ErrorIs(t, err, ErrNoActiveSubmission)
}

func TestEditLink_PreservesRowAndEngagements(t *testing.T) {
	e, store := newTestEngine(t)

	submit(t, e, "A", "http://x/1")
	submit(t, e, "B", "http://x/b")
	require.NoError(t, e.RecordEngagement("B", "A"))

	before, err := e.ActiveSubmission("A")
	require.NoError(t, err)

	sub, oldLink, err := e.EditLink("A", "http://x/2")
	require.NoError(t, err)
	assert.Equal(t, "http://x/1", oldLink)
	assert.Equal(t, "http://x/2", sub.Link)
	assert.Equal(t, before.ID, sub.ID, "edit must not create a new row")

	active, err := e.ActiveSubmission("A")
	require.NoError(t, err)
	assert.Equal(t, "http://x/2", active.Link)

	engagers, err := store.EngagersFor(before.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, engagers, "existing engagements survive the edit")
}

func TestEditLink_Errors(t *testing.T) {
	e, _ := newTestEngine(t)

	_, _, err := e.EditLink("A", "http://x/2")
	assert.ErrorIs(t, err, ErrNoActiveSubmission)

	submit(t, e, "A", "http://x/1")

	for _, bad := range []string{"", "notaurl", "ftp://x/1", "http://"} {
		_, _, err := e.EditLink("A", bad)
		assert.ErrorIs(t, err, ErrInvalidLink, "link %q", bad)
	}
}

func TestNonEngagedUsers(t *testing.T) {
	e, _ := newTestEngine(t)

	submit(t, e, "A", "http://x/a")
	submit(t, e, "B", "http://x/b")
	submit(t, e, "C", "http://x/c")

	// A and B have mutually engaged; C engaged with nobody and nobody has
	// to engage with C for C to count — C owes reactions to A and B.
	require.NoError(t, e.RecordEngagement("A", "B"))
	require.NoError(t, e.RecordEngagement("B", "A"))

	nonEngaged, err := e.NonEngagedUsers()
	require.NoError(t, err)

	ids := make([]string, len(nonEngaged))
	for idx, user := range nonEngaged {
		ids[idx] = user.UserID
	}
	// A and B still owe C a reaction, C owes both.
	assert.Equal(t, []string{"A", "B", "C"}, ids)

	// Once everyone closed the loop, nobody is reported.
	require.NoError(t, e.RecordEngagement("A", "C"))
	require.NoError(t, e.RecordEngagement("B", "C"))
	require.NoError(t, e.RecordEngagement("C", "A"))
	require.NoError(t, e.RecordEngagement("C", "B"))

	nonEngaged, err = e.NonEngagedUsers()
	require.NoError(t, err)
	assert.Empty(t, nonEngaged)
}

func TestResetAll_KeepsPoints(t *testing.T) {
	e, store := newTestEngine(t)

	submit(t, e, "A", "http://x/a")
	submit(t, e, "B", "http://x/b")
	require.NoError(t, e.RecordEngagement("B", "A"))

	require.NoError(t, e.ResetAll())

	latest, err := store.LatestSubmissionByUser()
	require.NoError(t, err)
	assert.Empty(t, latest)

	// Points deliberately survive a round reset.
	leaders, err := e.Leaderboard(10)
	require.NoError(t, err)
	require.Len(t, leaders, 2)
	for _, entry := range leaders {
		if entry.UserID == "B" {
			assert.Equal(t, 1, entry.Points)
		}
	}

	// A fresh round can begin.
	submit(t, e, "A", "http://x/a2")
	active, err := e.ActiveSubmission("A")
	require.NoError(t, err)
	assert.Equal(t, "http://x/a2", active.Link)
}
