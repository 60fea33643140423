package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/internal/api/domain"
)

func TestApplicationService_Apply(t *testing.T) {
	identity := &domain.Identity{UserID: "user-1", Name: "Ada"}

	t.Run("success", func(t *testing.T) {
		store := newFakeApplicationStore("job-1")
		events := &fakePublisher{}
		svc := NewApplicationService(store, events, discardLogger())

		app, err := svc.Apply(context.Background(), identity, "job-1")
		require.NoError(t, err)

		assert.NotEmpty(t, app.ApplicationID)
		assert.Equal(t, "job-1", app.JobID)
		assert.Equal(t, "user-1", app.UserID)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.False(t, app.AppliedAt.IsZero())

		published := events.published()
		require.Len(t, published, 1)
		assert.Equal(t, EventApplicationReceived, published[0].Event)
		assert.Equal(t, app.ApplicationID, published[0].ApplicationID)
	})

	t.Run("anonymous caller is rejected before persistence", func(t *testing.T) {
		store := newFakeApplicationStore("job-1")
		svc := NewApplicationService(store, &fakePublisher{}, discardLogger())

		app, err := svc.Apply(context.Background(), nil, "job-1")
		require.ErrorIs(t, err, domain.ErrUnauthenticated)
		assert.Nil(t, app)
		assert.Empty(t, store.created)
	})

	t.Run("absent job fails with not found", func(t *testing.T) {
		store := newFakeApplicationStore("job-1")
		svc := NewApplicationService(store, &fakePublisher{}, discardLogger())

		_, err := svc.Apply(context.Background(), identity, "missing-job")
		assert.ErrorIs(t, err, domain.ErrJobNotFound)
	})

	t.Run("second application to the same job conflicts", func(t *testing.T) {
		store := newFakeApplicationStore("job-1")
		events := &fakePublisher{}
		svc := NewApplicationService(store, events, discardLogger())

		_, err := svc.Apply(context.Background(), identity, "job-1")
		require.NoError(t, err)

		_, err = svc.Apply(context.Background(), identity, "job-1")
		require.ErrorIs(t, err, domain.ErrDuplicateApplication)

		// Only the successful attempt is persisted and announced
		assert.Len(t, store.created, 1)
		assert.Len(t, events.published(), 1)
	})

	t.Run("different users may apply to the same job", func(t *testing.T) {
		store := newFakeApplicationStore("job-1")
		svc := NewApplicationService(store, &fakePublisher{}, discardLogger())

		_, err := svc.Apply(context.Background(), identity, "job-1")
		require.NoError(t, err)

		_, err = svc.Apply(context.Background(), &domain.Identity{UserID: "user-2"}, "job-1")
		require.NoError(t, err)
	})

	t.Run("concurrent duplicates resolve to exactly one success", func(t *testing.T) {
		store := newFakeApplicationStore("job-1")
		svc := NewApplicationService(store, &fakePublisher{}, discardLogger())

		const attempts = 16
		errs := make([]error, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = svc.Apply(context.Background(), identity, "job-1")
			}(i)
		}
		wg.Wait()

		successes := 0
		conflicts := 0
		for _, err := range errs {
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, domain.ErrDuplicateApplication):
				conflicts++
			}
		}

		assert.Equal(t, 1, successes)
		assert.Equal(t, attempts-1, conflicts)
	})
}

func TestApplicationService_ListApplications(t *testing.T) {
	identity := &domain.Identity{UserID: "user-1", Name: "Ada"}

	t.Run("requires authentication", func(t *testing.T) {
		svc := NewApplicationService(newFakeApplicationStore(), &fakePublisher{}, discardLogger())

		_, err := svc.ListApplications(context.Background(), nil)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("returns only the caller's applications", func(t *testing.T) {
		store := newFakeApplicationStore("job-1", "job-2")
		svc := NewApplicationService(store, &fakePublisher{}, discardLogger())

		_, err := svc.Apply(context.Background(), identity, "job-1")
		require.NoError(t, err)
		_, err = svc.Apply(context.Background(), &domain.Identity{UserID: "user-2"}, "job-2")
		require.NoError(t, err)

		apps, err := svc.ListApplications(context.Background(), identity)
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, "job-1", apps[0].JobID)
	})
}
