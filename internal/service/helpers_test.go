package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/kundelik/internal/logger"
	"github.com/MKhiriev/kundelik/internal/mock"
	"github.com/MKhiriev/kundelik/internal/store"
	"github.com/MKhiriev/kundelik/models"
)

var (
	testNow  = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.Local)
	testUser = models.User{ID: 1, Username: "aru", Email: "aru@example.kz"}
)

// trackerFixture — общий набор зависимостей для тестов трекеров
type trackerFixture struct {
	cfg     TrackerConfig
	server  *mock.MockServerAdapter
	session store.SessionStore
	blobs   store.BlobStore
}

func newTrackerFixture(t *testing.T, authenticated, offline bool) trackerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	blobs := store.NewMemoryBlobStore()
	session, err := store.NewSessionStore(context.Background(), blobs, logger.Nop())
	require.NoError(t, err)
	if authenticated {
		require.NoError(t, session.Establish(context.Background(), "token-1", testUser))
	}

	return trackerFixture{
		cfg: TrackerConfig{
			Session: session,
			Blobs:   blobs,
			Offline: offline,
			Logger:  logger.Nop(),
			Now:     func() time.Time { return testNow },
		},
		server:  mock.NewMockServerAdapter(ctrl),
		session: session,
		blobs:   blobs,
	}
}
