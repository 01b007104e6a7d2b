package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"surplus/internal/domain/repository"
	mockRepo "surplus/internal/mocks/repository"
	mockSvc "surplus/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

const testImageBaseURL = "https://cdn.example.com/"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// expectTransaction makes the transaction manager run the callback against the given factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// newViewDeps returns a humanizer and storage that render predictable values when asked.
func newViewDeps(t *testing.T) (*mockSvc.MockHumanizer, *mockSvc.MockFileStorage) {
	humanizer := mockSvc.NewMockHumanizer(t)
	humanizer.EXPECT().RelativeTime(mock.Anything).Return("in 3 hours").Maybe()

	storage := mockSvc.NewMockFileStorage(t)
	storage.EXPECT().URL(mock.Anything).RunAndReturn(func(key string) string {
		if key == "" {
			return ""
		}

		return testImageBaseURL + key
	}).Maybe()

	return humanizer, storage
}
