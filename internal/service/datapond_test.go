package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"edcstudio/internal/model"
	"edcstudio/internal/repository"
	repomocks "edcstudio/internal/repository/mocks"
	"edcstudio/internal/storage"
	storagemocks "edcstudio/internal/storage/mocks"
)

func newPondService(store *storagemocks.MockStorage, files *repomocks.MockPondFileRepository, users *repomocks.MockUserRepository) DataPondService {
	return NewDataPondService(store, files, users)
}

func TestPondUpload(t *testing.T) {
	store := new(storagemocks.MockStorage)
	files := new(repomocks.MockPondFileRepository)

	store.On("Put", mock.Anything, "datapond/alice/report.csv", mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{Key: "datapond/alice/report.csv", Size: 11}, nil)
	files.On("Upsert", mock.Anything, mock.MatchedBy(func(f *model.PondFile) bool {
		return f.Username == "alice" && f.Filename == "report.csv" && f.Size == 11
	})).Return(nil)

	svc := newPondService(store, files, new(repomocks.MockUserRepository))
	f, err := svc.Upload(context.Background(), "alice", strings.NewReader("a,b,c\n1,2,3"), "report.csv", "text/csv", 11)
	require.NoError(t, err)
	assert.Equal(t, "datapond/alice/report.csv", f.StorageKey)
	store.AssertExpectations(t)
	files.AssertExpectations(t)
}

func TestPondUploadTooLarge(t *testing.T) {
	store := new(storagemocks.MockStorage)
	svc := newPondService(store, new(repomocks.MockPondFileRepository), new(repomocks.MockUserRepository))

	_, err := svc.Upload(context.Background(), "alice", strings.NewReader("x"), "big.bin", "application/octet-stream", MaxPondFileSize+1)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPondUploadRollsBackOnMetadataFailure(t *testing.T) {
	store := new(storagemocks.MockStorage)
	files := new(repomocks.MockPondFileRepository)

	store.On("Put", mock.Anything, "datapond/alice/report.csv", mock.Anything, mock.Anything).
		Return(storage.ObjectInfo{Key: "datapond/alice/report.csv", Size: 3}, nil)
	files.On("Upsert", mock.Anything, mock.Anything).Return(assert.AnError)
	store.On("Delete", mock.Anything, "datapond/alice/report.csv").Return(nil)

	svc := newPondService(store, files, new(repomocks.MockUserRepository))
	_, err := svc.Upload(context.Background(), "alice", strings.NewReader("abc"), "report.csv", "text/csv", 3)
	assert.Error(t, err)
	store.AssertExpectations(t)
}

func TestPondList(t *testing.T) {
	admin := &model.User{Username: "root", IsAdmin: true}
	alice := &model.User{Username: "alice"}

	tests := []struct {
		name       string
		requester  *model.User
		username   string
		setupMocks func(files *repomocks.MockPondFileRepository, users *repomocks.MockUserRepository)
		wantErr    error
	}{
		{
			name:      "own files",
			requester: alice,
			username:  "",
			setupMocks: func(files *repomocks.MockPondFileRepository, users *repomocks.MockUserRepository) {
				files.On("FindByUser", mock.Anything, "alice").Return([]model.PondFile{{Filename: "report.csv"}}, nil)
			},
		},
		{
			name:      "admin reads another user",
			requester: admin,
			username:  "alice",
			setupMocks: func(files *repomocks.MockPondFileRepository, users *repomocks.MockUserRepository) {
				users.On("FindByUsername", mock.Anything, "alice").Return(alice, nil)
				files.On("FindByUser", mock.Anything, "alice").Return([]model.PondFile{{Filename: "report.csv"}}, nil)
			},
		},
		{
			name:       "non-admin reads another user",
			requester:  alice,
			username:   "bob",
			setupMocks: func(files *repomocks.MockPondFileRepository, users *repomocks.MockUserRepository) {},
			wantErr:    ErrForbidden,
		},
		{
			name:      "admin reads unknown user",
			requester: admin,
			username:  "ghost",
			setupMocks: func(files *repomocks.MockPondFileRepository, users *repomocks.MockUserRepository) {
				users.On("FindByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := new(repomocks.MockPondFileRepository)
			users := new(repomocks.MockUserRepository)
			tt.setupMocks(files, users)

			out, err := newPondService(new(storagemocks.MockStorage), files, users).List(context.Background(), tt.requester, tt.username)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, out, 1)
		})
	}
}

func TestPondDownload(t *testing.T) {
	store := new(storagemocks.MockStorage)
	files := new(repomocks.MockPondFileRepository)

	f := &model.PondFile{Username: "alice", Filename: "report.csv", StorageKey: "datapond/alice/report.csv", Size: 3}
	files.On("Find", mock.Anything, "alice", "report.csv").Return(f, nil)
	store.On("Get", mock.Anything, f.StorageKey).
		Return(io.NopCloser(strings.NewReader("abc")), storage.ObjectInfo{Key: f.StorageKey, Size: 3}, nil)

	rc, meta, err := newPondService(store, files, new(repomocks.MockUserRepository)).Download(context.Background(), "alice", "report.csv")
	require.NoError(t, err)
	defer rc.Close()

	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(body))
	assert.Equal(t, f, meta)
}

func TestPondDownloadMissing(t *testing.T) {
	files := new(repomocks.MockPondFileRepository)
	files.On("Find", mock.Anything, "alice", "ghost.csv").Return(nil, repository.ErrNotFound)

	_, _, err := newPondService(new(storagemocks.MockStorage), files, new(repomocks.MockUserRepository)).Download(context.Background(), "alice", "ghost.csv")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestPondDelete(t *testing.T) {
	store := new(storagemocks.MockStorage)
	files := new(repomocks.MockPondFileRepository)

	f := &model.PondFile{Username: "alice", Filename: "report.csv", StorageKey: "datapond/alice/report.csv"}
	files.On("Find", mock.Anything, "alice", "report.csv").Return(f, nil)
	store.On("Delete", mock.Anything, f.StorageKey).Return(nil)
	files.On("Delete", mock.Anything, "alice", "report.csv").Return(nil)

	assert.NoError(t, newPondService(store, files, new(repomocks.MockUserRepository)).Delete(context.Background(), "alice", "report.csv"))
	store.AssertExpectations(t)
	files.AssertExpectations(t)
}
