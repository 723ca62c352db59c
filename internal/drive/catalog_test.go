package drive

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeStore serves canned listings keyed by parent id.
type fakeStore struct {
	folders map[string][]Entry
	files   map[string][]Entry
	listErr error
	open    func(fileID string) (io.ReadCloser, error)
}

func (f *fakeStore) ListFolders(_ context.Context, parentID string) ([]Entry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.folders[parentID], nil
}

func (f *fakeStore) ListFiles(_ context.Context, parentID string) ([]Entry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.files[parentID], nil
}

func (f *fakeStore) OpenFile(_ context.Context, fileID string) (io.ReadCloser, error) {
	if f.open == nil {
		return nil, errors.New("no content")
	}
	return f.open(fileID)
}

func newTestCatalog(store Store) *Catalog {
	return NewCatalog(store, "root", zap.NewNop())
}

func TestListPatients_SortedByName(t *testing.T) {
	store := &fakeStore{folders: map[string][]Entry{
		"root": {
			{ID: "f2", Name: "Patient_2"},
			{ID: "f10", Name: "Patient_10"},
			{ID: "f1", Name: "Patient_1"},
		},
	}}

	got := newTestCatalog(store).ListPatients(context.Background())

	assert.Equal(t, []string{"Patient_1", "Patient_10", "Patient_2"}, got)
}

func TestListPatients_ListingErrorYieldsEmpty(t *testing.T) {
	store := &fakeStore{listErr: errors.New("transient drive error")}

	got := newTestCatalog(store).ListPatients(context.Background())

	assert.Empty(t, got)
}

func TestListClasses_FixedOrderAndUnknownFoldersDropped(t *testing.T) {
	store := &fakeStore{folders: map[string][]Entry{
		"root": {{ID: "p1", Name: "Patient_1"}},
		"p1": {
			{ID: "c1", Name: "C-LUS"},
			{ID: "x1", Name: "X-other"},
			{ID: "h1", Name: "H-LUS"},
		},
	}}

	got := newTestCatalog(store).ListClasses(context.Background(), "Patient_1")

	assert.Equal(t, []string{"H-LUS", "C-LUS"}, got)
}

func TestListClasses_UnknownPatientYieldsEmpty(t *testing.T) {
	store := &fakeStore{folders: map[string][]Entry{
		"root": {{ID: "p1", Name: "Patient_1"}},
	}}

	got := newTestCatalog(store).ListClasses(context.Background(), "NoSuchPatient")

	assert.Empty(t, got)
}

func TestListClasses_NameMatchIsCaseSensitive(t *testing.T) {
	store := &fakeStore{folders: map[string][]Entry{
		"root": {{ID: "p1", Name: "Patient_1"}},
		"p1":   {{ID: "h1", Name: "H-LUS"}},
	}}

	got := newTestCatalog(store).ListClasses(context.Background(), "patient_1")

	assert.Empty(t, got)
}

func TestListVideos_FiltersAndSortsByFileName(t *testing.T) {
	store := &fakeStore{
		folders: map[string][]Entry{
			"root": {{ID: "p1", Name: "Patient_1"}},
			"p1":   {{ID: "h1", Name: "H-LUS"}},
		},
		files: map[string][]Entry{
			"h1": {
				{ID: "fb", Name: "b.mp4"},
				{ID: "fa", Name: "a.mp4"},
				{ID: "fr", Name: "readme.txt"},
			},
		},
	}

	got := newTestCatalog(store).ListVideos(context.Background(), "Patient_1", "H-LUS")

	assert.Equal(t, []Video{
		{PatientID: "Patient_1", ClassID: "H-LUS", FileID: "fa", FileName: "a.mp4"},
		{PatientID: "Patient_1", ClassID: "H-LUS", FileID: "fb", FileName: "b.mp4"},
	}, got)
}

func TestListVideos_ExtensionMatchIsCaseInsensitive(t *testing.T) {
	store := &fakeStore{
		folders: map[string][]Entry{
			"root": {{ID: "p1", Name: "Patient_1"}},
			"p1":   {{ID: "h1", Name: "H-LUS"}},
		},
		files: map[string][]Entry{
			"h1": {{ID: "f1", Name: "class0_window0.MP4"}},
		},
	}

	got := newTestCatalog(store).ListVideos(context.Background(), "Patient_1", "H-LUS")

	assert.Len(t, got, 1)
	assert.Equal(t, "class0_window0.MP4", got[0].FileName)
}

func TestListVideos_UnknownClassYieldsEmpty(t *testing.T) {
	store := &fakeStore{
		folders: map[string][]Entry{
			"root": {{ID: "p1", Name: "Patient_1"}},
			"p1":   {{ID: "h1", Name: "H-LUS"}},
		},
	}

	catalog := newTestCatalog(store)

	assert.Empty(t, catalog.ListVideos(context.Background(), "Patient_1", "C-LUS"))
	assert.Empty(t, catalog.ListVideos(context.Background(), "NoSuchPatient", "H-LUS"))
}
