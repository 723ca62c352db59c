package drive

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// classNames is the fixed set of lung-ultrasound classes, in the order the
// frontend expects them. Folders with any other name are ignored.
var classNames = []string{"H-LUS", "C-LUS", "I-LUS"}

const videoExtension = ".mp4"

// Video is one playable sequence discovered under a patient's class folder.
type Video struct {
	PatientID string
	ClassID   string
	FileID    string
	FileName  string
}

// Catalog resolves the patient/class/video hierarchy against the remote store.
//
// Listing failures are logged and collapsed to empty results: the labeling UI
// keeps working (showing "nothing here") through transient Drive outages
// instead of surfacing 500s.
type Catalog struct {
	store        Store
	rootFolderID string
	logger       *zap.Logger
}

// NewCatalog returns a Catalog rooted at rootFolderID.
func NewCatalog(store Store, rootFolderID string, logger *zap.Logger) *Catalog {
	return &Catalog{
		store:        store,
		rootFolderID: rootFolderID,
		logger:       logger,
	}
}

// ListPatients returns the names of the root folder's immediate subfolders,
// sorted lexicographically. Each subfolder is one patient.
func (c *Catalog) ListPatients(ctx context.Context) []string {
	folders := c.listFolders(ctx, c.rootFolderID)
	names := make([]string, 0, len(folders))
	for _, f := range folders {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// ListClasses resolves patientID to a folder by exact name match and returns
// the known class names present inside it, always in the fixed class order.
// An unresolvable patient yields an empty slice.
func (c *Catalog) ListClasses(ctx context.Context, patientID string) []string {
	patient, ok := c.findFolder(ctx, c.rootFolderID, patientID)
	if !ok {
		return nil
	}

	present := make(map[string]bool)
	for _, f := range c.listFolders(ctx, patient.ID) {
		present[f.Name] = true
	}

	classes := make([]string, 0, len(classNames))
	for _, name := range classNames {
		if present[name] {
			classes = append(classes, name)
		}
	}
	return classes
}

// ListVideos resolves the patient and class folders by exact name match and
// returns the .mp4 files inside, sorted by file name so sequences play in
// order. Unresolvable patient or class yields an empty slice, same as an
// empty class folder.
func (c *Catalog) ListVideos(ctx context.Context, patientID, classID string) []Video {
	patient, ok := c.findFolder(ctx, c.rootFolderID, patientID)
	if !ok {
		return nil
	}
	class, ok := c.findFolder(ctx, patient.ID, classID)
	if !ok {
		return nil
	}

	var videos []Video
	for _, f := range c.listFiles(ctx, class.ID) {
		if !strings.HasSuffix(strings.ToLower(f.Name), videoExtension) {
			continue
		}
		videos = append(videos, Video{
			PatientID: patientID,
			ClassID:   classID,
			FileID:    f.ID,
			FileName:  f.Name,
		})
	}

	sort.Slice(videos, func(i, j int) bool {
		return videos[i].FileName < videos[j].FileName
	})
	return videos
}

// findFolder looks up a child folder of parentID by exact name. No
// normalization, no case folding.
func (c *Catalog) findFolder(ctx context.Context, parentID, name string) (Entry, bool) {
	for _, f := range c.listFolders(ctx, parentID) {
		if f.Name == name {
			return f, true
		}
	}
	return Entry{}, false
}

func (c *Catalog) listFolders(ctx context.Context, parentID string) []Entry {
	folders, err := c.store.ListFolders(ctx, parentID)
	if err != nil {
		c.logger.Warn("drive folder listing failed",
			zap.String("parent_id", parentID), zap.Error(err))
		return nil
	}
	return folders
}

func (c *Catalog) listFiles(ctx context.Context, parentID string) []Entry {
	files, err := c.store.ListFiles(ctx, parentID)
	if err != nil {
		c.logger.Warn("drive file listing failed",
			zap.String("parent_id", parentID), zap.Error(err))
		return nil
	}
	return files
}
