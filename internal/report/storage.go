package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

const driveFolderMimeType = "application/vnd.google-apps.folder"

// Storage keeps a copy of an exported report and returns where it was put.
type Storage interface {
	Store(ctx context.Context, name, contentType string, content []byte) (string, error)
}

type DiskStorage struct {
	rootPath string
}

func NewDiskStorage(rootPath string) (*DiskStorage, error) {
	if err := os.MkdirAll(rootPath, 0o750); err != nil {
		return nil, fmt.Errorf("create reports dir: %w", err)
	}
	return &DiskStorage{rootPath: rootPath}, nil
}

// Store writes content to a temp file in the root dir and renames it into place
// once fully written.
func (s *DiskStorage) Store(ctx context.Context, name, _ string, content []byte) (_ string, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "storage.disk.store")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(s.rootPath, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	target := filepath.Join(s.rootPath, filepath.Base(name))
	if err = os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("rename %s: %w", name, err)
	}
	return target, nil
}

// NewDriveService creates a Drive client from a service account credentials file.
func NewDriveService(ctx context.Context, credentialsFile string, opts ...option.ClientOption) (*drive.Service, error) {
	opts = append([]option.ClientOption{
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveFileScope),
	}, opts...)
	service, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}
	return service, nil
}

// DriveStorage uploads reports into a single Google Drive folder.
type DriveStorage struct {
	service  *drive.Service
	folderID string
}

// NewDriveStorage looks up the reports folder by name and creates it if missing.
func NewDriveStorage(ctx context.Context, service *drive.Service, folderName string) (*DriveStorage, error) {
	query := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", driveFolderMimeType, folderName)
	folders, err := service.
		Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("unable to list folders: %w", err)
	}

	s := &DriveStorage{service: service}
	switch len(folders.Files) {
	case 0:
		log.Debugf("reports folder %s not found, creating", folderName)
		folder, err := service.
			Files.Create(&drive.File{Name: folderName, MimeType: driveFolderMimeType}).
			Fields("id").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("create reports folder: %w", err)
		}
		s.folderID = folder.Id
	case 1:
		s.folderID = folders.Files[0].Id
	default:
		s.folderID = folders.Files[0].Id
		log.Warnf("found %d reports folders named %s, using %s", len(folders.Files), folderName, s.folderID)
	}

	log.Debugf("reports drive folder: %s", s.folderID)
	return s, nil
}

func (s *DriveStorage) FolderID() string {
	return s.folderID
}

func (s *DriveStorage) Store(ctx context.Context, name, contentType string, content []byte) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "storage.drive.store")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	meta := &drive.File{
		Name:     name,
		MimeType: contentType,
		Parents:  []string{s.folderID},
	}
	created, err := s.service.
		Files.Create(meta).
		Fields("id, parents").
		Media(bytes.NewReader(content)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	return created.Id, nil
}
