package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicUploadPrefix is the URL path the stored files are served under.
const PublicUploadPrefix = "/uploads"

var ErrUnsupportedFileType = errors.New("unsupported file type")

var allowedPhotoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// LocalPhotoStore writes uploaded profile photos to a directory on disk
// under generated names and returns the public URL path for each.
type LocalPhotoStore struct {
	dir string
}

func NewLocalPhotoStore(dir string) (*LocalPhotoStore, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("empty upload dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalPhotoStore{dir: dir}, nil
}

func (s *LocalPhotoStore) Dir() string {
	return s.dir
}

// SavePhoto stores the uploaded file and returns its public URL path.
func (s *LocalPhotoStore) SavePhoto(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", errors.New("nil file")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExts[ext] {
		return "", ErrUnsupportedFileType
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := dst.ReadFrom(src); err != nil {
		_ = os.Remove(dst.Name())
		return "", err
	}

	return PublicUploadPrefix + "/" + name, nil
}
