package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrFileTypeNotAllowed = errors.New("file type not allowed")

	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// StoredFile describes an upload written to the uploads directory.
type StoredFile struct {
	FileName string // sanitized client file name
	Path     string
	Ext      string
}

// FileMirror receives a copy of every stored upload.
type FileMirror interface {
	Upload(ctx context.Context, key, filePath string) error
}

type StorageService interface {
	IsAllowed(filename string) bool
	SaveFile(ctx context.Context, file *multipart.FileHeader) (*StoredFile, error)
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath        string
	allowedExtensions map[string]struct{}
	mirror            FileMirror
}

// NewStorageService stores uploads under uploadPath. mirror may be nil.
func NewStorageService(uploadPath string, allowedExtensions []string, mirror FileMirror) StorageService {
	allowed := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		allowed[NormalizeExt(ext)] = struct{}{}
	}

	return &storageService{
		uploadPath:        uploadPath,
		allowedExtensions: allowed,
		mirror:            mirror,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) IsAllowed(filename string) bool {
	ext := fileExt(filename)
	if ext == "" {
		return false
	}
	_, ok := s.allowedExtensions[ext]
	return ok
}

func (s *storageService) SaveFile(ctx context.Context, file *multipart.FileHeader) (*StoredFile, error) {
	if !s.IsAllowed(file.Filename) {
		return nil, ErrFileTypeNotAllowed
	}

	ext := fileExt(file.Filename)
	storedName := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	filePath := filepath.Join(s.uploadPath, storedName)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	if s.mirror != nil {
		if err := s.mirror.Upload(ctx, storedName, filePath); err != nil {
			log.Printf("⚠️  Failed to mirror %s: %v\n", storedName, err)
		}
	}

	return &StoredFile{
		FileName: SanitizeFilename(file.Filename),
		Path:     filePath,
		Ext:      ext,
	}, nil
}

// SanitizeFilename drops any directory part and every character outside
// letters, digits, '_', '.' and '-'. Whitespace runs become a single '_'.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

func fileExt(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return ""
	}
	return NormalizeExt(filename[idx+1:])
}
