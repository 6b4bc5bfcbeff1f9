package services

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tokusound/types"
)

// MaxAudioSize is the upload size cap for the audio part (10 MiB)
const MaxAudioSize = 10 << 20

// SubmissionService validates a sound submission, stores its uploaded
// files under category-derived folders and persists the submission record
// as a standalone JSON document.
type SubmissionService interface {
	Submit(form *types.SoundForm) (*types.SubmissionRecord, string, error)
}

type submissionService struct {
	publicDir string
	now       func() time.Time
}

// NewSubmissionService creates a submission service rooted at publicDir.
// Uploads land in publicDir/sounds and publicDir/images, records in
// publicDir/forms.
func NewSubmissionService(publicDir string) SubmissionService {
	return &submissionService{publicDir: publicDir, now: time.Now}
}

// Submit runs one submission attempt: validate, store files, write the
// record. Validation and upload rejections happen before any side effect.
// The record write is all-or-nothing: on failure the stored uploads are
// removed and no partial record remains. Returns the record, the record
// file name, and an error classified as *ValidationError, ErrUploadRejected
// or ErrPersistence.
func (s *submissionService) Submit(form *types.SoundForm) (*types.SubmissionRecord, string, error) {
	if err := validateForm(form); err != nil {
		return nil, "", err
	}
	if err := checkUpload(form.Audio, "audio/", MaxAudioSize); err != nil {
		return nil, "", err
	}
	if form.Image != nil {
		if err := checkUpload(form.Image, "image/", MaxAudioSize); err != nil {
			return nil, "", err
		}
	}

	categorySlug := CategorySlug(form.Category)
	submittedAt := s.now().UTC()

	audioName, err := s.storeUpload(form.Audio, filepath.Join("sounds", categorySlug), "audio")
	if err != nil {
		return nil, "", err
	}

	record := &types.SubmissionRecord{
		Title:         form.Title,
		Category:      form.Category,
		Season:        form.Season,
		Tags:          form.TagList(),
		Description:   form.Description,
		Source:        form.Source,
		WikiLink:      form.WikiLink,
		AudioFileName: audioName,
		AudioFilePath: "/sounds/" + categorySlug + "/" + audioName,
		SubmittedAt:   submittedAt,
	}

	var storedFiles []string
	storedFiles = append(storedFiles, filepath.Join(s.publicDir, "sounds", categorySlug, audioName))

	if form.Image != nil {
		imageName, err := s.storeUpload(form.Image, filepath.Join("images", categorySlug), "image")
		if err != nil {
			s.removeFiles(storedFiles)
			return nil, "", err
		}
		record.ImageFileName = imageName
		record.ThumbnailPath = "/images/" + categorySlug + "/" + imageName
		storedFiles = append(storedFiles, filepath.Join(s.publicDir, "images", categorySlug, imageName))
	}

	fileName, err := s.writeRecord(record, submittedAt)
	if err != nil {
		s.removeFiles(storedFiles)
		return nil, "", err
	}

	logrus.WithFields(logrus.Fields{
		"record":   fileName,
		"title":    record.Title,
		"category": record.Category,
	}).Info("submission persisted")

	return record, fileName, nil
}

func validateForm(form *types.SoundForm) error {
	switch {
	case strings.TrimSpace(form.Title) == "":
		return &ValidationError{Field: "title"}
	case strings.TrimSpace(form.Category) == "":
		return &ValidationError{Field: "category"}
	case strings.TrimSpace(form.Season) == "":
		return &ValidationError{Field: "season"}
	case form.Audio == nil:
		return &ValidationError{Field: "audio"}
	}
	return nil
}

func checkUpload(fh *multipart.FileHeader, mimePrefix string, maxSize int64) error {
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, mimePrefix) {
		return fmt.Errorf("%w: %q is not a %s* file", ErrUploadRejected, contentType, mimePrefix)
	}
	if fh.Size > maxSize {
		return fmt.Errorf("%w: file exceeds %d bytes", ErrUploadRejected, maxSize)
	}
	return nil
}

// storeUpload copies an uploaded part into publicDir/subdir under a
// collision-free name: <field>-<uuid><ext>
func (s *submissionService) storeUpload(fh *multipart.FileHeader, subdir, field string) (string, error) {
	dir := filepath.Join(s.publicDir, subdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrPersistence, dir, err)
	}

	name := field + "-" + uuid.New().String() + filepath.Ext(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: opening upload: %v", ErrPersistence, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrPersistence, name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("%w: writing %s: %v", ErrPersistence, name, err)
	}

	return name, nil
}

// writeRecord persists the submission record. The document is written to a
// temp file and renamed into place so a failed write never leaves a partial
// record behind.
func (s *submissionService) writeRecord(record *types.SubmissionRecord, submittedAt time.Time) (string, error) {
	formsDir := filepath.Join(s.publicDir, "forms")
	if err := os.MkdirAll(formsDir, 0755); err != nil {
		return "", fmt.Errorf("%w: creating %s: %v", ErrPersistence, formsDir, err)
	}

	timestamp := submittedAt.Format("20060102T150405Z")
	fileName := fmt.Sprintf("form_%s_%s.json", TitleSlug(record.Title), timestamp)

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encoding record: %v", ErrPersistence, err)
	}

	tmp, err := os.CreateTemp(formsDir, fileName+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("%w: creating record: %v", ErrPersistence, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: writing record: %v", ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: closing record: %v", ErrPersistence, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(formsDir, fileName)); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: renaming record: %v", ErrPersistence, err)
	}

	return fileName, nil
}

func (s *submissionService) removeFiles(paths []string) {
	for _, p := range paths {
		if err := os.Remove(p); err != nil {
			logrus.WithError(err).WithField("file", p).Warn("failed to clean up stored upload")
		}
	}
}
