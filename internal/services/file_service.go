// internal/services/file_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/sintacc/sintacc-backend/internal/apperrors"
	"github.com/sintacc/sintacc-backend/internal/config"
)

// FileURLResolver turns a stored file name into the public URL clients can
// fetch. Catalog, cart and order responses depend on it.
type FileURLResolver interface {
	PublicURL(fileType, fileName string) string
}

// FileService stores uploads on local disk or S3 depending on configuration
// and resolves their public URLs.
type FileService struct {
	s3Client *s3.S3
	cfg      *config.Config
}

type UploadResult struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

const maxUploadSize = 10 * 1024 * 1024 // 10MB

var allowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func NewFileService(cfg *config.Config) (*FileService, error) {
	svc := &FileService{cfg: cfg}

	if cfg.Storage.Driver == "s3" {
		sess, err := session.NewSession(&aws.Config{
			Region: aws.String(cfg.Storage.Region),
			Credentials: credentials.NewStaticCredentials(
				cfg.Storage.AccessKeyID,
				cfg.Storage.SecretAccessKey,
				"",
			),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		svc.s3Client = s3.New(sess)
	}

	return svc, nil
}

// Upload validates and stores one multipart file under the given type folder
// ("products", "recipes"). The returned file name is what gets persisted on
// the owning row.
func (s *FileService) Upload(file multipart.File, header *multipart.FileHeader, fileType string) (*UploadResult, error) {
	if header.Size > maxUploadSize {
		return nil, apperrors.InvalidFile(
			fmt.Sprintf("El archivo supera el tamano maximo de %d bytes", maxUploadSize))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isAllowedExtension(ext) {
		return nil, apperrors.InvalidFile(fmt.Sprintf("Tipo de archivo no permitido: %s", ext))
	}

	if err := validateImageSignature(file); err != nil {
		return nil, err
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, apperrors.FileUploadFailed(err)
	}

	fileName := uuid.New().String() + ext
	contentType := header.Header.Get("Content-Type")

	if s.s3Client != nil {
		if err := s.putS3(fileBytes, fileType+"/"+fileName, contentType); err != nil {
			return nil, apperrors.FileUploadFailed(err)
		}
	} else {
		if err := s.putLocal(fileBytes, fileType, fileName); err != nil {
			return nil, apperrors.FileUploadFailed(err)
		}
	}

	return &UploadResult{
		FileName: fileName,
		URL:      s.PublicURL(fileType, fileName),
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *FileService) putS3(fileBytes []byte, key, contentType string) error {
	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Storage.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	})
	return err
}

func (s *FileService) putLocal(fileBytes []byte, fileType, fileName string) error {
	dir := filepath.Join(s.cfg.Storage.UploadDir, fileType)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, fileName), fileBytes, 0o644)
}

func (s *FileService) Delete(fileType, fileName string) error {
	if s.s3Client != nil {
		_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
			Bucket: aws.String(s.cfg.Storage.S3Bucket),
			Key:    aws.String(fileType + "/" + fileName),
		})
		return err
	}
	return os.Remove(filepath.Join(s.cfg.Storage.UploadDir, fileType, fileName))
}

func (s *FileService) PublicURL(fileType, fileName string) string {
	if fileName == "" {
		return ""
	}
	// Absolute names pass through untouched, seeds may reference external images.
	if strings.HasPrefix(fileName, "http://") || strings.HasPrefix(fileName, "https://") {
		return fileName
	}

	if s.s3Client != nil {
		if s.cfg.Storage.CloudFrontURL != "" {
			return fmt.Sprintf("%s/%s/%s", s.cfg.Storage.CloudFrontURL, fileType, fileName)
		}
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s/%s",
			s.cfg.Storage.S3Bucket, s.cfg.Storage.Region, fileType, fileName)
	}

	return fmt.Sprintf("%s/%s/%s", s.cfg.Storage.PublicBaseURL, fileType, fileName)
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range allowedImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// validateImageSignature checks magic bytes so a renamed executable cannot
// pass as an image.
func validateImageSignature(file multipart.File) error {
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return apperrors.FileUploadFailed(err)
	}
	buffer = buffer[:n]

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return apperrors.FileUploadFailed(err)
	}

	if !isImageSignature(buffer) {
		return apperrors.InvalidFile("El archivo no es una imagen valida")
	}
	return nil
}

func isImageSignature(buffer []byte) bool {
	// JPEG
	if len(buffer) >= 3 && buffer[0] == 0xFF && buffer[1] == 0xD8 && buffer[2] == 0xFF {
		return true
	}
	// PNG
	if len(buffer) >= 8 && buffer[0] == 0x89 && buffer[1] == 0x50 && buffer[2] == 0x4E && buffer[3] == 0x47 {
		return true
	}
	// GIF
	if len(buffer) >= 6 && (string(buffer[0:6]) == "GIF87a" || string(buffer[0:6]) == "GIF89a") {
		return true
	}
	// WEBP (RIFF....WEBP)
	if len(buffer) >= 12 && string(buffer[0:4]) == "RIFF" && string(buffer[8:12]) == "WEBP" {
		return true
	}
	return false
}
