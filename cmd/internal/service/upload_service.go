package service

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"io"
	"mime/multipart"
	"rlk/cmd/internal/contract"
	"rlk/cmd/internal/infrastructure/audit"
	"rlk/cmd/internal/infrastructure/aws/storage"
	"rlk/cmd/internal/utils"
	"rlk/cmd/internal/utils/apierror"
	"strings"
)

const entityUpload = "upload_checkin"

// DefaultUploadService stores check-in attachments. The returned URL is what
// clients later send as the anexo of a check-in.
type DefaultUploadService struct {
	S3    storage.S3Client
	Audit audit.Logger
}

func NewUploadService(s3 storage.S3Client, auditLog audit.Logger) *DefaultUploadService {
	return &DefaultUploadService{S3: s3, Audit: auditLog}
}

func (s *DefaultUploadService) UploadCheckinFile(ctx context.Context, tenantID int64, fileHeader *multipart.FileHeader) (*contract.UploadResponse, apierror.ErrorResponse) {
	if fileHeader == nil {
		return nil, apierror.MissingUploadFileError
	}

	ext, apierr := checkUploadFile(fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	data, apierr := readUploadFile(fileHeader)
	if apierr != nil {
		return nil, apierr
	}

	key := fmt.Sprintf("checkins/%d/%s%s", tenantID, uuid.NewString(), ext)
	url, err := s.S3.UploadFile(ctx, data, key)
	if err != nil {
		log.Errorf("failed to upload file: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := &contract.UploadResponse{
		URL:      url,
		Path:     key,
		Filename: fileHeader.Filename,
		Size:     int64(len(data)),
	}
	s.Audit.Log(tenantID, entityUpload, audit.ActionCreate, resp)
	return resp, nil
}

func checkUploadFile(fileHeader *multipart.FileHeader) (string, apierror.ErrorResponse) {
	if fileHeader.Size > contract.MaxUploadSizeBytes {
		return "", apierror.UploadTooLargeError
	}

	if strings.TrimSpace(fileHeader.Filename) == "" {
		return "", apierror.MissingFileNameError
	}

	ext, ok := utils.CheckFileExt(fileHeader.Filename, contract.ValidUploadFileTypes)
	if !ok {
		return "", apierror.UploadFileTypeDeniedError
	}
	return ext, nil
}

func readUploadFile(fileHeader *multipart.FileHeader) ([]byte, apierror.ErrorResponse) {
	file, err := fileHeader.Open()
	if err != nil {
		log.Errorf("failed to open file: %v", err)
		return nil, apierror.InternalServerError
	}
	defer file.Close()

	// The header size is client supplied, so the read itself is bounded too.
	data, err := io.ReadAll(io.LimitReader(file, contract.MaxUploadSizeBytes+1))
	if err != nil {
		log.Errorf("failed to read file: %v", err)
		return nil, apierror.InternalServerError
	}

	if len(data) > contract.MaxUploadSizeBytes {
		return nil, apierror.UploadTooLargeError
	}
	return data, nil
}
