package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"sofdesk/internal/config"
	"sofdesk/internal/domain"
	"sofdesk/internal/port"
	"sofdesk/internal/sof"
)

// SOFUploadInput is the DTO for SOF document uploads.
type SOFUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// SOFParseOutput bundles the stored record with the full parse document.
type SOFParseOutput struct {
	Record *domain.SOFRecord `json:"record"`
	Result sof.ParseResult   `json:"result"`
}

// SOFService defines the Statement of Facts processing contract.
type SOFService interface {
	ParseUpload(ctx context.Context, input SOFUploadInput) (*SOFParseOutput, error)
	ParseText(ctx context.Context, fileName, text string) (*SOFParseOutput, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SOFRecord, error)
	List(ctx context.Context, offset, limit int) ([]domain.SOFRecord, int, error)
	ListByStatus(ctx context.Context, status string, offset, limit int) ([]domain.SOFRecord, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Scenario(laytimeHours, noticePeriodHours, workingHoursPerDay float64) sof.Scenario
}

type sofService struct {
	sofRepo   port.SOFRecordRepository
	fileRepo  port.FileMetaRepository
	storage   port.ObjectStorage
	extractor port.TextExtractor
	alerts    port.AlertSender
	parser    *sof.Parser
	rates     sof.Rates
	s3cfg     *config.S3Config
}

// NewSOFService creates a new SOFService implementation. The parser is
// injected so callers control the pattern table and rates in one place.
func NewSOFService(
	sofRepo port.SOFRecordRepository,
	fileRepo port.FileMetaRepository,
	storage port.ObjectStorage,
	extractor port.TextExtractor,
	alerts port.AlertSender,
	parser *sof.Parser,
	rates sof.Rates,
	s3cfg *config.S3Config,
) SOFService {
	return &sofService{
		sofRepo:   sofRepo,
		fileRepo:  fileRepo,
		storage:   storage,
		extractor: extractor,
		alerts:    alerts,
		parser:    parser,
		rates:     rates,
		s3cfg:     s3cfg,
	}
}

func (s *sofService) ParseUpload(ctx context.Context, input SOFUploadInput) (*SOFParseOutput, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.s3cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	fileBytes, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	text, err := s.extractor.ExtractText(ctx, fileBytes, fileType)
	if err != nil {
		return nil, err
	}

	fileID := uuid.New()
	contentType := domain.AllowedFileTypes[fileType]
	s3Key := fmt.Sprintf("sof/%s/%s", fileID, input.Header.Filename)

	meta := &domain.FileMeta{
		ID:           fileID,
		FileName:     fileID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		S3Bucket:     s.s3cfg.Bucket,
		S3Key:        s3Key,
		ContentType:  contentType,
		Status:       domain.FileStatusPending,
	}
	if err := s.fileRepo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("creating file metadata: %w", err)
	}

	log.Printf("sofService.ParseUpload: archiving %s (%s, %d bytes)",
		input.Header.Filename, contentType, input.Header.Size)

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         s3Key,
		Body:        bytes.NewReader(fileBytes),
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("sofService.ParseUpload: S3 upload failed for %s: %v", fileID, err)
		_ = s.fileRepo.UpdateStatus(ctx, fileID, domain.FileStatusFailed)
		return nil, domain.ErrUploadFailed
	}
	if err := s.fileRepo.UpdateStatus(ctx, fileID, domain.FileStatusUploaded); err != nil {
		return nil, fmt.Errorf("updating file status: %w", err)
	}

	return s.parseAndStore(ctx, &fileID, input.Header.Filename, text)
}

func (s *sofService) ParseText(ctx context.Context, fileName, text string) (*SOFParseOutput, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyDocument
	}
	if fileName == "" {
		fileName = "pasted_text.txt"
	}
	return s.parseAndStore(ctx, nil, fileName, text)
}

func (s *sofService) parseAndStore(ctx context.Context, fileID *uuid.UUID, fileName, text string) (*SOFParseOutput, error) {
	result := s.parser.Parse(text)

	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshaling parse result: %w", err)
	}

	rec := &domain.SOFRecord{
		ID:              uuid.New(),
		FileID:          fileID,
		FileName:        fileName,
		Result:          raw,
		LaytimeStatus:   string(result.Laytime.Status),
		TotalTimeHours:  result.Laytime.TotalHours,
		DemurrageUSD:    result.Financial.DemurrageAmountUSD,
		DespatchUSD:     result.Financial.DespatchAmountUSD,
		ConfidenceScore: result.Confidence,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.sofRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("storing parse result: %w", err)
	}

	log.Printf("sofService.parseAndStore: stored record %s (%s, confidence %.2f, %d diagnostics)",
		rec.ID, rec.LaytimeStatus, rec.ConfidenceScore, len(result.Diagnostics))

	if result.Laytime.Status == sof.LaytimeExceeded {
		s.sendExceededAlert(ctx, rec, result)
	}

	return &SOFParseOutput{Record: rec, Result: result}, nil
}

// sendExceededAlert notifies the desk of a demurrage exposure. Alert
// delivery failures are logged, never surfaced to the caller.
func (s *sofService) sendExceededAlert(ctx context.Context, rec *domain.SOFRecord, result sof.ParseResult) {
	vessel := "unknown vessel"
	if vals := result.Extracted[sof.FieldVesselName]; len(vals) > 0 {
		vessel = vals[0]
	}

	body := fmt.Sprintf("Laytime exceeded for %s (%s).", vessel, rec.FileName)
	if result.Laytime.ExceededHours != nil {
		body += fmt.Sprintf(" Time exceeded: %.1f hours.", *result.Laytime.ExceededHours)
	}
	if result.Financial.DemurrageAmountUSD != nil {
		body += fmt.Sprintf(" Estimated demurrage: USD %.2f. %s", *result.Financial.DemurrageAmountUSD, result.Financial.Note)
	}

	err := s.alerts.SendAlert(ctx, port.Alert{
		Subject: fmt.Sprintf("Demurrage alert: %s", vessel),
		Body:    body,
	})
	if err != nil {
		log.Printf("sofService.sendExceededAlert: delivery failed for record %s: %v", rec.ID, err)
	}
}

func (s *sofService) GetByID(ctx context.Context, id uuid.UUID) (*domain.SOFRecord, error) {
	return s.sofRepo.GetByID(ctx, id)
}

func (s *sofService) List(ctx context.Context, offset, limit int) ([]domain.SOFRecord, int, error) {
	return s.sofRepo.List(ctx, offset, limit)
}

func (s *sofService) ListByStatus(ctx context.Context, status string, offset, limit int) ([]domain.SOFRecord, int, error) {
	return s.sofRepo.ListByStatus(ctx, status, offset, limit)
}

func (s *sofService) Delete(ctx context.Context, id uuid.UUID) error {
	log.Printf("sofService.Delete: deleting record %s", id)
	return s.sofRepo.Delete(ctx, id)
}

func (s *sofService) Scenario(laytimeHours, noticePeriodHours, workingHoursPerDay float64) sof.Scenario {
	return sof.CalculateScenario(laytimeHours, noticePeriodHours, workingHoursPerDay, s.rates)
}
