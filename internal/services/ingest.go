package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devfolio/devfolio/internal/apperror"
	"github.com/devfolio/devfolio/internal/models"
	"github.com/devfolio/devfolio/internal/repositories"
)

const resumeMimeType = "application/pdf"

// IngestService runs the full upload → extract → parse → validate → persist
// flow for one resume. Exactly one write happens per successful ingest and
// zero writes on any failure path.
type IngestService interface {
	Ingest(ctx context.Context, userID uuid.UUID, pdfBytes []byte, mimeType string, sizeBytes int64) (*models.ResumeData, error)
}

type ingestService struct {
	userRepo          repositories.UserRepository
	pdfExtractor      PDFExtractorService
	extractionService ExtractionService
	maxFileSize       int64
	requestTimeout    time.Duration
	retryMaxAttempts  int
	retryInitialDelay time.Duration

	// Per-user locks serialize the persist step so concurrent ingests for the
	// same user resolve to a deterministic last write. Entries are ref-counted
	// and pruned once uncontended, so the map only holds users mid-ingest.
	locksMu   sync.Mutex
	userLocks map[uuid.UUID]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewIngestService(
	userRepo repositories.UserRepository,
	pdfExtractor PDFExtractorService,
	extractionService ExtractionService,
	maxFileSize int64,
	requestTimeout time.Duration,
	retryMaxAttempts int,
	retryInitialDelay time.Duration,
) IngestService {
	if retryMaxAttempts < 1 {
		retryMaxAttempts = 1
	}

	return &ingestService{
		userRepo:          userRepo,
		pdfExtractor:      pdfExtractor,
		extractionService: extractionService,
		maxFileSize:       maxFileSize,
		requestTimeout:    requestTimeout,
		retryMaxAttempts:  retryMaxAttempts,
		retryInitialDelay: retryInitialDelay,
		userLocks:         make(map[uuid.UUID]*userLock),
	}
}

// Ingest implements IngestService.
func (s *ingestService) Ingest(ctx context.Context, userID uuid.UUID, pdfBytes []byte, mimeType string, sizeBytes int64) (*models.ResumeData, error) {
	// Gate before any processing: wrong type or oversized uploads never reach
	// the extractor or the model.
	if mimeType != resumeMimeType {
		return nil, apperror.New(apperror.ErrInvalidUpload, "only application/pdf uploads are accepted")
	}
	if sizeBytes > s.maxFileSize {
		return nil, apperror.New(apperror.ErrInvalidUpload, "file exceeds the 5MB upload limit")
	}

	log.Printf("🔄 Starting resume ingest for user %s (%d bytes)", userID, sizeBytes)

	resumeText, err := s.pdfExtractor.ExtractText(pdfBytes)
	if err != nil {
		// An unreadable PDF is a bad upload, not a system fault. Retrying the
		// same bytes cannot help.
		return nil, apperror.Wrap(apperror.ErrInvalidUpload, "could not read the uploaded PDF", err)
	}

	// Once extraction starts, the outcome must not depend on whether the
	// client is still listening: the operation fully completes or fully fails.
	opCtx := context.WithoutCancel(ctx)

	resume, err := s.extractWithRetry(opCtx, resumeText)
	if err != nil {
		return nil, err
	}

	lock := s.acquireUserLock(userID)
	defer s.releaseUserLock(userID, lock)

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrUserNotFound, "user does not exist", err)
		}
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to look up user", err)
	}

	if err := s.userRepo.ReplaceResume(userID, resume); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(apperror.ErrUserNotFound, "user does not exist", err)
		}
		return nil, apperror.Wrap(apperror.ErrInternal, "failed to persist resume", err)
	}

	log.Printf("✅ Resume ingest completed for user %s", userID)
	return resume, nil
}

// extractWithRetry retries only transient upstream faults; a malformed or
// schema-invalid response is deterministic for a given input and is surfaced
// immediately.
func (s *ingestService) extractWithRetry(ctx context.Context, resumeText string) (*models.ResumeData, error) {
	var lastErr error
	delay := s.retryInitialDelay

	for attempt := 1; attempt <= s.retryMaxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
		resume, err := s.extractionService.Extract(callCtx, resumeText)
		cancel()

		if err == nil {
			return resume, nil
		}

		if !errors.Is(err, apperror.ErrUpstreamUnavailable) {
			return nil, err
		}

		lastErr = err
		if attempt < s.retryMaxAttempts {
			log.Printf("⚠️  Attempt %d failed: %v. Retrying in %s...", attempt, err, delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, apperror.Wrap(apperror.ErrUpstreamUnavailable, "extraction cancelled", ctx.Err())
			}
			delay *= 2
		}
	}

	return nil, lastErr
}

func (s *ingestService) acquireUserLock(userID uuid.UUID) *userLock {
	s.locksMu.Lock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &userLock{}
		s.userLocks[userID] = lock
	}
	lock.refs++
	s.locksMu.Unlock()

	lock.mu.Lock()
	return lock
}

func (s *ingestService) releaseUserLock(userID uuid.UUID, lock *userLock) {
	lock.mu.Unlock()

	s.locksMu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.userLocks, userID)
	}
	s.locksMu.Unlock()
}
