package service

import (
	"context"
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/apperrors"
	"github.com/Alireza01sjd/project-god-mode/internal/api/models"
	"github.com/Alireza01sjd/project-god-mode/internal/api/repository"
)

// SessionService records discrete reading intervals. Sessions are
// append-only: opened once, optionally closed once, never edited again.
// Overlapping and abandoned (never closed) sessions are allowed.
type SessionService interface {
	Open(ctx context.Context, callerID, userID string, bookID int64, startTime time.Time) (*models.ReadingSession, error)
	Close(ctx context.Context, callerID, sessionID string, endTime time.Time, pagesRead int, durationSeconds *int) (*models.ReadingSession, error)
	List(ctx context.Context, callerID, userID string, bookID *int64) ([]models.ReadingSession, error)
}

type sessionService struct {
	repo     repository.SessionRepository
	bookRepo repository.BookRepository
}

func NewSessionService(repo repository.SessionRepository, bookRepo repository.BookRepository) SessionService {
	return &sessionService{repo: repo, bookRepo: bookRepo}
}

func (s *sessionService) Open(ctx context.Context, callerID, userID string, bookID int64, startTime time.Time) (*models.ReadingSession, error) {
	if callerID != userID {
		return nil, apperrors.Authorization("cannot open a session for another user")
	}

	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, apperrors.Reference("book %d does not exist", bookID)
		}
		return nil, err
	}

	if startTime.IsZero() {
		startTime = time.Now()
	}

	session := &models.ReadingSession{
		UserID:    userID,
		BookID:    bookID,
		StartTime: startTime,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Close ends a session. Ownership is checked against the stored row, not
// the payload. The duration defaults to the wall-clock interval; callers
// may supply their own when elapsed time is not authoritative (reading
// paused, device clock drift).
func (s *sessionService) Close(ctx context.Context, callerID, sessionID string, endTime time.Time, pagesRead int, durationSeconds *int) (*models.ReadingSession, error) {
	if pagesRead < 0 {
		return nil, apperrors.Validation("pages_read must not be negative")
	}

	session, err := s.repo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != callerID {
		return nil, apperrors.Authorization("cannot close another user's session")
	}
	if !session.IsOpen() {
		return nil, apperrors.Validation("session %s is already closed", sessionID)
	}

	if endTime.IsZero() {
		endTime = time.Now()
	}
	if endTime.Before(session.StartTime) {
		return nil, apperrors.Validation("end_time precedes start_time")
	}

	duration := int(endTime.Sub(session.StartTime).Seconds())
	if durationSeconds != nil {
		if *durationSeconds < 0 {
			return nil, apperrors.Validation("duration must not be negative")
		}
		duration = *durationSeconds
	}

	if err := s.repo.Close(ctx, sessionID, endTime, pagesRead, duration); err != nil {
		return nil, err
	}

	session.EndTime = &endTime
	session.PagesRead = pagesRead
	session.DurationSeconds = duration
	return session, nil
}

func (s *sessionService) List(ctx context.Context, callerID, userID string, bookID *int64) ([]models.ReadingSession, error) {
	if callerID != userID {
		return nil, apperrors.Authorization("cannot list another user's sessions")
	}
	return s.repo.ListByUser(ctx, userID, bookID)
}
