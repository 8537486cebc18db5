package services

import (
	"context"
	"log/slog"

	"github.com/qrtclosure/qrt_closure_app/internal/apperrors"
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	"github.com/qrtclosure/qrt_closure_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner allows only the uploader of a document to act on it.
func (s *BaseService) AuthorizeOwner(ctx context.Context, document *domain.Document, userID string) error {
	if document.OwnerID != userID {
		s.GetLogger(ctx).Warn("User is not the owner of the document",
			slog.String("user_id", userID),
			slog.String("document_id", document.DocumentID))
		return apperrors.ErrForbidden
	}
	return nil
}
