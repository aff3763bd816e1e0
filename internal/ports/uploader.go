package ports

import (
	"context"

	"studyflow/internal/domain"
)

// Uploader is the network boundary to the remote service.
// Every failure wraps domain.ErrNetwork; a false result without an error is
// also a failed upload.
type Uploader interface {
	SubmitReflection(ctx context.Context, reflection domain.Reflection) (float64, error)
	UploadReflection(ctx context.Context, reflection domain.Reflection) (bool, error)
	UploadSession(ctx context.Context, session domain.Session, reflections []domain.Reflection) (bool, error)
}
