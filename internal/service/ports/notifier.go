package ports

import (
	"context"

	"github.com/Onahi7/portfolio-sub000/internal/domain"
)

type Mailer interface {
	Send(ctx context.Context, p domain.EmailPayload) error
}

// SocialSharer posts to every configured platform and returns the names of
// those that accepted the post.
type SocialSharer interface {
	Share(ctx context.Context, p domain.SocialPayload) ([]string, error)
}
