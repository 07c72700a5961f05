package settings

import "context"

// Service reads the singleton settings document. The dispatcher and public
// read API receive it as an explicit dependency; nothing fetches settings
// through a global.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service { return &Service{repo: r} }

func (s *Service) Get(ctx context.Context) (*SiteSettings, error) {
	return s.repo.Get(ctx)
}

// NotificationEmail returns the configured quote notification address, or ""
// when none is set.
func (s *Service) NotificationEmail(ctx context.Context) (string, error) {
	st, err := s.repo.Get(ctx)
	if err != nil {
		return "", err
	}
	return st.ContactInfo.Email, nil
}
