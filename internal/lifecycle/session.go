package lifecycle

import "practicedesk/internal/practice"

// Session describes the authenticated viewer as far as the sync engine
// cares: the platform role plus whether auth has settled.
type Session struct {
	Role practice.PlatformRole
	// Loading is true while authentication is still resolving.
	Loading bool
	// UserPresent is true once user data has been loaded.
	UserPresent bool
}

// Eligible reports whether the sync engine should run for this session.
// Clients never see practice modals, and nothing runs until auth settles.
func (s Session) Eligible() bool {
	return !s.Loading && s.UserPresent && s.Role != practice.PlatformClient
}
