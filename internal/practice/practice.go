// Package practice holds the domain model shared by the sync engine, the
// API client and the UI: practices, the viewer's roles, the bootstrap
// current-state snapshot and the live stream events.
package practice

import (
	"time"
)

// Status is the lifecycle status of a practice session on the platform.
type Status string

const (
	StatusCreated    Status = "CREATED"
	StatusScheduled  Status = "SCHEDULED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
	StatusCancelled  Status = "CANCELLED"
)

// PlatformRole is the viewer's account role on the platform. Clients never
// participate in practice modals; the sync engine gates on this.
type PlatformRole string

const (
	PlatformClient PlatformRole = "CLIENT"
	PlatformAdmin  PlatformRole = "ADMIN"
	PlatformMOP    PlatformRole = "MOP"
)

// Practice is a scripted role-play session. Read-only to this client; the
// sync engine cares about ID, Status and MyRole, the rest is display data.
type Practice struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Status      Status    `json:"status"`
	MyRole      Role      `json:"myRole"`
	ScheduledAt time.Time `json:"scheduledAt"`
	RoomURL     string    `json:"roomUrl"`
}

// IsModerator reports whether the viewer moderates this practice.
func (p Practice) IsModerator() bool {
	return p.MyRole == RoleModerator
}
