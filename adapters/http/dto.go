package http

import (
	"encoding/json"
	"time"

	"github.com/snapstream/snapstream-api/internal/domain/media"
	"github.com/snapstream/snapstream-api/internal/domain/notification"
	"github.com/snapstream/snapstream-api/internal/domain/user"
)

// Account DTOs

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin standard"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO never carries the password, whatever the credential scheme.
type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

// Media DTOs

type CreateMediaRequest struct {
	ID           *string `json:"id"`
	OwnerID      string  `json:"owner_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	Size         int64   `json:"size"`
	Status       string  `json:"status"`
	URL          string  `json:"url"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Profile      *string `json:"profile"`
}

type MediaItemDTO struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Size         int64     `json:"size"`
	Status       string    `json:"status"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	Profile      *string   `json:"profile,omitempty"`
	UploadDate   time.Time `json:"upload_date"`
	// Raw stored payload plus its decoded form, both present once analysis
	// is attached.
	AnalysisResults json.RawMessage `json:"analysis_results,omitempty"`
	Analysis        any             `json:"analysis,omitempty"`
}

func ToMediaItemDTO(m *media.MediaItem) MediaItemDTO {
	dto := MediaItemDTO{
		ID:           m.ID.String(),
		OwnerID:      m.OwnerID.String(),
		Name:         m.Name,
		Type:         m.Type,
		Size:         m.Size,
		Status:       string(m.Status),
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		Profile:      m.Profile,
		UploadDate:   m.UploadDate,
	}
	if len(m.AnalysisResults) > 0 {
		dto.AnalysisResults = m.AnalysisResults
		var decoded any
		if err := json.Unmarshal(m.AnalysisResults, &decoded); err == nil {
			dto.Analysis = decoded
		}
	}
	return dto
}

// Notification DTOs

type NotificationDTO struct {
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

func ToNotificationDTO(n notification.Notification) NotificationDTO {
	return NotificationDTO(n)
}
