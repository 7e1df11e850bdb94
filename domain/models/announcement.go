package models

import (
	"fmt"
	"strings"
)

type AnnouncementPriority string

const (
	PriorityNormal    AnnouncementPriority = "normal"
	PriorityImportant AnnouncementPriority = "important"
	PriorityUrgent    AnnouncementPriority = "urgent"
)

// Rank orders priorities by severity: urgent > important > normal.
// Unknown values rank below normal.
func (p AnnouncementPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 3
	case PriorityImportant:
		return 2
	case PriorityNormal:
		return 1
	}
	return 0
}

func (p AnnouncementPriority) IsValid() bool {
	return p.Rank() > 0
}

type Announcement struct {
	BaseContent

	Priority AnnouncementPriority `gorm:"type:varchar(20);not null;default:'normal';index"`
}

func (Announcement) TableName() string {
	return "announcements"
}

func (*Announcement) ContentType() ContentType {
	return ContentTypeAnnouncement
}

func (a *Announcement) ValidateEntity() []string {
	var errs []string
	if strings.TrimSpace(a.Excerpt) == "" {
		errs = append(errs, "Excerpt is required")
	}
	if !a.Priority.IsValid() {
		errs = append(errs, "Priority must be one of urgent, important, normal")
	}
	return errs
}

func (*Announcement) ValidateEntityUpdate(updates map[string]interface{}) []string {
	var errs []string
	if value, ok := updates["excerpt"]; ok {
		if value == nil || strings.TrimSpace(fmt.Sprint(value)) == "" {
			errs = append(errs, "Excerpt is required")
		}
	}
	if value, ok := updates["priority"]; ok {
		if !AnnouncementPriority(fmt.Sprint(value)).IsValid() {
			errs = append(errs, "Priority must be one of urgent, important, normal")
		}
	}
	return errs
}
