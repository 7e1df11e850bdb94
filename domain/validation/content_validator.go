// Package validation holds the stateless rules applied to content before it
// reaches the database.
package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"school-cms/domain/models"
)

// MaxTitleLength is counted in characters, not bytes.
const MaxTitleLength = 200

const (
	MsgTitleRequired   = "Title is required"
	MsgTitleTooLong    = "Title must be 200 characters or less"
	MsgContentRequired = "Content is required"
	MsgInvalidStatus   = "Invalid status"
)

// Updates is a partial update keyed by column name. A missing key means
// "leave unchanged"; a key mapped to nil means "set to NULL".
type Updates map[string]interface{}

// CreateFields are the shared columns checked on create.
type CreateFields struct {
	Title   string
	Content string
	Status  models.ContentStatus
}

// Error carries every failed rule of one create or update call.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewError returns nil for an empty message list.
func NewError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &Error{Messages: messages}
}

func checkTitle(title string) []string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return []string{MsgTitleRequired}
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return []string{MsgTitleTooLong}
	}
	return nil
}

func checkContent(content string) []string {
	if strings.TrimSpace(content) == "" {
		return []string{MsgContentRequired}
	}
	return nil
}

// ValidateCreateData returns human-readable errors; an empty result means valid.
// An empty status is accepted and later defaults to draft.
func ValidateCreateData(data CreateFields) []string {
	errs := checkTitle(data.Title)
	errs = append(errs, checkContent(data.Content)...)
	if data.Status != "" && !data.Status.IsValid() {
		errs = append(errs, MsgInvalidStatus)
	}
	return errs
}

// ValidateUpdateData applies the create rules to the keys present in updates only.
func ValidateUpdateData(updates Updates) []string {
	var errs []string
	if value, ok := updates["title"]; ok {
		errs = append(errs, checkTitle(stringValue(value))...)
	}
	if value, ok := updates["content"]; ok {
		errs = append(errs, checkContent(stringValue(value))...)
	}
	if _, ok := updates["status"]; ok {
		if status, _ := StatusOf(updates); !status.IsValid() {
			errs = append(errs, MsgInvalidStatus)
		}
	}
	return errs
}

// CleanUpdateData keeps only the allowed keys. Everything else is dropped
// without error.
func CleanUpdateData(updates Updates, allowedFields []string) Updates {
	clean := make(Updates, len(updates))
	for _, field := range allowedFields {
		if value, ok := updates[field]; ok {
			clean[field] = value
		}
	}
	return clean
}

// HandlePublishedAt stamps published_at with now when status becomes
// published without an explicit value, and clears it for drafts.
// Any other status passes through. The input map is not modified.
func HandlePublishedAt(updates Updates, now time.Time) Updates {
	out := make(Updates, len(updates)+1)
	for k, v := range updates {
		out[k] = v
	}

	status, ok := StatusOf(updates)
	if !ok {
		return out
	}

	switch status {
	case models.StatusPublished:
		if !hasValue(updates["published_at"]) {
			out["published_at"] = now
		}
	case models.StatusDraft:
		out["published_at"] = nil
	}
	return out
}

// StatusOf reads the status key whether it holds a string or a ContentStatus.
func StatusOf(updates Updates) (models.ContentStatus, bool) {
	value, ok := updates["status"]
	if !ok || value == nil {
		return "", false
	}
	switch s := value.(type) {
	case models.ContentStatus:
		return s, true
	case string:
		return models.ContentStatus(s), true
	}
	return models.ContentStatus(fmt.Sprint(value)), true
}

func hasValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case *time.Time:
		return v != nil
	case time.Time:
		return !v.IsZero()
	}
	return true
}

func stringValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	}
	return fmt.Sprint(value)
}
