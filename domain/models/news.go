package models

import (
	"fmt"
	"strings"
)

type News struct {
	BaseContent

	Category    string `gorm:"type:varchar(100);not null;index"`
	Author      string `gorm:"type:varchar(150)"`
	ReadingTime int    // minutes, 0 when unknown
}

func (News) TableName() string {
	return "news"
}

func (*News) ContentType() ContentType {
	return ContentTypeNews
}

func (n *News) ValidateEntity() []string {
	if strings.TrimSpace(n.Category) == "" {
		return []string{"Category is required"}
	}
	return nil
}

func (*News) ValidateEntityUpdate(updates map[string]interface{}) []string {
	value, ok := updates["category"]
	if !ok {
		return nil
	}
	if value == nil || strings.TrimSpace(fmt.Sprint(value)) == "" {
		return []string{"Category is required"}
	}
	return nil
}
