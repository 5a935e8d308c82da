package dto

import (
	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// BulkActionRequest is the payload of POST /content/bulk.
type BulkActionRequest struct {
	ItemType string   `json:"itemType" binding:"required"`
	Action   string   `json:"action" binding:"required"`
	IDs      []string `json:"ids" binding:"required"`
}

// BulkActionResponse reports how many documents the action touched.
type BulkActionResponse struct {
	Count int64 `json:"count"`
}

// ContentListResponse is one page of the moderation table.
type ContentListResponse struct {
	Items      []usecasecontract.ContentItem `json:"items"`
	Pagination Pagination                    `json:"pagination"`
}
