package board

import (
	"strconv"
	"time"

	"github.com/km-arc/go-board/framework/http/validation"
)

// ── Requests ──────────────────────────────────────────────────────────────────

// CreateRequest is the body of POST /boards.
type CreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Validate returns the validation errors, or nil when the request is valid.
func (r CreateRequest) Validate() *validation.Errors {
	v := validation.Make(map[string]string{
		"title":   r.Title,
		"content": r.Content,
		"author":  r.Author,
	}, validation.Rules{
		"title":   "required|max:100",
		"content": "required|max:10000",
		"author":  "required|max:50",
	})
	if v.Fails() {
		return v.Errors()
	}
	return nil
}

// UpdateRequest is the body of PUT /boards.
type UpdateRequest struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate returns the validation errors, or nil when the request is valid.
func (r UpdateRequest) Validate() *validation.Errors {
	v := validation.Make(map[string]string{
		"id":      strconv.FormatInt(r.ID, 10),
		"title":   r.Title,
		"content": r.Content,
	}, validation.Rules{
		"id":      "required|integer|gte:1",
		"title":   "required|max:100",
		"content": "required|max:10000",
	})
	if v.Fails() {
		return v.Errors()
	}
	return nil
}

// ── Responses ─────────────────────────────────────────────────────────────────

// Response is a board as returned by the API.
type Response struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"createdAt"`
}

// UpdateResponse is the body returned by PUT /boards.
type UpdateResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

func toResponse(b *Board) Response {
	return Response{
		ID:        b.ID,
		Title:     b.Title,
		Content:   b.Content,
		Author:    b.Author,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
}
