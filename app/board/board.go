// Package board is the sample bulletin-board application: a controller,
// service and repository wired through the application context.
package board

import "time"

// Board is a single post.
type Board struct {
	ID        int64
	Title     string
	Content   string
	Author    string
	CreatedAt time.Time
}

// Update replaces the editable fields. Author and CreatedAt never change.
func (b *Board) Update(title, content string) {
	b.Title = title
	b.Content = content
}
