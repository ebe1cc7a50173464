package models

import (
	"fmt"
	"time"
)

// GuestbookEntry is a visitor comment on the home page. Date is the display
// string shown in the list; ordering always uses CreatedAt so that entries
// sort chronologically rather than by the formatted text.
type GuestbookEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Comment   string    `gorm:"not null" json:"comment"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// FormatEntryDate renders the guestbook display date, e.g. "9/1/2024 14:05".
func FormatEntryDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d %d:%02d", t.Day(), int(t.Month()), t.Year(), t.Hour(), t.Minute())
}
