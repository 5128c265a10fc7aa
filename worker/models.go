package worker

import "time"

// Upload is one recorded final outcome, success or failure.
type Upload struct {
	ID          int64  `gorm:"primaryKey"`
	SourcePath  string `gorm:"index"`
	Hash        string `gorm:"index"`
	Destination string
	StatusCode  int
	ResultText  string
	CreatedAt   time.Time
}
