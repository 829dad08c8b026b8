package models

import "time"

// ResolutionRecord is one row of the resolution log.
type ResolutionRecord struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RequestID string    `gorm:"not null;size:300;index;default:''" json:"request_id,omitzero"`
	Kind      string    `gorm:"not null;size:20;index;default:''" json:"kind"`
	Source    string    `gorm:"not null;size:20;index;default:''" json:"source"`
	Model     string    `gorm:"not null;size:100;default:''" json:"model,omitzero"`
	Reason    string    `gorm:"not null;size:50;default:''" json:"reason,omitzero"`
	KeyHash   string    `gorm:"not null;size:64;default:''" json:"key_hash,omitzero"`
	LatencyMs int       `gorm:"not null;default:0" json:"latency_ms"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}

func (ResolutionRecord) TableName() string {
	return "resolution_records"
}

// RecordResolutionParams is the input for writing a resolution log row.
type RecordResolutionParams struct {
	RequestID string
	Kind      ResolutionKind
	Source    ResponseSource
	Model     string
	Reason    DegradedReason
	CacheKey  string
	Latency   time.Duration
}

// ResolutionStats aggregates the log by source.
type ResolutionStats struct {
	Kind   string `json:"kind"`
	Source string `json:"source"`
	Count  int64  `json:"count"`
}
