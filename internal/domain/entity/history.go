package entity

import "time"

// HistoryRecord is a past translation as the backend stores it.
// Optional collections may be absent and are normalised by the mapper.
type HistoryRecord struct {
	ID               string
	OriginalFileName string
	FileType         FileType
	FileSize         int64
	PageCount        int
	TargetLanguage   string
	ExtractedText    string
	TranslatedText   string
	Summary          string
	Events           []SchoolEvent
	Vocabulary       []VocabularyItem
	ProcessingMs     int64
	CreatedAt        time.Time
}
