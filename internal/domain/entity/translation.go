package entity

import (
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// FileType is the document kind the translation backend distinguishes.
type FileType string

const (
	FileTypePDF   FileType = "pdf"
	FileTypeImage FileType = "image"
)

// IsValid checks if the FileType is a valid value.
func (t FileType) IsValid() bool {
	switch t {
	case FileTypePDF, FileTypeImage:
		return true
	default:
		return false
	}
}

// FileTypeFromName guesses the file type from the file extension.
func FileTypeFromName(name string) (FileType, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FileTypePDF, true
	case ".jpg", ".jpeg", ".png", ".heic", ".webp":
		return FileTypeImage, true
	default:
		return "", false
	}
}

// TranslationRequest is the input of one file translation attempt.
type TranslationRequest struct {
	FileName           string   `json:"fileName"`
	Content            []byte   `json:"-"`
	ContentType        string   `json:"contentType,omitempty"`
	FileType           FileType `json:"fileType"`
	TargetLanguage     string   `json:"targetLanguage"` // Backend enum name, e.g. "KOREAN"
	UseSimpleLanguage  *bool    `json:"useSimpleLanguage,omitempty"`
	SourceLanguageHint string   `json:"sourceLanguageHint,omitempty"`
}

// Clone returns a copy that shares no mutable state with r.
func (r *TranslationRequest) Clone() *TranslationRequest {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Content = slices.Clone(r.Content)
	if r.UseSimpleLanguage != nil {
		simple := *r.UseSimpleLanguage
		clone.UseSimpleLanguage = &simple
	}

	return &clone
}

// SchoolEvent is a dated item extracted from a school notice.
type SchoolEvent struct {
	Title       string `json:"title"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// VocabularyItem explains a school-specific term found in the document.
type VocabularyItem struct {
	Term        string `json:"term"`
	Meaning     string `json:"meaning"`
	Explanation string `json:"explanation,omitempty"`
}

// Timings reports how long each backend stage took, in milliseconds.
type Timings struct {
	ExtractionMs  int64 `json:"extractionMs"`
	TranslationMs int64 `json:"translationMs"`
	SummaryMs     int64 `json:"summaryMs"`
	TotalMs       int64 `json:"totalMs"`
}

// FileMeta describes the uploaded file as the backend saw it.
type FileMeta struct {
	FileName  string   `json:"fileName"`
	FileType  FileType `json:"fileType"`
	SizeBytes int64    `json:"sizeBytes"`
	PageCount int      `json:"pageCount,omitempty"`
}

// TranslationResult is the UI-consumable outcome of a translation, also used for history items.
type TranslationResult struct {
	ID               string           `json:"id,omitempty"`
	OriginalFileName string           `json:"originalFileName"`
	TargetLanguage   string           `json:"targetLanguage,omitempty"`
	ExtractedText    string           `json:"extractedText"`
	TranslatedText   string           `json:"translatedText"`
	Summary          string           `json:"summary"`
	Events           []SchoolEvent    `json:"events"`
	Vocabulary       []VocabularyItem `json:"vocabulary"`
	Timings          Timings          `json:"timings"`
	FileMeta         FileMeta         `json:"fileMeta"`
	CreatedAt        time.Time        `json:"createdAt,omitzero"`
}

// Normalize fills the optional fields consumers would otherwise nil-check:
// empty slices instead of nil, and file names taken from the request.
func (r *TranslationResult) Normalize(req *TranslationRequest) {
	if r.Events == nil {
		r.Events = []SchoolEvent{}
	}
	if r.Vocabulary == nil {
		r.Vocabulary = []VocabularyItem{}
	}
	if req == nil {
		return
	}
	if r.OriginalFileName == "" {
		r.OriginalFileName = req.FileName
	}
	if r.FileMeta.FileName == "" {
		r.FileMeta.FileName = req.FileName
	}
	if r.FileMeta.FileType == "" {
		r.FileMeta.FileType = req.FileType
	}
	if r.FileMeta.SizeBytes == 0 {
		r.FileMeta.SizeBytes = int64(len(req.Content))
	}
	if r.TargetLanguage == "" {
		r.TargetLanguage = req.TargetLanguage
	}
}

// Clone returns a deep copy of the result.
func (r *TranslationResult) Clone() *TranslationResult {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Events = slices.Clone(r.Events)
	clone.Vocabulary = slices.Clone(r.Vocabulary)

	return &clone
}

// TranslationTab is the result tab the UI shows.
type TranslationTab string

const (
	TabSummary     TranslationTab = "summary"
	TabTranslation TranslationTab = "translation"
	TabOriginal    TranslationTab = "original"
	TabEvents      TranslationTab = "events"
	TabVocabulary  TranslationTab = "vocabulary"
)

// IsValid checks if the TranslationTab is a valid value.
func (t TranslationTab) IsValid() bool {
	switch t {
	case TabSummary, TabTranslation, TabOriginal, TabEvents, TabVocabulary:
		return true
	default:
		return false
	}
}
