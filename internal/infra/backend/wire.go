package backend

import (
	"time"

	"schoolnote/internal/domain/entity"
)

type guestRequest struct {
	Language string `json:"language"`
}

type guestResponse struct {
	AccessToken string `json:"accessToken"`
	UserID      string `json:"userId"`
}

type loginRequest struct {
	AuthToken string `json:"authToken"`
	Provider  string `json:"provider"`
}

type loginResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         *userDTO `json:"user"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type composeRequest struct {
	Message        string `json:"message"`
	TargetLanguage string `json:"targetLanguage,omitempty"`
}

type composeResponse struct {
	TranslatedMessage string `json:"translatedMessage"`
}

type retranslateRequest struct {
	OriginalFileName   string `json:"originalFileName"`
	TargetLanguage     string `json:"targetLanguage"`
	UseSimpleLanguage  *bool  `json:"useSimpleLanguage,omitempty"`
	SourceLanguageHint string `json:"sourceLanguageHint,omitempty"`
}

type eventDTO struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type vocabularyDTO struct {
	Term        string `json:"term"`
	Meaning     string `json:"meaning"`
	Explanation string `json:"explanation"`
}

type timingsDTO struct {
	ExtractionMs  int64 `json:"extractionMs"`
	TranslationMs int64 `json:"translationMs"`
	SummaryMs     int64 `json:"summaryMs"`
	TotalMs       int64 `json:"totalMs"`
}

type fileMetaDTO struct {
	FileName  string `json:"fileName"`
	FileType  string `json:"fileType"`
	SizeBytes int64  `json:"sizeBytes"`
	PageCount int    `json:"pageCount"`
}

// translationResponse is the bare FileTranslationResponse payload.
type translationResponse struct {
	ID               string          `json:"id"`
	OriginalFileName string          `json:"originalFileName"`
	TargetLanguage   string          `json:"targetLanguage"`
	ExtractedText    string          `json:"extractedText"`
	TranslatedText   string          `json:"translatedText"`
	Summary          string          `json:"summary"`
	Events           []eventDTO      `json:"events"`
	Vocabulary       []vocabularyDTO `json:"vocabulary"`
	Timings          timingsDTO      `json:"timings"`
	FileMeta         fileMetaDTO     `json:"fileMeta"`
	CreatedAt        *time.Time      `json:"createdAt"`
}

type childDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate,omitempty"`
	School    string `json:"school"`
	Grade     int    `json:"grade,omitempty"`
	ClassName string `json:"className,omitempty"`
}

type userDTO struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Provider string     `json:"provider"`
	Language string     `json:"language"`
	Children []childDTO `json:"children"`
}

type historyRecordDTO struct {
	ID               string          `json:"id"`
	OriginalFileName string          `json:"originalFileName"`
	FileType         string          `json:"fileType"`
	FileSize         int64           `json:"fileSize"`
	PageCount        int             `json:"pageCount"`
	TargetLanguage   string          `json:"targetLanguage"`
	ExtractedText    string          `json:"extractedText"`
	TranslatedText   string          `json:"translatedText"`
	Summary          string          `json:"summary"`
	Events           []eventDTO      `json:"events"`
	Vocabulary       []vocabularyDTO `json:"vocabulary"`
	ProcessingTimeMs int64           `json:"processingTimeMs"`
	CreatedAt        *time.Time      `json:"createdAt"`
}

func toEvents(in []eventDTO) []entity.SchoolEvent {
	if in == nil {
		return nil
	}
	out := make([]entity.SchoolEvent, 0, len(in))
	for _, e := range in {
		out = append(out, entity.SchoolEvent{
			Title:       e.Title,
			Date:        e.Date,
			Time:        e.Time,
			Location:    e.Location,
			Description: e.Description,
		})
	}

	return out
}

func toVocabulary(in []vocabularyDTO) []entity.VocabularyItem {
	if in == nil {
		return nil
	}
	out := make([]entity.VocabularyItem, 0, len(in))
	for _, v := range in {
		out = append(out, entity.VocabularyItem{
			Term:        v.Term,
			Meaning:     v.Meaning,
			Explanation: v.Explanation,
		})
	}

	return out
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}

	return *t
}

func (r *translationResponse) toEntity() *entity.TranslationResult {
	return &entity.TranslationResult{
		ID:               r.ID,
		OriginalFileName: r.OriginalFileName,
		TargetLanguage:   r.TargetLanguage,
		ExtractedText:    r.ExtractedText,
		TranslatedText:   r.TranslatedText,
		Summary:          r.Summary,
		Events:           toEvents(r.Events),
		Vocabulary:       toVocabulary(r.Vocabulary),
		Timings: entity.Timings{
			ExtractionMs:  r.Timings.ExtractionMs,
			TranslationMs: r.Timings.TranslationMs,
			SummaryMs:     r.Timings.SummaryMs,
			TotalMs:       r.Timings.TotalMs,
		},
		FileMeta: entity.FileMeta{
			FileName:  r.FileMeta.FileName,
			FileType:  entity.FileType(r.FileMeta.FileType),
			SizeBytes: r.FileMeta.SizeBytes,
			PageCount: r.FileMeta.PageCount,
		},
		CreatedAt: derefTime(r.CreatedAt),
	}
}

func (u *userDTO) toEntity() *entity.User {
	if u == nil {
		return nil
	}
	children := make([]entity.Child, 0, len(u.Children))
	for _, c := range u.Children {
		children = append(children, childToEntity(c))
	}

	return &entity.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Provider: entity.ProviderType(u.Provider),
		Language: u.Language,
		Children: children,
	}
}

func childToEntity(c childDTO) entity.Child {
	return entity.Child{
		ID:        c.ID,
		Name:      c.Name,
		BirthDate: c.BirthDate,
		School:    c.School,
		Grade:     c.Grade,
		ClassName: c.ClassName,
	}
}

func childFromEntity(c entity.Child) childDTO {
	return childDTO{
		ID:        c.ID,
		Name:      c.Name,
		BirthDate: c.BirthDate,
		School:    c.School,
		Grade:     c.Grade,
		ClassName: c.ClassName,
	}
}

func (h *historyRecordDTO) toEntity() entity.HistoryRecord {
	return entity.HistoryRecord{
		ID:               h.ID,
		OriginalFileName: h.OriginalFileName,
		FileType:         entity.FileType(h.FileType),
		FileSize:         h.FileSize,
		PageCount:        h.PageCount,
		TargetLanguage:   h.TargetLanguage,
		ExtractedText:    h.ExtractedText,
		TranslatedText:   h.TranslatedText,
		Summary:          h.Summary,
		Events:           toEvents(h.Events),
		Vocabulary:       toVocabulary(h.Vocabulary),
		ProcessingMs:     h.ProcessingTimeMs,
		CreatedAt:        derefTime(h.CreatedAt),
	}
}
