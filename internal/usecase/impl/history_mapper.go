package impl

import (
	"slices"

	"schoolnote/internal/domain/entity"
)

// MapHistoryToTranslationResults converts backend history records into the result shape
// the UI renders. Order and length are preserved; absent collections become empty.
func MapHistoryToTranslationResults(records []entity.HistoryRecord) []entity.TranslationResult {
	results := make([]entity.TranslationResult, 0, len(records))
	for _, record := range records {
		results = append(results, mapHistoryRecord(record))
	}

	return results
}

func mapHistoryRecord(record entity.HistoryRecord) entity.TranslationResult {
	events := slices.Clone(record.Events)
	if events == nil {
		events = []entity.SchoolEvent{}
	}
	vocabulary := slices.Clone(record.Vocabulary)
	if vocabulary == nil {
		vocabulary = []entity.VocabularyItem{}
	}

	return entity.TranslationResult{
		ID:               record.ID,
		OriginalFileName: record.OriginalFileName,
		TargetLanguage:   record.TargetLanguage,
		ExtractedText:    record.ExtractedText,
		TranslatedText:   record.TranslatedText,
		Summary:          record.Summary,
		Events:           events,
		Vocabulary:       vocabulary,
		Timings:          entity.Timings{TotalMs: record.ProcessingMs},
		FileMeta: entity.FileMeta{
			FileName:  record.OriginalFileName,
			FileType:  record.FileType,
			SizeBytes: record.FileSize,
			PageCount: record.PageCount,
		},
		CreatedAt: record.CreatedAt,
	}
}
