package impl

import (
	"context"
	"log/slog"
	"strconv"

	"schoolnote/config"
	deliverycontext "schoolnote/internal/delivery/context"
	"schoolnote/internal/domain/entity"
	domainerrors "schoolnote/internal/domain/errors"
	"schoolnote/internal/domain/service"
	"schoolnote/internal/state"
	"schoolnote/internal/usecase"

	"github.com/pkg/errors"
)

// translationService implements the TranslationUsecase interface.
type translationService struct {
	api         service.TranslationAPI
	tokens      service.TokenProvider
	store       *state.Store
	localizer   domainerrors.Localizer
	maxFileSize int64
	logger      *slog.Logger
}

// NewTranslationService is the constructor for translationService.
func NewTranslationService(
	api service.TranslationAPI,
	tokens service.TokenProvider,
	store *state.Store,
	localizer domainerrors.Localizer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TranslationUsecase {
	return &translationService{
		api:         api,
		tokens:      tokens,
		store:       store,
		localizer:   localizer,
		maxFileSize: cfg.Translation.MaxFileBytes(),
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *translationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// TranslateFile validates the file, stores it as the current request and translates it,
// minting a guest session first when no token is held.
func (srv *translationService) TranslateFile(ctx context.Context, input *usecase.TranslateFileInput) (*entity.TranslationResult, error) {
	req, err := srv.buildRequest(input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Translating file",
		slog.String("file_name", req.FileName),
		slog.String("file_type", string(req.FileType)),
		slog.Int("size", len(req.Content)),
		slog.String("target_language", req.TargetLanguage),
	)

	seq := srv.begin(req)

	token, err := srv.tokens.Token(ctx)
	if err != nil {
		return nil, srv.finish(ctx, seq, req, nil, err)
	}

	result, err := srv.api.Translate(ctx, token, req)
	if err != nil {
		return nil, srv.finish(ctx, seq, req, nil, err)
	}

	return result, srv.finish(ctx, seq, req, result, nil)
}

// Retranslate repeats the stored request. It never mints a guest session.
func (srv *translationService) Retranslate(ctx context.Context) (*entity.TranslationResult, error) {
	var (
		req      *entity.TranslationRequest
		previous *entity.TranslationResult
		token    string
	)
	srv.store.Read(func(st *state.AppState) {
		req = st.Translation.Request.Clone()
		previous = st.Translation.Result.Clone()
		token = st.Session.AccessToken
	})
	if req == nil {
		return nil, domainerrors.ErrNoCurrentRequest
	}

	seq := srv.begin(req)
	if token == "" {
		return nil, srv.finish(ctx, seq, req, nil, domainerrors.ErrNoAccessToken)
	}

	var (
		result *entity.TranslationResult
		err    error
	)
	if previous != nil && previous.OriginalFileName == req.FileName {
		srv.log(ctx).Info("Retranslating uploaded file",
			slog.String("file_name", req.FileName),
			slog.String("target_language", req.TargetLanguage),
		)
		result, err = srv.api.Retranslate(ctx, token, service.RetranslateInput{
			OriginalFileName:   req.FileName,
			TargetLanguage:     req.TargetLanguage,
			UseSimpleLanguage:  req.UseSimpleLanguage,
			SourceLanguageHint: req.SourceLanguageHint,
		})
	} else {
		srv.log(ctx).Info("Uploading file again", slog.String("file_name", req.FileName))
		result, err = srv.api.Translate(ctx, token, req)
	}
	if err != nil {
		return nil, srv.finish(ctx, seq, req, nil, err)
	}

	return result, srv.finish(ctx, seq, req, result, nil)
}

// Retarget switches the stored request to another language and translates it again.
func (srv *translationService) Retarget(ctx context.Context, input *usecase.RetargetInput) (*entity.TranslationResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	lang, ok := entity.LookupLanguage(input.TargetLanguage)
	if !ok {
		return nil, domainerrors.ErrUnsupportedLanguage.WithDetails(input.TargetLanguage)
	}

	found := false
	srv.store.Update(func(st *state.AppState) {
		if st.Translation.Request == nil {
			return
		}
		found = true
		st.Translation.Request.TargetLanguage = lang.BackendName
		if input.UseSimpleLanguage != nil {
			simple := *input.UseSimpleLanguage
			st.Translation.Request.UseSimpleLanguage = &simple
		}
	})
	if !found {
		return nil, domainerrors.ErrNoCurrentRequest
	}

	return srv.Retranslate(ctx)
}

// ClearTranslation resets the bucket; responses still in flight are dropped.
func (srv *translationService) ClearTranslation() {
	srv.store.Update(func(st *state.AppState) {
		st.ResetTranslation()
	})
}

// SetActiveTab selects the result tab.
func (srv *translationService) SetActiveTab(tab entity.TranslationTab) error {
	if !tab.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown tab " + strconv.Quote(string(tab)))
	}
	srv.store.Update(func(st *state.AppState) {
		st.Translation.ActiveTab = tab
	})

	return nil
}

// DismissWarning hides the machine-translation warning.
func (srv *translationService) DismissWarning() {
	srv.store.Update(func(st *state.AppState) {
		st.Translation.ShowWarning = false
	})
}

func (srv *translationService) buildRequest(input *usecase.TranslateFileInput) (*entity.TranslationRequest, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if len(input.Content) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file is empty")
	}

	fileType := input.FileType
	if fileType == "" {
		fileType, _ = entity.FileTypeFromName(input.FileName)
	}
	if !fileType.IsValid() {
		return nil, domainerrors.ErrUnsupportedFileType.WithDetails(input.FileName)
	}
	if srv.maxFileSize > 0 && int64(len(input.Content)) > srv.maxFileSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(strconv.Itoa(len(input.Content)) + " bytes")
	}

	lang, ok := entity.LookupLanguage(input.TargetLanguage)
	if !ok {
		return nil, domainerrors.ErrUnsupportedLanguage.WithDetails(input.TargetLanguage)
	}

	req := &entity.TranslationRequest{
		FileName:           input.FileName,
		Content:            input.Content,
		ContentType:        input.ContentType,
		FileType:           fileType,
		TargetLanguage:     lang.BackendName,
		UseSimpleLanguage:  input.UseSimpleLanguage,
		SourceLanguageHint: input.SourceLanguageHint,
	}

	return req.Clone(), nil
}

// begin records req as current and returns the sequence number of this dispatch.
func (srv *translationService) begin(req *entity.TranslationRequest) uint64 {
	var seq uint64
	srv.store.Update(func(st *state.AppState) {
		st.Translation.Seq++
		seq = st.Translation.Seq
		st.Translation.Request = req.Clone()
		st.Translation.Loading = true
		st.Translation.Error = ""
	})

	return seq
}

// finish stores the outcome of dispatch seq unless a newer dispatch or a clear happened since.
func (srv *translationService) finish(
	ctx context.Context,
	seq uint64,
	req *entity.TranslationRequest,
	result *entity.TranslationResult,
	err error,
) error {
	if err != nil {
		err = classify(err, domainerrors.ErrTranslationFailed)
	} else {
		result.Normalize(req)
	}

	stale := false
	srv.store.Update(func(st *state.AppState) {
		if st.Translation.Seq != seq {
			stale = true

			return
		}
		st.Translation.Loading = false
		if err != nil {
			st.Translation.Error = domainerrors.Describe(err, srv.localizer)

			return
		}
		st.Translation.Result = result.Clone()
		st.Translation.Error = ""
	})

	if stale {
		srv.log(ctx).Debug("Discarding superseded translation response", slog.Uint64("seq", seq))
	}
	if err != nil {
		srv.log(ctx).Error("Translation failed", slog.Any("error", err), slog.String("file_name", req.FileName))

		return errors.Wrap(err, "failed to translate file")
	}
	srv.log(ctx).Info("Translation completed",
		slog.String("file_name", result.OriginalFileName),
		slog.Int("events", len(result.Events)),
		slog.Int("vocabulary", len(result.Vocabulary)),
	)

	return nil
}
