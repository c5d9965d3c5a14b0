// Package state holds the application state owned by the controller.
package state

import "schoolnote/internal/domain/entity"

// TranslationState is the document translation bucket.
type TranslationState struct {
	Request     *entity.TranslationRequest `json:"request,omitempty"`
	Result      *entity.TranslationResult  `json:"result,omitempty"`
	Error       string                     `json:"error,omitempty"`
	Loading     bool                       `json:"loading"`
	ActiveTab   entity.TranslationTab      `json:"activeTab"`
	ShowWarning bool                       `json:"showWarning"`
	// Seq identifies the latest dispatched call; responses carrying an older number are dropped.
	Seq uint64 `json:"-"`
}

// MessageState is the message compose bucket.
type MessageState struct {
	Request *entity.MessageComposeRequest `json:"request,omitempty"`
	Result  *entity.MessageComposeResult  `json:"result,omitempty"`
	Error   string                        `json:"error,omitempty"`
	Loading bool                          `json:"loading"`
	Seq     uint64                        `json:"-"`
}

// AppState is everything a UI renders from.
type AppState struct {
	Session      entity.Session             `json:"session"`
	AuthError    string                     `json:"authError,omitempty"`
	User         *entity.User               `json:"user,omitempty"`
	ProfileError string                     `json:"profileError,omitempty"`
	Translation  TranslationState           `json:"translation"`
	Message      MessageState               `json:"message"`
	History      []entity.TranslationResult `json:"history"`
	HistoryError string                     `json:"historyError,omitempty"`
	Language     string                     `json:"language"`
	// SessionGen changes whenever a session is installed or cleared. Calls started
	// under an older generation must not write session-bound fields.
	SessionGen uint64 `json:"-"`
}

// Initial returns the state of a fresh process.
func Initial(language string) AppState {
	return AppState{
		Translation: TranslationState{ActiveTab: entity.TabSummary, ShowWarning: true},
		History:     []entity.TranslationResult{},
		Language:    language,
	}
}

// Clone returns a deep copy.
func (s AppState) Clone() AppState {
	clone := s
	clone.User = s.User.Clone()
	clone.Translation.Request = s.Translation.Request.Clone()
	clone.Translation.Result = s.Translation.Result.Clone()
	if s.Message.Request != nil {
		req := *s.Message.Request
		clone.Message.Request = &req
	}
	if s.Message.Result != nil {
		res := *s.Message.Result
		clone.Message.Result = &res
	}
	clone.History = make([]entity.TranslationResult, len(s.History))
	for i := range s.History {
		clone.History[i] = *s.History[i].Clone()
	}

	return clone
}

// ResetTranslation clears the translation bucket and invalidates in-flight calls.
func (s *AppState) ResetTranslation() {
	seq := s.Translation.Seq + 1
	s.Translation = TranslationState{ActiveTab: entity.TabSummary, ShowWarning: true, Seq: seq}
}

// ResetMessage clears the message bucket and invalidates in-flight calls.
func (s *AppState) ResetMessage() {
	seq := s.Message.Seq + 1
	s.Message = MessageState{Seq: seq}
}

// SetSession installs a newly issued session and invalidates calls started under the previous one.
func (s *AppState) SetSession(session entity.Session) {
	s.Session = session
	s.SessionGen++
}

// ClearSession drops tokens and everything tied to the signed-in user.
func (s *AppState) ClearSession() {
	s.SetSession(entity.Session{})
	s.User = nil
	s.ProfileError = ""
	s.History = []entity.TranslationResult{}
	s.HistoryError = ""
	s.ResetTranslation()
	s.ResetMessage()
}
