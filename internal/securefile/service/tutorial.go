package service

import (
	"fmt"

	"github.com/aussiebroadwan/securefile/internal/securefile/domain"
)

// TutorialService grades the dashboard's two-question tutorial. Every
// answer comes back as a notice, right or wrong.
type TutorialService struct {
	Sessions *SessionService
}

func (s *TutorialService) Questions() []domain.TutorialQuestion {
	return domain.TutorialQuestions()
}

// Answer grades optionID for questionID and queues the verdict.
func (s *TutorialService) Answer(sessionID, questionID, optionID string) (domain.TutorialOption, error) {
	var q *domain.TutorialQuestion
	questions := domain.TutorialQuestions()
	for i := range questions {
		if questions[i].ID == questionID {
			q = &questions[i]
			break
		}
	}
	if q == nil {
		return domain.TutorialOption{}, fmt.Errorf("%w: %q", ErrQuestionNotFound, questionID)
	}

	opt, ok := q.Option(optionID)
	if !ok {
		return domain.TutorialOption{}, fmt.Errorf("%w: %q", ErrOptionNotFound, optionID)
	}

	variant := domain.NoticeDestructive
	if opt.Correct {
		variant = domain.NoticeDefault
	}
	if err := s.Sessions.Notify(sessionID, domain.NewNotice(opt.Verdict, opt.Detail, variant)); err != nil {
		return domain.TutorialOption{}, err
	}
	return opt, nil
}

func (s *TutorialService) Complete(sessionID string) error {
	return s.Sessions.Notify(sessionID, domain.NewNotice(
		"Tutorial Completed!",
		"You've learned the basics of secure file management.",
		domain.NoticeDefault,
	))
}
