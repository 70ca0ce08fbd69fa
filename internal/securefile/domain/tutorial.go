package domain

// TutorialOption is one answer button of a tutorial question.
type TutorialOption struct {
	ID      string
	Label   string
	Correct bool
	Verdict string
	Detail  string
}

// TutorialQuestion is one "Try It" step of the interactive tutorial.
type TutorialQuestion struct {
	ID      string
	Title   string
	Prompt  string
	Options []TutorialOption
}

// Option looks up an answer by id.
func (q TutorialQuestion) Option(id string) (TutorialOption, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o, true
		}
	}
	return TutorialOption{}, false
}

// TutorialQuestions is the fixed interactive tutorial.
func TutorialQuestions() []TutorialQuestion {
	return []TutorialQuestion{
		{
			ID:     "encryption",
			Title:  "1. Create Strong Encryption",
			Prompt: "Select the strongest encryption method:",
			Options: []TutorialOption{
				{ID: "aes-256", Label: "AES-256", Correct: true, Verdict: "Correct!", Detail: "AES-256 is currently one of the strongest encryption standards available."},
				{ID: "des", Label: "DES", Verdict: "Not Quite", Detail: "While DES was once standard, it's now considered insecure due to its small key size."},
				{ID: "basic", Label: "Basic Encryption", Verdict: "Not Recommended", Detail: "Basic encryption is too weak for sensitive files."},
			},
		},
		{
			ID:     "sharing",
			Title:  "2. Secure File Sharing",
			Prompt: "Which sharing method is most secure?",
			Options: []TutorialOption{
				{ID: "public-link", Label: "Public link", Verdict: "Not Secure", Detail: "Public links can be accessed by anyone who obtains the URL."},
				{ID: "protected-link", Label: "Password-protected link with expiration", Correct: true, Verdict: "Correct!", Detail: "Password-protected links with expiration provide the best security for sharing."},
				{ID: "email", Label: "Email attachment", Verdict: "Not Recommended", Detail: "Email attachments are often unencrypted and can be intercepted."},
			},
		},
	}
}
