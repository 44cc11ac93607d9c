package radasync

import "strings"

// Commit message actions.
const (
	ActionAdd    = "Додає"
	ActionUpdate = "Оновлює"
)

// CommitMessage describes the commit recording one edition.
type CommitMessage struct {
	Action       string
	Title        string
	RegNumber    string
	RevisionDate string // YYYYMMDD
	Basis        string
	SourceURL    string
}

// NewCommitMessage builds the message for an edition. fileExists reports
// whether the document file existed before the edition was written.
func NewCommitMessage(meta *EditionMetadata, sourceURL string, fileExists bool) *CommitMessage {
	action := ActionAdd
	if fileExists {
		action = ActionUpdate
	}
	return &CommitMessage{
		Action:       action,
		Title:        meta.Title,
		RegNumber:    meta.RegNumber,
		RevisionDate: meta.RevisionDate,
		Basis:        meta.Basis,
		SourceURL:    sourceURL,
	}
}

// String renders the message in the form git expects: a subject line, a
// blank line and a body pointing at the source.
func (m *CommitMessage) String() string {
	var b strings.Builder
	b.WriteString(m.Action)
	b.WriteString(` "`)
	b.WriteString(m.Title)
	b.WriteString(`" (Документ `)
	b.WriteString(m.RegNumber)
	b.WriteString(", Редакція від ")
	b.WriteString(FormatRevisionDate(m.RevisionDate))
	if basis := strings.TrimSpace(m.Basis); basis != "" {
		b.WriteString(", підстава - ")
		b.WriteString(basis)
	}
	b.WriteString(")\n\nДжерело: ")
	b.WriteString(m.SourceURL)
	b.WriteString("\n")
	return b.String()
}
