package content_test

import (
	"ares-gme/content"
	"ares-gme/errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func validFS() fstest.MapFS {
	return fstest.MapFS{
		"data/maxims.txt": {Data: []byte("Discipline is destiny.\n\n  Hold the line.  \n")},
		"data/quotes.txt": {Data: []byte("Stay hungry.\r\nStay foolish.\r\n")},
		"data/whois.txt":  {Data: []byte("Who is most likely to sleep through an alert?\n")},
		"data/quiz.json": {Data: []byte(
			`[{"question":"What does CPU stand for?","options":["Central Processing Unit","Core Power Unit"],"answer":1}]`)},
	}
}

func Test_Load_trims_blank_lines_and_whitespace(t *testing.T) {
	req := require.New(t)
	store, err := content.Load(validFS())
	req.NoError(err)

	maxims := map[string]bool{"Discipline is destiny.": true, "Hold the line.": true}
	for range 10 {
		req.True(maxims[store.Maxim()])
	}
}

func Test_Load_handles_crlf_line_endings(t *testing.T) {
	req := require.New(t)
	store, err := content.Load(validFS())
	req.NoError(err)

	quotes := map[string]bool{"Stay hungry.": true, "Stay foolish.": true}
	for range 10 {
		req.True(quotes[store.Quote()])
	}
}

func Test_Load_decodes_quiz_questions(t *testing.T) {
	req := require.New(t)
	store, err := content.Load(validFS())
	req.NoError(err)

	q := store.Quiz()
	req.Equal("What does CPU stand for?", q.Question)
	req.Len(q.Options, 2)
	req.Equal(1, q.Answer)
}

func Test_Load_rejects_an_empty_bank(t *testing.T) {
	f := validFS()
	f["data/maxims.txt"] = &fstest.MapFile{Data: []byte("\n  \n")}

	_, err := content.Load(f)
	require.ErrorIs(t, err, errors.ErrEmptyContent)
}

func Test_Load_rejects_an_empty_quiz(t *testing.T) {
	f := validFS()
	f["data/quiz.json"] = &fstest.MapFile{Data: []byte("[]")}

	_, err := content.Load(f)
	require.ErrorIs(t, err, errors.ErrEmptyContent)
}

func Test_Load_fails_on_a_missing_file(t *testing.T) {
	f := validFS()
	delete(f, "data/whois.txt")

	_, err := content.Load(f)
	require.Error(t, err)
}

func Test_NewStore_loads_the_embedded_banks(t *testing.T) {
	req := require.New(t)
	store, err := content.NewStore()
	req.NoError(err)

	req.NotEmpty(store.Maxim())
	req.NotEmpty(store.Quote())
	req.NotEmpty(store.WhoIs())
	q := store.Quiz()
	req.NotEmpty(q.Question)
	req.NotEmpty(q.Options)
}
