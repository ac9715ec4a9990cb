package notion

import (
	"testing"
	"time"

	gnt "github.com/dstotijn/go-notion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleProp(t *testing.T) {
	p := titleProp("Meta")
	require.Len(t, p.Title, 1)
	assert.Equal(t, "Meta", p.Title[0].Text.Content)

	// Empty titles still carry an explicit (empty) value.
	p = titleProp("")
	require.Len(t, p.Title, 1)
	assert.Equal(t, "", p.Title[0].Text.Content)
}

func TestRichTextProp(t *testing.T) {
	p := richTextProp("Program Manager")
	require.Len(t, p.RichText, 1)
	assert.Equal(t, "Program Manager", p.RichText[0].Text.Content)
}

func TestSelectProp(t *testing.T) {
	p := selectProp("Applied")
	require.NotNil(t, p.Select)
	assert.Equal(t, "Applied", p.Select.Name)
}

func TestDateProp(t *testing.T) {
	assert.Equal(t, gnt.DatabasePageProperty{}, dateProp(nil))

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := dateProp(&ts)
	require.NotNil(t, p.Date)
	assert.Equal(t, ts, p.Date.Start.Time)
}

func TestURLProp(t *testing.T) {
	assert.Equal(t, gnt.DatabasePageProperty{}, urlProp(""))

	p := urlProp("https://example.com/jd")
	require.NotNil(t, p.URL)
	assert.Equal(t, "https://example.com/jd", *p.URL)
}

func TestEmailProp(t *testing.T) {
	assert.Equal(t, gnt.DatabasePageProperty{}, emailProp(""))

	p := emailProp("jane@example.com")
	require.NotNil(t, p.Email)
	assert.Equal(t, "jane@example.com", *p.Email)
}

func TestCheckboxProp(t *testing.T) {
	// false is still an explicit value, not an omitted one.
	p := checkboxProp(false)
	require.NotNil(t, p.Checkbox)
	assert.False(t, *p.Checkbox)

	p = checkboxProp(true)
	require.NotNil(t, p.Checkbox)
	assert.True(t, *p.Checkbox)
}

func TestRelationProp(t *testing.T) {
	assert.Equal(t, gnt.DatabasePageProperty{}, relationProp(""))

	p := relationProp("page-abc")
	require.Len(t, p.Relation, 1)
	assert.Equal(t, "page-abc", p.Relation[0].ID)
}
