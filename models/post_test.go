package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short...", Excerpt("short"))

	long := strings.Repeat("é", 200)
	got := Excerpt(long)
	assert.Equal(t, strings.Repeat("é", 150)+"...", got)
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 1, ReadTime("one"))
	assert.Equal(t, 1, ReadTime(strings.TrimSpace(strings.Repeat("w ", 200))))
	assert.Equal(t, 2, ReadTime(strings.TrimSpace(strings.Repeat("w ", 201))))
}

func TestPostDerive(t *testing.T) {
	p := Post{Content: "Linen is back this season"}
	p.Derive()
	assert.Equal(t, "Linen is back this season...", p.Excerpt)
	assert.Equal(t, 1, p.ReadTime)

	p = Post{Content: "Linen is back this season", Excerpt: "Custom"}
	p.Derive()
	assert.Equal(t, "Custom", p.Excerpt)
}

func TestPostInputApplyRegeneratesExcerpt(t *testing.T) {
	p := Post{Content: "Original content here", Excerpt: "Original content here..."}

	in := PostInput{Content: ptr("Completely new words")}
	in.Apply(&p)
	assert.Equal(t, "Completely new words...", p.Excerpt)

	in = PostInput{Content: ptr("Another body of text"), Excerpt: ptr("Hand written")}
	in.Apply(&p)
	assert.Equal(t, "Hand written", p.Excerpt)
}

func TestPostInputValidate(t *testing.T) {
	in := PostInput{}
	errs := in.Validate(false)
	require.Len(t, errs, 2)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "content", errs[1].Field)

	in = PostInput{Title: ptr("  ")}
	errs = in.Validate(true)
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)

	in = PostInput{Status: ptr("deleted"), Category: ptr("Gossip")}
	assert.Len(t, in.Validate(true), 2)

	in = PostInput{Title: ptr("Linen"), Content: ptr("Breathable and light")}
	assert.Empty(t, in.Validate(false))
}

func TestNewPostDefaults(t *testing.T) {
	in := PostInput{Title: ptr("Linen"), Content: ptr("Breathable and light")}
	p := in.NewPost("u1")

	assert.Equal(t, PostDraft, p.Status)
	assert.Equal(t, PostCategories[0], p.Category)
	assert.Equal(t, DefaultPostImage, p.Image)
	assert.Equal(t, "Breathable and light...", p.Excerpt)
	assert.Equal(t, 1, p.ReadTime)
}
