package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTaskDrafts_SingleTask(t *testing.T) {
	content := `---
title: Implement auth
priority: high
tags: [backend, auth]
---
Use the existing session middleware.`

	drafts, err := ParseTaskDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	assert.Equal(t, "Implement auth", drafts[0].Title)
	assert.Equal(t, "high", drafts[0].Priority)
	assert.Equal(t, []string{"backend", "auth"}, drafts[0].Tags)
	assert.Equal(t, "Use the existing session middleware.", drafts[0].Description)
	assert.Empty(t, drafts[0].ParentRef)
}

func TestParseTaskDrafts_MultipleTasks(t *testing.T) {
	content := `---
title: Parent task
---
Parent description.

---
title: Child task
parent: 1
---

---
title: Other child
parent: "#42"
---
`

	drafts, err := ParseTaskDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 3)

	assert.Equal(t, "Parent task", drafts[0].Title)
	assert.Equal(t, "Parent description.", drafts[0].Description)
	assert.Equal(t, "1", drafts[1].ParentRef)
	assert.Equal(t, "#42", drafts[2].ParentRef)
}

func TestParseTaskDrafts_HorizontalRuleInBody(t *testing.T) {
	content := `---
title: Task with rule
---
Before the rule.

---

After the rule.

---
title: Second task
---
`

	drafts, err := ParseTaskDrafts(content)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	assert.Contains(t, drafts[0].Description, "Before the rule.")
	assert.Contains(t, drafts[0].Description, "After the rule.")
	assert.Equal(t, "Second task", drafts[1].Title)
}

func TestParseTaskDrafts_Errors(t *testing.T) {
	_, err := ParseTaskDrafts("   \n  ")
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = ParseTaskDrafts("just some text without frontmatter")
	assert.ErrorIs(t, err, ErrNoTasksInFile)

	_, err = ParseTaskDrafts("---\npriority: high\n---\n")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestResolveParentRef(t *testing.T) {
	createdIDs := map[int]int{1: 10, 2: 11}

	// Empty means no parent
	got, err := ResolveParentRef("", createdIDs)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Relative index resolves through the created map
	got, err = ResolveParentRef("2", createdIDs)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 11, *got)

	// Absolute reference with # prefix
	got, err = ResolveParentRef("#123", createdIDs)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 123, *got)

	// Relative index outside the file is treated as absolute
	got, err = ResolveParentRef("7", createdIDs)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 7, *got)
}

func TestResolveParentRef_Invalid(t *testing.T) {
	for _, ref := range []string{"abc", "#abc", "0", "#0", "-1"} {
		_, err := ResolveParentRef(ref, nil)
		assert.ErrorIs(t, err, ErrInvalidParentRef, ref)
	}
}
