package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"notesvc/apperror"
	"notesvc/model"
)

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, ValidateStruct(model.NoteInput{Content: "ok", Tags: []string{"a"}}))

	err := ValidateStruct(model.NoteInput{Content: ""})
	assert.True(t, errors.Is(err, apperror.ErrValidation))
	assert.Equal(t, "content is required", err.Error())

	err = ValidateStruct(model.NoteInput{Content: strings.Repeat("x", model.MaxContentLength+1)})
	assert.Equal(t, "content exceeds the maximum of 10000", err.Error())

	err = ValidateStruct(model.NoteInput{Content: "ok", Tags: []string{strings.Repeat("t", model.MaxTagLength+1)}})
	assert.Equal(t, "tags[0] exceeds the maximum of 64", err.Error())

	err = ValidateStruct(model.SavedFilter{Name: "n", QueryMode: "fuzzy"})
	assert.Equal(t, "querymode must be one of exact, partial, trgm", err.Error())
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, ValidateVar("content", "hello", "required,max=10000"))

	err := ValidateVar("content", "", "required,max=10000")
	assert.Equal(t, "content is required", err.Error())

	err = ValidateVar("tags", make([]string, model.MaxTags+1), "max=32")
	assert.Equal(t, "tags exceeds the maximum of 32", err.Error())
}
