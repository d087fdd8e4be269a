package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitPrerequisites(t *testing.T) {
	assert.Equal(t, []string{"CS101", "CS102"}, SplitPrerequisites("CS101,CS102"))
	assert.Equal(t, []string{"CS101", "MATH201"}, SplitPrerequisites(" CS101 , MATH201 "))
	assert.Equal(t, []string{"CS101"}, SplitPrerequisites("CS101,,"))
	assert.Empty(t, SplitPrerequisites(""))
	assert.Empty(t, SplitPrerequisites(" , ,"))
}
