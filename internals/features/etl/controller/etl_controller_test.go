package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsideUploadDir(t *testing.T) {
	valid := []string{
		"uploads/data.csv",
		"./uploads/data.csv",
		"uploads/sub/data.csv",
		"uploads/../uploads/data.csv",
	}
	for _, p := range valid {
		assert.True(t, insideUploadDir(p), p)
	}

	invalid := []string{
		"uploads_evil/data.csv", // sibling dengan prefix sama
		"uploads",               // direktorinya sendiri, bukan file
		"uploads/../secret.csv", // keluar via ..
		"../uploads/data.csv",
		"/etc/passwd",
		"data.csv",
		"",
	}
	for _, p := range invalid {
		assert.False(t, insideUploadDir(p), p)
	}
}

func TestExtensionAllowed(t *testing.T) {
	assert.True(t, extensionAllowed("students.csv"))
	assert.True(t, extensionAllowed("GRADES.XLSX"))
	assert.True(t, extensionAllowed("feedback.json"))
	assert.False(t, extensionAllowed("malware.exe"))
	assert.False(t, extensionAllowed("report.pdf"))
	assert.False(t, extensionAllowed("noextension"))
}
