package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const MaxResumeSizeMB = 2

// ValidateInputs checks the user-supplied pair before any pipeline work.
// Returns (false, message) on the first failing rule.
func ValidateInputs(resumePath, jobDescription string) (bool, string) {
	if resumePath == "" {
		return false, "❌ Please upload a resume file."
	}
	if strings.TrimSpace(jobDescription) == "" {
		return false, "❌ Please provide a job description."
	}
	return true, ""
}

// DetectFileType resolves the declared resume type. An explicit type always
// wins; "auto" falls back to the file extension.
func DetectFileType(filePath, userType string) string {
	if userType != "" && userType != "auto" {
		return userType
	}

	lower := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return "pdf"
	case strings.HasSuffix(lower, ".docx"), strings.HasSuffix(lower, ".doc"):
		return "docx"
	default:
		return "text"
	}
}

// ValidateFileSize enforces the upload size gate before extraction starts.
func ValidateFileSize(filePath string, maxSizeMB int) (bool, string) {
	if maxSizeMB <= 0 {
		maxSizeMB = MaxResumeSizeMB
	}
	info, err := os.Stat(filePath)
	if err != nil {
		return false, "❌ Could not read file size."
	}
	sizeMB := float64(info.Size()) / (1024 * 1024)
	if sizeMB > float64(maxSizeMB) {
		return false, fmt.Sprintf("❌ File too large (%.1fMB). Maximum size: %dMB", sizeMB, maxSizeMB)
	}
	return true, ""
}

// ValidateAudioFile applies the meeting-minutes upload rules (.mp3 only,
// 50MB cap).
func ValidateAudioFile(filePath string, maxSizeMB int) (bool, string) {
	if filePath == "" {
		return false, "❌ Please upload an MP3 file."
	}
	if strings.ToLower(filepath.Ext(filePath)) != ".mp3" {
		return false, "❌ Invalid file format. Please upload an MP3 file."
	}
	info, err := os.Stat(filePath)
	if err != nil {
		return false, "❌ Could not read file size."
	}
	sizeMB := float64(info.Size()) / (1024 * 1024)
	if sizeMB > float64(maxSizeMB) {
		return false, fmt.Sprintf("❌ File too large (%.1fMB). Maximum size: %dMB", sizeMB, maxSizeMB)
	}
	return true, ""
}
