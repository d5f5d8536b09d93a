package util

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
)

const (
	// MaxExtractedChars bounds the text handed to the model; content past
	// the limit is cut and marked with an ellipsis.
	MaxExtractedChars = 10000

	maxResumeBytes = MaxResumeSizeMB * 1024 * 1024
)

// ExtractResumeText pulls text from a resume file according to its declared
// type ("pdf", "docx", "text"). Decode failures inside a document are
// captured and returned as the extraction result itself, not as an error;
// only unreadable files and the size gate surface as errors.
func ExtractResumeText(filePath, fileType string) (string, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read resume file: %w", err)
	}
	if info.Size() > maxResumeBytes {
		return "", fmt.Errorf("Resume file is too large. Please use a file smaller than %dMB.", MaxResumeSizeMB)
	}

	var text string
	switch strings.ToLower(fileType) {
	case "pdf":
		text = extractPDF(filePath)
	case "docx", "doc":
		text = extractDOCX(filePath)
	default:
		raw, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to read resume file: %w", err)
		}
		text = string(raw)
	}

	return TruncateText(text, MaxExtractedChars), nil
}

// TruncateText cuts s to limit characters, appending an ellipsis when
// anything was dropped.
func TruncateText(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

func extractPDF(filePath string) string {
	doc, err := fitz.New(filePath)
	if err != nil {
		return "Error reading PDF: " + err.Error()
	}
	defer doc.Close()

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		pageText, err := doc.Text(n)
		if err != nil {
			return "Error reading PDF: " + err.Error()
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String()
}

func extractDOCX(filePath string) string {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "Error reading DOCX: " + err.Error()
	}
	text, err := docxText(data)
	if err != nil {
		return "Error reading DOCX: " + err.Error()
	}
	return text
}

// docxText opens the OOXML container and concatenates the character data of
// word/document.xml, breaking lines on paragraph ends.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml file not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var sb strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if sb.Len() > 0 {
					sb.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
