package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/careerforge/cover-letter-api/internal/service"
	"github.com/careerforge/cover-letter-api/internal/util"
)

const (
	maxAudioSizeMB         = 50
	maxTranscriptionLength = 100000
)

// MinutesUsecase turns an uploaded recording into meeting minutes:
// transcription first, then a summary pass and an action-item pass over
// the transcript.
type MinutesUsecase struct {
	ai service.OpenAIServiceInterface
}

func NewMinutesUsecase(ai service.OpenAIServiceInterface) *MinutesUsecase {
	return &MinutesUsecase{ai: ai}
}

func (uc *MinutesUsecase) Generate(ctx context.Context, audioPath, meetingTitle, participants string) (string, string) {
	if ok, msg := util.ValidateAudioFile(audioPath, maxAudioSizeMB); !ok {
		return msg, StatusFailed
	}

	transcript, err := uc.ai.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Sprintf("Error transcribing audio: %v", err), StatusFailed
	}
	transcript = util.TruncateText(transcript, maxTranscriptionLength)

	meetingContext := fmt.Sprintf(`Meeting Title: %s
Participants: %s

Meeting Transcription:
%s`, orNotSpecified(meetingTitle), orNotSpecified(participants), transcript)

	summary, err := uc.ai.Chat(ctx, service.MinutesSummaryPrompt, meetingContext, 0.3)
	if err != nil {
		return fmt.Sprintf("Error analyzing meeting: %v", err), StatusFailed
	}

	// Action items are a nice-to-have on top of the summary; don't throw
	// the summary away if this second pass fails.
	actionItems, err := uc.ai.Chat(ctx, service.ActionItemsPrompt, meetingContext, 0.3)
	if err != nil {
		log.Printf("action item extraction failed: %v", err)
		actionItems = "_Action items could not be extracted._"
	}

	title := meetingTitle
	if strings.TrimSpace(title) == "" {
		title = "Meeting"
	}

	minutes := fmt.Sprintf(`# Meeting Minutes: %s

**Date:** %s
**Participants:** %s

## Summary

%s

## Action Items

%s
`, title, time.Now().Format("January 2, 2006"), orNotSpecified(participants), summary, actionItems)

	return minutes, StatusCompleted
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}
	return s
}
