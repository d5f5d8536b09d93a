package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/careerforge/cover-letter-api/internal/service"
	"github.com/careerforge/cover-letter-api/internal/util"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html"
)

const maxSummaryInputChars = 2000

// SummaryUsecase fetches a web page, strips it down to readable text and
// asks the model for a concise summary.
type SummaryUsecase struct {
	gemini service.GeminiServiceInterface
	client *resty.Client
}

func NewSummaryUsecase(gemini service.GeminiServiceInterface) *SummaryUsecase {
	return &SummaryUsecase{
		gemini: gemini,
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

func (uc *SummaryUsecase) Summarize(ctx context.Context, url string) (string, error) {
	if strings.TrimSpace(url) == "" {
		return "", fmt.Errorf("url is required")
	}

	resp, err := uc.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch website: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("website returned status %d", resp.StatusCode())
	}

	text := StripHTML(resp.String())
	if text == "" {
		return "", fmt.Errorf("no readable text found at %s", url)
	}
	text = util.TruncateText(text, maxSummaryInputChars)

	prompt := fmt.Sprintf(`Please provide a concise summary of the following text. Focus on the main points and key information:

%s

Summary:`, text)

	summary, err := uc.gemini.GenerateContent(ctx, prompt, 0.3)
	if err != nil {
		return "", fmt.Errorf("failed to summarize website: %w", err)
	}
	return summary, nil
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// StripHTML drops script/style subtrees and tags, keeping the visible text
// with whitespace collapsed to single spaces.
func StripHTML(src string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(src))
	var sb strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.TrimSpace(whitespaceRe.ReplaceAllString(sb.String(), " "))
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); tag == "script" || tag == "style" {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if tag := string(name); (tag == "script" || tag == "style") && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				sb.Write(tokenizer.Text())
				sb.WriteByte(' ')
			}
		}
	}
}
