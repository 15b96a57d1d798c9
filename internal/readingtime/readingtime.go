// Package readingtime estimates how long a post body takes to consume:
// text is read at 200 words per minute rounded up to whole minutes, every
// image costs a fixed viewing time, and every video contributes its own
// declared length.
package readingtime

import (
	"math"
	"strings"

	"fisher-blog-api/internal/entity"
)

const (
	wordsPerMinute   = 200
	imageViewingTime = 10
	secondsPerMinute = 60
)

// Estimate returns the estimated consumption time of the body in seconds.
// It is total: unknown block types and absent optional fields contribute
// zero rather than failing.
func Estimate(body []entity.Block) int {
	words := 0
	images := 0
	videoSeconds := 0

	for _, block := range body {
		switch block.Type {
		case entity.BlockTitle, entity.BlockParagraph, entity.BlockLink, entity.BlockComment:
			words += countWords(block.Content)
		case entity.BlockList:
			words += countWords(block.Content)
			for _, item := range block.ListItems {
				words += countWords(item)
			}
		case entity.BlockImage:
			images++
		case entity.BlockVideo:
			videoSeconds += block.VideoSize
		}
	}

	return baseReadingTime(words) + images*imageViewingTime + videoSeconds
}

// countWords splits on whitespace runs. Blank content still counts as one
// word: the source splits the trimmed empty string into a single empty
// token, and that behavior is kept on purpose.
func countWords(text string) int {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 1
	}
	return len(words)
}

func baseReadingTime(wordCount int) int {
	minutes := int(math.Ceil(float64(wordCount) / wordsPerMinute))
	return minutes * secondsPerMinute
}
