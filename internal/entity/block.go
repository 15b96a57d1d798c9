package entity

import "fmt"

type BlockType string

const (
	BlockTitle     BlockType = "title"
	BlockParagraph BlockType = "paragraph"
	BlockImage     BlockType = "image"
	BlockVideo     BlockType = "video"
	BlockLine      BlockType = "line"
	BlockIndent    BlockType = "indent"
	BlockList      BlockType = "list"
	BlockLink      BlockType = "link"
	BlockComment   BlockType = "comment"
)

// Block is one element of a post body. The discriminant is Type; the
// remaining fields are optional attributes whose meaning depends on it.
// Fields irrelevant to the discriminant are carried as-is, not validated
// away — client payloads rely on the permissive shape.
type Block struct {
	ID         string    `json:"id"`
	Type       BlockType `json:"type"`
	Content    string    `json:"content"`
	FontSize   int       `json:"fontSize,omitempty"`
	Bold       bool      `json:"bold,omitempty"`
	Italic     bool      `json:"italic,omitempty"`
	URL        string    `json:"url,omitempty"`
	Color      string    `json:"color,omitempty"`
	Background string    `json:"background,omitempty"`
	Size       string    `json:"size,omitempty"`
	LineType   string    `json:"lineType,omitempty"`
	ListType   string    `json:"listType,omitempty"`
	ListItems  []string  `json:"listItems,omitempty"`
	VideoSize  int       `json:"videoSize,omitempty"`
}

// ValidateBody checks the structural contract of a post body: at least one
// block, every block id unique.
func ValidateBody(body []Block) error {
	if len(body) == 0 {
		return fmt.Errorf("post body must not be empty: %w", ErrBadRequest)
	}

	seen := make(map[string]struct{}, len(body))
	for _, block := range body {
		if _, ok := seen[block.ID]; ok {
			return fmt.Errorf("duplicate block id %q: %w", block.ID, ErrBadRequest)
		}
		seen[block.ID] = struct{}{}
	}
	return nil
}

// ValidateCategories requires a non-empty, duplicate-free category set.
func ValidateCategories(categories []string) error {
	if len(categories) == 0 {
		return fmt.Errorf("post category must not be empty: %w", ErrBadRequest)
	}
	if err := validateUnique(categories); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	return nil
}

// ValidateTags allows an absent tag set but rejects duplicates.
func ValidateTags(tags []string) error {
	if err := validateUnique(tags); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	return nil
}

func validateUnique(values []string) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return fmt.Errorf("duplicate value %q: %w", v, ErrBadRequest)
		}
		seen[v] = struct{}{}
	}
	return nil
}
