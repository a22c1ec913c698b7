package ingest

import (
	"regexp"
	"strings"
)

// Canonical field names produced by key normalization.
const (
	fieldPostID       = "postId"
	fieldCaption      = "caption"
	fieldLikes        = "likes"
	fieldComments     = "commentsCount"
	fieldShares       = "shares"
	fieldTimestamp    = "timestamp"
	fieldCommentTexts = "commentTexts"
)

// columnAliases maps normalized input column names to canonical field names.
// Kept as data so new export formats are a one-line addition. Canonical names
// map to themselves, which makes normalization idempotent.
var columnAliases = map[string]string{
	"id":      fieldPostID,
	"post_id": fieldPostID,
	"postid":  fieldPostID,
	"postId":  fieldPostID,
	"post_Id": fieldPostID,

	"caption":     fieldCaption,
	"post_text":   fieldCaption,
	"text":        fieldCaption,
	"description": fieldCaption,
	"content":     fieldCaption,

	"likes":       fieldLikes,
	"likes_count": fieldLikes,
	"likesCount":  fieldLikes,
	"like_count":  fieldLikes,

	"comments_count": fieldComments,
	"commentsCount":  fieldComments,
	"comment_count":  fieldComments,
	"comments":       fieldComments,

	"shares":       fieldShares,
	"shares_count": fieldShares,
	"sharesCount":  fieldShares,
	"share_count":  fieldShares,

	"date":       fieldTimestamp,
	"timestamp":  fieldTimestamp,
	"created_at": fieldTimestamp,
	"createdAt":  fieldTimestamp,
	"posted_at":  fieldTimestamp,
	"time":       fieldTimestamp,

	"comments_text": fieldCommentTexts,
	"comment":       fieldCommentTexts,
}

var keySeparators = regexp.MustCompile(`[\s-]+`)

// normalizeKey maps one raw input column name to its canonical field name.
// Unrecognized keys pass through in their normalized snake-ish lower-case
// form.
func normalizeKey(key string) string {
	trimmed := strings.TrimSpace(key)
	lower := keySeparators.ReplaceAllString(strings.ToLower(trimmed), "_")
	if canonical, ok := columnAliases[lower]; ok {
		return canonical
	}
	// Camel-cased aliases like "likesCount" only match before lower-casing.
	if canonical, ok := columnAliases[trimmed]; ok {
		return canonical
	}
	return lower
}
