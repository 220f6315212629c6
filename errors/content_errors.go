// api/errors/content_errors.go
package errors

import "errors"

var (
	ErrArticleNotFound    = errors.New("article not found")
	ErrSlugTaken          = errors.New("slug already in use")
	ErrPlaylistNotFound   = errors.New("playlist not found")
	ErrMixNotFound        = errors.New("mix not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrSubmissionNotFound = errors.New("submission not found")
)
