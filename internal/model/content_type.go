package model

// ContentType is the stored content type of a post.
type ContentType string

const (
	ContentPost  ContentType = "Post"
	ContentReel  ContentType = "Reel"
	ContentBlog  ContentType = "Blog"
	ContentAudio ContentType = "Audio"
	ContentVideo ContentType = "Video"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentPost, ContentReel, ContentBlog, ContentAudio, ContentVideo:
		return true
	}
	return false
}

// WizardContentType is the content type set offered by the creation wizard.
// It is collapsed onto ContentType on save.
type WizardContentType string

const (
	WizardPost  WizardContentType = "Post"
	WizardVideo WizardContentType = "Video"
	WizardBlog  WizardContentType = "Blog"
	WizardTweet WizardContentType = "Tweet"
)

func (t WizardContentType) Valid() bool {
	switch t {
	case WizardPost, WizardVideo, WizardBlog, WizardTweet:
		return true
	}
	return false
}

// Collapse maps the wizard-facing type onto the stored content type.
// Tweets are stored as plain posts.
func (t WizardContentType) Collapse() ContentType {
	if t == WizardTweet {
		return ContentPost
	}
	return ContentType(t)
}

// WizardTypeFor maps a stored content type back onto the nearest
// wizard-facing type, for the edit flow.
func WizardTypeFor(t ContentType) WizardContentType {
	switch t {
	case ContentVideo, ContentReel:
		return WizardVideo
	case ContentBlog:
		return WizardBlog
	default:
		return WizardPost
	}
}

type Platform string

const (
	PlatformInstagram Platform = "Instagram"
	PlatformFacebook  Platform = "Facebook"
	PlatformTwitter   Platform = "Twitter"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformYouTube   Platform = "YouTube"
)

func (p Platform) Valid() bool {
	switch p {
	case PlatformInstagram, PlatformFacebook, PlatformTwitter, PlatformLinkedIn, PlatformYouTube:
		return true
	}
	return false
}
