package rules

import "github.com/PromoPilot/scheduler-service/internal/model"

var allowedPlatforms = map[model.WizardContentType][]model.Platform{
	model.WizardPost:  {model.PlatformInstagram, model.PlatformFacebook, model.PlatformTwitter, model.PlatformLinkedIn},
	model.WizardVideo: {model.PlatformInstagram, model.PlatformFacebook, model.PlatformYouTube},
	model.WizardBlog:  {model.PlatformLinkedIn},
	model.WizardTweet: {model.PlatformTwitter},
}

// AllowedPlatforms returns the platforms a post of the given type may be
// published to. The returned slice is a copy.
func AllowedPlatforms(t model.WizardContentType) []model.Platform {
	src, ok := allowedPlatforms[t]
	if !ok {
		return nil
	}
	out := make([]model.Platform, len(src))
	copy(out, src)
	return out
}

func PlatformAllowed(t model.WizardContentType, p model.Platform) bool {
	for _, allowed := range allowedPlatforms[t] {
		if allowed == p {
			return true
		}
	}
	return false
}

// RequiresCaption reports whether a caption is mandatory for the given
// content type. Blogs carry their text in the body instead.
func RequiresCaption(t model.WizardContentType) bool {
	return t != model.WizardBlog
}
