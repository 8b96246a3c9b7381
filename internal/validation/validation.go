package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	slugPattern   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

	youtubePattern = regexp.MustCompile(`^https?://(www\.)?(youtube\.com/(watch\?v=|embed/|shorts/)|youtu\.be/)[\w-]+`)
	vimeoPattern   = regexp.MustCompile(`^https?://(www\.)?vimeo\.com/\d+`)

	// Characters dropped entirely when slugifying, everything else
	// non-alphanumeric becomes a hyphen.
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
)

// resumeHosts are the cloud-storage providers a resume link may point at.
var resumeHosts = []string{
	"drive.google.com",
	"docs.google.com",
	"www.dropbox.com",
	"dropbox.com",
	"onedrive.live.com",
	"1drv.ms",
}

// IsSlug reports whether s is a valid URL slug: lowercase alphanumeric
// runs separated by single hyphens.
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// IsIndianMobile reports whether s is a 10-digit Indian mobile number.
func IsIndianMobile(s string) bool {
	return mobilePattern.MatchString(s)
}

// IsVideoURL reports whether s is a YouTube or Vimeo video URL.
func IsVideoURL(s string) bool {
	return youtubePattern.MatchString(s) || vimeoPattern.MatchString(s)
}

// IsResumeLink reports whether s resolves to an allow-listed
// cloud-storage host over HTTP(S).
func IsResumeLink(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, allowed := range resumeHosts {
		if host == allowed {
			return true
		}
	}
	return false
}

// GenerateSlug derives a URL slug from a free-text title. Runs of
// non-alphanumeric characters collapse to single hyphens and leading or
// trailing hyphens are trimmed. An empty or all-symbol title yields "".
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// RegisterCustomTags installs the domain validation tags on gin's
// binding validator. Call once at startup.
func RegisterCustomTags() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

// RegisterOn installs the domain validation tags on the given validator.
func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return IsSlug(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("inmobile", func(fl validator.FieldLevel) bool {
		return IsIndianMobile(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("videourl", func(fl validator.FieldLevel) bool {
		return IsVideoURL(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation("resumelink", func(fl validator.FieldLevel) bool {
		return IsResumeLink(fl.Field().String())
	})
}
