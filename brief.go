package adgen

import (
	"net/url"
	"strings"
)

// BriefRequest describes the website to generate ad assets for.
type BriefRequest struct {
	URL string `json:"url"`

	// Services are products or services the user wants the ads to focus on.
	Services []string `json:"services,omitempty"`

	// WebsiteOnly restricts the brief to the site's own content instead of
	// letting the model search the web.
	WebsiteOnly bool `json:"websiteOnly"`
}

// Validate returns an error if the request contains invalid fields.
func (r *BriefRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return Errorf(EINVALID, "website URL required")
	}
	if _, err := NormalizeURL(r.URL); err != nil {
		return err
	}
	return nil
}

// NormalizeURL prepends https:// when the URL has no scheme and checks that
// the result is an absolute http(s) URL with a host.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "website URL required")
	}

	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "the entered URL is not valid: %v", err)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "the entered URL is not valid: missing host")
	}

	return u.String(), nil
}

// ParseServices splits a one-per-line list of services, dropping blank lines.
func ParseServices(text string) []string {
	var services []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			services = append(services, s)
		}
	}
	return services
}
